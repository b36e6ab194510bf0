package i18n

type Translations map[string]Messages // [locale][key]message
type Messages map[string]string

var translations = Translations{
	"en": EN,
	"ru": RU,
}

// languages maps a game localization folder to a locale.
var languages = map[string]string{
	"english": "en",
	"russian": "ru",
}
