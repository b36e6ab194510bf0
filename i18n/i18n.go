package i18n

import "fmt"

var Locale = "en"

func L(key string, args ...any) string {
	msg, exist := translations[Locale][key]

	if !exist {
		msg = EN[key]
	}

	if len(args) == 0 {
		return msg
	}

	return fmt.Sprintf(msg, args...)
}

func SetLocale(locale string) error {
	_, exist := translations[locale]

	if !exist {
		return fmt.Errorf("unsupported locale %s", locale)
	}

	Locale = locale

	return nil
}

// SetLanguage picks the locale for a game language such as "english".
// Languages without labels fall back to English.
func SetLanguage(language string) {
	locale, exist := languages[language]

	if !exist {
		locale = "en"
	}

	Locale = locale
}
