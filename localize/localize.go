package localize

import (
	"strings"

	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/record"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/state"
	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
	"github.com/tliron/commonlog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var log = commonlog.GetLogger("ck3gramps.localize")

const (
	housePrefix = "house_"
	listSep     = ", "
)

// Ranks maps the code before the first underscore of a title key to the label
// shown in the title column. The labels do not follow the active locale.
var Ranks = map[string]string{
	"b": "Baron",
	"c": "Count",
	"d": "Duke",
	"k": "King",
	"e": "Emperor",
	"x": "Leader",
}

// Localizer turns the raw references of a person into display text using the
// string table of one language.
type Localizer struct {
	Bundle *Bundle
	Table  Table

	title cases.Caser
}

func CreateLocalizer(bundle *Bundle, table Table) *Localizer {
	if table == nil {
		table = make(Table)
	}

	return &Localizer{
		Bundle: bundle,
		Table:  table,
		title:  cases.Title(language.Und),
	}
}

// Localize runs every substitution step on the person and then composes the
// display fields and the note. Only an unresolvable title fails.
func (loc *Localizer) Localize(person *state.Person) (err error) {
	person.Name = loc.text(person.Name)
	person.Surname = loc.House(person.HouseId)

	person.Title, err = loc.Title(person.TitleIds)

	if err != nil {
		return
	}

	person.Traits = loc.Traits(person.Traits)
	person.RecessiveTraits = loc.Traits(person.RecessiveTraits)
	person.Faith = loc.Faith(person.FaithId)
	person.Culture = loc.Culture(person.CultureId)

	Finalize(person)

	return
}

func (loc *Localizer) text(key string) string {
	if value, ok := loc.Table.Lookup(key); ok {
		return value
	}

	return key
}

// House prefers the table entry for the house name, then a name built from
// the house key, then the localized_name field.
func (loc *Localizer) House(houseId Id) string {
	if houseId == "" {
		return ""
	}

	house := record.Of(loc.Bundle.Houses[houseId])

	if house.IsAbsent() {
		log.Warningf("house %s not found, keeping the reference", houseId)
		return houseId
	}

	if name, ok := loc.Table.Lookup(house.Get("name").Text()); ok {
		return name
	}

	if key := house.Get("key").Text(); key != "" {
		return loc.HouseKeyName(key)
	}

	if name := house.Get("localized_name").Text(); name != "" {
		return name
	}

	return houseId
}

// HouseKeyName turns a key like house_de_hauteville into "De Hauteville".
func (loc *Localizer) HouseKeyName(key string) string {
	key = strings.TrimPrefix(key, housePrefix)
	key = strings.ReplaceAll(key, "_", " ")

	return loc.title.String(key)
}

// Title renders the most significant title as "<Rank> of <Territory>".
func (loc *Localizer) Title(titleIds []Id) (string, error) {
	if len(titleIds) == 0 {
		return "", nil
	}

	id := titleIds[0]
	title := record.Of(loc.Bundle.Titles[id])

	if title.IsAbsent() {
		return "", state.Unresolved(state.RefTitle, id, "title not found")
	}

	key := title.Get("key").Text()
	rank, err := Rank(key)

	if err != nil {
		return "", err
	}

	territory, ok := loc.Table.Lookup(key)

	if !ok {
		territory = title.Get("name").Text()
	}

	return rank + " of " + territory, nil
}

// Rank reads the rank code before the first underscore of a title key.
func Rank(key string) (string, error) {
	code, _, _ := strings.Cut(key, "_")
	rank, exist := Ranks[code]

	if !exist {
		return "", state.Unresolved(state.RefTitle, key, "unknown rank %q", code)
	}

	return rank, nil
}

// Traits maps every reference through the table and drops the ones without
// an entry.
func (loc *Localizer) Traits(refs []string) []string {
	list := make([]string, 0, len(refs))

	for _, ref := range refs {
		if value, ok := loc.Table.Lookup(ref); ok {
			list = append(list, value)
		}
	}

	return list
}

func (loc *Localizer) Faith(faithId Id) string {
	if faithId == "" {
		return ""
	}

	faith := record.Of(loc.Bundle.Religions[faithId])

	if faith.IsAbsent() {
		return faithId
	}

	name := faith.Get("name").Text()

	if name == "" {
		name = faith.Get("template").Text()
	}

	if name == "" {
		return faithId
	}

	return loc.text(name)
}

func (loc *Localizer) Culture(cultureId Id) string {
	if cultureId == "" {
		return ""
	}

	name := record.Get(loc.Bundle.Cultures[cultureId], "name").Text()

	if name == "" {
		return cultureId
	}

	return loc.text(name)
}
