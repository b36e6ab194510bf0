package state

import (
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/record"
	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
)

var SkillNames = [...]string{"DIP", "STE", "MAR", "INT", "LEA", "PRO"}

var spouseKeys = []string{"spouse", "former_spouses", "concubinist", "former_concubinists"}

const defaultOrientation = "he"

type Person struct {
	Id     Id
	Origin Origin

	Name            string
	HouseId         Id
	Sex             Sex
	Birth           string
	Death           string
	DeathReason     string
	Skills          []Skill
	Traits          []string
	RecessiveTraits []string
	FaithId         Id
	CultureId       Id
	Orientation     string
	TitleIds        []Id

	Children []Id
	Spouses  []Id

	// Display values, filled by localization.
	Surname       string
	Title         string
	Faith         string
	Culture       string
	Note          string
	SkillText     string
	TraitText     string
	RecessiveText string
}

// PairWith orders the person and one spouse into husband and wife slots by
// the person's own sex.
func (person *Person) PairWith(spouse Id) Pair {
	if person.Sex == Female {
		return Pair{Husband: spouse, Wife: person.Id}
	}

	return Pair{Husband: person.Id, Wife: spouse}
}

// NewPerson reads one character record and records its relations in the
// graph according to origin. Nothing is recorded when the record cannot be
// resolved.
func (graph *Graph) NewPerson(id Id, raw any, origin Origin) (person *Person, err error) {
	rec := record.Of(raw)

	person = &Person{
		Id:              id,
		Origin:          origin,
		Name:            rec.Get("first_name").Text(),
		HouseId:         rec.Get("dynasty_house").Text(),
		Birth:           rec.Get("birth").Text(),
		Death:           rec.Get("dead_data", "date").Text(),
		DeathReason:     rec.Get("dead_data", "reason").Text(),
		Skills:          readSkills(rec.Get("skill")),
		Traits:          rec.Get("traits").Strings(),
		RecessiveTraits: rec.Get("recessive_traits").Strings(),
		Orientation:     rec.Get("sexuality").Text(),
		TitleIds:        readTitles(rec),
		Children:        uniqIds(record.Flatten(rec.Get("family_data", "child"))),
		Spouses:         uniqIds(record.Flatten(record.GetMultiple(raw, "family_data", spouseKeys...)...)),
	}

	if person.Orientation == "" {
		person.Orientation = defaultOrientation
	}

	person.Sex, err = readSex(id, rec.Get("female"))

	if err != nil {
		return nil, err
	}

	person.FaithId, err = graph.inherit(person, rec, "faith")

	if err != nil {
		return nil, err
	}

	person.CultureId, err = graph.inherit(person, rec, "culture")

	if err != nil {
		return nil, err
	}

	graph.add(person)

	return person, nil
}

// inherit reads field from the record, or from the head of the person's
// house when the record has none. Only one hop is followed.
func (graph *Graph) inherit(person *Person, rec record.Value, field string) (Id, error) {
	if value := rec.Get(field).Text(); value != "" {
		return value, nil
	}

	head, err := graph.HouseHead(person.HouseId)

	if err != nil {
		return "", err
	}

	return head.Get(field).Text(), nil
}

// HouseHead returns the character record heading the house.
func (graph *Graph) HouseHead(houseId Id) (record.Value, error) {
	house := record.Of(graph.Bundle.Houses[houseId])

	if house.IsAbsent() {
		return record.None, Unresolved(RefHouse, houseId, "house not found")
	}

	headId := house.Get("head_of_house").Text()

	if headId == "" {
		return record.None, Unresolved(RefHouse, houseId, "house has no head")
	}

	head := record.Of(graph.Bundle.Characters[headId])

	if head.IsAbsent() {
		return record.None, Unresolved(RefHouse, houseId, "head of house %s not found", headId)
	}

	return head, nil
}

func readSex(id Id, flag record.Value) (Sex, error) {
	if flag.IsAbsent() {
		log.Debugf("character %s has no female flag, reading as male", id)

		return Male, nil
	}

	female, ok := flag.Bool()

	if !ok {
		return Male, Unresolved(RefCharacter, id, "female flag is %s, not a boolean", flag.Kind())
	}

	if female {
		return Female, nil
	}

	return Male, nil
}

func readSkills(values record.Value) []Skill {
	list := make([]Skill, 0, len(SkillNames))

	for i, v := range values.Strings() {
		if i >= len(SkillNames) {
			break
		}

		list = append(list, Skill{
			Name:  SkillNames[i],
			Value: v,
		})
	}

	return list
}

func readTitles(rec record.Value) []Id {
	titles := rec.Get("landed_data", "domain").Strings()

	if len(titles) > 0 {
		return titles
	}

	return rec.Get("dead_data", "domain").Strings()
}
