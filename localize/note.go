package localize

import (
	"strings"

	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/i18n"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/state"
)

// NoteLines are the message keys of the note, in output order.
var NoteLines = []string{
	"note_id",
	"note_name",
	"note_house",
	"note_titles",
	"note_birth",
	"note_death",
	"note_cause",
	"note_skills",
	"note_traits",
	"note_recessive",
	"note_faith",
	"note_culture",
	"note_sex",
	"note_sexuality",
}

// Finalize collapses the list attributes, normalizes the dates and composes
// the note.
func Finalize(person *state.Person) {
	person.Birth = Date(person.Birth)
	person.Death = Date(person.Death)

	skills := make([]string, 0, len(person.Skills))

	for _, skill := range person.Skills {
		skills = append(skills, skill.String())
	}

	person.SkillText = strings.Join(skills, listSep)
	person.TraitText = strings.Join(person.Traits, listSep)
	person.RecessiveText = strings.Join(person.RecessiveTraits, listSep)
	person.Note = Note(person)
}

// Date turns 1066.10.14 into 1066-10-14.
func Date(date string) string {
	return strings.ReplaceAll(date, ".", "-")
}

func Note(person *state.Person) string {
	values := []string{
		person.Id,
		person.Name,
		person.Surname,
		person.Title,
		person.Birth,
		person.Death,
		person.DeathReason,
		person.SkillText,
		person.TraitText,
		person.RecessiveText,
		person.Faith,
		person.Culture,
		person.Sex.String(),
		person.Orientation,
	}

	var b strings.Builder

	for i, key := range NoteLines {
		b.WriteString(i18n.L(key))
		b.WriteString(": ")
		b.WriteString(values[i])
		b.WriteByte('\n')
	}

	return b.String()
}
