package i18n

var EN = Messages{
	"note_id":        "ID",
	"note_name":      "Name",
	"note_house":     "House",
	"note_titles":    "Titles",
	"note_birth":     "Birth",
	"note_death":     "Death",
	"note_cause":     "Cause of Death",
	"note_skills":    "Skills",
	"note_traits":    "Traits",
	"note_recessive": "Recessive Traits",
	"note_faith":     "Faith",
	"note_culture":   "Culture",
	"note_sex":       "Sex",
	"note_sexuality": "Orientation",
	"progress":       "%d/%d characters processed",
}
