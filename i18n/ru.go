package i18n

var RU = Messages{
	"note_id":        "ID",
	"note_name":      "Имя",
	"note_house":     "Дом",
	"note_titles":    "Титулы",
	"note_birth":     "Рождение",
	"note_death":     "Смерть",
	"note_cause":     "Причина смерти",
	"note_skills":    "Навыки",
	"note_traits":    "Черты",
	"note_recessive": "Рецессивные черты",
	"note_faith":     "Вера",
	"note_culture":   "Культура",
	"note_sex":       "Пол",
	"note_sexuality": "Ориентация",
	"progress":       "Обработано персонажей: %d из %d",
}
