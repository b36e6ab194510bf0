package types

type Id = string

// Records maps an id string to one raw record as it came out of the save dump.
type Records map[Id]any

// Table is the flat string lookup of the active localization language.
type Table map[string]string

func (table Table) Lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	value, ok := table[key]

	return value, ok
}

// Bundle holds every reference category of a decoded save.
type Bundle struct {
	Titles     Records `json:"landed_titles"`
	Houses     Records `json:"dynasties"`
	Characters Records `json:"characters"`
	Religions  Records `json:"religion"`
	Cultures   Records `json:"culture"`
}

func CreateBundle() *Bundle {
	return &Bundle{
		Titles:     make(Records),
		Houses:     make(Records),
		Characters: make(Records),
		Religions:  make(Records),
		Cultures:   make(Records),
	}
}
