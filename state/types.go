package state

import (
	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
)

type Sex uint8

const (
	Male Sex = iota
	Female
)

func (sex Sex) String() string {
	if sex == Female {
		return "Female"
	}

	return "Male"
}

// Origin tells how a person entered the export.
type Origin uint8

const (
	// Member belongs to one of the selected houses.
	Member Origin = iota
	// Child is a member's child from another house.
	Child
	// Spouse is a member's partner from another house.
	Spouse
)

func (origin Origin) String() string {
	switch origin {
	case Child:
		return "child"
	case Spouse:
		return "spouse"
	default:
		return "member"
	}
}

// NoParent stands in for an empty parent slot inside pair keys.
const NoParent = "None"

// Pair is a husband and wife slot couple. Either side may be empty.
type Pair struct {
	Husband Id
	Wife    Id
}

func (pair Pair) Key() string {
	return slotKey(pair.Husband) + " " + slotKey(pair.Wife)
}

type Marriage struct {
	Id Id
	Pair
}

type FamilyRow struct {
	Family Id
	Child  Id
}

type Skill struct {
	Name  string
	Value string
}

func (skill Skill) String() string {
	return skill.Name + " " + skill.Value
}

type Persons map[Id]*Person
