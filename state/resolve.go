package state

import (
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/record"
	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
)

// FindRelatedHouses returns the house of the main character plus every cadet
// house whose parent_dynasty_house chain leads back to it.
func FindRelatedHouses(bundle *Bundle, mainId Id) (houses IdSet, err error) {
	main := record.Of(bundle.Characters[mainId])

	if main.IsAbsent() {
		return nil, Unresolved(RefCharacter, mainId, "character not found")
	}

	mainHouse := main.Get("dynasty_house").Text()

	if mainHouse == "" {
		return nil, Unresolved(RefCharacter, mainId, "character has no house")
	}

	houses = NewIdSet(mainHouse)
	parents := make(map[Id]Id, len(bundle.Houses))

	for id, raw := range bundle.Houses {
		if parent := record.Get(raw, "parent_dynasty_house").Text(); parent != "" {
			parents[id] = parent
		}
	}

	for found := true; found; {
		found = false

		for id, parent := range parents {
			if houses.Has(id) || !houses.Has(parent) {
				continue
			}

			houses.Set(id)
			found = true
		}
	}

	log.Infof("main character %s: %d houses selected", mainId, len(houses))

	return
}

// AddMembers builds a member Person for every character of the given houses,
// in CompareIds order.
func (graph *Graph) AddMembers(houses IdSet) (list []*Person, err error) {
	list = make([]*Person, 0)

	for _, id := range SortedIds(graph.Bundle.Characters) {
		raw := graph.Bundle.Characters[id]

		if !houses.Has(record.Get(raw, "dynasty_house").Text()) {
			continue
		}

		person, err := graph.NewPerson(id, raw, Member)

		if err != nil {
			return nil, err
		}

		list = append(list, person)
	}

	log.Infof("%d members, %d pending children, %d pending spouses", len(list), graph.PendingChildren.Len(), graph.PendingSpouses.Len())

	return
}

// DetectChildless runs childless detection for every member. Call it after
// all members exist so every shared child is already registered.
func (graph *Graph) DetectChildless() {
	for _, person := range graph.People {
		if person.Origin == Member {
			graph.RegisterChildless(person)
		}
	}
}

// ResolveRelatives builds the non-member children and spouses collected while
// members were built. A candidate that is also a spouse is built as a spouse.
func (graph *Graph) ResolveRelatives() (list []*Person, err error) {
	children := graph.PendingChildren
	spouses := graph.PendingSpouses

	children.RemoveFunc(graph.Known.Has)
	spouses.RemoveFunc(graph.Known.Has)
	children.RemoveFunc(spouses.Has)

	list = make([]*Person, 0, children.Len()+spouses.Len())

	build := func(pending *Pending, origin Origin) error {
		for id := range pending.Iter() {
			raw, exist := graph.Bundle.Characters[id]

			if !exist {
				log.Warningf("%s %s has no character record, skipped", origin, id)
				continue
			}

			person, err := graph.NewPerson(id, raw, origin)

			if err != nil {
				return err
			}

			list = append(list, person)
		}

		return nil
	}

	if err = build(children, Child); err != nil {
		return nil, err
	}

	if err = build(spouses, Spouse); err != nil {
		return nil, err
	}

	children.Clear()
	spouses.Clear()

	log.Infof("%d relatives from other houses", len(list))

	return
}
