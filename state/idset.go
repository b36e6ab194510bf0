package state

import (
	"slices"

	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
)

type IdSet map[Id]struct{}

func NewIdSet(ids ...Id) IdSet {
	set := make(IdSet, len(ids))

	for _, id := range ids {
		set.Set(id)
	}

	return set
}

func (ids IdSet) Set(id Id) {
	ids[id] = struct{}{}
}

func (ids IdSet) Has(id Id) bool {
	_, ok := ids[id]
	return ok
}

// Sorted lists the set in CompareIds order.
func (ids IdSet) Sorted() []Id {
	list := make([]Id, 0, len(ids))

	for id := range ids {
		list = append(list, id)
	}

	slices.SortFunc(list, CompareIds)

	return list
}
