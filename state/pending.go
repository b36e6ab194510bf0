package state

import (
	"iter"

	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pending collects relative ids seen while members are built. They are
// resolved into persons later, in the order they were first added.
type Pending struct {
	ids *orderedmap.OrderedMap[Id, struct{}]
}

func CreatePending() *Pending {
	return &Pending{
		ids: orderedmap.New[Id, struct{}](),
	}
}

func (pending *Pending) Add(ids ...Id) {
	for _, id := range ids {
		if id == "" || pending.Has(id) {
			continue
		}

		pending.ids.Set(id, struct{}{})
	}
}

func (pending *Pending) Has(id Id) bool {
	_, has := pending.ids.Get(id)

	return has
}

func (pending *Pending) Remove(id Id) {
	pending.ids.Delete(id)
}

func (pending *Pending) RemoveFunc(del func(Id) bool) {
	list := make([]Id, 0)

	for id := range pending.Iter() {
		if del(id) {
			list = append(list, id)
		}
	}

	for _, id := range list {
		pending.Remove(id)
	}
}

func (pending *Pending) Len() int {
	return pending.ids.Len()
}

func (pending *Pending) Clear() {
	pending.ids = orderedmap.New[Id, struct{}]()
}

func (pending *Pending) List() []Id {
	list := make([]Id, 0, pending.Len())

	for id := range pending.Iter() {
		list = append(list, id)
	}

	return list
}

func (pending *Pending) Iter() iter.Seq[Id] {
	return func(yield func(Id) bool) {
		for pair := pending.ids.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}
