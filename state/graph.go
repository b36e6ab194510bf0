package state

import (
	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
	"github.com/tliron/commonlog"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var log = commonlog.GetLogger("ck3gramps.state")

// MarriagePrefix starts every marriage and family identifier.
const MarriagePrefix = "m"

// Graph accumulates the family relations of one run. Create a new Graph for
// every run; nothing in it is shared between runs.
type Graph struct {
	Bundle *Bundle

	People  []*Person
	Persons Persons

	// ChildParents maps a child to the parent slots registered for it so far.
	ChildParents *orderedmap.OrderedMap[Id, *Pair]
	// Families is keyed by Pair.Key and filled by GroupFamilies.
	Families  *orderedmap.OrderedMap[string, *Family]
	Childless []*Marriage

	// Members are the ids of the selected houses.
	Members IdSet
	// Known are members plus the non-member children built so far.
	Known IdSet

	PendingChildren *Pending
	PendingSpouses  *Pending

	Ids *Stem

	pairChildren map[Pair]int
	childless    map[Pair]struct{}
	grouped      bool
}

func CreateGraph(bundle *Bundle) *Graph {
	if bundle == nil {
		bundle = CreateBundle()
	}

	return &Graph{
		Bundle:          bundle,
		People:          make([]*Person, 0),
		Persons:         make(Persons),
		ChildParents:    orderedmap.New[Id, *Pair](),
		Families:        orderedmap.New[string, *Family](),
		Childless:       make([]*Marriage, 0),
		Members:         make(IdSet),
		Known:           make(IdSet),
		PendingChildren: CreatePending(),
		PendingSpouses:  CreatePending(),
		Ids:             NewStem(MarriagePrefix),
		pairChildren:    make(map[Pair]int),
		childless:       make(map[Pair]struct{}),
	}
}

func (graph *Graph) add(person *Person) {
	graph.People = append(graph.People, person)
	graph.Persons[person.Id] = person

	switch person.Origin {
	case Member:
		graph.Members.Set(person.Id)
		graph.Known.Set(person.Id)

		for _, child := range person.Children {
			graph.SetParent(child, person)
		}

		graph.PendingSpouses.Add(person.Spouses...)
		graph.PendingChildren.Add(person.Children...)

	case Child:
		graph.Known.Set(person.Id)

	case Spouse:
		for _, child := range person.Children {
			if graph.Known.Has(child) {
				graph.SetParent(child, person)
			}
		}

		graph.RegisterChildless(person)
	}

	log.Debugf("added %s %s with %d children and %d spouses", person.Origin, person.Id, len(person.Children), len(person.Spouses))
}

// SetParent puts parent into the husband or wife slot of child, by the
// parent's sex. The slot pair is created on first use.
func (graph *Graph) SetParent(child Id, parent *Person) {
	slot, exist := graph.ChildParents.Get(child)

	if !exist {
		slot = &Pair{}
		graph.ChildParents.Set(child, slot)
	} else {
		graph.unindexPair(*slot)
	}

	if parent.Sex == Female {
		slot.Wife = parent.Id
	} else {
		slot.Husband = parent.Id
	}

	graph.pairChildren[*slot]++
}

func (graph *Graph) Parents(child Id) (Pair, bool) {
	slot, exist := graph.ChildParents.Get(child)

	if !exist {
		return Pair{}, false
	}

	return *slot, true
}

// HasChildren reports whether any child currently has exactly this pair in
// its parent slots.
func (graph *Graph) HasChildren(pair Pair) bool {
	return graph.pairChildren[pair] > 0
}

func (graph *Graph) IsChildless(pair Pair) bool {
	_, ok := graph.childless[pair]

	return ok
}

// RegisterChildless records the person's marriages to known spouses that have
// no shared child. Pairs are compared exactly, so a pair is only recorded once.
func (graph *Graph) RegisterChildless(person *Person) {
	for _, spouse := range person.Spouses {
		if !graph.Known.Has(spouse) {
			continue
		}

		pair := person.PairWith(spouse)

		if graph.HasChildren(pair) || graph.IsChildless(pair) {
			continue
		}

		graph.childless[pair] = struct{}{}
		graph.Childless = append(graph.Childless, &Marriage{Pair: pair})

		log.Debugf("childless marriage %s", pair.Key())
	}
}

func (graph *Graph) unindexPair(pair Pair) {
	count := graph.pairChildren[pair] - 1

	if count <= 0 {
		delete(graph.pairChildren, pair)
		return
	}

	graph.pairChildren[pair] = count
}
