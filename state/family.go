package state

import (
	"iter"

	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
)

type Family struct {
	Id Id
	Pair
	Children []Id
}

// Finalize numbers the accumulated marriages. Childless marriages get the
// lower identifiers, grouped families follow.
func (graph *Graph) Finalize() {
	graph.AssignChildlessIds()
	graph.GroupFamilies()
}

// AssignChildlessIds numbers childless marriages in discovery order. A pair
// that gained a child after it was discovered is dropped first, because
// GroupFamilies will emit it as a family.
func (graph *Graph) AssignChildlessIds() {
	list := make([]*Marriage, 0, len(graph.Childless))

	for _, marriage := range graph.Childless {
		if graph.HasChildren(marriage.Pair) {
			delete(graph.childless, marriage.Pair)
			log.Debugf("marriage %s has children, not childless", marriage.Key())
			continue
		}

		if marriage.Id == "" {
			marriage.Id = graph.Ids.Next()
		}

		list = append(list, marriage)
	}

	graph.Childless = list
}

// GroupFamilies groups children by their parent pair in ChildParents order,
// creating one numbered Family per distinct pair. It runs once per graph.
func (graph *Graph) GroupFamilies() {
	if graph.grouped {
		return
	}

	graph.grouped = true

	for item := graph.ChildParents.Oldest(); item != nil; item = item.Next() {
		pair := *item.Value
		key := pair.Key()

		family, exist := graph.Families.Get(key)

		if !exist {
			family = &Family{
				Id:       graph.Ids.Next(),
				Pair:     pair,
				Children: make([]Id, 0, 1),
			}

			graph.Families.Set(key, family)
		}

		family.Children = append(family.Children, item.Key)
	}

	log.Infof("grouped %d children into %d families, %d childless marriages", graph.ChildParents.Len(), graph.Families.Len(), len(graph.Childless))
}

// Issued is the number of marriage identifiers handed out.
func (graph *Graph) Issued() int {
	return graph.Ids.Issued()
}

func (graph *Graph) FamiliesIter() iter.Seq[*Family] {
	return func(yield func(*Family) bool) {
		for item := graph.Families.Oldest(); item != nil; item = item.Next() {
			if !yield(item.Value) {
				return
			}
		}
	}
}

// Marriages lists childless marriages first, then one marriage per family.
func (graph *Graph) Marriages() []Marriage {
	list := make([]Marriage, 0, len(graph.Childless)+graph.Families.Len())

	for _, marriage := range graph.Childless {
		list = append(list, *marriage)
	}

	for family := range graph.FamiliesIter() {
		list = append(list, Marriage{
			Id:   family.Id,
			Pair: family.Pair,
		})
	}

	return list
}

func (graph *Graph) FamilyRows() []FamilyRow {
	list := make([]FamilyRow, 0, graph.ChildParents.Len())

	for family := range graph.FamiliesIter() {
		for _, child := range family.Children {
			list = append(list, FamilyRow{
				Family: family.Id,
				Child:  child,
			})
		}
	}

	return list
}
