package state

import (
	"slices"
	"testing"

	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
)

func TestPending(t *testing.T) {
	list := []struct {
		Add    [][]Id
		Remove func(Id) bool
		Test   []Id
	}{
		{
			Add:  [][]Id{{"3", "1"}, {"1", "", "2"}},
			Test: []Id{"3", "1", "2"},
		},
		{
			Add:    [][]Id{{"5", "4", "6"}},
			Remove: NewIdSet("4").Has,
			Test:   []Id{"5", "6"},
		},
		{
			Add:    [][]Id{{"7"}},
			Remove: func(Id) bool { return true },
			Test:   []Id{},
		},
	}

	for i, item := range list {
		pending := CreatePending()

		for _, ids := range item.Add {
			pending.Add(ids...)
		}

		if item.Remove != nil {
			pending.RemoveFunc(item.Remove)
		}

		res := pending.List()

		if !slices.Equal(res, item.Test) {
			t.Errorf("%d - got: %v; expect: %v", i, res, item.Test)
		}

		if pending.Len() != len(item.Test) {
			t.Errorf("%d - len got: %d; expect: %d", i, pending.Len(), len(item.Test))
		}
	}
}

func TestCompareIds(t *testing.T) {
	ids := []Id{"b", "10", "2", "a", "1"}

	slices.SortFunc(ids, CompareIds)

	expect := []Id{"1", "2", "10", "a", "b"}

	if !slices.Equal(ids, expect) {
		t.Errorf("got: %v; expect: %v", ids, expect)
	}
}
