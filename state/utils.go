package state

import (
	"slices"
	"strconv"

	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/record"
	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
)

// CompareIds orders numeric ids by value and puts them before any other id.
func CompareIds(a Id, b Id) int {
	an, aErr := strconv.ParseInt(a, 10, 64)
	bn, bErr := strconv.ParseInt(b, 10, 64)

	switch {
	case aErr == nil && bErr == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}

		return 0
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}

	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

func SortedIds(records Records) []Id {
	list := make([]Id, 0, len(records))

	for id := range records {
		list = append(list, id)
	}

	slices.SortFunc(list, CompareIds)

	return list
}

// uniqIds renders values and drops blanks and repeats, keeping first-seen
// order.
func uniqIds(values []record.Value) []Id {
	seen := make(map[Id]struct{}, len(values))
	list := make([]Id, 0, len(values))

	for _, v := range values {
		id := v.Text()

		if id == "" {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		list = append(list, id)
	}

	return list
}

func slotKey(id Id) string {
	if id == "" {
		return NoParent
	}

	return id
}
