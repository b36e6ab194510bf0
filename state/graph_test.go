package state

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBundle(t *testing.T, text string) *Bundle {
	t.Helper()

	bundle := CreateBundle()

	require.NoError(t, json.Unmarshal([]byte(text), bundle))

	return bundle
}

func buildGraph(t *testing.T, bundle *Bundle, mainId Id) *Graph {
	t.Helper()

	graph := CreateGraph(bundle)

	houses, err := FindRelatedHouses(bundle, mainId)
	require.NoError(t, err)

	_, err = graph.AddMembers(houses)
	require.NoError(t, err)

	graph.DetectChildless()

	_, err = graph.ResolveRelatives()
	require.NoError(t, err)

	graph.Finalize()

	return graph
}

const familyBundle = `{
	"dynasties": {"10": {"head_of_house": 1, "key": "house_york"}},
	"characters": {
		"1": {"first_name": "A", "dynasty_house": 10, "faith": 5, "culture": 6, "family_data": {"child": [3]}},
		"2": {"first_name": "B", "dynasty_house": 10, "female": true, "family_data": {"child": [3]}},
		"3": {"first_name": "C", "dynasty_house": 10}
	}
}`

func TestFamilyFromBothParents(t *testing.T) {
	graph := buildGraph(t, createTestBundle(t, familyBundle), "1")

	assert.Equal(t, []Marriage{{Id: "m1", Pair: Pair{Husband: "1", Wife: "2"}}}, graph.Marriages())
	assert.Equal(t, []FamilyRow{{Family: "m1", Child: "3"}}, graph.FamilyRows())
	assert.Empty(t, graph.Childless)
	assert.Equal(t, 1, graph.Issued())
}

func TestChildlessMembers(t *testing.T) {
	bundle := createTestBundle(t, `{
		"dynasties": {"10": {"head_of_house": 1}},
		"characters": {
			"1": {"dynasty_house": 10, "faith": 5, "culture": 6, "family_data": {"spouse": 2}},
			"2": {"dynasty_house": 10, "female": true, "family_data": {"spouse": 1}}
		}
	}`)

	graph := buildGraph(t, bundle, "1")

	assert.Equal(t, []Marriage{{Id: "m1", Pair: Pair{Husband: "1", Wife: "2"}}}, graph.Marriages())
	assert.Empty(t, graph.FamilyRows())
	assert.Equal(t, 1, graph.Issued())
}

func TestParentSlots(t *testing.T) {
	graph := CreateGraph(createTestBundle(t, familyBundle))

	_, err := graph.NewPerson("1", graph.Bundle.Characters["1"], Member)
	require.NoError(t, err)

	pair, ok := graph.Parents("3")
	require.True(t, ok)
	assert.Equal(t, Pair{Husband: "1"}, pair)
	assert.Equal(t, "1 None", pair.Key())

	_, err = graph.NewPerson("2", graph.Bundle.Characters["2"], Member)
	require.NoError(t, err)

	pair, _ = graph.Parents("3")
	assert.Equal(t, Pair{Husband: "1", Wife: "2"}, pair)
	assert.True(t, graph.HasChildren(pair))
	assert.False(t, graph.HasChildren(Pair{Husband: "1"}))
}

func TestFaithFromHouseHead(t *testing.T) {
	graph := CreateGraph(createTestBundle(t, familyBundle))

	person, err := graph.NewPerson("2", graph.Bundle.Characters["2"], Member)
	require.NoError(t, err)

	assert.Equal(t, "5", person.FaithId)
	assert.Equal(t, "6", person.CultureId)
	assert.Equal(t, Female, person.Sex)
	assert.Equal(t, "he", person.Orientation)
}

func TestUnresolvedHouse(t *testing.T) {
	list := []struct {
		Name string
		Json string
		Id   Id
		Kind string
	}{
		{
			Name: "missing house",
			Json: `{"characters": {"1": {"dynasty_house": 99}}}`,
			Id:   "99",
			Kind: RefHouse,
		},
		{
			Name: "house without head",
			Json: `{"dynasties": {"99": {}}, "characters": {"1": {"dynasty_house": 99}}}`,
			Id:   "99",
			Kind: RefHouse,
		},
		{
			Name: "head not found",
			Json: `{"dynasties": {"99": {"head_of_house": 7}}, "characters": {"1": {"dynasty_house": 99, "faith": 1}}}`,
			Id:   "99",
			Kind: RefHouse,
		},
		{
			Name: "sex is not a flag",
			Json: `{"characters": {"1": {"female": "yes", "faith": 1, "culture": 1}}}`,
			Id:   "1",
			Kind: RefCharacter,
		},
	}

	for _, item := range list {
		t.Run(item.Name, func(t *testing.T) {
			graph := CreateGraph(createTestBundle(t, item.Json))

			_, err := graph.NewPerson("1", graph.Bundle.Characters["1"], Member)

			var resErr *ResolutionError
			require.True(t, errors.As(err, &resErr), "got: %v", err)
			assert.ErrorIs(t, err, ErrUnresolved)
			assert.Equal(t, item.Id, resErr.Id)
			assert.Equal(t, item.Kind, resErr.Kind)
			assert.Empty(t, graph.People)
		})
	}
}

func TestSkills(t *testing.T) {
	list := []struct {
		Json   string
		Expect []string
	}{
		{`[5, 8, 3, 12]`, []string{"DIP 5", "STE 8", "MAR 3", "INT 12"}},
		{`[1, 2, 3, 4, 5, 6]`, []string{"DIP 1", "STE 2", "MAR 3", "INT 4", "LEA 5", "PRO 6"}},
		{`null`, []string{}},
	}

	for i, item := range list {
		graph := CreateGraph(createTestBundle(t, `{"characters": {"1": {"faith": 1, "culture": 1, "skill": `+item.Json+`}}}`))

		person, err := graph.NewPerson("1", graph.Bundle.Characters["1"], Member)
		require.NoError(t, err)

		got := make([]string, 0)

		for _, skill := range person.Skills {
			got = append(got, skill.String())
		}

		if !assert.Equal(t, item.Expect, got) {
			t.Errorf("%d - skills: %s", i, spew.Sdump(person.Skills))
		}
	}
}

func TestOutsideSpouseCompletesFamily(t *testing.T) {
	bundle := createTestBundle(t, `{
		"dynasties": {"10": {"head_of_house": 1}, "20": {"head_of_house": 4}},
		"characters": {
			"1": {"dynasty_house": 10, "faith": 5, "culture": 6, "family_data": {"child": [3], "spouse": 4}},
			"3": {"dynasty_house": 10},
			"4": {"dynasty_house": 20, "female": true, "faith": 7, "culture": 8, "family_data": {"child": [3], "spouse": 1}}
		}
	}`)

	graph := buildGraph(t, bundle, "1")

	spouse := graph.Persons["4"]
	require.NotNil(t, spouse)
	assert.Equal(t, Spouse, spouse.Origin)
	assert.False(t, graph.Members.Has("4"))

	assert.Equal(t, []Marriage{{Id: "m1", Pair: Pair{Husband: "1", Wife: "4"}}}, graph.Marriages())
	assert.Equal(t, []FamilyRow{{Family: "m1", Child: "3"}}, graph.FamilyRows())
}

func TestOutsideChildAndChildlessSpouse(t *testing.T) {
	bundle := createTestBundle(t, `{
		"dynasties": {"10": {"head_of_house": 1}, "20": {"head_of_house": 5}},
		"characters": {
			"1": {"dynasty_house": 10, "faith": 5, "culture": 6, "family_data": {"child": [5], "spouse": [4]}},
			"4": {"dynasty_house": 20, "female": true, "faith": 7, "culture": 8, "family_data": {"spouse": 1}},
			"5": {"dynasty_house": 20, "faith": 7, "culture": 8}
		}
	}`)

	graph := buildGraph(t, bundle, "1")

	assert.Equal(t, Child, graph.Persons["5"].Origin)
	assert.Equal(t, Spouse, graph.Persons["4"].Origin)
	assert.True(t, graph.Known.Has("5"))
	assert.False(t, graph.Known.Has("4"))

	// 5 is only on the father's list
	assert.Equal(t, []Marriage{
		{Id: "m1", Pair: Pair{Husband: "1", Wife: "4"}},
		{Id: "m2", Pair: Pair{Husband: "1"}},
	}, graph.Marriages())
	assert.Equal(t, []FamilyRow{{Family: "m2", Child: "5"}}, graph.FamilyRows())
}

func TestSpouseTakesPrecedence(t *testing.T) {
	bundle := createTestBundle(t, `{
		"characters": {
			"1": {"dynasty_house": 10, "faith": 5, "culture": 6, "family_data": {"child": [4], "spouse": [4]}},
			"4": {"female": true, "faith": 7, "culture": 8}
		},
		"dynasties": {"10": {"head_of_house": 1}}
	}`)

	graph := buildGraph(t, bundle, "1")

	assert.Equal(t, Spouse, graph.Persons["4"].Origin)
	assert.Len(t, graph.People, 2)
}

func TestMissingRelativeSkipped(t *testing.T) {
	bundle := createTestBundle(t, `{
		"dynasties": {"10": {"head_of_house": 1}},
		"characters": {
			"1": {"dynasty_house": 10, "faith": 5, "culture": 6, "family_data": {"child": [404], "spouse": 405}}
		}
	}`)

	graph := buildGraph(t, bundle, "1")

	assert.Len(t, graph.People, 1)
	assert.Equal(t, []FamilyRow{{Family: "m1", Child: "404"}}, graph.FamilyRows())
}

func TestChildlessPrunedWhenChildAppears(t *testing.T) {
	bundle := createTestBundle(t, `{
		"dynasties": {"10": {"head_of_house": 1}},
		"characters": {
			"1": {"dynasty_house": 10, "faith": 5, "culture": 6, "family_data": {"spouse": 2}},
			"2": {"dynasty_house": 10, "female": true, "family_data": {"spouse": 1}}
		}
	}`)

	graph := CreateGraph(bundle)

	_, err := graph.AddMembers(NewIdSet("10"))
	require.NoError(t, err)

	graph.DetectChildless()
	require.Len(t, graph.Childless, 1)

	graph.SetParent("9", graph.Persons["1"])
	graph.SetParent("9", graph.Persons["2"])
	graph.Finalize()

	assert.Empty(t, graph.Childless)
	assert.Equal(t, []Marriage{{Id: "m1", Pair: Pair{Husband: "1", Wife: "2"}}}, graph.Marriages())
	assert.Equal(t, 1, graph.Issued())
}

func TestMarriageInvariants(t *testing.T) {
	bundle := createTestBundle(t, `{
		"dynasties": {"10": {"head_of_house": 1}, "11": {"head_of_house": 6, "parent_dynasty_house": 10}},
		"characters": {
			"1": {"dynasty_house": 10, "faith": 5, "culture": 6, "family_data": {"child": [3, 6], "spouse": [2, 8]}},
			"2": {"dynasty_house": 10, "female": true, "family_data": {"child": [3], "spouse": 1}},
			"3": {"dynasty_house": 10, "family_data": {"spouse": [7]}},
			"6": {"dynasty_house": 11, "faith": 5, "culture": 6, "family_data": {"child": [12], "spouse": [9]}},
			"7": {"female": true, "faith": 1, "culture": 1, "family_data": {"spouse": 3}},
			"8": {"female": true, "faith": 1, "culture": 1, "family_data": {"child": [6], "spouse": 1}},
			"9": {"female": true, "faith": 1, "culture": 1, "family_data": {"spouse": 6}},
			"12": {"dynasty_house": 11}
		}
	}`)

	graph := buildGraph(t, bundle, "1")

	marriages := graph.Marriages()
	ids := make(IdSet)
	pairs := make(map[Pair]struct{})

	for _, marriage := range marriages {
		assert.False(t, ids.Has(marriage.Id), "duplicate id %s", marriage.Id)
		ids.Set(marriage.Id)

		_, dup := pairs[marriage.Pair]
		assert.False(t, dup, "duplicate pair %s", marriage.Key())
		pairs[marriage.Pair] = struct{}{}

		for _, parent := range []Id{marriage.Husband, marriage.Wife} {
			if parent != "" {
				assert.Contains(t, graph.Persons, parent)
			}
		}
	}

	assert.Equal(t, len(marriages), graph.Issued())

	seen := make(IdSet)

	for _, row := range graph.FamilyRows() {
		assert.False(t, seen.Has(row.Child), "child %s listed twice", row.Child)
		seen.Set(row.Child)
	}

	if t.Failed() {
		t.Log(spew.Sdump(marriages))
	}

	again := buildGraph(t, bundle, "1")

	assert.Equal(t, marriages, again.Marriages())
	assert.Equal(t, graph.FamilyRows(), again.FamilyRows())
}

func TestFindRelatedHouses(t *testing.T) {
	bundle := createTestBundle(t, `{
		"dynasties": {
			"1": {},
			"2": {"parent_dynasty_house": 1},
			"3": {"parent_dynasty_house": 2},
			"4": {"parent_dynasty_house": 9}
		},
		"characters": {"100": {"dynasty_house": 1}, "101": {}}
	}`)

	houses, err := FindRelatedHouses(bundle, "100")
	require.NoError(t, err)
	assert.Equal(t, []Id{"1", "2", "3"}, houses.Sorted())

	_, err = FindRelatedHouses(bundle, "101")
	assert.ErrorIs(t, err, ErrUnresolved)

	_, err = FindRelatedHouses(bundle, "404")
	assert.ErrorIs(t, err, ErrUnresolved)
}
