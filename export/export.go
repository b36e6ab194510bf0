package export

import (
	"encoding/csv"
	"io"

	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/state"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ck3gramps.export")

// BOM starts the file so spreadsheet tools read it as UTF-8.
const BOM = "\ufeff"

// PadWidth is the number of empty cells in the row between blocks.
const PadWidth = 8

var (
	PersonHeader   = []string{"person", "surname", "given", "gender", "birth date", "death date", "title", "note"}
	MarriageHeader = []string{"marriage", "husband", "wife"}
	FamilyHeader   = []string{"family", "child"}
)

// Tables is everything one export writes.
type Tables struct {
	People    []*state.Person
	Marriages []state.Marriage
	Families  []state.FamilyRow
}

// TablesOf collects the rows of a finalized graph.
func TablesOf(graph *state.Graph) Tables {
	return Tables{
		People:    graph.People,
		Marriages: graph.Marriages(),
		Families:  graph.FamilyRows(),
	}
}

// Write serializes the people, marriages and families blocks, separated by a
// padding row.
func Write(out io.Writer, tables Tables) (err error) {
	if _, err = io.WriteString(out, BOM); err != nil {
		return
	}

	w := csv.NewWriter(out)
	w.UseCRLF = true
	pad := make([]string, PadWidth)

	rows := make([][]string, 0, len(tables.People)+len(tables.Marriages)+len(tables.Families)+5)
	rows = append(rows, PersonHeader)

	for _, person := range tables.People {
		rows = append(rows, PersonRow(person))
	}

	rows = append(rows, pad, MarriageHeader)

	for _, marriage := range tables.Marriages {
		rows = append(rows, []string{marriage.Id, marriage.Husband, marriage.Wife})
	}

	rows = append(rows, pad, FamilyHeader)

	for _, row := range tables.Families {
		rows = append(rows, []string{row.Family, row.Child})
	}

	if err = w.WriteAll(rows); err != nil {
		return
	}

	log.Infof("wrote %d people, %d marriages, %d family rows", len(tables.People), len(tables.Marriages), len(tables.Families))

	return
}

func PersonRow(person *state.Person) []string {
	return []string{
		person.Id,
		person.Surname,
		person.Name,
		person.Sex.String(),
		person.Birth,
		person.Death,
		person.Title,
		person.Note,
	}
}
