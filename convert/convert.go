package convert

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/export"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/i18n"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/localize"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/state"
	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ck3gramps.convert")

var ProgressInterval = 500 * time.Millisecond

type Params struct {
	MainId Id
	Bundle *Bundle
	Table  Table

	// Progress receives the processed count at most once per
	// ProgressInterval and always for the last person. Defaults to logging.
	Progress func(done, total int)
}

type Result struct {
	RunId     string
	Members   int
	Relatives int
	Marriages int
	Families  int
}

// Run builds the family graph for the lineage of MainId and writes the CSV to
// out. Nothing is written when any phase fails.
func Run(params Params, out io.Writer) (res Result, err error) {
	res.RunId, err = gonanoid.New()

	if err != nil {
		return
	}

	graph := state.CreateGraph(params.Bundle)

	houses, err := state.FindRelatedHouses(graph.Bundle, params.MainId)

	if err != nil {
		return res, fmt.Errorf("run %s: %w", res.RunId, err)
	}

	members, err := graph.AddMembers(houses)

	if err != nil {
		return res, fmt.Errorf("run %s: members: %w", res.RunId, err)
	}

	graph.DetectChildless()

	relatives, err := graph.ResolveRelatives()

	if err != nil {
		return res, fmt.Errorf("run %s: relatives: %w", res.RunId, err)
	}

	graph.Finalize()

	if err = localizeAll(graph, params.Table, params.Progress); err != nil {
		return res, fmt.Errorf("run %s: localize: %w", res.RunId, err)
	}

	tables := export.TablesOf(graph)

	var buf bytes.Buffer

	if err = export.Write(&buf, tables); err != nil {
		return res, fmt.Errorf("run %s: export: %w", res.RunId, err)
	}

	if _, err = buf.WriteTo(out); err != nil {
		return res, fmt.Errorf("run %s: write: %w", res.RunId, err)
	}

	res.Members = len(members)
	res.Relatives = len(relatives)
	res.Marriages = len(tables.Marriages)
	res.Families = graph.Families.Len()

	log.Infof("run %s done: %d members, %d relatives, %d marriages", res.RunId, res.Members, res.Relatives, res.Marriages)

	return
}

func logProgress(done, total int) {
	log.Infof("%s", i18n.L("progress", done, total))
}

func localizeAll(graph *state.Graph, table Table, progress func(done, total int)) error {
	if progress == nil {
		progress = logProgress
	}

	loc := localize.CreateLocalizer(graph.Bundle, table)
	total := len(graph.People)
	last := time.Now()

	for i, person := range graph.People {
		if err := loc.Localize(person); err != nil {
			return err
		}

		done := i + 1

		if done == total || time.Since(last) >= ProgressInterval {
			progress(done, total)
			last = time.Now()
		}
	}

	return nil
}
