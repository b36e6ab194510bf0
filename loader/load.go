package loader

import (
	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
	"golang.org/x/sync/errgroup"
)

// LoadAll reads the save bundle and the string table side by side.
func LoadAll(jsonPath string, loc Localization) (bundle *Bundle, table Table, err error) {
	var g errgroup.Group

	g.Go(func() (err error) {
		bundle, err = LoadBundle(jsonPath)
		return
	})

	g.Go(func() (err error) {
		table, err = LoadTable(loc)
		return
	})

	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return
}
