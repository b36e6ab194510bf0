package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/config"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/i18n"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/loader"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/storage"
)

var ErrMissingOption = errors.New("missing option")

func Localization(cfg *config.Config, force bool) loader.Localization {
	return loader.Localization{
		GameDir:     cfg.GameDir,
		ResourceDir: cfg.ResourceDir,
		Language:    cfg.Language,
		Force:       force,
	}
}

// Files loads the decoded save and the string table named by cfg, runs the
// conversion and stores the CSV at cfg.Output.
func Files(ctx context.Context, cfg *config.Config) (res Result, err error) {
	required := []struct {
		Name  string
		Value string
	}{
		{"json path", cfg.JsonPath},
		{"main id", cfg.MainId},
		{"output", cfg.Output},
	}

	for _, item := range required {
		if item.Value == "" {
			return res, fmt.Errorf("%w: %s", ErrMissingOption, item.Name)
		}
	}

	i18n.SetLanguage(cfg.Language)

	bundle, table, err := loader.LoadAll(cfg.JsonPath, Localization(cfg, false))

	if err != nil {
		return
	}

	var buf bytes.Buffer

	res, err = Run(Params{
		MainId: cfg.MainId,
		Bundle: bundle,
		Table:  table,
	}, &buf)

	if err != nil {
		return
	}

	err = storage.Write(ctx, cfg.Output, buf.Bytes())

	return
}
