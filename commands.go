package main

import (
	"fmt"

	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/config"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/convert"
	"github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

type rootOptions struct {
	configPath string
	verbose    int
	logFile    string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:           "ck3gramps",
		Short:         "Export a Crusader Kings III family tree as Gramps CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string

			if opts.logFile != "" {
				path = &opts.logFile
			}

			commonlog.Configure(opts.verbose, path)
			config.LoadEnv()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Log more, repeat for debug output")
	flags.StringVar(&opts.logFile, "log-file", "", "Write the log to a file instead of stderr")

	root.AddCommand(newConvertCmd(&opts), newLocalizationCmd(&opts))

	return root
}

// pathFlags are shared by every command that touches game files.
func pathFlags(flags *pflag.FlagSet) {
	flags.String("game-dir", "", "Crusader Kings III install directory")
	flags.String("resource-dir", "", "Directory holding traits.txt and the localization cache")
	flags.String("language", "", "Localization language, e.g. english")
}

var flagKeys = map[string]string{
	"game-dir":     "game_dir",
	"resource-dir": "resource_dir",
	"language":     "language",
	"json":         "json_path",
	"main-id":      "main_id",
	"output":       "output",
}

// loadConfig reads the config file and applies the flags set on the command
// line on top of it.
func loadConfig(opts *rootOptions, flags *pflag.FlagSet) (cfg *config.Config, err error) {
	cfg, err = config.Load(opts.configPath)

	if err != nil {
		return
	}

	changed := map[string]any{}

	flags.Visit(func(flag *pflag.Flag) {
		if key, ok := flagKeys[flag.Name]; ok {
			changed[key] = flag.Value.String()
		}
	})

	if len(changed) == 0 {
		return
	}

	merged := map[string]any{
		"game_dir":     cfg.GameDir,
		"json_path":    cfg.JsonPath,
		"resource_dir": cfg.ResourceDir,
		"language":     cfg.Language,
		"output":       cfg.Output,
		"main_id":      cfg.MainId,
	}

	for key, value := range changed {
		merged[key] = value
	}

	return config.Decode(merged)
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a decoded save into a Gramps CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root, cmd.Flags())

			if err != nil {
				return err
			}

			res, err := convert.Files(cmd.Context(), cfg)

			if err != nil {
				return err
			}

			if save {
				if err = cfg.Save(root.configPath); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d members, %d relatives, %d marriages written to %s\n", res.RunId, res.Members, res.Relatives, res.Marriages, cfg.Output)

			return nil
		},
	}

	flags := cmd.Flags()
	pathFlags(flags)
	flags.String("json", "", "Decoded save JSON")
	flags.String("main-id", "", "Character whose house and cadet houses are exported")
	flags.StringP("output", "o", "", "CSV destination, a path or s3://bucket/key")
	flags.BoolVar(&save, "save-config", false, "Store the resulting settings in the config file")

	return cmd
}

func newLocalizationCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "localization",
		Short: "Build the localization cache from the game files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root, cmd.Flags())

			if err != nil {
				return err
			}

			loc := convert.Localization(cfg, force)
			table, err := loader.LoadTable(loc)

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d strings in %s\n", len(table), loc.CachePath())

			return nil
		},
	}

	flags := cmd.Flags()
	pathFlags(flags)
	flags.BoolVarP(&force, "force", "f", false, "Rebuild even when the cache exists")

	return cmd
}
