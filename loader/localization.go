package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	. "github.com/blastentwice/CK3-Family-Tree-Exporter-To-Gramps/types"
	"gopkg.in/yaml.v3"
)

const (
	CacheName  = "loc_data.yml"
	TraitsName = "traits.txt"
)

var (
	ErrNoLocalization = errors.New("localization folder not found")
	ErrMissingFiles   = errors.New("localization files not found")
)

// Localization says where the string table comes from.
type Localization struct {
	GameDir     string
	ResourceDir string
	Language    string
	// Force rebuilds the table even when a cache exists.
	Force bool
}

func (loc Localization) CachePath() string {
	return filepath.Join(loc.ResourceDir, CacheName)
}

func (loc Localization) TraitsPath() string {
	return filepath.Join(loc.ResourceDir, TraitsName)
}

// LoadTable reads the cached table, or builds it from the game files and
// writes the cache.
func LoadTable(loc Localization) (table Table, err error) {
	if !loc.Force {
		table, err = ReadCache(loc.CachePath())

		if err == nil {
			log.Infof("localization cache %s loaded, %d strings", loc.CachePath(), len(table))
			return
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	table, err = BuildTable(loc)

	if err != nil {
		return nil, err
	}

	err = WriteCache(loc.CachePath(), table)

	return
}

// BuildTable cleans and merges every localization file of the language plus
// the bundled traits file. Later files win on duplicate keys.
func BuildTable(loc Localization) (table Table, err error) {
	files, err := LocalizationFiles(loc.GameDir, loc.Language)

	if err != nil {
		return
	}

	table = make(Table)

	for _, path := range files {
		text, err := readText(path)

		if err != nil {
			return nil, err
		}

		cleaned := CleanLocalization(text)

		if cleaned == "" {
			log.Debugf("nothing to read in %s", path)
			continue
		}

		parseInto(path, cleaned, table)
		log.Debugf("processed %s", path)
	}

	traits, err := readText(loc.TraitsPath())

	switch {
	case err == nil:
		parseInto(loc.TraitsPath(), traits, table)
	case errors.Is(err, fs.ErrNotExist):
		log.Warningf("%s not found, traits stay unnamed", loc.TraitsPath())
	default:
		return nil, err
	}

	log.Infof("localization built from %d files, %d strings", len(files), len(table))

	return table, nil
}

// LocalizationFiles lists the files read for a language: names, dynasties,
// cultures, titles and everything under religion/.
func LocalizationFiles(gameDir string, language string) (files []string, err error) {
	folder := filepath.Join(gameDir, "game", "localization", language)

	if info, statErr := os.Stat(folder); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoLocalization, folder)
	}

	files = []string{
		filepath.Join(folder, "names", "character_names_l_"+language+".yml"),
		filepath.Join(folder, "dynasties", "dynasty_names_l_"+language+".yml"),
		filepath.Join(folder, "culture", "cultures_l_"+language+".yml"),
		filepath.Join(folder, "titles_l_"+language+".yml"),
	}

	err = filepath.Walk(filepath.Join(folder, "religion"), func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		files = append(files, path)

		return nil
	})

	if err != nil {
		return nil, err
	}

	missing := make([]string, 0)

	for _, path := range files {
		if info, statErr := os.Stat(path); statErr != nil || info.IsDir() {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFiles, strings.Join(missing, ", "))
	}

	return
}

// CleanLocalization rewrites game localization text into plain YAML lines of
// the form `key: "value"`. Headers, comments and upper case keys are dropped;
// inside values # becomes | and : becomes -.
func CleanLocalization(text string) string {
	var b strings.Builder

	for _, line := range strings.Split(string(trimBOM([]byte(text))), "\n") {
		line = strings.TrimSpace(line)

		if line == "" || line[0] == '#' {
			continue
		}

		key, value, found := strings.Cut(line, `"`)

		if !found || isUpper(key) {
			continue
		}

		key, _, _ = strings.Cut(key, ":")
		value, _, _ = strings.Cut(value, `"`)
		value = strings.ReplaceAll(value, "#", "|")
		value = strings.ReplaceAll(value, ":", "-")

		b.WriteString(strings.TrimSpace(key))
		b.WriteString(`: "`)
		b.WriteString(value)
		b.WriteString("\"\n")
	}

	return b.String()
}

// ParseEntries reads a flat YAML mapping into table. Duplicate keys are
// allowed, the last one wins.
func ParseEntries(text string, table Table) error {
	var doc yaml.Node

	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return err
	}

	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]

	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		table[root.Content[i].Value] = root.Content[i+1].Value
	}

	return nil
}

// parseInto parses a whole file and falls back to single lines when the
// file does not parse, skipping the unreadable ones.
func parseInto(path string, text string, table Table) {
	err := ParseEntries(text, table)

	if err == nil {
		return
	}

	log.Debugf("%s: %s, reading line by line", path, err.Error())

	skipped := 0

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if ParseEntries(line, table) != nil {
			skipped++
		}
	}

	if skipped > 0 {
		log.Warningf("%s: %d unreadable lines skipped", path, skipped)
	}
}

func ReadCache(path string) (table Table, err error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return
	}

	table = make(Table)

	if err = json.Unmarshal(trimBOM(data), &table); err != nil {
		return nil, fmt.Errorf("localization cache %s: %w", path, err)
	}

	return
}

func WriteCache(path string, table Table) error {
	data, err := json.Marshal(table)

	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	log.Infof("localization cache written to %s", path)

	return nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	return string(trimBOM(data)), nil
}

func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}
