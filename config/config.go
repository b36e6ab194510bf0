package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

var log = commonlog.GetLogger("ck3gramps.config")

const (
	DefaultPath        = "config.yaml"
	DefaultResourceDir = "./resources"
	DefaultLanguage    = "english"
)

type Config struct {
	GameDir     string `yaml:"game_dir" mapstructure:"game_dir"`
	JsonPath    string `yaml:"json_path" mapstructure:"json_path"`
	ResourceDir string `yaml:"resource_dir" mapstructure:"resource_dir"`
	Language    string `yaml:"language" mapstructure:"language"`
	Output      string `yaml:"output" mapstructure:"output"`
	MainId      string `yaml:"main_id" mapstructure:"main_id"`
}

// EnvKeys maps environment variables to config keys. They override the file.
var EnvKeys = map[string]string{
	"CK3_GAME_DIR":     "game_dir",
	"CK3_JSON_PATH":    "json_path",
	"CK3_RESOURCE_DIR": "resource_dir",
	"CK3_LANGUAGE":     "language",
	"CK3_OUTPUT":       "output",
	"CK3_MAIN_ID":      "main_id",
}

func Defaults() map[string]any {
	return map[string]any{
		"resource_dir": DefaultResourceDir,
		"language":     DefaultLanguage,
	}
}

// LoadEnv reads .env from the working directory when there is one.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file, using the process environment")
	}
}

// Load merges defaults, the YAML file at path (when it exists) and the
// environment, in that order.
func Load(path string) (cfg *Config, err error) {
	raw := Defaults()

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		file := make(map[string]any)

		if err = yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}

		for key, value := range file {
			if value != nil {
				raw[key] = value
			}
		}

	case errors.Is(err, fs.ErrNotExist):
		log.Debugf("config %s not found, using defaults", path)

	default:
		return nil, err
	}

	for env, key := range EnvKeys {
		if value, exist := os.LookupEnv(env); exist && value != "" {
			raw[key] = value
		}
	}

	return Decode(raw)
}

// Decode turns a loose map into a Config. Numbers are accepted for string
// fields, so main_id may be written unquoted.
func Decode(src any) (cfg *Config, err error) {
	cfg = &Config{}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})

	if err != nil {
		return nil, err
	}

	if err = dec.Decode(src); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return
}

// Save writes the config back so chosen paths survive the next run.
func (cfg *Config) Save(path string) error {
	data, err := yaml.Marshal(cfg)

	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}
