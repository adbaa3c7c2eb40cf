package shell

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"src.elv.sh/elvcalc/pkg/store"
)

// Values of Settings.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Settings keeps the settings of the shell. They are read from the YAML file
// named by the -rc flag; the -store and -color flags take precedence over the
// file.
//
// An example settings file:
//
//	prompt: "calc> "
//	color: never
//	store: bolt
//	banner: false
type Settings struct {
	Prompt string `yaml:"prompt"`
	Color  string `yaml:"color"`
	Store  string `yaml:"store"`
	Banner bool   `yaml:"banner"`
}

// DefaultSettings are used when there is no settings file, and for the
// fields a settings file leaves out.
var DefaultSettings = Settings{
	Prompt: "➤ ",
	Color:  ColorAuto,
	Store:  store.Memory,
	Banner: true,
}

// LoadSettings reads settings from a YAML file. If path is empty, it returns
// DefaultSettings. Unknown keys are errors.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings, fmt.Errorf("cannot read settings: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF.
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return DefaultSettings, fmt.Errorf("cannot parse settings %s: %w", path, err)
	}
	return s, nil
}

// Returns s, with the non-empty string fields of o taking precedence.
func (s Settings) override(o Settings) Settings {
	if o.Prompt != "" {
		s.Prompt = o.Prompt
	}
	if o.Color != "" {
		s.Color = o.Color
	}
	if o.Store != "" {
		s.Store = o.Store
	}
	return s
}

func (s Settings) validate() error {
	if !contains(colorModes, s.Color) {
		return fmt.Errorf("invalid color mode %q, must be one of %v", s.Color, colorModes)
	}
	if !contains(store.Kinds, s.Store) {
		return fmt.Errorf("invalid store %q, must be one of %v", s.Store, store.Kinds)
	}
	return nil
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
