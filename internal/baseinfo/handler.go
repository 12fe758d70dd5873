package baseinfo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/bb/internal/model"
	"github.com/shinji-kodama/bb/internal/prompt"
)

// FileName is the settings file inside the repository home.
const FileName = "baseinfo.json"

// Handler shows and applies the base information of one site.
type Handler struct {
	path     string
	values   map[string]string
	prompter prompt.Prompter
}

// NewHandler loads the settings stored under home. With reset the
// stored file is ignored and every setting starts from its default; the
// file is only overwritten once settings are applied.
func NewHandler(home string, reset bool, p prompt.Prompter) (*Handler, error) {
	h := &Handler{
		path:     filepath.Join(home, FileName),
		values:   Defaults(),
		prompter: p,
	}
	if reset {
		return h, nil
	}

	stored, err := loadFile(h.path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitSettingsError,
			fmt.Sprintf("failed to load settings from %s", h.path), err)
	}
	for k, v := range stored {
		h.values[k] = v
	}
	return h, nil
}

// Path returns the settings file location.
func (h *Handler) Path() string {
	return h.path
}

// Get returns the current value of a setting.
func (h *Handler) Get(name string) string {
	return h.values[name]
}

// ShowSettings writes the current settings to w as YAML. Known settings
// come first in their defined order, followed by any extra keys found in
// the file.
func (h *Handler) ShowSettings(w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range h.orderedKeys() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: h.values[name], Style: yaml.DoubleQuotedStyle},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return model.WrapCLIError(model.ExitSettingsError, "failed to render settings", err)
	}
	return enc.Close()
}

// ApplySettings sets the settings named by selector, prompting for the
// ones given without a value, and saves the result. Nothing is saved if
// any value is rejected.
func (h *Handler) ApplySettings(selector string) error {
	assignments, err := ParseSelector(selector)
	if err != nil {
		return model.WrapCLIError(model.ExitSettingsError, "invalid --set selector", err)
	}

	updated := make(map[string]string, len(h.values))
	for k, v := range h.values {
		updated[k] = v
	}

	for _, a := range assignments {
		setting, _ := Lookup(a.Name)
		value := a.Value
		if !a.HasValue {
			if h.prompter == nil {
				return model.NewCLIError(model.ExitInputError,
					fmt.Sprintf("a value for %s is required", a.Name))
			}
			value, err = h.prompter.Prompt(setting.Label, updated[a.Name])
			if err != nil {
				return model.WrapCLIError(model.ExitInputError,
					fmt.Sprintf("failed to read %s", a.Name), err)
			}
		}
		if err := setting.Check(value); err != nil {
			return model.WrapCLIError(model.ExitSettingsError, "rejected setting", err)
		}
		updated[a.Name] = value
	}

	h.values = updated
	return h.Save()
}

// Save writes the settings file, creating the repository home if needed.
func (h *Handler) Save() error {
	data, err := json.MarshalIndent(h.values, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitSettingsError, "failed to encode settings", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return model.WrapCLIError(model.ExitSettingsError,
			fmt.Sprintf("failed to create %s", filepath.Dir(h.path)), err)
	}
	if err := os.WriteFile(h.path, data, 0o644); err != nil {
		return model.WrapCLIError(model.ExitSettingsError,
			fmt.Sprintf("failed to write %s", h.path), err)
	}
	return nil
}

func (h *Handler) orderedKeys() []string {
	keys := make([]string, 0, len(h.values))
	known := make(map[string]bool, len(Settings))
	for _, s := range Settings {
		keys = append(keys, s.Name)
		known[s.Name] = true
	}

	var extra []string
	for k := range h.values {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// loadFile reads a JSONC settings file. A missing file yields no values.
// Numbers and booleans are accepted and kept in their textual form.
func loadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	// The file holds exactly one object; anything after it is an error.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after the settings object")
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch tv := v.(type) {
		case string:
			values[k] = tv
		case json.Number:
			values[k] = tv.String()
		case bool:
			values[k] = fmt.Sprint(tv)
		default:
			return nil, fmt.Errorf("setting %q must be a string, number, or boolean", k)
		}
	}
	return values, nil
}
