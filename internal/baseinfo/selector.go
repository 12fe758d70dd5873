package baseinfo

import (
	"fmt"
	"strings"
)

// SelectAll is the selector that walks every known setting.
const SelectAll = "all"

// Assignment is one element of a --set selector.
type Assignment struct {
	Name string

	// Value is only meaningful when HasValue is true. Without a value
	// the setting is prompted for.
	Value    string
	HasValue bool
}

// ParseSelector turns "all" or "name[=value],name2[=value2]" into
// assignments. "all" may appear among other entries and expands to every
// setting without a value. Unknown names are rejected.
func ParseSelector(selector string) ([]Assignment, error) {
	var result []Assignment
	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.EqualFold(part, SelectAll) {
			for _, s := range Settings {
				result = append(result, Assignment{Name: s.Name})
			}
			continue
		}

		name, value, hasValue := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("unknown setting %q", name)
		}
		result = append(result, Assignment{
			Name:     name,
			Value:    strings.TrimSpace(value),
			HasValue: hasValue,
		})
	}
	return result, nil
}
