package argfmt

import (
	"fmt"
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	argfmtErrors "github.com/mgreer/argfmt/pkg/errors"
	"github.com/mgreer/argfmt/pkg/types/arg"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadDefaults reads a TOML or YAML file and applies its top-level keys as
// argument defaults. The format is chosen by file extension.
func (a *Args) LoadDefaults(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("os read file: %w", err), path)
	}

	var values map[string]any

	switch ext := filepath.Ext(path); ext {
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return motmedelErrors.New(fmt.Errorf("toml load bytes: %w", err), path)
		}
		values = tree.ToMap()
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return motmedelErrors.New(fmt.Errorf("yaml unmarshal: %w", err), path)
		}
	default:
		return motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %q", argfmtErrors.ErrUnsupportedConfig, ext), path,
		)
	}

	slog.Debug("argfmt: defaults loaded", "path", path, "keys", len(values))

	if err := a.ApplyDefaults(values); err != nil {
		return motmedelErrors.New(fmt.Errorf("apply defaults: %w", err), path)
	}

	return nil
}

// ApplyDefaults sets each named argument's default from values. Keys are
// argument names without their leading dashes. The default also becomes the
// current value unless the argument was already set. Keys are applied in
// sorted order.
func (a *Args) ApplyDefaults(values map[string]any) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := a.lookupTrimmed(key)
		if v == nil {
			return motmedelErrors.NewWithTrace(
				fmt.Errorf("%w: %q", argfmtErrors.ErrUnknownOption, key),
			)
		}

		value, err := coerce(v, values[key])
		if err != nil {
			return motmedelErrors.New(fmt.Errorf("coerce: %w", err), key)
		}

		v.Default = value
		if !v.IsSet {
			v.Value = value
		}
	}

	return nil
}

func (a *Args) lookupTrimmed(key string) *arg.Arg {
	for _, v := range a.args {
		name := strings.TrimLeft(v.Name, "-")
		if name == key || (v.Flags.Has(arg.NoCase) && strings.EqualFold(name, key)) {
			return v
		}
	}
	return nil
}

// coerce converts a decoded config value to the argument's kind. Strings are
// accepted for every kind and parsed like format-string defaults.
func coerce(v *arg.Arg, raw any) (arg.Value, error) {
	if text, ok := raw.(string); ok && v.Kind != arg.String && v.Kind != arg.StringList && v.Kind != arg.Choice {
		return arg.ParseDefault(v.Kind, text)
	}

	switch v.Kind {
	case arg.Boolean:
		if b, ok := raw.(bool); ok {
			return arg.BooleanValue(b), nil
		}
	case arg.Integer:
		switch n := raw.(type) {
		case int64:
			return arg.IntegerValue(n), nil
		case int:
			return arg.IntegerValue(int64(n)), nil
		case float64:
			if n == float64(int64(n)) {
				return arg.IntegerValue(int64(n)), nil
			}
		}
	case arg.Real:
		switch n := raw.(type) {
		case float64:
			return arg.RealValue(n), nil
		case int64:
			return arg.RealValue(float64(n)), nil
		case int:
			return arg.RealValue(float64(n)), nil
		}
	case arg.String:
		if s, ok := raw.(string); ok {
			return arg.StringValue(s), nil
		}
	case arg.StringList:
		switch list := raw.(type) {
		case string:
			return arg.StringListValue([]string{list}), nil
		case []string:
			return arg.StringListValue(list), nil
		case []any:
			strs := make([]string, 0, len(list))
			for _, element := range list {
				s, ok := element.(string)
				if !ok {
					return arg.Value{}, motmedelErrors.NewWithTrace(
						fmt.Errorf("%w: %T in list for %s", argfmtErrors.ErrInvalidDefault, element, v.Name),
					)
				}
				strs = append(strs, s)
			}
			return arg.StringListValue(strs), nil
		}
	case arg.Choice:
		switch c := raw.(type) {
		case string:
			for i, choice := range v.Choices {
				if choice == c {
					return arg.ChoiceValue(int64(i)), nil
				}
			}
		case int64:
			return arg.ChoiceValue(c), nil
		case int:
			return arg.ChoiceValue(int64(c)), nil
		}
	}

	return arg.Value{}, motmedelErrors.NewWithTrace(
		fmt.Errorf("%w: %T for %s", argfmtErrors.ErrInvalidDefault, raw, v.Name),
	)
}
