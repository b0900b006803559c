package style

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// DefaultPath is the configuration file looked up when none is named.
const DefaultPath = "minicomp.config.json"

// option setters, by configuration key.
var options = map[string]func(st *Style, value any) error{
	"include_comments": func(st *Style, value any) (err error) {
		st.IncludeComments, err = asBool(value)
		return
	},
	"include_indent": func(st *Style, value any) (err error) {
		st.IncludeIndent, err = asBool(value)
		return
	},
	"include_reg_subname": func(st *Style, value any) (err error) {
		st.IncludeRegSubname, err = asBool(value)
		return
	},
	"asm_style": func(st *Style, value any) (err error) {
		str, ok := value.(string)
		if !ok {
			err = ErrOptionType
			return
		}
		dialect := Dialect(str)
		if !dialect.Valid() {
			err = ErrDialect(str)
			return
		}
		st.AsmStyle = dialect
		return
	},
}

func asBool(value any) (b bool, err error) {
	b, ok := value.(bool)
	if !ok {
		err = ErrOptionType
	}
	return
}

// apply sets every option in values on top of Default().
func apply(values map[string]any) (st Style, err error) {
	st = Default()
	for _, key := range slices.Sorted(maps.Keys(values)) {
		set, ok := options[key]
		if !ok {
			err = ErrOptionUnknown(key)
			return
		}
		err = set(&st, values[key])
		if err != nil {
			err = fmt.Errorf("%v: %w", key, err)
			return
		}
	}
	return
}

// ParseJSON decodes a JSON object of style options.
// Omitted options keep their default value.
func ParseJSON(data []byte) (st Style, err error) {
	var values map[string]any
	err = json.Unmarshal(data, &values)
	if err != nil {
		return
	}

	return apply(values)
}

// ParseStarlark executes a Starlark configuration script and reads its
// global bindings as style options. Globals starting with '_' are private
// to the script and ignored.
func ParseStarlark(name string, src []byte) (st Style, err error) {
	thread := &starlark.Thread{Name: name}
	opts := &syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(opts, thread, name, src, nil)
	if err != nil {
		return
	}

	values := make(map[string]any, len(globals))
	for key, value := range globals {
		if strings.HasPrefix(key, "_") {
			continue
		}
		switch v := value.(type) {
		case starlark.Bool:
			values[key] = bool(v)
		case starlark.String:
			values[key] = v.GoString()
		default:
			values[key] = v
		}
	}

	return apply(values)
}

// Load reads a style configuration file. Files ending in .star are
// Starlark scripts, all others are JSON.
func Load(path string) (st Style, err error) {
	defer func() {
		if err != nil {
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	if filepath.Ext(path) == ".star" {
		return ParseStarlark(path, data)
	}

	return ParseJSON(data)
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (st Style, err error) {
	st, err = Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		st, err = Default(), nil
	}
	return
}
