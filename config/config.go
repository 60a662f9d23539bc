// Package config loads a ScanConfig from a YAML or JSON qualifier file, the
// way sqlcode.yaml feeds vippsas/sqlcode's CLI.
//
// Qualifier keys are dotted and case-insensitive, e.g. from.file.columnseparator,
// mirroring how the reference tool's command-line qualifiers are named. An
// unrecognized key doesn't fail the load; it's reported back to the caller
// so it can be surfaced as a WARNING diagnostic.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eltorocorp/sqlinfer"
	"gopkg.in/yaml.v3"
)

// Raw is the untyped qualifier document: dotted keys to scalar values, the
// flattened shape both the YAML and JSON boundary formats decode into.
type Raw map[string]interface{}

// knownKeys enumerates every dotted key config.Apply understands, used to
// detect and report unrecognized qualifiers instead of silently ignoring
// typos.
var knownKeys = map[string]bool{
	"from.file.columnseparator": true,
	"from.file.header":          true,
	"from.file.quote":           true,
	"from.file.readlines":       true,
	"to.table.strict":           true,
	"verbose":                   true,
}

// Load reads a qualifier file (.yaml/.yml or .json, chosen by extension)
// from path and returns the flattened raw key/value map.
func Load(path string) (Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var nested map[string]interface{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("config: parsing %s as JSON: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("config: parsing %s as YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unrecognized qualifier file extension %q", ext)
	}

	raw := Raw{}
	flatten("", nested, raw)
	return raw, nil
}

// flatten walks a nested map[string]interface{} and writes every leaf
// value into dst under its dotted, lower-cased path.
func flatten(prefix string, node map[string]interface{}, dst Raw) {
	for k, v := range node {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if child, ok := v.(map[string]interface{}); ok {
			flatten(key, child, dst)
			continue
		}
		dst[key] = v
	}
}

// Apply maps the recognized keys in raw onto a ScanConfig seeded with
// sqlinfer.NewScanConfig's defaults. It returns the resulting config plus
// the list of unrecognized keys found in raw, which the caller should
// report as WARNING diagnostics rather than treat as fatal.
func Apply(raw Raw) (sqlinfer.ScanConfig, []string) {
	cfg := sqlinfer.NewScanConfig()
	var unknown []string

	for key, v := range raw {
		if !knownKeys[key] {
			unknown = append(unknown, key)
			continue
		}
		switch key {
		case "from.file.columnseparator":
			if s, ok := asString(v); ok && len(s) > 0 {
				cfg.Separator = []rune(s)[0]
			}
		case "from.file.header":
			if mode, ok := headerModeOf(v); ok {
				cfg.Header = mode
			}
		case "from.file.quote":
			if s, ok := asString(v); ok && len(s) > 0 {
				cfg.Quote = []rune(s)[0]
			}
		case "from.file.readlines":
			if n, ok := asInt(v); ok {
				cfg.ReadLines = n
			}
		case "to.table.strict":
			if b, ok := v.(bool); ok {
				cfg.Strict = b
			}
		case "verbose":
			if b, ok := v.(bool); ok {
				cfg.Verbose = b
			}
		}
	}

	return cfg, unknown
}

// headerModeOf maps a from.file.header qualifier value onto a HeaderMode.
// The reference tool encodes this qualifier three ways depending on the
// boundary format: as the strings "present"/"absent", as a bool, or as a
// tri-state int (1=present, 0=absent, -1/anything else=auto). ok is false
// only when v's type isn't one of these.
func headerModeOf(v interface{}) (mode sqlinfer.HeaderMode, ok bool) {
	switch t := v.(type) {
	case bool:
		if t {
			return sqlinfer.HeaderPresent, true
		}
		return sqlinfer.HeaderAbsent, true
	case string:
		switch strings.ToLower(t) {
		case "present":
			return sqlinfer.HeaderPresent, true
		case "absent":
			return sqlinfer.HeaderAbsent, true
		default:
			return sqlinfer.HeaderAuto, true
		}
	default:
		if n, isInt := asInt(v); isInt {
			switch n {
			case 1:
				return sqlinfer.HeaderPresent, true
			case 0:
				return sqlinfer.HeaderAbsent, true
			default:
				return sqlinfer.HeaderAuto, true
			}
		}
		return sqlinfer.HeaderAuto, false
	}
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
