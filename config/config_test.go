package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eltorocorp/sqlinfer"
	"github.com/eltorocorp/sqlinfer/config"
	"github.com/stretchr/testify/assert"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_Load_YAML(t *testing.T) {
	path := writeTemp(t, "qualifiers.yaml", `
from:
  file:
    columnseparator: ";"
    header: present
to:
  table:
    strict: true
`)
	raw, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, ";", raw["from.file.columnseparator"])
	assert.Equal(t, "present", raw["from.file.header"])
	assert.Equal(t, true, raw["to.table.strict"])
}

func Test_Load_JSON(t *testing.T) {
	path := writeTemp(t, "qualifiers.json", `{"from":{"file":{"readlines":50}}}`)
	raw, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, float64(50), raw["from.file.readlines"])
}

func Test_Apply_KnownKeys(t *testing.T) {
	raw := config.Raw{
		"from.file.columnseparator": ";",
		"from.file.header":          "absent",
		"from.file.readlines":       float64(75),
		"to.table.strict":           true,
	}
	cfg, unknown := config.Apply(raw)
	assert.Empty(t, unknown)
	assert.Equal(t, ';', cfg.Separator)
	assert.Equal(t, sqlinfer.HeaderAbsent, cfg.Header)
	assert.Equal(t, 75, cfg.ReadLines)
	assert.True(t, cfg.Strict)
}

func Test_Apply_HeaderBoolEncoding(t *testing.T) {
	present, _ := config.Apply(config.Raw{"from.file.header": true})
	assert.Equal(t, sqlinfer.HeaderPresent, present.Header)

	absent, _ := config.Apply(config.Raw{"from.file.header": false})
	assert.Equal(t, sqlinfer.HeaderAbsent, absent.Header)
}

func Test_Apply_HeaderTriStateIntEncoding(t *testing.T) {
	present, _ := config.Apply(config.Raw{"from.file.header": float64(1)})
	assert.Equal(t, sqlinfer.HeaderPresent, present.Header)

	absent, _ := config.Apply(config.Raw{"from.file.header": float64(0)})
	assert.Equal(t, sqlinfer.HeaderAbsent, absent.Header)

	auto, _ := config.Apply(config.Raw{"from.file.header": float64(-1)})
	assert.Equal(t, sqlinfer.HeaderAuto, auto.Header)
}

func Test_Apply_UnknownKeyReported(t *testing.T) {
	raw := config.Raw{
		"from.file.columnseperator": ";", // typo
	}
	cfg, unknown := config.Apply(raw)
	assert.Equal(t, []string{"from.file.columnseperator"}, unknown)
	assert.Equal(t, sqlinfer.NewScanConfig(), cfg)
}
