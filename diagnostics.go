package sqlinfer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/eltorocorp/sqlinfer/internal/util"
	"github.com/sirupsen/logrus"
)

// Diagnostics is an ordered list of structured messages produced during a
// scan. Ordering matches production order.
type Diagnostics []Diagnostic

const diagnosticsTemplateText = `Scan Diagnostics
---------------------------------------
  Count: {{len .}}
{{range .}}  [{{.Level}}] {{.Message}}
{{else}}  none
{{end}}`

// String renders the diagnostics list for human consumption, in the same
// text/template style permissivecsv's ScanSummary.String() uses.
func (d Diagnostics) String() string {
	tmpl := template.Must(template.New("diagnostics").Parse(diagnosticsTemplateText))
	buf := new(bytes.Buffer)
	util.Panic(tmpl.Execute(buf, d))
	return buf.String()
}

// logger is the package-level logrus logger used to mirror diagnostics
// when a scan's ScanConfig.Verbose is set. It never affects the
// diagnostics list itself, only whether entries are also written to
// logrus's configured output.
var logger = logrus.StandardLogger()

// add appends a diagnostic and, if verbose, mirrors it to logrus.
func (d *Diagnostics) add(verbose bool, level Level, format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	diag := Diagnostic{Level: level, Message: msg}
	*d = append(*d, diag)

	if !verbose {
		return
	}
	entry := logger.WithField("component", "sqlinfer")
	switch diag.Level {
	case LevelError:
		entry.Error(diag.Message)
	case LevelWarning:
		entry.Warn(diag.Message)
	case LevelDebug:
		entry.Debug(diag.Message)
	default:
		entry.Info(diag.Message)
	}
}
