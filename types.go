package sqlinfer

import "encoding/json"

// HeaderMode is a tri-state override for whether the first sampled line of
// a file is a header record.
type HeaderMode int

const (
	// HeaderAuto decides header presence from the data itself.
	HeaderAuto HeaderMode = iota
	// HeaderPresent forces the first line to be treated as a header.
	HeaderPresent
	// HeaderAbsent forces the first line to be re-fed as a data record.
	HeaderAbsent
)

func (m HeaderMode) String() string {
	switch m {
	case HeaderPresent:
		return "present"
	case HeaderAbsent:
		return "absent"
	default:
		return "auto"
	}
}

// MarshalJSON renders a HeaderMode by its name rather than its ordinal, so
// serialized config is readable without the enum definition in hand.
func (m HeaderMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// DefaultReadLines is the default sample cap used when ScanConfig.ReadLines
// is left at its zero value... except zero is also the "read the whole
// file" sentinel, so NewScanConfig is the only place this constant is
// actually applied.
const DefaultReadLines = 200

// ScanConfig carries the inputs to a single scan.
type ScanConfig struct {
	// Separator, if non-zero, skips delimiter detection entirely.
	Separator rune `json:"separator"`
	// Header overrides the header heuristic. Zero value is HeaderAuto.
	Header HeaderMode `json:"header"`
	// Quote is fixed to '"' by default, but is named here so call sites
	// read naturally and tests can exercise the tokenizer independently of
	// the package-level default.
	Quote rune `json:"quote"`
	// ReadLines caps the sample size; 0 means read the whole file.
	ReadLines int `json:"readLines"`
	// Strict, when true, instructs the emitter to append NOT NULL to any
	// column observed with zero nulls.
	Strict bool `json:"strict"`
	// Verbose mirrors diagnostics to the logrus logger as they're produced.
	Verbose bool `json:"verbose"`
}

// NewScanConfig returns a ScanConfig with every field at its documented
// default: auto header, '"' quote, a 200-line sample cap, non-strict,
// non-verbose.
func NewScanConfig() ScanConfig {
	return ScanConfig{
		Quote:     '"',
		ReadLines: DefaultReadLines,
	}
}

func (c ScanConfig) quote() rune {
	if c.Quote == 0 {
		return '"'
	}
	return c.Quote
}

// Spread summarizes a distribution of integer observations: byte lengths
// for ColumnInfo.Length, digits-after-decimal for ColumnInfo.Scale.
type Spread struct {
	Avg    float64 `json:"avg"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	StdDev float64 `json:"stdDev"`
}

// ColumnType is the semantic type the synthesizer assigns to a column,
// independent of its concrete SQL spelling.
type ColumnType string

const (
	TypeInteger   ColumnType = "integer"
	TypeNumber    ColumnType = "number"
	TypeDate      ColumnType = "date"
	TypeTimestamp ColumnType = "timestamp"
	TypeString    ColumnType = "string"
	TypeStream    ColumnType = "stream"
)

// ColumnInfo describes one inferred column.
type ColumnInfo struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	NullPct float64 `json:"nullPct"`
	Length  Spread  `json:"length"`
	// Min, Max and Scale are only meaningful when Numeric is true.
	Numeric bool       `json:"numeric"`
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
	Scale   Spread     `json:"scale"`
	Type    ColumnType `json:"type"`
	SQLType string     `json:"sqlType"`
}

// Level is the severity of a diagnostic message.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
	LevelDebug   Level = "DEBUG"
)

// Diagnostic is one structured entry in a scan's diagnostics list.
type Diagnostic struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// ScanResult is the outcome of one file scan. It is constructed once per
// scan and populated in place by the pipeline; no state is carried between
// scans.
//
// Diagnostics is serialized under the "errors" key: it's the scan's full
// list of irregularities, not only its fatal ones, but "errors" is the name
// callers expect when looking for what went wrong with a scan.
type ScanResult struct {
	EstimatedLines    int          `json:"estimatedLines"`
	DetectedSeparator rune         `json:"detectedSeparator"`
	HeaderPresent     bool         `json:"headerPresent"`
	Columns           []ColumnInfo `json:"columns"`
	Diagnostics       Diagnostics  `json:"errors"`
	Qualifiers        ScanConfig   `json:"qualifiers"`
}
