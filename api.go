package sqlinfer

import (
	"os"

	"github.com/eltorocorp/sqlinfer/internal/delimiter"
	"github.com/eltorocorp/sqlinfer/internal/emitter"
	"github.com/eltorocorp/sqlinfer/internal/header"
	"github.com/eltorocorp/sqlinfer/internal/histogram"
	"github.com/eltorocorp/sqlinfer/internal/linesource"
	"github.com/eltorocorp/sqlinfer/internal/stats"
	"github.com/eltorocorp/sqlinfer/internal/tokenizer"
	"github.com/eltorocorp/sqlinfer/internal/typesynth"
)

// ScanFile performs a full scan of the file at path per cfg: line sourcing,
// delimiter detection, header detection, tokenization, per-column
// statistics, and type synthesis.
//
// ScanFile returns an error only for the conditions that abort a scan
// outright: the input cannot be opened (ErrInputMissing), reading it fails
// (ErrInternal), or it yielded zero nonempty lines (ErrEmptyInput). Every
// other irregularity is recorded in the result's Diagnostics and the scan
// continues.
func ScanFile(path string, cfg ScanConfig) (*ScanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ScanError{Kind: ErrInputMissing, Path: path, Err: err}
	}
	defer f.Close()

	var fileSize int64
	if fi, statErr := f.Stat(); statErr == nil {
		fileSize = fi.Size()
	}

	var diags Diagnostics
	warn := func(format string, args ...interface{}) {
		diags.add(cfg.Verbose, LevelWarning, format, args...)
	}

	sample, err := linesource.Read(f, cfg.ReadLines, warn)
	if err != nil {
		return nil, &ScanError{Kind: ErrInternal, Path: path, Err: err}
	}
	if sample.HeaderCandidate == "" && len(sample.Lines) == 0 {
		return nil, &ScanError{Kind: ErrEmptyInput, Path: path}
	}

	quote := cfg.quote()

	sep := cfg.Separator
	if sep == 0 {
		detectionLines := make([]string, 0, len(sample.Lines)+1)
		detectionLines = append(detectionLines, sample.HeaderCandidate)
		detectionLines = append(detectionLines, sample.Lines...)
		det := delimiter.Detect(detectionLines)
		sep = det.Separator
		if det.Defaulted {
			diags.add(cfg.Verbose, LevelWarning, "no delimiter candidate scored well; defaulting to ',' (possibly a single-column file)")
		}
	}

	headerFields, _ := tokenizer.Tokenize(sample.HeaderCandidate, sep, quote)
	isHeader := header.Decide(headerModeOf(cfg.Header), headerFields)

	dataLines := sample.Lines
	var headerNames []string
	if isHeader {
		headerNames = headerFields
	} else {
		dataLines = append([]string{sample.HeaderCandidate}, sample.Lines...)
	}

	if cfg.ReadLines > 0 && len(sample.Lines) < cfg.ReadLines && sample.EOF {
		diags.add(cfg.Verbose, LevelWarning, "sample contained only %d of %d requested lines", len(sample.Lines), cfg.ReadLines)
	}

	accs := []*stats.ColumnAccumulator{}
	ensureCol := func(i int) {
		for len(accs) <= i {
			accs = append(accs, stats.NewColumnAccumulator())
		}
	}
	for _, line := range dataLines {
		fields, unterminated := tokenizer.Tokenize(line, sep, quote)
		if unterminated {
			diags.add(cfg.Verbose, LevelDebug, "unterminated quoted field in line: %q", line)
		}
		for i, f := range fields {
			ensureCol(i)
			accs[i].Observe(f)
		}
	}

	columns := make([]ColumnInfo, len(accs))
	for i, acc := range accs {
		name := ""
		if isHeader && i < len(headerNames) {
			name = headerNames[i]
		}

		lengthSpread := spreadOf(acc.LengthHistogram())
		scaleSpread := spreadOf(acc.ScaleHistogram())

		out := typesynth.Synthesize(typesynth.Input{
			Name:           name,
			NonNull:        acc.NonNull(),
			NumCount:       acc.NumCount(),
			DateCount:      acc.DateCount(),
			TimestampCount: acc.TimestampCount(),
			HasNumeric:     acc.HasNumeric(),
			Min:            acc.Min(),
			Max:            acc.Max(),
			LengthMax:      lengthSpread.Max,
			LengthStdDev:   lengthSpread.StdDev,
			ScaleMax:       scaleSpread.Max,
			ScaleStdDev:    scaleSpread.StdDev,
		})

		var nullPct float64
		if acc.Count() > 0 {
			nullPct = float64(acc.NullCount()) / float64(acc.Count())
		}

		columns[i] = ColumnInfo{
			Name:    name,
			Count:   acc.Count(),
			NullPct: nullPct,
			Length:  lengthSpread,
			Numeric: acc.NonNull() > 0 && acc.NumCount() == acc.NonNull(),
			Min:     acc.Min(),
			Max:     acc.Max(),
			Scale:   scaleSpread,
			Type:    ColumnType(out.Type),
			SQLType: out.SQLType,
		}
	}

	columns = dropTrailingAllNullUnnamed(columns)

	var estimatedLines int
	if sample.EOF {
		estimatedLines = len(sample.Lines)
	} else if est, ok := linesource.EstimateLines(len(sample.Lines), fileSize, sample.SampledBytes); ok {
		estimatedLines = est
	} else {
		diags.add(cfg.Verbose, LevelWarning, "could not estimate total row count")
	}

	qualifiers := cfg
	qualifiers.Separator = sep
	if isHeader {
		qualifiers.Header = HeaderPresent
	} else {
		qualifiers.Header = HeaderAbsent
	}

	return &ScanResult{
		EstimatedLines:    estimatedLines,
		DetectedSeparator: sep,
		HeaderPresent:     isHeader,
		Columns:           columns,
		Diagnostics:       diags,
		Qualifiers:        qualifiers,
	}, nil
}

// InferColumnList scans path and renders its DDL-ready column list, the
// "name SQLType[, name SQLType]*" form a CREATE TABLE statement needs.
func InferColumnList(path string, cfg ScanConfig) (string, error) {
	result, err := ScanFile(path, cfg)
	if err != nil {
		return "", err
	}
	return emitter.ColumnList(toEmitterColumns(result.Columns), cfg.Strict), nil
}

// InferColumnNames scans path and renders a name-only column list, for the
// target-column list a bulk-load statement needs.
func InferColumnNames(path string, cfg ScanConfig) (string, error) {
	result, err := ScanFile(path, cfg)
	if err != nil {
		return "", err
	}
	return emitter.NameList(toEmitterColumns(result.Columns)), nil
}

func toEmitterColumns(columns []ColumnInfo) []emitter.Column {
	out := make([]emitter.Column, len(columns))
	for i, c := range columns {
		out[i] = emitter.Column{Name: c.Name, SQLType: c.SQLType, NullPct: c.NullPct}
	}
	return out
}

func headerModeOf(m HeaderMode) header.Mode {
	switch m {
	case HeaderPresent:
		return header.Present
	case HeaderAbsent:
		return header.Absent
	default:
		return header.Auto
	}
}

func spreadOf(h *histogram.Histogram) Spread {
	return Spread{
		Avg:    h.Mean(),
		Min:    h.Min(),
		Max:    h.Max(),
		StdDev: h.StdDev(),
	}
}

// dropTrailingAllNullUnnamed removes a terminal column that has no name
// and is 100% null, treating it as an artifact of a trailing delimiter.
func dropTrailingAllNullUnnamed(columns []ColumnInfo) []ColumnInfo {
	if len(columns) == 0 {
		return columns
	}
	last := columns[len(columns)-1]
	if last.Name == "" && last.NullPct == 1 {
		return columns[:len(columns)-1]
	}
	return columns
}
