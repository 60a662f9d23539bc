package main

import (
	"fmt"

	"github.com/eltorocorp/sqlinfer"
)

// configFromFlags builds a ScanConfig from the persistent CLI flags,
// leaving the default sample cap alone unless --read-lines was set.
func configFromFlags() (sqlinfer.ScanConfig, error) {
	cfg := sqlinfer.NewScanConfig()
	cfg.Strict = flagStrict
	cfg.Verbose = flagVerbose

	if flagReadLines > 0 {
		cfg.ReadLines = flagReadLines
	}

	switch flagHeader {
	case "auto", "":
		cfg.Header = sqlinfer.HeaderAuto
	case "present":
		cfg.Header = sqlinfer.HeaderPresent
	case "absent":
		cfg.Header = sqlinfer.HeaderAbsent
	default:
		return cfg, fmt.Errorf("--header must be one of auto, present, absent (got %q)", flagHeader)
	}

	if flagSeparator != "" {
		runes := []rune(flagSeparator)
		if len(runes) != 1 {
			return cfg, fmt.Errorf("--separator must be a single character (got %q)", flagSeparator)
		}
		cfg.Separator = runes[0]
	}

	return cfg, nil
}
