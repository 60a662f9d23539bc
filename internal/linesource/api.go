// Package linesource produces nonempty, trimmed sample lines from a file.
// It caps individual line length, caps the sample size, sniffs the
// content type of the stream's first bytes once sampling is done, and
// estimates the file's total row count when the whole file wasn't read.
package linesource

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

// MaxLineBytes is the line length cap. Lines longer than this are
// truncated and reported via a caller-supplied warning callback.
const MaxLineBytes = 999_999

// Result is everything the Line Source produces from one read pass.
type Result struct {
	// HeaderCandidate is the first nonempty line, captured separately and
	// not counted against the sample cap.
	HeaderCandidate string
	// Lines is the sample of nonempty, trimmed data lines following the
	// header candidate, up to readLines (or unbounded if readLines == 0).
	Lines []string
	// EOF reports whether the underlying reader was exhausted.
	EOF bool
	// SampledBytes is the sum of each sampled line's raw length plus one
	// byte for its line terminator, used to compute EstimatedLines. A CRLF
	// terminator is also counted as one byte.
	SampledBytes int64
	// SniffedText reports whether the content sniffer believes the stream
	// looks like text. It is always true if sniffing was skipped (e.g. no
	// bytes were available).
	SniffedText bool
	// SniffedMIME is the detected MIME type string, for diagnostics.
	SniffedMIME string
}

// Warnf is called by Read for non-fatal conditions (line truncation,
// binary-looking input) that the caller should surface as diagnostics.
type Warnf func(format string, args ...interface{})

// Read reads nonempty, trimmed lines from r. readLines caps the number of
// data lines returned after the header candidate; 0 means unbounded.
func Read(r io.Reader, readLines int, warn Warnf) (Result, error) {
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}

	sniffBuf := make([]byte, 0, 3072)
	teed := io.TeeReader(r, sniffWriter(&sniffBuf))

	scanner := bufio.NewScanner(teed)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes+2)
	// A line with no newline within the buffer is emitted as it stands and
	// the rest of it, up to the next newline, is skipped.
	skipping := false
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		if i := bytes.IndexByte(data, '\n'); skipping && i >= 0 {
			skipping = false
			return i + 1, nil, nil
		} else if skipping {
			return len(data), nil, nil
		}
		advance, token, err := bufio.ScanLines(data, atEOF)
		if advance == 0 && err == nil && len(data) > MaxLineBytes {
			skipping = true
			return len(data), data, nil
		}
		return advance, token, err
	})

	var result Result
	result.SniffedText = true
	result.EOF = true

	for scanner.Scan() {
		raw := scanner.Text()
		if len(raw) > MaxLineBytes {
			warn("line exceeded %d bytes and was truncated", MaxLineBytes)
			raw = raw[:MaxLineBytes]
		}
		line := trim(raw)
		if line == "" {
			continue
		}

		if result.HeaderCandidate == "" && len(result.Lines) == 0 {
			result.HeaderCandidate = line
			continue
		}

		result.Lines = append(result.Lines, line)
		result.SampledBytes += int64(len(raw)) + 1

		if readLines > 0 && len(result.Lines) >= readLines {
			result.EOF = !hasMoreData(scanner)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return result, err
	}

	if len(sniffBuf) > 0 {
		mime := mimetype.Detect(sniffBuf)
		result.SniffedMIME = mime.String()
		result.SniffedText = looksLikeText(mime)
		if !result.SniffedText {
			warn("input does not look like text (detected %s)", result.SniffedMIME)
		}
	}

	return result, nil
}

// hasMoreData peeks past the sample cap to see whether any further
// nonempty line exists, so EOF reflects reality rather than "we stopped
// looking."
func hasMoreData(scanner *bufio.Scanner) bool {
	for scanner.Scan() {
		if trim(scanner.Text()) != "" {
			return true
		}
	}
	return false
}

func looksLikeText(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// trim strips leading/trailing whitespace and control characters.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

func sniffWriter(buf *[]byte) io.Writer {
	return sniffFn(func(p []byte) (int, error) {
		if len(*buf) < cap(*buf) {
			room := cap(*buf) - len(*buf)
			if room > len(p) {
				room = len(p)
			}
			*buf = append(*buf, p[:room]...)
		}
		return len(p), nil
	})
}

type sniffFn func([]byte) (int, error)

func (f sniffFn) Write(p []byte) (int, error) { return f(p) }

// EstimateLines extrapolates a total row count from the sampled byte
// length and the file's total size. ok is false when the estimate cannot
// be computed (size unknown or zero sampled bytes); callers should treat
// that as a reason to warn that the row count is unknown.
func EstimateLines(sampleLines int, fileSize, sampledBytes int64) (estimate int, ok bool) {
	if fileSize <= 0 || sampledBytes <= 0 {
		return 0, false
	}
	return int(int64(sampleLines) * fileSize / sampledBytes), true
}
