package delimiter_test

import (
	"testing"

	"github.com/eltorocorp/sqlinfer/internal/delimiter"
	"github.com/stretchr/testify/assert"
)

func Test_Detect_Comma(t *testing.T) {
	lines := []string{"Alice,30,NYC", "Bob,25,LA", "Carol,40,SF"}
	result := delimiter.Detect(lines)
	assert.Equal(t, ',', result.Separator)
	assert.False(t, result.Defaulted)
}

func Test_Detect_Semicolon(t *testing.T) {
	lines := []string{"4;5;6", "7;8;9"}
	result := delimiter.Detect(lines)
	assert.Equal(t, ';', result.Separator)
}

func Test_Detect_Pipe(t *testing.T) {
	lines := []string{"a|b|c|d", "e|f|g|h", "i|j|k|l"}
	result := delimiter.Detect(lines)
	assert.Equal(t, '|', result.Separator)
}

func Test_Detect_SingleColumn_DefaultsToComma(t *testing.T) {
	lines := []string{"onlyfield", "anotherfield", "thirdfield"}
	result := delimiter.Detect(lines)
	assert.Equal(t, delimiter.Default, result.Separator)
	assert.True(t, result.Defaulted)
}

func Test_Detect_EmptySample_DefaultsToComma(t *testing.T) {
	result := delimiter.Detect(nil)
	assert.True(t, result.Defaulted)
	assert.Equal(t, delimiter.Default, result.Separator)
}

func Test_Detect_QuotedCommasDoNotOverwhelmTab(t *testing.T) {
	lines := []string{
		"\"a,b,c\"\tfield2\tfield3",
		"\"d,e\"\tfield2\tfield3",
		"\"f\"\tfield2\tfield3",
	}
	result := delimiter.Detect(lines)
	assert.Equal(t, '\t', result.Separator)
}
