package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/0x4D44/mdlt/pkg/models"
)

func TestFormatText(t *testing.T) {
	stats := &models.FileStats{
		FileName:       "test.txt",
		FileExtension:  "txt",
		TotalLines:     10,
		EmptyLines:     2,
		CRLFCount:      5,
		LFCount:        5,
		LineEndingType: models.LineEndingMixed,
	}

	expected := "File Analysis Report\n" +
		"====================\n" +
		"File name: test.txt\n" +
		"File extension: txt\n" +
		"Total lines: 10\n" +
		"Empty lines: 2\n" +
		"Line ending type: Mixed\n" +
		"DOS line endings (CRLF): 5\n" +
		"Unix line endings (LF): 5\n"

	assert.Equal(t, expected, FormatText(stats))
}

func TestFormatText_Labels(t *testing.T) {
	tests := []struct {
		typ      models.LineEndingType
		expected string
	}{
		{models.LineEndingUnix, "Line ending type: Unix/Linux (LF)\n"},
		{models.LineEndingDos, "Line ending type: Windows/DOS (CRLF)\n"},
		{models.LineEndingMixed, "Line ending type: Mixed\n"},
		{models.LineEndingNone, "Line ending type: None\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			out := FormatText(&models.FileStats{FileName: "f", LineEndingType: tt.typ})
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestFormatText_NoExtension(t *testing.T) {
	out := FormatText(&models.FileStats{FileName: "Makefile", LineEndingType: models.LineEndingNone})
	assert.Contains(t, out, "File extension: none\n")
}

func TestGenerator_Generate(t *testing.T) {
	stats := &models.FileStats{
		FileName:       "dos.txt",
		FileExtension:  "txt",
		TotalLines:     2,
		CRLFCount:      2,
		LineEndingType: models.LineEndingDos,
	}

	var buf bytes.Buffer
	require.NoError(t, NewGenerator(zap.NewNop()).Generate(&buf, stats))
	assert.Equal(t, FormatText(stats), buf.String())
}

func TestGenerator_Generate_NilStats(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewGenerator(nil).Generate(&buf, nil))
	assert.Zero(t, buf.Len())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestGenerator_Generate_WriteError(t *testing.T) {
	err := NewGenerator(nil).Generate(brokenWriter{}, &models.FileStats{FileName: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
