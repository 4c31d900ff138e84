package report

import (
	"fmt"
	"strings"

	"github.com/0x4D44/mdlt/pkg/models"
)

const noExtension = "none"

// FormatText builds the plain text report.
// Field order is fixed; tools parse it.
func FormatText(stats *models.FileStats) string {
	var sb strings.Builder

	ext, ok := stats.Extension()
	if !ok {
		ext = noExtension
	}

	sb.WriteString("File Analysis Report\n")
	sb.WriteString(strings.Repeat("=", 20) + "\n")
	sb.WriteString(fmt.Sprintf("File name: %s\n", stats.FileName))
	sb.WriteString(fmt.Sprintf("File extension: %s\n", ext))
	sb.WriteString(fmt.Sprintf("Total lines: %d\n", stats.TotalLines))
	sb.WriteString(fmt.Sprintf("Empty lines: %d\n", stats.EmptyLines))
	sb.WriteString(fmt.Sprintf("Line ending type: %s\n", stats.LineEndingType.Label()))
	sb.WriteString(fmt.Sprintf("DOS line endings (CRLF): %d\n", stats.CRLFCount))
	sb.WriteString(fmt.Sprintf("Unix line endings (LF): %d\n", stats.LFCount))

	return sb.String()
}
