// Package lineending counts lines and classifies line terminators in raw content.
package lineending

import "github.com/0x4D44/mdlt/pkg/models"

// Counts holds the raw tallies produced by a single scan
type Counts struct {
	Total int // Line segments, including a non-terminated trailing one
	Empty int // Segments of zero length
	CRLF  int // \r\n terminators
	LF    int // \n terminators not preceded by \r
}

// Type returns the line ending classification for these counts
func (c Counts) Type() models.LineEndingType {
	return Classify(c.CRLF, c.LF)
}

// Count scans content once and tallies lines and terminators.
// A lone \r is ordinary content, not a terminator.
func Count(content []byte) Counts {
	var c Counts

	start := 0 // first byte of the current segment
	i := 0
	for i < len(content) {
		switch content[i] {
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				c.CRLF++
				c.endSegment(i - start)
				i += 2
				start = i
				continue
			}
			i++
		case '\n':
			c.LF++
			c.endSegment(i - start)
			i++
			start = i
		default:
			i++
		}
	}

	// Trailing bytes without a terminator form the last line
	if start < len(content) {
		c.Total++
	}

	return c
}

func (c *Counts) endSegment(length int) {
	c.Total++
	if length == 0 {
		c.Empty++
	}
}

// Classify derives the line ending type from terminator counts
func Classify(crlf, lf int) models.LineEndingType {
	switch {
	case crlf > 0 && lf > 0:
		return models.LineEndingMixed
	case crlf > 0:
		return models.LineEndingDos
	case lf > 0:
		return models.LineEndingUnix
	default:
		return models.LineEndingNone
	}
}
