package models

// LineEndingType represents the line-termination style detected in a file
type LineEndingType string

const (
	LineEndingUnix  LineEndingType = "unix"
	LineEndingDos   LineEndingType = "dos"
	LineEndingMixed LineEndingType = "mixed"
	LineEndingNone  LineEndingType = "none"
)

// Label returns the human-readable name used in reports
func (t LineEndingType) Label() string {
	switch t {
	case LineEndingUnix:
		return "Unix/Linux (LF)"
	case LineEndingDos:
		return "Windows/DOS (CRLF)"
	case LineEndingMixed:
		return "Mixed"
	default:
		return "None"
	}
}

// FileStats contains the result of analyzing a single file
type FileStats struct {
	FileName       string         // Base name of the analyzed path
	FileExtension  string         // Extension without dot, empty if absent
	TotalLines     int            // Number of line segments
	EmptyLines     int            // Segments with zero length
	CRLFCount      int            // Number of \r\n sequences
	LFCount        int            // Number of \n not preceded by \r
	LineEndingType LineEndingType // Derived from CRLFCount and LFCount
}

// Extension returns the file extension and whether one is present
func (s *FileStats) Extension() (string, bool) {
	return s.FileExtension, s.FileExtension != ""
}

// TotalEndings returns the number of line terminators found
func (s *FileStats) TotalEndings() int {
	return s.CRLFCount + s.LFCount
}
