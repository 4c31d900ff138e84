package core

import (
	"github.com/dustin/go-humanize"
	"github.com/src-d/enry/v2"
	"go.uber.org/zap"

	"github.com/0x4D44/mdlt/internal/filesystem"
	"github.com/0x4D44/mdlt/internal/lineending"
	"github.com/0x4D44/mdlt/pkg/models"
)

// Analyzer produces line ending statistics for a single file.
// It keeps no per-call state and can be shared between goroutines.
type Analyzer struct {
	reader filesystem.Reader
	logger *zap.Logger
}

// NewAnalyzer creates a new analyzer instance
func NewAnalyzer(reader filesystem.Reader, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		reader: reader,
		logger: logger,
	}
}

// Analyze reads the file at path and computes its statistics.
// Read failures are returned as *IOError and no stats are produced.
func (a *Analyzer) Analyze(path string) (*models.FileStats, error) {
	content, err := a.reader.ReadFile(path)
	if err != nil {
		a.logger.Debug("Failed to read file", zap.String("path", path), zap.Error(err))
		return nil, &IOError{Path: path, Err: err}
	}

	name := filesystem.FileName(path)
	a.inspect(path, name, content)

	counts := lineending.Count(content)

	return &models.FileStats{
		FileName:       name,
		FileExtension:  filesystem.GetExtension(name),
		TotalLines:     counts.Total,
		EmptyLines:     counts.Empty,
		CRLFCount:      counts.CRLF,
		LFCount:        counts.LF,
		LineEndingType: counts.Type(),
	}, nil
}

// inspect logs content details; it never affects the result
func (a *Analyzer) inspect(path, name string, content []byte) {
	if enry.IsBinary(content) {
		a.logger.Warn("File looks binary, line counts may be meaningless",
			zap.String("path", path))
	}

	if ce := a.logger.Check(zap.DebugLevel, "Analyzing file"); ce != nil {
		ce.Write(
			zap.String("path", path),
			zap.String("size", humanize.Bytes(uint64(len(content)))),
			zap.String("language", enry.GetLanguage(name, content)))
	}
}
