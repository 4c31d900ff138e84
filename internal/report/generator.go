package report

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/0x4D44/mdlt/pkg/models"
)

// Generator renders analysis results
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate writes the text report for stats to w
func (g *Generator) Generate(w io.Writer, stats *models.FileStats) error {
	if stats == nil {
		return errors.New("no statistics to report")
	}

	g.logger.Debug("Generating report", zap.String("file", stats.FileName))

	if _, err := io.WriteString(w, FormatText(stats)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
