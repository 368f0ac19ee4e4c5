package checker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Novice130/CPTS-Companion/internal/model"
)

// ErrMissingTitle is returned when a module that must appear in the missing
// report carries no title to report it with. The title is read lazily, so
// covered modules never trigger this error.
var ErrMissingTitle = errors.New("module record has no title")

// Checker computes mindmap coverage for a module catalog.
type Checker struct {
	logger *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check builds the referenced-ID set from mindmaps and reports every module
// whose positional ID is absent from it.
//
// The referenced-ID set is built once and never mutated afterwards; duplicate
// references collapse under set semantics. Modules are enumerated in sequence
// order, so the missing list comes out strictly ascending by ID.
func (c *Checker) Check(modules []model.Module, mindmaps []model.Mindmap) (*model.CoverageReport, error) {
	referenced := make(map[int]struct{}, len(mindmaps))
	for _, mm := range mindmaps {
		if mm.ModuleID == nil {
			continue
		}
		referenced[*mm.ModuleID] = struct{}{}
	}

	c.logger.Debug("built referenced-ID set",
		"mindmaps", len(mindmaps),
		"referenced", len(referenced),
	)

	report := &model.CoverageReport{
		TotalModules:  len(modules),
		TotalMindmaps: len(mindmaps),
		CheckedAt:     time.Now(),
	}

	for _, m := range modules {
		if _, ok := referenced[m.ID]; ok {
			continue
		}

		// The title is only needed once the module is known to be missing.
		if m.Title == nil {
			return nil, fmt.Errorf("%w: module ID %d", ErrMissingTitle, m.ID)
		}
		report.Missing = append(report.Missing, model.MissingModule{
			ID:    m.ID,
			Title: *m.Title,
		})
	}

	c.logger.Debug("coverage computed",
		"modules", report.TotalModules,
		"missing", len(report.Missing),
	)

	return report, nil
}
