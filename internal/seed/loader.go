package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Novice130/CPTS-Companion/internal/model"
)

// Default locations of the seed collections relative to the repository root.
const (
	// DefaultModulesFile is where the seed data keeps the module catalog.
	DefaultModulesFile = "seed/modules.json"

	// DefaultMindmapsFile is the mindmap catalog next to the modules file.
	DefaultMindmapsFile = "seed/mindmaps.json"
)

// moduleRecord mirrors the raw shape of one entry in modules.json.
// Title is a pointer so an absent field and an explicit null are both
// observable as nil instead of silently decoding to "".
type moduleRecord struct {
	Title *string `json:"title"`
}

// LoadModules reads and decodes the modules collection at path.
// Each record is paired with its 1-based position in the file, which is
// the module's identity for cross-referencing.
func LoadModules(path string) ([]model.Module, error) {
	var records []moduleRecord
	if err := loadArray(path, &records); err != nil {
		return nil, err
	}

	modules := make([]model.Module, 0, len(records))
	for i, r := range records {
		modules = append(modules, model.Module{
			ID:    i + 1,
			Title: r.Title,
		})
	}
	return modules, nil
}

// LoadMindmaps reads and decodes the mindmaps collection at path.
// Records without a usable module_id are kept; they count toward the total
// but reference nothing.
func LoadMindmaps(path string) ([]model.Mindmap, error) {
	var mindmaps []model.Mindmap
	if err := loadArray(path, &mindmaps); err != nil {
		return nil, err
	}
	return mindmaps, nil
}

// loadArray reads the whole document at path and decodes its top-level
// JSON array into v. os.ReadFile closes the file on every path, including
// the error path.
func loadArray(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided seed path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSeedNotFound, path)
		}
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedSeed, path, err)
	}
	return nil
}
