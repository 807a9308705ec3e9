package notemark

import (
	"fmt"
	"strings"

	"github.com/tsawler/notemark/model"
)

// Warning is a non-fatal issue found while rendering. The output is still
// produced; the affected block may render empty or differently than meant.
type Warning struct {
	// Block is the id of the affected block, or "" for document-wide issues.
	Block   string
	Message string
}

func (w Warning) String() string {
	if w.Block == "" {
		return w.Message
	}
	return w.Block + ": " + w.Message
}

// FormatWarnings joins warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// checkBlocks reports unknown block types and repeated ids.
func checkBlocks(blocks []model.Block) []Warning {
	var warnings []Warning
	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if !b.Type.Known() {
			warnings = append(warnings, Warning{
				Block:   b.ID,
				Message: fmt.Sprintf("unknown block type %q renders empty", b.Type),
			})
		}
		if b.ID != "" && seen[b.ID] {
			warnings = append(warnings, Warning{
				Block:   b.ID,
				Message: "duplicate block id",
			})
		}
		seen[b.ID] = true
	}
	return warnings
}
