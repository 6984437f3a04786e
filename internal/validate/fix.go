package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackcharlielopez/forge-cli/internal/descriptor"
)

// FixResult reports the repairs applied to one descriptor.
type FixResult struct {
	Changed bool
	Applied []string
}

// Fix applies the narrow repair heuristics behind validate --fix:
// drop file entries whose paths no longer exist on disk, and drop
// the default value from props that are also required. The caller
// rewrites the descriptor when Changed is true, which also persists
// any defaulted category and version fields.
func Fix(c *descriptor.Component, dir string) FixResult {
	var result FixResult

	kept := c.Files[:0]
	for _, f := range c.Files {
		if _, err := os.Stat(filepath.Join(dir, f.Path)); err != nil {
			result.Applied = append(result.Applied,
				fmt.Sprintf("dropped file %q (not on disk)", f.Path))
			continue
		}
		kept = append(kept, f)
	}
	c.Files = kept

	for i, p := range c.Props {
		if p.Required && p.HasDefault() {
			c.Props[i].Default = nil
			result.Applied = append(result.Applied,
				fmt.Sprintf("removed default from required prop %q", p.Name))
		}
	}

	result.Changed = len(result.Applied) > 0
	return result
}
