package registry

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// Load reads a previously built registry document from the output
// directory. Commands that browse or publish the registry use this
// instead of re-running the build.
func Load(outputDir string) (*Registry, error) {
	path := filepath.Join(outputDir, RegistryFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E505").
				WithSuggestion("Run 'forge build' first")
		}
		return nil, errors.New("E505").Wrap(err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, errors.New("E505").
			WithDetail("registry.json is corrupt: " + err.Error()).
			WithSuggestion("Run 'forge build' to regenerate it")
	}
	return &reg, nil
}
