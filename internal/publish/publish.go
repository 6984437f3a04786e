// Package publish pushes a built output tree to its configured
// static host: an S3 bucket, a git branch, or both.
package publish

import (
	"context"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// Publisher pushes a built output tree to one target.
type Publisher interface {
	// Name identifies the target in user output.
	Name() string

	// Publish uploads every artifact under outputDir.
	Publish(ctx context.Context, outputDir string) error
}

// ForConfig returns a publisher per configured target. No configured
// target is an error; the user has to opt in to publishing.
func ForConfig(cfg *config.Config) ([]Publisher, error) {
	var publishers []Publisher
	if cfg.Publish.S3 != nil {
		publishers = append(publishers, NewS3Publisher(cfg.Publish.S3))
	}
	if cfg.Publish.Git != nil {
		publishers = append(publishers, NewGitPublisher(cfg.Dir(), cfg.Publish.Git))
	}
	if len(publishers) == 0 {
		return nil, errors.New("E601").
			WithSuggestion("Add a publish.s3 or publish.git section to forge.json")
	}
	return publishers, nil
}
