package publish

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// GitPublisher commits the output tree and pushes it to the
// configured publish branch. The project root must already be a git
// repository; forge does not initialize one.
type GitPublisher struct {
	root string
	cfg  *config.GitConfig
}

// NewGitPublisher creates a publisher for the repository at root.
func NewGitPublisher(root string, cfg *config.GitConfig) *GitPublisher {
	return &GitPublisher{root: root, cfg: cfg}
}

func (p *GitPublisher) Name() string {
	return fmt.Sprintf("git:%s/%s", p.remote(), p.branch())
}

func (p *GitPublisher) remote() string {
	if p.cfg.Remote != "" {
		return p.cfg.Remote
	}
	return "origin"
}

func (p *GitPublisher) branch() string {
	if p.cfg.Branch != "" {
		return p.cfg.Branch
	}
	return "registry"
}

// Publish stages the output tree, commits it, and pushes HEAD to the
// publish branch. A worktree with no registry changes publishes the
// previous commit, which is not an error.
func (p *GitPublisher) Publish(ctx context.Context, outputDir string) error {
	repo, err := git.PlainOpen(p.root)
	if err != nil {
		return errors.New("E603").Wrap(err).
			WithDetail(p.root + " is not a git repository").
			WithSuggestion("Run 'git init' or configure publish.s3 instead")
	}

	wt, err := repo.Worktree()
	if err != nil {
		return errors.New("E603").Wrap(err)
	}

	// go-git stages paths relative to the worktree root.
	rel, err := filepath.Rel(p.root, outputDir)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = outputDir
	}
	if err := wt.AddWithOptions(&git.AddOptions{Path: rel}); err != nil {
		return errors.New("E603").Wrap(err).
			WithDetail("could not stage " + rel)
	}

	status, err := wt.Status()
	if err != nil {
		return errors.New("E603").Wrap(err)
	}
	if !status.IsClean() {
		_, err = wt.Commit(fmt.Sprintf("Publish registry %s", time.Now().UTC().Format("2006-01-02 15:04")), &git.CommitOptions{
			Author: &object.Signature{
				Name:  "forge",
				Email: "forge@localhost",
				When:  time.Now(),
			},
		})
		if err != nil {
			return errors.New("E603").Wrap(err)
		}
	}

	refSpec := gitconfig.RefSpec(fmt.Sprintf("HEAD:refs/heads/%s", p.branch()))
	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: p.remote(),
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	})
	if err == git.NoErrAlreadyUpToDate {
		return nil
	}
	if err != nil {
		return errors.New("E603").Wrap(err).
			WithDetail(fmt.Sprintf("push to %s/%s failed", p.remote(), p.branch())).
			WithSuggestion("Check the remote exists and you have push access")
	}
	return nil
}
