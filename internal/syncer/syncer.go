// Package syncer reconciles local skill folders against their declared
// upstream repositories: shallow clone into a temporary area, validate the
// declared subpath, then destructively replace the local folder. Entries
// are independent; one failure never aborts the others.
package syncer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/skillbookhq/skillbook/internal/manifest"
)

// ignoredNames are version-control metadata and OS artifacts excluded from
// the mirrored copy.
var ignoredNames = map[string]bool{
	".git":      true,
	".github":   true,
	".DS_Store": true,
}

// Result records the outcome of reconciling one manifest entry.
type Result struct {
	ID string

	// Skipped means the entry declared no URL and was not attempted.
	Skipped bool

	// UsedFallback means the declared branch could not be cloned and the
	// repository's default branch was mirrored instead.
	UsedFallback bool

	// Err is the specific failure reason, nil on success.
	Err error
}

// Syncer mirrors manifest entries into a skills directory.
type Syncer struct {
	SkillsDir string

	// Clone performs a shallow clone of url into dir; an empty branch
	// means the repository's default branch. Replaced in tests.
	Clone func(ctx context.Context, url, branch, dir string) error
}

// New creates a syncer writing into skillsDir, cloning with the git CLI.
func New(skillsDir string) *Syncer {
	return &Syncer{
		SkillsDir: skillsDir,
		Clone:     gitClone,
	}
}

// SyncOne reconciles a single entry. The temporary working area is removed
// on every exit path. The local target folder is only removed after the
// upstream subpath has been validated to exist.
func (s *Syncer) SyncOne(ctx context.Context, id string, e manifest.Entry) Result {
	res := Result{ID: id}

	if e.URL == "" {
		res.Skipped = true
		return res
	}

	tempDir, err := os.MkdirTemp("", "skillbook-sync-*")
	if err != nil {
		res.Err = fmt.Errorf("failed to create temp directory: %w", err)
		return res
	}
	defer os.RemoveAll(tempDir)

	// Clone into a subdirectory so a failed attempt can be cleared
	// before the fallback reuses the path.
	repoDir := filepath.Join(tempDir, "repo")
	if err := s.Clone(ctx, e.URL, e.Branch, repoDir); err != nil {
		os.RemoveAll(repoDir)
		if err := s.Clone(ctx, e.URL, "", repoDir); err != nil {
			res.Err = fmt.Errorf("clone failed: %w", err)
			return res
		}
		res.UsedFallback = true
	}

	sourceDir := filepath.Join(repoDir, filepath.FromSlash(e.Path))
	if _, err := os.Stat(sourceDir); err != nil {
		res.Err = fmt.Errorf("path %q not found in repository", e.Path)
		return res
	}

	targetDir := filepath.Join(s.SkillsDir, id)
	if err := os.RemoveAll(targetDir); err != nil {
		res.Err = fmt.Errorf("failed to remove %s: %w", targetDir, err)
		return res
	}
	if err := copyDir(sourceDir, targetDir); err != nil {
		res.Err = fmt.Errorf("copy failed: %w", err)
		return res
	}

	return res
}

// gitClone shells out for a shallow clone, matching how the mirrored
// registries are actually hosted (any git remote, not only GitHub).
func gitClone(ctx context.Context, url, branch, dir string) error {
	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "-b", branch)
	}
	args = append(args, url, dir)

	cmd := exec.CommandContext(ctx, "git", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args[:2], " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}

// copyDir copies a directory tree, skipping ignoredNames at any depth.
func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ignoredNames[info.Name()] && path != src {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}
		return copyFile(path, destPath, info.Mode())
	})
}

func copyFile(src, dst string, mode os.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
