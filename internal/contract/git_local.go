package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/flashcode/gitchart/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its standard output.
// Failures are reported as CollectorError.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, &CollectorError{Args: args, Err: fmt.Errorf("%s. If this is not a Git repository, verify the path or run 'git init'", stderr)}
	} else if err != nil {
		return nil, &CollectorError{Args: args, Err: fmt.Errorf("%w. Ensure Git is installed and available on your PATH", err)}
	}
	return out, nil
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetRepoHash implements the GitClient interface.
func (c *LocalGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// logArgs builds the common "git log" argument prefix. All commit queries
// walk every ref, optionally skipping merge commits.
func logArgs(noMerges bool, extra ...string) []string {
	args := []string{"log", "--all"}
	if noMerges {
		args = append(args, "--no-merges")
	}
	return append(args, extra...)
}

// GetAuthorSummary implements the GitClient interface.
func (c *LocalGitClient) GetAuthorSummary(ctx context.Context, repoPath string, noMerges bool) ([]string, error) {
	args := []string{"shortlog", "-sn", "--all"}
	if noMerges {
		args = append(args, "--no-merges")
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// GetCommitDates implements the GitClient interface.
func (c *LocalGitClient) GetCommitDates(ctx context.Context, repoPath string, format schema.DateFormat, noMerges bool) ([]string, error) {
	args := logArgs(noMerges, "--date="+string(format), "--pretty=format:%ad")
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// GetCommitSubjects implements the GitClient interface.
func (c *LocalGitClient) GetCommitSubjects(ctx context.Context, repoPath string, noMerges bool) ([]string, error) {
	args := logArgs(noMerges, "--pretty=format:%aN,%s")
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// CountCommitsInRange implements the GitClient interface.
func (c *LocalGitClient) CountCommitsInRange(ctx context.Context, repoPath, oldRef, newRef string) (int, error) {
	revRange := newRef
	if oldRef != "" {
		revRange = oldRef + ".." + newRef
	}
	out, err := c.Run(ctx, repoPath, "log", revRange, "--pretty=oneline")
	if err != nil {
		return 0, err
	}
	return len(splitLines(out)), nil
}

// ListFilesAtRef implements the GitClient interface.
func (c *LocalGitClient) ListFilesAtRef(ctx context.Context, repoPath string, ref string) ([]string, error) {
	out, err := c.Run(ctx, repoPath, "ls-tree", "-r", "--name-only", ref)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// splitLines splits command output into trimmed lines, dropping the
// trailing empty line so an empty output yields an empty slice.
func splitLines(out []byte) []string {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return []string{}
	}
	lines := strings.Split(trimmed, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}
