// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/flashcode/gitchart/schema"
)

// GitClient defines the Git queries needed for chart aggregation.
// This allows the core bucketing logic to be tested without needing a real
// git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns its standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Repository Resolution ---

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// --- Record Collection ---

	// GetAuthorSummary returns shortlog lines of the form "  278\tJohn Doe",
	// one per author, ordered by commit count.
	GetAuthorSummary(ctx context.Context, repoPath string, noMerges bool) ([]string, error)

	// GetCommitDates returns one author-date line per commit, formatted
	// according to the requested date format.
	GetCommitDates(ctx context.Context, repoPath string, format schema.DateFormat, noMerges bool) ([]string, error)

	// GetCommitSubjects returns one "Author Name,subject" line per commit.
	GetCommitSubjects(ctx context.Context, repoPath string, noMerges bool) ([]string, error)

	// CountCommitsInRange counts the commits reachable from newRef but not
	// from oldRef. An empty oldRef counts everything up to newRef.
	CountCommitsInRange(ctx context.Context, repoPath, oldRef, newRef string) (int, error)

	// ListFilesAtRef returns all trackable files in the repository at a ref.
	ListFilesAtRef(ctx context.Context, repoPath string, ref string) ([]string, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetQueryStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Clear() error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
