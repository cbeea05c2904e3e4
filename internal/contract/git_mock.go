package contract

import (
	"context"

	"github.com/flashcode/gitchart/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock of the GitClient interface.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run mocks the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	callArgs := make([]any, 0, len(args)+2)
	callArgs = append(callArgs, ctx, repoPath)
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	ret := m.Called(callArgs...)
	var out []byte
	if ret.Get(0) != nil {
		out = ret.Get(0).([]byte)
	}
	return out, ret.Error(1)
}

// GetRepoRoot mocks the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	return ret.String(0), ret.Error(1)
}

// GetRepoHash mocks the GitClient interface.
func (m *MockGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	return ret.String(0), ret.Error(1)
}

// GetAuthorSummary mocks the GitClient interface.
func (m *MockGitClient) GetAuthorSummary(ctx context.Context, repoPath string, noMerges bool) ([]string, error) {
	ret := m.Called(ctx, repoPath, noMerges)
	var out []string
	if ret.Get(0) != nil {
		out = ret.Get(0).([]string)
	}
	return out, ret.Error(1)
}

// GetCommitDates mocks the GitClient interface.
func (m *MockGitClient) GetCommitDates(ctx context.Context, repoPath string, format schema.DateFormat, noMerges bool) ([]string, error) {
	ret := m.Called(ctx, repoPath, format, noMerges)
	var out []string
	if ret.Get(0) != nil {
		out = ret.Get(0).([]string)
	}
	return out, ret.Error(1)
}

// GetCommitSubjects mocks the GitClient interface.
func (m *MockGitClient) GetCommitSubjects(ctx context.Context, repoPath string, noMerges bool) ([]string, error) {
	ret := m.Called(ctx, repoPath, noMerges)
	var out []string
	if ret.Get(0) != nil {
		out = ret.Get(0).([]string)
	}
	return out, ret.Error(1)
}

// CountCommitsInRange mocks the GitClient interface.
func (m *MockGitClient) CountCommitsInRange(ctx context.Context, repoPath, oldRef, newRef string) (int, error) {
	ret := m.Called(ctx, repoPath, oldRef, newRef)
	return ret.Int(0), ret.Error(1)
}

// ListFilesAtRef mocks the GitClient interface.
func (m *MockGitClient) ListFilesAtRef(ctx context.Context, repoPath string, ref string) ([]string, error) {
	ret := m.Called(ctx, repoPath, ref)
	var out []string
	if ret.Get(0) != nil {
		out = ret.Get(0).([]string)
	}
	return out, ret.Error(1)
}
