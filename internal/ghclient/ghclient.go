// Package ghclient provides a GitHub API client using go-github, used by
// the check command to verify manifest entries before a sync touches disk.
package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// Client wraps the go-github client
type Client struct {
	gh            *github.Client
	authenticated bool
}

// New creates a new GitHub client.
// Token resolution order: GITHUB_TOKEN, GH_TOKEN, gh CLI config, unauthenticated.
func New() *Client {
	token := getToken()

	var httpClient *http.Client
	authenticated := false

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
		authenticated = true
	}

	return &Client{
		gh:            github.NewClient(httpClient),
		authenticated: authenticated,
	}
}

// IsAuthenticated returns true if the client has a token
func (c *Client) IsAuthenticated() bool {
	return c.authenticated
}

// DefaultBranch returns the repository's default branch name.
func (c *Client) DefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	r, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to get repository: %w", err)
	}
	return r.GetDefaultBranch(), nil
}

// BranchExists reports whether the named branch exists in the repository.
func (c *Client) BranchExists(ctx context.Context, owner, repo, branch string) (bool, error) {
	opts := &github.RepositoryContentGetOptions{Ref: branch}
	_, _, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, "", opts)
	return exists(err)
}

// PathExists reports whether path exists in the repository at ref. An
// empty path is the repository root and always exists.
func (c *Client) PathExists(ctx context.Context, owner, repo, path, ref string) (bool, error) {
	if path == "" {
		return true, nil
	}
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	_, _, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, opts)
	return exists(err)
}

// exists maps a 404 to (false, nil) and keeps every other error.
func exists(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, err
}

// ParseRepoURL extracts owner and repo from a GitHub clone URL.
// Supports:
//   - https://github.com/owner/repo[.git][/extra]
//   - git@github.com:owner/repo[.git]
func ParseRepoURL(rawURL string) (owner, repo string, err error) {
	if rest, ok := strings.CutPrefix(rawURL, "git@github.com:"); ok {
		parts := strings.SplitN(strings.TrimSuffix(rest, ".git"), "/", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("invalid GitHub SSH URL: %s", rawURL)
		}
		return parts[0], parts[1], nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Host != "github.com" && u.Host != "www.github.com" {
		return "", "", fmt.Errorf("not a github.com URL: %s", rawURL)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GitHub repository URL: %s", rawURL)
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// getToken attempts to get a GitHub token from various sources
func getToken() string {
	// 1. GITHUB_TOKEN env var
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}

	// 2. GH_TOKEN env var (gh CLI compat)
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	// 3. Try gh CLI config
	if token := readGhToken(); token != "" {
		return token
	}

	// 4. Unauthenticated (60 req/hr)
	return ""
}

// ghHostsConfig represents the gh CLI hosts.yml config
type ghHostsConfig map[string]struct {
	OAuthToken string `yaml:"oauth_token"`
}

// readGhToken reads the GitHub token from gh CLI config
func readGhToken() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	hostsPath := filepath.Join(homeDir, ".config", "gh", "hosts.yml")
	data, err := os.ReadFile(hostsPath)
	if err != nil {
		return ""
	}

	var hosts ghHostsConfig
	if err := yaml.Unmarshal(data, &hosts); err != nil {
		return ""
	}
	if host, ok := hosts["github.com"]; ok {
		return host.OAuthToken
	}
	return ""
}
