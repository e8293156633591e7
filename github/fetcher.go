// Package github provides a specialized fetcher for GitHub repository
// root URLs. Instead of converting the rendered page it calls the GitHub
// REST API and returns a Markdown summary of the repository metadata plus
// its README.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/webfetch"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiAccept      = "application/vnd.github+json"

	// DefaultAPITimeout bounds each GitHub API request.
	DefaultAPITimeout = 10 * time.Second
)

// reservedOwners are first path segments that can never be repository
// owners; URLs under them fall through to the generic fetcher.
var reservedOwners = map[string]bool{
	"settings": true, "explore": true, "trending": true,
	"collections": true, "events": true, "sponsors": true,
	"notifications": true, "marketplace": true, "pulls": true,
	"issues": true, "codespaces": true, "features": true,
	"enterprise": true, "organizations": true, "pricing": true,
	"about": true, "team": true, "security": true,
	"login": true, "join": true,
}

// Ensure RepoFetcher implements webfetch.Fetcher at compile time.
var _ webfetch.Fetcher = (*RepoFetcher)(nil)

// RepoFetcher matches GitHub repository root URLs
// (https://github.com/{owner}/{repo}) and bypasses body conversion
// entirely. Safe for concurrent use.
type RepoFetcher struct {
	client  *http.Client
	baseURL string
}

// Option configures a RepoFetcher.
type Option func(*RepoFetcher)

// WithBaseURL overrides the GitHub API base URL. Intended for tests.
func WithBaseURL(u string) Option {
	return func(f *RepoFetcher) {
		f.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithClient substitutes the underlying HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *RepoFetcher) {
		f.client = c
	}
}

// NewRepoFetcher creates a GitHub repository fetcher.
func NewRepoFetcher(opts ...Option) *RepoFetcher {
	f := &RepoFetcher{baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: DefaultAPITimeout}
	}
	return f
}

// Name implements webfetch.Fetcher.
func (f *RepoFetcher) Name() string {
	return "github_repo"
}

// Matches implements webfetch.Fetcher.
func (f *RepoFetcher) Matches(u *url.URL) bool {
	_, _, ok := splitRepoPath(u)
	return ok
}

// splitRepoPath extracts owner and repo from a repository root URL. Only
// URLs with exactly two non-empty path segments qualify: deeper paths
// like /owner/repo/issues and single segments are not repository roots.
func splitRepoPath(u *url.URL) (owner, repo string, ok bool) {
	if u.Host != "github.com" {
		return "", "", false
	}
	segments := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(segments) != 2 {
		return "", "", false
	}
	owner, repo = segments[0], segments[1]
	if owner == "" || repo == "" || reservedOwners[owner] {
		return "", "", false
	}
	return owner, repo, true
}

// repoData is the subset of the repository API response we render.
type repoData struct {
	Name          string       `json:"name"`
	FullName      string       `json:"full_name"`
	Description   string       `json:"description"`
	HTMLURL       string       `json:"html_url"`
	Homepage      string       `json:"homepage"`
	Stars         int64        `json:"stargazers_count"`
	Forks         int64        `json:"forks_count"`
	OpenIssues    int64        `json:"open_issues_count"`
	Language      string       `json:"language"`
	License       *licenseData `json:"license"`
	DefaultBranch string       `json:"default_branch"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
	PushedAt      string       `json:"pushed_at"`
	Topics        []string     `json:"topics"`
	Archived      bool         `json:"archived"`
	Fork          bool         `json:"fork"`
	Owner         ownerData    `json:"owner"`
}

type licenseData struct {
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

type ownerData struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

type readmeData struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Fetch implements webfetch.Fetcher. Repository metadata and README are
// fetched concurrently; a missing or malformed README never fails the
// fetch. API-level failures (404, rate limits) come back as responses
// with the error field set, not as Go errors.
func (f *RepoFetcher) Fetch(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, webfetch.Errorf(webfetch.EINVALID, "invalid URL: must start with http:// or https://")
	}
	owner, repo, ok := splitRepoPath(u)
	if !ok {
		return nil, webfetch.Errorf(webfetch.EFETCHER, "not a GitHub repository URL")
	}

	userAgent := opts.UserAgentOrDefault()

	var (
		info      *repoData
		apiStatus int
		readme    string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status, body, err := f.get(gctx, fmt.Sprintf("%s/repos/%s/%s", f.baseURL, owner, repo), userAgent)
		if err != nil {
			return err
		}
		apiStatus = status
		if status < 200 || status > 299 {
			return nil
		}
		var data repoData
		if err := json.Unmarshal(body, &data); err != nil {
			return webfetch.Errorf(webfetch.EFETCHER, "failed to parse repository data: %v", err)
		}
		info = &data
		return nil
	})
	g.Go(func() error {
		status, body, err := f.get(gctx, fmt.Sprintf("%s/repos/%s/%s/readme", f.baseURL, owner, repo), userAgent)
		if err != nil || status < 200 || status > 299 {
			return nil
		}
		var data readmeData
		if err := json.Unmarshal(body, &data); err != nil {
			return nil
		}
		if data.Encoding != "base64" {
			return nil
		}
		decoded, err := base64.StdEncoding.DecodeString(stripWhitespace(data.Content))
		if err != nil {
			return nil
		}
		readme = string(decoded)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if apiStatus < 200 || apiStatus > 299 {
		var msg string
		switch apiStatus {
		case http.StatusNotFound:
			msg = fmt.Sprintf("Repository %s/%s not found", owner, repo)
		case http.StatusForbidden:
			msg = "GitHub API rate limit exceeded"
		default:
			msg = fmt.Sprintf("GitHub API error: HTTP %d", apiStatus)
		}
		return &webfetch.Response{
			URL:        req.URL,
			StatusCode: apiStatus,
			Error:      msg,
		}, nil
	}

	return &webfetch.Response{
		URL:         req.URL,
		StatusCode:  http.StatusOK,
		ContentType: "text/markdown",
		Format:      "github_repo",
		Content:     formatRepo(info, readme),
	}, nil
}

// get issues one API request and returns the status and body.
func (f *RepoFetcher) get(ctx context.Context, apiURL, userAgent string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return 0, nil, webfetch.Errorf(webfetch.EFETCHER, "invalid API URL: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", apiAccept)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, nil, webfetch.ClassifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, webfetch.ClassifyTransportError(err)
	}
	return resp.StatusCode, body, nil
}

// stripWhitespace removes all whitespace; the API wraps base64 content in
// newlines.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// formatRepo renders repository metadata and README as Markdown.
func formatRepo(repo *repoData, readme string) string {
	var b strings.Builder

	b.WriteString("# " + repo.FullName + "\n\n")
	if repo.Description != "" {
		b.WriteString(repo.Description + "\n\n")
	}

	b.WriteString("## Repository Info\n\n")
	fmt.Fprintf(&b, "- **Stars:** %d\n- **Forks:** %d\n- **Open Issues:** %d\n",
		repo.Stars, repo.Forks, repo.OpenIssues)

	if repo.Language != "" {
		b.WriteString("- **Language:** " + repo.Language + "\n")
	}
	if repo.License != nil {
		license := repo.License.SPDXID
		if license == "" {
			license = repo.License.Name
		}
		b.WriteString("- **License:** " + license + "\n")
	}
	if len(repo.Topics) > 0 {
		b.WriteString("- **Topics:** " + strings.Join(repo.Topics, ", ") + "\n")
	}

	b.WriteString("- **URL:** " + repo.HTMLURL + "\n")
	if repo.Homepage != "" {
		b.WriteString("- **Homepage:** " + repo.Homepage + "\n")
	}
	b.WriteString("- **Default Branch:** " + repo.DefaultBranch + "\n")
	fmt.Fprintf(&b, "- **Owner:** %s (%s)\n", repo.Owner.Login, repo.Owner.Type)

	if repo.Archived {
		b.WriteString("- **Status:** Archived\n")
	}
	if repo.Fork {
		b.WriteString("- **Fork:** Yes\n")
	}

	b.WriteString("- **Created:** " + repo.CreatedAt + "\n")
	b.WriteString("- **Last Updated:** " + repo.UpdatedAt + "\n")
	b.WriteString("- **Last Push:** " + repo.PushedAt + "\n")

	if readme != "" {
		b.WriteString("\n---\n\n## README\n\n")
		b.WriteString(readme)
	}

	return b.String()
}
