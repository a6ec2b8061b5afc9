// Package github provides a client for the GitHub REST API and the MCP tool
// wrappers built on top of it. It covers repository, issue, pull request,
// user, search, and sub-issue relationship lookups.
package github

// Repository represents a GitHub repository payload.
type Repository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Owner           Account  `json:"owner"`
	Description     string   `json:"description"`
	Private         bool     `json:"private"`
	Fork            bool     `json:"fork"`
	Archived        bool     `json:"archived"`
	HTMLURL         string   `json:"html_url"`
	Homepage        string   `json:"homepage"`
	Language        string   `json:"language"`
	Topics          []string `json:"topics,omitempty"`
	StargazersCount int      `json:"stargazers_count"`
	WatchersCount   int      `json:"watchers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	DefaultBranch   string   `json:"default_branch"`
	License         *License `json:"license,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
}

// Account is the owner or author object embedded in other payloads.
type Account struct {
	ID      int64  `json:"id"`
	Login   string `json:"login"`
	Type    string `json:"type"`
	HTMLURL string `json:"html_url"`
}

// License is the license object embedded in a repository payload.
type License struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Issue represents a GitHub issue payload. Sub-issue endpoints return the
// same shape.
type Issue struct {
	ID          int64     `json:"id"` // internal identifier, distinct from Number
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	State       string    `json:"state"`
	Body        string    `json:"body"`
	User        Account   `json:"user"`
	Labels      []Label   `json:"labels,omitempty"`
	Assignees   []Account `json:"assignees,omitempty"`
	Comments    int       `json:"comments"`
	HTMLURL     string    `json:"html_url"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	ClosedAt    string    `json:"closed_at,omitempty"`
	PullRequest *struct{} `json:"pull_request,omitempty"` // present when the issue is a PR
}

// Label is the label object embedded in an issue payload.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PullRequest represents a GitHub pull request payload.
type PullRequest struct {
	ID             int64   `json:"id"`
	Number         int     `json:"number"`
	Title          string  `json:"title"`
	State          string  `json:"state"`
	Body           string  `json:"body"`
	User           Account `json:"user"`
	Draft          bool    `json:"draft"`
	Merged         bool    `json:"merged"`
	MergedAt       string  `json:"merged_at,omitempty"`
	Head           Branch  `json:"head"`
	Base           Branch  `json:"base"`
	Commits        int     `json:"commits"`
	Additions      int     `json:"additions"`
	Deletions      int     `json:"deletions"`
	ChangedFiles   int     `json:"changed_files"`
	Comments       int     `json:"comments"`
	ReviewComments int     `json:"review_comments"`
	HTMLURL        string  `json:"html_url"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// Branch is the head/base object embedded in a pull request payload.
type Branch struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

// User represents a GitHub user payload.
type User struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Company     string `json:"company"`
	Blog        string `json:"blog"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	PublicGists int    `json:"public_gists"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	HTMLURL     string `json:"html_url"`
	CreatedAt   string `json:"created_at"`
}

// SearchRepositoriesResponse is the nested payload of /search/repositories.
type SearchRepositoriesResponse struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []Repository `json:"items"`
}
