package github

// GetRepositoryArgs contains parameters for a repository lookup.
type GetRepositoryArgs struct {
	Owner string `json:"owner" jsonschema:"required" jsonschema_description:"Repository owner (user or organization)"`
	Repo  string `json:"repo" jsonschema:"required" jsonschema_description:"Repository name"`
}

// GetRepositoryResult is the result of a repository lookup.
type GetRepositoryResult struct {
	Repository *Repository `json:"repository"`
}

// ListIssuesArgs contains parameters for listing repository issues.
type ListIssuesArgs struct {
	Owner   string `json:"owner" jsonschema:"required" jsonschema_description:"Repository owner (user or organization)"`
	Repo    string `json:"repo" jsonschema:"required" jsonschema_description:"Repository name"`
	State   string `json:"state,omitempty" jsonschema_description:"Issue state filter: open, closed, or all (default: open)"`
	PerPage int    `json:"per_page,omitempty" jsonschema_description:"Number of issues to return, 1-100 (default: 10)"`
}

// ListIssuesResult is the result of listing repository issues.
type ListIssuesResult struct {
	Issues  []Issue `json:"issues"`
	Owner   string  `json:"owner"`
	Repo    string  `json:"repo"`
	State   string  `json:"state"`
	Message string  `json:"message,omitempty"`
}

// GetPullRequestArgs contains parameters for a pull request lookup.
type GetPullRequestArgs struct {
	Owner      string `json:"owner" jsonschema:"required" jsonschema_description:"Repository owner (user or organization)"`
	Repo       string `json:"repo" jsonschema:"required" jsonschema_description:"Repository name"`
	PullNumber int    `json:"pull_number" jsonschema:"required" jsonschema_description:"Pull request number"`
}

// GetPullRequestResult is the result of a pull request lookup.
type GetPullRequestResult struct {
	PullRequest *PullRequest `json:"pull_request"`
}

// SearchRepositoriesArgs contains parameters for a repository search.
type SearchRepositoriesArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Search query, e.g. 'mcp server language:go'"`
	Sort  string `json:"sort,omitempty" jsonschema_description:"Sort key: stars, forks, help-wanted-issues, updated (default: best match)"`
	Order string `json:"order,omitempty" jsonschema_description:"Result order: asc or desc (default: desc)"`
}

// SearchRepositoriesResult is the result of a repository search.
type SearchRepositoriesResult struct {
	TotalCount   int          `json:"total_count"`
	Repositories []Repository `json:"repositories"`
	Query        string       `json:"query"`
}

// GetUserArgs contains parameters for a user lookup.
type GetUserArgs struct {
	Username string `json:"username" jsonschema:"required" jsonschema_description:"GitHub username"`
}

// GetUserResult is the result of a user lookup.
type GetUserResult struct {
	User *User `json:"user"`
}

// GetParentIssueArgs contains parameters for a sub-issue parent lookup.
type GetParentIssueArgs struct {
	Owner       string `json:"owner" jsonschema:"required" jsonschema_description:"Repository owner (user or organization)"`
	Repo        string `json:"repo" jsonschema:"required" jsonschema_description:"Repository name"`
	IssueNumber int    `json:"issue_number" jsonschema:"required" jsonschema_description:"Sub-issue number to find the parent of"`
}

// GetParentIssueResult is the result of a parent lookup. Found is false when
// the issue has no parent; Message then carries the informational text.
type GetParentIssueResult struct {
	Parent  *Issue `json:"parent,omitempty"`
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
}

// ListSubIssuesArgs contains parameters for listing sub-issues of an issue.
type ListSubIssuesArgs struct {
	Owner       string `json:"owner" jsonschema:"required" jsonschema_description:"Repository owner (user or organization)"`
	Repo        string `json:"repo" jsonschema:"required" jsonschema_description:"Repository name"`
	IssueNumber int    `json:"issue_number" jsonschema:"required" jsonschema_description:"Parent issue number"`
	PerPage     int    `json:"per_page,omitempty" jsonschema_description:"Number of sub-issues per page, 1-100 (default: 30)"`
	Page        int    `json:"page,omitempty" jsonschema_description:"Page to fetch (default: 1)"`
	State       string `json:"state,omitempty" jsonschema_description:"Filter by state: open, closed, or all"`
	Labels      string `json:"labels,omitempty" jsonschema_description:"Comma-separated list of label names to filter by"`
}

// ListSubIssuesResult is the result of a sub-issue listing. Found is false
// when the issue does not exist or has no sub-issues.
type ListSubIssuesResult struct {
	SubIssues []Issue `json:"sub_issues,omitempty"`
	Found     bool    `json:"found"`
	Message   string  `json:"message,omitempty"`
}

// GetIssueIDArgs contains parameters for resolving an issue's internal ID.
type GetIssueIDArgs struct {
	Owner       string `json:"owner" jsonschema:"required" jsonschema_description:"Repository owner (user or organization)"`
	Repo        string `json:"repo" jsonschema:"required" jsonschema_description:"Repository name"`
	IssueNumber int    `json:"issue_number" jsonschema:"required" jsonschema_description:"Issue number to resolve"`
}

// GetIssueIDResult is the result of an issue ID lookup. The internal ID is
// the identifier sub-issue operations expect, distinct from the display
// number.
type GetIssueIDResult struct {
	ID      int64  `json:"id,omitempty"`
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
}

// AddSubIssuesArgs contains parameters for attaching sub-issues to a parent.
type AddSubIssuesArgs struct {
	Owner         string  `json:"owner" jsonschema:"required" jsonschema_description:"Repository owner (user or organization)"`
	Repo          string  `json:"repo" jsonschema:"required" jsonschema_description:"Repository name"`
	IssueNumber   int     `json:"issue_number" jsonschema:"required" jsonschema_description:"Parent issue number"`
	SubIssueIDs   []int64 `json:"sub_issue_ids" jsonschema:"required" jsonschema_description:"Internal issue IDs to attach (use the issue ID tool to resolve them from issue numbers)"`
	ReplaceParent bool    `json:"replace_parent,omitempty" jsonschema_description:"Move each sub-issue from its current parent to this one (default: false)"`
}

// SubIssueFailure records one failed attachment in a batch.
type SubIssueFailure struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// AddSubIssuesResult is the result of a batch attachment. The batch succeeds
// as an operation even when individual items fail; partial failure is
// reported, not escalated.
type AddSubIssuesResult struct {
	Owner       string            `json:"owner"`
	Repo        string            `json:"repo"`
	IssueNumber int               `json:"issue_number"`
	Added       []int64           `json:"added"`
	Failed      []SubIssueFailure `json:"failed,omitempty"`
	Total       int               `json:"total"`
	Message     string            `json:"message,omitempty"`
}
