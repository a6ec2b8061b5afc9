package tools

// AllTools contains all tool specifications for the GitHub MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// REPOSITORY TOOLS
	// ==========================================================================
	{
		Name:     "github_get_repository_info",
		Method:   "GetRepository",
		Title:    "Get Repository Info",
		Category: "repository",
		Description: `Get metadata for a single GitHub repository.

USE WHEN: User asks "tell me about repo X", "how many stars does owner/repo have", "what language is X written in".

NOT FOR: Finding repositories by keyword (use github_search_repositories). Not for issues or pull requests.

PARAMETERS:
- owner: Repository owner login (required)
- repo: Repository name (required)

RETURNS: Full name, description, primary language, star/fork/watcher counts, open issues, license, and timestamps.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "github_search_repositories",
		Method:   "SearchRepositories",
		Title:    "Search Repositories",
		Category: "repository",
		Description: `Search GitHub repositories by keyword.

USE WHEN: User asks "find repositories about X", "what are popular X libraries", "search GitHub for X".

NOT FOR: Looking up a known repository by owner and name (use github_get_repository_info).

PARAMETERS:
- query: Search keywords, supports GitHub search qualifiers (required)
- sort: "stars", "forks", "help-wanted-issues", or "updated" (default: best match)
- order: "asc" or "desc" (default "desc")

RETURNS: Total match count and the top 10 repositories with stars and descriptions.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ISSUE TOOLS
	// ==========================================================================
	{
		Name:     "github_list_repository_issues",
		Method:   "ListIssues",
		Title:    "List Repository Issues",
		Category: "issue",
		Description: `List issues in a repository.

USE WHEN: User asks "what issues are open in X", "show recent issues", "list closed issues for owner/repo".

NOT FOR: Pull requests (use github_get_pull_request). Not for sub-issue relationships (use github_list_sub_issues).

PARAMETERS:
- owner: Repository owner login (required)
- repo: Repository name (required)
- state: "open" (default), "closed", or "all"
- per_page: Max issues to return, 1-100 (default 10)

RETURNS: Issue numbers, titles, states, authors, and labels.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "github_get_pull_request",
		Method:   "GetPullRequest",
		Title:    "Get Pull Request",
		Category: "issue",
		Description: `Get details for a single pull request.

USE WHEN: User asks "show me PR #N in X", "is pull request N merged", "what does PR N change".

NOT FOR: Regular issues (use github_list_repository_issues).

PARAMETERS:
- owner: Repository owner login (required)
- repo: Repository name (required)
- pull_number: Pull request number (required)

RETURNS: Title, state, author, branches, merge status, and change statistics.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// USER TOOLS
	// ==========================================================================
	{
		Name:     "github_get_user_info",
		Method:   "GetUser",
		Title:    "Get User Info",
		Category: "user",
		Description: `Get a GitHub user's public profile.

USE WHEN: User asks "who is X on GitHub", "how many followers does X have", "show X's profile".

NOT FOR: Repository details (use github_get_repository_info).

PARAMETERS:
- username: GitHub login (required)

RETURNS: Name, bio, company, location, follower counts, and public repository count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SUB-ISSUE TOOLS
	// ==========================================================================
	{
		Name:     "github_get_parent_of_sub_issue",
		Method:   "GetParentIssue",
		Title:    "Get Parent Issue",
		Category: "sub-issue",
		Description: `Find the parent issue of a sub-issue.

USE WHEN: User asks "what is the parent of issue #N", "which epic does issue N belong to".

NOT FOR: Listing children of an issue (use github_list_sub_issues).

PARAMETERS:
- owner: Repository owner login (required)
- repo: Repository name (required)
- issue_number: Sub-issue number (required)

RETURNS: The parent issue's number, title, and state, or a message when no parent exists.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "github_list_sub_issues",
		Method:   "ListSubIssues",
		Title:    "List Sub-Issues",
		Category: "sub-issue",
		Description: `List the sub-issues of a parent issue.

USE WHEN: User asks "what sub-issues does #N have", "show children of issue N", "list tasks under the epic".

NOT FOR: Finding the parent of an issue (use github_get_parent_of_sub_issue). Not for all repository issues (use github_list_repository_issues).

PARAMETERS:
- owner: Repository owner login (required)
- repo: Repository name (required)
- issue_number: Parent issue number (required)
- per_page: Max sub-issues per page, 1-100 (default 30)
- page: Page number (default 1)
- state: Filter by "open", "closed", or "all" (optional)
- labels: Comma-separated label names to filter by (optional)

RETURNS: Sub-issue numbers, titles, and states, or a message when none exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "github_get_issue_id",
		Method:   "GetIssueID",
		Title:    "Get Issue ID",
		Category: "sub-issue",
		Description: `Resolve an issue number to its global numeric ID.

USE WHEN: Preparing sub-issue IDs for github_add_sub_issues, which requires global IDs rather than issue numbers.

NOT FOR: Issue details or content (use github_list_repository_issues).

PARAMETERS:
- owner: Repository owner login (required)
- repo: Repository name (required)
- issue_number: Issue number (required)

RETURNS: The issue's global numeric ID, or a message when the issue does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "github_add_sub_issues",
		Method:   "AddSubIssues",
		Title:    "Add Sub-Issues",
		Category: "sub-issue",
		Description: `Attach existing issues as sub-issues of a parent issue.

USE WHEN: User says "make issues X and Y sub-issues of #N", "add these tasks under the epic".

NOT FOR: Creating new issues. Sub-issue IDs are global numeric IDs; resolve issue numbers with github_get_issue_id first.

PARAMETERS:
- owner: Repository owner login (required)
- repo: Repository name (required)
- issue_number: Parent issue number (required)
- sub_issue_ids: Global numeric IDs of issues to attach (required)
- replace_parent: Re-parent issues that already have a parent (default false)

RETURNS: A per-issue summary of which attachments succeeded and which failed, with reasons.`,
		ReadOnly:   false,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByCategory returns the tool specs in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
