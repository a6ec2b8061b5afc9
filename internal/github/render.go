package github

import (
	"fmt"
	"strings"
)

// Text rendering for tool results. Every result type renders to a single
// human-readable block; the tools package wraps it into MCP text content.

// RenderText renders a repository lookup.
func (r GetRepositoryResult) RenderText() string {
	repo := r.Repository
	var sb strings.Builder
	fmt.Fprintf(&sb, "Repository: %s\n", repo.FullName)
	if repo.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", repo.Description)
	}
	if repo.Language != "" {
		fmt.Fprintf(&sb, "Language: %s\n", repo.Language)
	}
	fmt.Fprintf(&sb, "Stars: %d\n", repo.StargazersCount)
	fmt.Fprintf(&sb, "Forks: %d\n", repo.ForksCount)
	fmt.Fprintf(&sb, "Open issues: %d\n", repo.OpenIssuesCount)
	fmt.Fprintf(&sb, "Default branch: %s\n", repo.DefaultBranch)
	if repo.License != nil && repo.License.Name != "" {
		fmt.Fprintf(&sb, "License: %s\n", repo.License.Name)
	}
	if len(repo.Topics) > 0 {
		fmt.Fprintf(&sb, "Topics: %s\n", strings.Join(repo.Topics, ", "))
	}
	if repo.Archived {
		sb.WriteString("Archived: yes\n")
	}
	fmt.Fprintf(&sb, "URL: %s", repo.HTMLURL)
	return sb.String()
}

// RenderText renders an issue listing, or the no-results message.
func (r ListIssuesResult) RenderText() string {
	if r.Message != "" {
		return r.Message
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d %s issue(s) in %s/%s:\n", len(r.Issues), r.State, r.Owner, r.Repo)
	for _, issue := range r.Issues {
		sb.WriteString("\n")
		sb.WriteString(renderIssueLine(issue))
	}
	return sb.String()
}

// renderIssueLine renders one issue as a short multi-line entry.
func renderIssueLine(issue Issue) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d: %s [%s]\n", issue.Number, issue.Title, issue.State)
	fmt.Fprintf(&sb, "  Author: %s", issue.User.Login)
	if len(issue.Labels) > 0 {
		names := make([]string, 0, len(issue.Labels))
		for _, l := range issue.Labels {
			names = append(names, l.Name)
		}
		fmt.Fprintf(&sb, " | Labels: %s", strings.Join(names, ", "))
	}
	if issue.Comments > 0 {
		fmt.Fprintf(&sb, " | Comments: %d", issue.Comments)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %s\n", issue.HTMLURL)
	return sb.String()
}

// RenderText renders a pull request lookup.
func (r GetPullRequestResult) RenderText() string {
	pr := r.PullRequest
	var sb strings.Builder
	fmt.Fprintf(&sb, "Pull request #%d: %s\n", pr.Number, pr.Title)
	state := pr.State
	if pr.Merged {
		state = "merged"
	} else if pr.Draft {
		state = "draft"
	}
	fmt.Fprintf(&sb, "State: %s\n", state)
	fmt.Fprintf(&sb, "Author: %s\n", pr.User.Login)
	fmt.Fprintf(&sb, "Branch: %s -> %s\n", pr.Head.Ref, pr.Base.Ref)
	fmt.Fprintf(&sb, "Commits: %d | +%d -%d in %d file(s)\n", pr.Commits, pr.Additions, pr.Deletions, pr.ChangedFiles)
	if pr.Comments > 0 || pr.ReviewComments > 0 {
		fmt.Fprintf(&sb, "Comments: %d | Review comments: %d\n", pr.Comments, pr.ReviewComments)
	}
	if pr.Body != "" {
		fmt.Fprintf(&sb, "\n%s\n", pr.Body)
	}
	fmt.Fprintf(&sb, "URL: %s", pr.HTMLURL)
	return sb.String()
}

// RenderText renders a repository search.
func (r SearchRepositoriesResult) RenderText() string {
	if len(r.Repositories) == 0 {
		return fmt.Sprintf("No repositories found for query: %s", r.Query)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d repositories (showing %d):\n", r.TotalCount, len(r.Repositories))
	for _, repo := range r.Repositories {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%s (%d stars)\n", repo.FullName, repo.StargazersCount)
		if repo.Description != "" {
			fmt.Fprintf(&sb, "  %s\n", repo.Description)
		}
		if repo.Language != "" {
			fmt.Fprintf(&sb, "  Language: %s\n", repo.Language)
		}
		fmt.Fprintf(&sb, "  %s\n", repo.HTMLURL)
	}
	return sb.String()
}

// RenderText renders a user lookup.
func (r GetUserResult) RenderText() string {
	u := r.User
	var sb strings.Builder
	fmt.Fprintf(&sb, "User: %s", u.Login)
	if u.Name != "" {
		fmt.Fprintf(&sb, " (%s)", u.Name)
	}
	sb.WriteString("\n")
	if u.Bio != "" {
		fmt.Fprintf(&sb, "Bio: %s\n", u.Bio)
	}
	if u.Company != "" {
		fmt.Fprintf(&sb, "Company: %s\n", u.Company)
	}
	if u.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", u.Location)
	}
	fmt.Fprintf(&sb, "Public repos: %d | Followers: %d | Following: %d\n", u.PublicRepos, u.Followers, u.Following)
	fmt.Fprintf(&sb, "URL: %s", u.HTMLURL)
	return sb.String()
}

// RenderText renders a parent issue lookup, or the no-parent message.
func (r GetParentIssueResult) RenderText() string {
	if !r.Found {
		return r.Message
	}
	var sb strings.Builder
	sb.WriteString("Parent issue:\n")
	sb.WriteString(renderIssueLine(*r.Parent))
	fmt.Fprintf(&sb, "  Internal ID: %d", r.Parent.ID)
	return sb.String()
}

// RenderText renders a sub-issue listing, or the informational message.
func (r ListSubIssuesResult) RenderText() string {
	if !r.Found {
		return r.Message
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d sub-issue(s):\n", len(r.SubIssues))
	for _, issue := range r.SubIssues {
		sb.WriteString("\n")
		sb.WriteString(renderIssueLine(issue))
		fmt.Fprintf(&sb, "  Internal ID: %d\n", issue.ID)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderText renders an issue ID lookup, or the not-found message. On
// success only the internal identifier is reported.
func (r GetIssueIDResult) RenderText() string {
	if !r.Found {
		return r.Message
	}
	return fmt.Sprintf("%d", r.ID)
}

// RenderText renders the batch attachment summary: the success count over
// the total, then every success and every failure by identifier.
func (r AddSubIssuesResult) RenderText() string {
	if r.Message != "" {
		return r.Message
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Added %d/%d sub-issue(s) to %s/%s#%d.\n", len(r.Added), r.Total, r.Owner, r.Repo, r.IssueNumber)
	if len(r.Added) > 0 {
		sb.WriteString("\nSucceeded:\n")
		for _, id := range r.Added {
			fmt.Fprintf(&sb, "  - %d\n", id)
		}
	}
	if len(r.Failed) > 0 {
		sb.WriteString("\nFailed:\n")
		for _, f := range r.Failed {
			fmt.Fprintf(&sb, "  - %d: %s\n", f.ID, f.Reason)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
