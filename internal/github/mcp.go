package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	apierrors "github.com/amotarao/my-github-mcp-server/internal/errors"
)

// MCP tool wrapper methods. Each wraps one REST call with argument
// validation, endpoint construction, and error translation. Three
// relationship lookups translate a remote 404 into a soft informational
// result instead of an error; everything else propagates typed failures.

const (
	defaultIssueState       = "open"
	defaultIssuesPerPage    = 10
	defaultSubIssuesPerPage = 30
	searchPerPage           = 10
	defaultSearchOrder      = "desc"
)

// repoPath builds the /repos/{owner}/{repo} prefix with path segments
// percent-encoded.
func repoPath(owner, repo string) string {
	return "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo)
}

// GetRepositoryMCP looks up a repository.
func (c *Client) GetRepositoryMCP(ctx context.Context, args GetRepositoryArgs) (GetRepositoryResult, error) {
	if err := ValidateOwner(args.Owner); err != nil {
		return GetRepositoryResult{}, err
	}
	if err := ValidateRepo(args.Repo); err != nil {
		return GetRepositoryResult{}, err
	}

	var repo Repository
	if err := c.get(ctx, "get_repository", repoPath(args.Owner, args.Repo), &repo); err != nil {
		if apierrors.IsNotFound(err) {
			return GetRepositoryResult{}, apierrors.NewNotFoundError("repository", args.Owner+"/"+args.Repo)
		}
		return GetRepositoryResult{}, err
	}

	return GetRepositoryResult{Repository: &repo}, nil
}

// ListIssuesMCP lists issues in a repository. An empty result is an
// informational outcome, not an error.
func (c *Client) ListIssuesMCP(ctx context.Context, args ListIssuesArgs) (ListIssuesResult, error) {
	if err := ValidateOwner(args.Owner); err != nil {
		return ListIssuesResult{}, err
	}
	if err := ValidateRepo(args.Repo); err != nil {
		return ListIssuesResult{}, err
	}

	state := args.State
	if state == "" {
		state = defaultIssueState
	}
	if err := ValidateIssueState(state); err != nil {
		return ListIssuesResult{}, err
	}

	perPage := args.PerPage
	if perPage == 0 {
		perPage = defaultIssuesPerPage
	}
	if err := ValidatePerPage(perPage); err != nil {
		return ListIssuesResult{}, err
	}

	params := url.Values{}
	params.Set("state", state)
	params.Set("per_page", strconv.Itoa(perPage))

	var issues []Issue
	if err := c.get(ctx, "list_issues", repoPath(args.Owner, args.Repo)+"/issues?"+params.Encode(), &issues); err != nil {
		if apierrors.IsNotFound(err) {
			return ListIssuesResult{}, apierrors.NewNotFoundError("repository", args.Owner+"/"+args.Repo)
		}
		return ListIssuesResult{}, err
	}

	result := ListIssuesResult{
		Issues: issues,
		Owner:  args.Owner,
		Repo:   args.Repo,
		State:  state,
	}
	if len(issues) == 0 {
		result.Message = fmt.Sprintf("No %s issues found in %s/%s.", state, args.Owner, args.Repo)
	}
	return result, nil
}

// GetPullRequestMCP looks up a pull request.
func (c *Client) GetPullRequestMCP(ctx context.Context, args GetPullRequestArgs) (GetPullRequestResult, error) {
	if err := ValidateOwner(args.Owner); err != nil {
		return GetPullRequestResult{}, err
	}
	if err := ValidateRepo(args.Repo); err != nil {
		return GetPullRequestResult{}, err
	}
	if err := ValidateIssueNumber("pull_number", args.PullNumber); err != nil {
		return GetPullRequestResult{}, err
	}

	path := fmt.Sprintf("%s/pulls/%d", repoPath(args.Owner, args.Repo), args.PullNumber)
	var pr PullRequest
	if err := c.get(ctx, "get_pull_request", path, &pr); err != nil {
		if apierrors.IsNotFound(err) {
			return GetPullRequestResult{}, apierrors.NewNotFoundError("pull request",
				fmt.Sprintf("%s/%s#%d", args.Owner, args.Repo, args.PullNumber))
		}
		return GetPullRequestResult{}, err
	}

	return GetPullRequestResult{PullRequest: &pr}, nil
}

// SearchRepositoriesMCP searches repositories. The sort parameter is sent
// only when supplied; the order defaults to descending.
func (c *Client) SearchRepositoriesMCP(ctx context.Context, args SearchRepositoriesArgs) (SearchRepositoriesResult, error) {
	if err := ValidateSearchQuery(args.Query); err != nil {
		return SearchRepositoriesResult{}, err
	}
	if err := ValidateSearchSort(args.Sort); err != nil {
		return SearchRepositoriesResult{}, err
	}

	order := args.Order
	if order == "" {
		order = defaultSearchOrder
	}
	if err := ValidateSearchOrder(order); err != nil {
		return SearchRepositoriesResult{}, err
	}

	params := url.Values{}
	params.Set("q", args.Query)
	if args.Sort != "" {
		params.Set("sort", args.Sort)
	}
	params.Set("order", order)
	params.Set("per_page", strconv.Itoa(searchPerPage))

	var resp SearchRepositoriesResponse
	if err := c.get(ctx, "search_repositories", "/search/repositories?"+params.Encode(), &resp); err != nil {
		return SearchRepositoriesResult{}, err
	}

	return SearchRepositoriesResult{
		TotalCount:   resp.TotalCount,
		Repositories: resp.Items,
		Query:        args.Query,
	}, nil
}

// GetUserMCP looks up a user.
func (c *Client) GetUserMCP(ctx context.Context, args GetUserArgs) (GetUserResult, error) {
	if err := ValidateUsername(args.Username); err != nil {
		return GetUserResult{}, err
	}

	var user User
	if err := c.get(ctx, "get_user", "/users/"+url.PathEscape(args.Username), &user); err != nil {
		if apierrors.IsNotFound(err) {
			return GetUserResult{}, apierrors.NewNotFoundError("user", args.Username)
		}
		return GetUserResult{}, err
	}

	return GetUserResult{User: &user}, nil
}

// GetParentIssueMCP looks up the parent of a sub-issue. A 404 means the
// issue has no parent and yields a soft informational result.
func (c *Client) GetParentIssueMCP(ctx context.Context, args GetParentIssueArgs) (GetParentIssueResult, error) {
	if err := validateIssueRef(args.Owner, args.Repo, args.IssueNumber); err != nil {
		return GetParentIssueResult{}, err
	}

	path := fmt.Sprintf("%s/issues/%d/parent", repoPath(args.Owner, args.Repo), args.IssueNumber)
	var parent Issue
	if err := c.get(ctx, "get_parent_issue", path, &parent); err != nil {
		if apierrors.IsNotFound(err) {
			return GetParentIssueResult{
				Found:   false,
				Message: fmt.Sprintf("No parent issue found for %s/%s#%d.", args.Owner, args.Repo, args.IssueNumber),
			}, nil
		}
		return GetParentIssueResult{}, err
	}

	return GetParentIssueResult{Parent: &parent, Found: true}, nil
}

// ListSubIssuesMCP lists the sub-issues of an issue. Both a 404 and an
// empty list yield soft informational results.
func (c *Client) ListSubIssuesMCP(ctx context.Context, args ListSubIssuesArgs) (ListSubIssuesResult, error) {
	if err := validateIssueRef(args.Owner, args.Repo, args.IssueNumber); err != nil {
		return ListSubIssuesResult{}, err
	}

	perPage := args.PerPage
	if perPage == 0 {
		perPage = defaultSubIssuesPerPage
	}
	if err := ValidatePerPage(perPage); err != nil {
		return ListSubIssuesResult{}, err
	}

	page := args.Page
	if page == 0 {
		page = 1
	}
	if err := ValidatePage(page); err != nil {
		return ListSubIssuesResult{}, err
	}

	if args.State != "" {
		if err := ValidateIssueState(args.State); err != nil {
			return ListSubIssuesResult{}, err
		}
	}

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	if args.State != "" {
		params.Set("state", args.State)
	}
	if args.Labels != "" {
		params.Set("labels", args.Labels)
	}

	path := fmt.Sprintf("%s/issues/%d/sub_issues?%s", repoPath(args.Owner, args.Repo), args.IssueNumber, params.Encode())
	var subIssues []Issue
	if err := c.get(ctx, "list_sub_issues", path, &subIssues); err != nil {
		if apierrors.IsNotFound(err) {
			return ListSubIssuesResult{
				Found:   false,
				Message: fmt.Sprintf("Issue %s/%s#%d not found or has no sub-issues.", args.Owner, args.Repo, args.IssueNumber),
			}, nil
		}
		return ListSubIssuesResult{}, err
	}

	if len(subIssues) == 0 {
		return ListSubIssuesResult{
			Found:   false,
			Message: fmt.Sprintf("Issue %s/%s#%d has no sub-issues.", args.Owner, args.Repo, args.IssueNumber),
		}, nil
	}

	return ListSubIssuesResult{SubIssues: subIssues, Found: true}, nil
}

// GetIssueIDMCP resolves an issue's internal ID from its display number.
// A 404 yields a soft not-found result.
func (c *Client) GetIssueIDMCP(ctx context.Context, args GetIssueIDArgs) (GetIssueIDResult, error) {
	if err := validateIssueRef(args.Owner, args.Repo, args.IssueNumber); err != nil {
		return GetIssueIDResult{}, err
	}

	path := fmt.Sprintf("%s/issues/%d", repoPath(args.Owner, args.Repo), args.IssueNumber)
	var issue Issue
	if err := c.get(ctx, "get_issue_id", path, &issue); err != nil {
		if apierrors.IsNotFound(err) {
			return GetIssueIDResult{
				Found:   false,
				Message: fmt.Sprintf("Issue %s/%s#%d not found.", args.Owner, args.Repo, args.IssueNumber),
			}, nil
		}
		return GetIssueIDResult{}, err
	}

	return GetIssueIDResult{ID: issue.ID, Found: true}, nil
}

// AddSubIssuesMCP attaches a batch of sub-issues to a parent issue. Items
// are processed strictly in input order, one write call per identifier; a
// failed item never aborts the remaining ones, and the batch itself always
// completes without error.
func (c *Client) AddSubIssuesMCP(ctx context.Context, args AddSubIssuesArgs) (AddSubIssuesResult, error) {
	if err := validateIssueRef(args.Owner, args.Repo, args.IssueNumber); err != nil {
		return AddSubIssuesResult{}, err
	}

	if len(args.SubIssueIDs) == 0 {
		return AddSubIssuesResult{
			Owner:       args.Owner,
			Repo:        args.Repo,
			IssueNumber: args.IssueNumber,
			Message:     "No sub-issue IDs provided. Pass at least one internal issue ID in sub_issue_ids.",
		}, nil
	}

	path := fmt.Sprintf("%s/issues/%d/sub_issues", repoPath(args.Owner, args.Repo), args.IssueNumber)
	result := AddSubIssuesResult{
		Owner:       args.Owner,
		Repo:        args.Repo,
		IssueNumber: args.IssueNumber,
		Total:       len(args.SubIssueIDs),
	}

	for _, id := range args.SubIssueIDs {
		body := map[string]any{"sub_issue_id": id}
		if args.ReplaceParent {
			body["replace_parent"] = true
		}

		var out Issue
		if err := c.post(ctx, "add_sub_issue", path, body, &out); err != nil {
			result.Failed = append(result.Failed, SubIssueFailure{ID: id, Reason: err.Error()})
			continue
		}
		result.Added = append(result.Added, id)
	}

	return result, nil
}

// validateIssueRef validates the owner/repo/issue_number triple shared by
// the issue relationship tools.
func validateIssueRef(owner, repo string, issueNumber int) error {
	if err := ValidateOwner(owner); err != nil {
		return err
	}
	if err := ValidateRepo(repo); err != nil {
		return err
	}
	return ValidateIssueNumber("issue_number", issueNumber)
}
