package github

import (
	"fmt"
	"regexp"

	apierrors "github.com/amotarao/my-github-mcp-server/internal/errors"
)

// ownerRegex matches GitHub user and organization names: alphanumerics and
// hyphens, not leading or trailing, up to 39 characters.
var ownerRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

// repoRegex matches repository names: alphanumerics, hyphens, underscores,
// and dots.
var repoRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)

// MaxQueryLength is the maximum allowed search query length.
const MaxQueryLength = 256

// ValidateOwner validates a repository owner (user or organization) name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return apierrors.NewValidationError("owner", "", "owner is required")
	}
	if !ownerRegex.MatchString(owner) {
		return apierrors.NewValidationError("owner", owner, "must contain only alphanumerics and inner hyphens")
	}
	return nil
}

// ValidateRepo validates a repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return apierrors.NewValidationError("repo", "", "repo is required")
	}
	if !repoRegex.MatchString(repo) {
		return apierrors.NewValidationError("repo", repo, "must contain only alphanumerics, dots, hyphens, and underscores")
	}
	return nil
}

// ValidateIssueNumber validates an issue or pull request display number.
func ValidateIssueNumber(field string, number int) error {
	if number <= 0 {
		return apierrors.NewValidationError(field, fmt.Sprintf("%d", number), "must be a positive integer")
	}
	return nil
}

// ValidateUsername validates a GitHub username.
func ValidateUsername(username string) error {
	if username == "" {
		return apierrors.NewValidationError("username", "", "username is required")
	}
	if !ownerRegex.MatchString(username) {
		return apierrors.NewValidationError("username", username, "must contain only alphanumerics and inner hyphens")
	}
	return nil
}

// ValidateSearchQuery validates a repository search query.
func ValidateSearchQuery(query string) error {
	if query == "" {
		return apierrors.NewValidationError("query", "", "search query is required")
	}
	if len(query) > MaxQueryLength {
		return apierrors.NewValidationError("query", query, fmt.Sprintf("exceeds maximum length of %d characters", MaxQueryLength))
	}
	return nil
}

// validSearchSorts are the sort keys accepted by /search/repositories.
var validSearchSorts = map[string]bool{
	"stars":              true,
	"forks":              true,
	"help-wanted-issues": true,
	"updated":            true,
}

// ValidateSearchSort validates the optional search sort key. Empty means the
// API's default relevance ordering.
func ValidateSearchSort(sort string) error {
	if sort == "" {
		return nil
	}
	if !validSearchSorts[sort] {
		return apierrors.NewValidationError("sort", sort, "must be one of stars, forks, help-wanted-issues, updated")
	}
	return nil
}

// ValidateSearchOrder validates the search result ordering.
func ValidateSearchOrder(order string) error {
	if order != "asc" && order != "desc" {
		return apierrors.NewValidationError("order", order, "must be asc or desc")
	}
	return nil
}

// ValidateIssueState validates an issue state filter.
func ValidateIssueState(state string) error {
	if state != "open" && state != "closed" && state != "all" {
		return apierrors.NewValidationError("state", state, "must be open, closed, or all")
	}
	return nil
}

// ValidatePerPage validates a page size.
func ValidatePerPage(perPage int) error {
	if perPage < 1 || perPage > 100 {
		return apierrors.NewValidationError("per_page", fmt.Sprintf("%d", perPage), "must be between 1 and 100")
	}
	return nil
}

// ValidatePage validates a page index.
func ValidatePage(page int) error {
	if page < 1 {
		return apierrors.NewValidationError("page", fmt.Sprintf("%d", page), "must be at least 1")
	}
	return nil
}
