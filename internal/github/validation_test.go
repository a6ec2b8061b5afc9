package github

import (
	"strings"
	"testing"

	apierrors "github.com/amotarao/my-github-mcp-server/internal/errors"
)

func TestValidateOwner(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		wantErr bool
	}{
		{"simple", "octocat", false},
		{"with hyphen", "my-org", false},
		{"single char", "a", false},
		{"digits", "4chan", false},
		{"max length", strings.Repeat("a", 39), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 40), true},
		{"leading hyphen", "-octocat", true},
		{"trailing hyphen", "octocat-", true},
		{"space", "octo cat", true},
		{"slash", "octo/cat", true},
		{"underscore", "octo_cat", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOwner(tt.owner)
			if tt.wantErr && !apierrors.IsValidation(err) {
				t.Errorf("ValidateOwner(%q) = %v, want ValidationError", tt.owner, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateOwner(%q) = %v, want nil", tt.owner, err)
			}
		})
	}
}

func TestValidateRepo(t *testing.T) {
	tests := []struct {
		name    string
		repo    string
		wantErr bool
	}{
		{"simple", "hello-world", false},
		{"with dot", "my.repo", false},
		{"with underscore", "my_repo", false},
		{"max length", strings.Repeat("a", 100), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 101), true},
		{"space", "my repo", true},
		{"slash", "my/repo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepo(tt.repo)
			if tt.wantErr && !apierrors.IsValidation(err) {
				t.Errorf("ValidateRepo(%q) = %v, want ValidationError", tt.repo, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateRepo(%q) = %v, want nil", tt.repo, err)
			}
		})
	}
}

func TestValidateIssueNumber(t *testing.T) {
	if err := ValidateIssueNumber("issue_number", 1); err != nil {
		t.Errorf("issue number 1 should be valid: %v", err)
	}
	if err := ValidateIssueNumber("issue_number", 0); !apierrors.IsValidation(err) {
		t.Errorf("issue number 0 should fail, got %v", err)
	}
	if err := ValidateIssueNumber("pull_number", -5); !apierrors.IsValidation(err) {
		t.Errorf("negative number should fail, got %v", err)
	}
}

func TestValidateSearchQuery(t *testing.T) {
	if err := ValidateSearchQuery("mcp server language:go"); err != nil {
		t.Errorf("valid query rejected: %v", err)
	}
	if err := ValidateSearchQuery(""); !apierrors.IsValidation(err) {
		t.Errorf("empty query should fail, got %v", err)
	}
	if err := ValidateSearchQuery(strings.Repeat("x", MaxQueryLength+1)); !apierrors.IsValidation(err) {
		t.Errorf("overlong query should fail, got %v", err)
	}
	if err := ValidateSearchQuery(strings.Repeat("x", MaxQueryLength)); err != nil {
		t.Errorf("query at the limit should be valid: %v", err)
	}
}

func TestValidateSearchSort(t *testing.T) {
	for _, sort := range []string{"", "stars", "forks", "help-wanted-issues", "updated"} {
		if err := ValidateSearchSort(sort); err != nil {
			t.Errorf("sort %q should be valid: %v", sort, err)
		}
	}
	if err := ValidateSearchSort("trending"); !apierrors.IsValidation(err) {
		t.Errorf("unknown sort should fail, got %v", err)
	}
}

func TestValidateSearchOrder(t *testing.T) {
	if err := ValidateSearchOrder("asc"); err != nil {
		t.Errorf("asc should be valid: %v", err)
	}
	if err := ValidateSearchOrder("desc"); err != nil {
		t.Errorf("desc should be valid: %v", err)
	}
	if err := ValidateSearchOrder("random"); !apierrors.IsValidation(err) {
		t.Errorf("unknown order should fail, got %v", err)
	}
}

func TestValidateIssueState(t *testing.T) {
	for _, state := range []string{"open", "closed", "all"} {
		if err := ValidateIssueState(state); err != nil {
			t.Errorf("state %q should be valid: %v", state, err)
		}
	}
	if err := ValidateIssueState("merged"); !apierrors.IsValidation(err) {
		t.Errorf("unknown state should fail, got %v", err)
	}
}

func TestValidatePerPage(t *testing.T) {
	for _, n := range []int{1, 10, 100} {
		if err := ValidatePerPage(n); err != nil {
			t.Errorf("per_page %d should be valid: %v", n, err)
		}
	}
	for _, n := range []int{0, -1, 101} {
		if err := ValidatePerPage(n); !apierrors.IsValidation(err) {
			t.Errorf("per_page %d should fail, got %v", n, err)
		}
	}
}

func TestValidatePage(t *testing.T) {
	if err := ValidatePage(1); err != nil {
		t.Errorf("page 1 should be valid: %v", err)
	}
	if err := ValidatePage(0); !apierrors.IsValidation(err) {
		t.Errorf("page 0 should fail, got %v", err)
	}
}
