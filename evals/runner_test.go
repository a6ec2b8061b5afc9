package evals

import (
	"path/filepath"
	"strings"
	"testing"
)

// MockToolSelector implements ToolSelector for testing
type MockToolSelector struct {
	// Responses maps input strings to tool selections
	Responses map[string]struct {
		Tool string
		Args map[string]any
	}
	// DefaultTool is returned if input isn't in Responses
	DefaultTool string
}

func (m *MockToolSelector) SelectTool(input string) (string, map[string]any, error) {
	if resp, ok := m.Responses[input]; ok {
		return resp.Tool, resp.Args, nil
	}
	return m.DefaultTool, nil, nil
}

// PerfectToolSelector returns the expected tool for each test
type PerfectToolSelector struct {
	suite *ToolSelectionSuite
}

func (p *PerfectToolSelector) SelectTool(input string) (string, map[string]any, error) {
	for _, test := range p.suite.Tests {
		if test.Input == input {
			return test.ExpectedTool, test.ExpectedArgs, nil
		}
	}
	return "", nil, nil
}

func TestLoadToolSelectionSuite(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join("testdata", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load tool selection suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}

	if len(suite.Tests) == 0 {
		t.Error("Suite should have tests")
	}

	for _, test := range suite.Tests {
		if test.ID == "" {
			t.Error("Test ID should not be empty")
		}
		if test.Input == "" {
			t.Errorf("Test %s input should not be empty", test.ID)
		}
		if test.ExpectedTool == "" {
			t.Errorf("Test %s expected tool should not be empty", test.ID)
		}
	}
}

func TestLoadConfusionPairSuite(t *testing.T) {
	suite, err := LoadConfusionPairSuite(filepath.Join("testdata", "confusion_pairs.json"))
	if err != nil {
		t.Fatalf("Failed to load confusion pair suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}

	if len(suite.Pairs) == 0 {
		t.Error("Suite should have confusion pairs")
	}

	for _, pair := range suite.Pairs {
		if pair.ID == "" {
			t.Error("Pair ID should not be empty")
		}
		if len(pair.Tools) < 2 {
			t.Errorf("Pair %s should have at least 2 tools", pair.ID)
		}
		if len(pair.Tests) == 0 {
			t.Errorf("Pair %s should have tests", pair.ID)
		}
	}
}

func TestLoadAllEvals(t *testing.T) {
	toolSelection, confusionPairs, err := LoadAllEvals("testdata")
	if err != nil {
		t.Fatalf("LoadAllEvals failed: %v", err)
	}
	if toolSelection == nil || confusionPairs == nil {
		t.Fatal("Expected all suites to be loaded")
	}
}

func TestLoadAllEvals_MissingDir(t *testing.T) {
	if _, _, err := LoadAllEvals("no-such-dir"); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestEvaluateToolSelection_Perfect(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join("testdata", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	metrics, results := EvaluateToolSelection(suite, &PerfectToolSelector{suite: suite})

	if metrics.Accuracy != 1.0 {
		t.Errorf("Perfect selector should score 1.0, got %.2f", metrics.Accuracy)
		for _, detail := range metrics.FailedDetails {
			t.Logf("failure: %s", detail)
		}
	}
	if len(results) != len(suite.Tests) {
		t.Errorf("Expected %d results, got %d", len(suite.Tests), len(results))
	}
}

func TestEvaluateToolSelection_WrongTool(t *testing.T) {
	suite := &ToolSelectionSuite{
		Tests: []ToolSelectionTest{
			{
				ID:           "t1",
				Category:     "issue",
				Input:        "list sub-issues of 5",
				ExpectedTool: "github_list_sub_issues",
				NotTools:     []string{"github_list_repository_issues"},
			},
		},
	}
	selector := &MockToolSelector{DefaultTool: "github_list_repository_issues"}

	metrics, results := EvaluateToolSelection(suite, selector)

	if metrics.PassedTests != 0 {
		t.Errorf("Expected 0 passed, got %d", metrics.PassedTests)
	}
	if len(results) != 1 || results[0].Passed {
		t.Error("Expected the single test to fail")
	}
	// Both the wrong-tool and forbidden-tool checks should fire
	if len(results[0].Errors) < 2 {
		t.Errorf("Expected wrong-tool and forbidden-tool errors, got %v", results[0].Errors)
	}
}

func TestEvaluateToolSelection_ArgumentChecks(t *testing.T) {
	suite := &ToolSelectionSuite{
		Tests: []ToolSelectionTest{
			{
				ID:            "t1",
				Category:      "sub-issue",
				Input:         "attach 111 to issue 5",
				ExpectedTool:  "github_add_sub_issues",
				ExpectedArgs:  map[string]any{"issue_number": 5, "sub_issue_ids": []any{111.0}},
				ForbiddenArgs: []string{"replace_parent"},
			},
		},
	}

	selector := &MockToolSelector{
		Responses: map[string]struct {
			Tool string
			Args map[string]any
		}{
			"attach 111 to issue 5": {
				Tool: "github_add_sub_issues",
				Args: map[string]any{
					"issue_number":   5.0,
					"sub_issue_ids":  []any{111.0},
					"replace_parent": true,
				},
			},
		},
	}

	metrics, results := EvaluateToolSelection(suite, selector)

	if metrics.PassedTests != 0 {
		t.Errorf("forbidden arg should fail the test, passed=%d", metrics.PassedTests)
	}
	if len(results[0].Errors) != 1 {
		t.Errorf("Expected exactly the forbidden-arg error, got %v", results[0].Errors)
	}
}

func TestEvaluateConfusionPairs(t *testing.T) {
	suite, err := LoadConfusionPairSuite(filepath.Join("testdata", "confusion_pairs.json"))
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	responses := make(map[string]struct {
		Tool string
		Args map[string]any
	})
	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			responses[test.Input] = struct {
				Tool string
				Args map[string]any
			}{Tool: test.Expected}
		}
	}

	metrics, _ := EvaluateConfusionPairs(suite, &MockToolSelector{Responses: responses})
	if metrics.Accuracy != 1.0 {
		t.Errorf("Expected accuracy 1.0, got %.2f", metrics.Accuracy)
	}

	// A selector that always answers the same tool must fail some pairs
	metrics, _ = EvaluateConfusionPairs(suite, &MockToolSelector{DefaultTool: "github_list_repository_issues"})
	if metrics.FailedTests == 0 {
		t.Error("Constant selector should fail at least one disambiguation test")
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"equal strings", "octocat", "octocat", true},
		{"different strings", "octocat", "other", false},
		{"int vs json float", 42, 42.0, true},
		{"int vs wrong float", 42, 43.0, false},
		{"both nil", nil, nil, true},
		{"one nil", "x", nil, false},
		{"equal slices", []any{1.0, 2.0}, []any{1.0, 2.0}, true},
		{"different length slices", []any{1.0}, []any{1.0, 2.0}, false},
		{"bools", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.expected, tt.actual); got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &EvalMetrics{
		TotalTests:  10,
		PassedTests: 8,
		FailedTests: 2,
		Accuracy:    0.8,
		ByCategory: map[string]*CategoryMetrics{
			"repository": {Total: 5, Passed: 4, Failed: 1},
		},
		FailedDetails: []string{"[t1] something: wrong tool"},
	}

	out := FormatMetrics(metrics, "Test Suite")
	for _, want := range []string{"Test Suite", "Total: 10 tests", "Passed: 8 (80.0%)", "repository", "wrong tool"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted output missing %q:\n%s", want, out)
		}
	}
}
