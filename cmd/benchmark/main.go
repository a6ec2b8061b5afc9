// Command benchmark measures GitHub API latency through the MCP client.
// It is a manual probe, not part of the test suite; it needs network access
// and benefits from a GITHUB_TOKEN to avoid the low unauthenticated quota.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/amotarao/my-github-mcp-server/internal/github"
)

// measureLookupLatency times single repository and user lookups, showing the
// effect of connection reuse on the second call.
func measureLookupLatency(client *github.Client) {
	ctx := context.Background()

	fmt.Println("=== Lookup Latency ===")
	fmt.Println()

	args := github.GetRepositoryArgs{Owner: "golang", Repo: "go"}

	start := time.Now()
	_, err := client.GetRepositoryMCP(ctx, args)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("1. GetRepository (cold connection): %v\n", firstCall)

	start = time.Now()
	_, _ = client.GetRepositoryMCP(ctx, args)
	secondCall := time.Since(start)
	fmt.Printf("2. GetRepository (reused connection): %v\n", secondCall)
	fmt.Println()

	start = time.Now()
	_, err = client.GetUserMCP(ctx, github.GetUserArgs{Username: "octocat"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("3. GetUser: %v\n", time.Since(start))
	fmt.Println()
}

// measureSearchLatency times a repository search, the slowest read endpoint.
func measureSearchLatency(client *github.Client) {
	ctx := context.Background()

	fmt.Println("=== Search Latency ===")
	fmt.Println()

	start := time.Now()
	result, err := client.SearchRepositoriesMCP(ctx, github.SearchRepositoriesArgs{Query: "mcp server language:go"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("4. SearchRepositories: %v (%d total matches)\n", time.Since(start), result.TotalCount)
	fmt.Println()
}

// measureListLatency times an issue listing at the default page size.
func measureListLatency(client *github.Client) {
	ctx := context.Background()

	fmt.Println("=== Listing Latency ===")
	fmt.Println()

	start := time.Now()
	result, err := client.ListIssuesMCP(ctx, github.ListIssuesArgs{Owner: "golang", Repo: "go"})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("5. ListIssues: %v (%d issues)\n", time.Since(start), len(result.Issues))
	fmt.Println()
}

func main() {
	fmt.Println("GitHub MCP Server - Latency Measurements")
	fmt.Println("=========================================")
	fmt.Println()

	config, err := github.LoadConfig()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}
	if !config.HasToken() {
		fmt.Println("Note: no GITHUB_TOKEN set, running against the unauthenticated quota.")
		fmt.Println()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := github.NewClient(config, github.WithLogger(logger))

	measureLookupLatency(client)
	measureSearchLatency(client)
	measureListLatency(client)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Every tool call maps to exactly one API request; latency above is")
	fmt.Println("dominated by the remote API. Connection reuse (HTTP/2 + pooling)")
	fmt.Println("trims the per-call overhead after the first request.")
}
