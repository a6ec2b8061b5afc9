package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/amotarao/my-github-mcp-server/internal/github"
	"github.com/amotarao/my-github-mcp-server/metrics"
	"github.com/amotarao/my-github-mcp-server/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *github.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *github.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetRepository":
		register(h, server, tool, spec, h.client.GetRepositoryMCP)
	case "ListIssues":
		register(h, server, tool, spec, h.client.ListIssuesMCP)
	case "GetPullRequest":
		register(h, server, tool, spec, h.client.GetPullRequestMCP)
	case "SearchRepositories":
		register(h, server, tool, spec, h.client.SearchRepositoriesMCP)
	case "GetUser":
		register(h, server, tool, spec, h.client.GetUserMCP)
	case "GetParentIssue":
		register(h, server, tool, spec, h.client.GetParentIssueMCP)
	case "ListSubIssues":
		register(h, server, tool, spec, h.client.ListSubIssuesMCP)
	case "GetIssueID":
		register(h, server, tool, spec, h.client.GetIssueIDMCP)
	case "AddSubIssues":
		register(h, server, tool, spec, h.client.AddSubIssuesMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// textResult is satisfied by every client result type. Tool output is
// rendered to plain text for the model; the typed result is returned
// as structured content alongside it.
type textResult interface {
	RenderText() string
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args any, Result textResult](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.RenderText()}},
		}, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case github.GetRepositoryArgs:
		attrs = append(attrs, "owner", a.Owner, "repo", a.Repo)
	case github.ListIssuesArgs:
		attrs = append(attrs, "owner", a.Owner, "repo", a.Repo, "state", a.State)
	case github.GetPullRequestArgs:
		attrs = append(attrs, "owner", a.Owner, "repo", a.Repo, "pull_number", a.PullNumber)
	case github.SearchRepositoriesArgs:
		attrs = append(attrs, "query", a.Query)
	case github.GetUserArgs:
		attrs = append(attrs, "username", a.Username)
	case github.GetParentIssueArgs:
		attrs = append(attrs, "owner", a.Owner, "repo", a.Repo, "issue_number", a.IssueNumber)
	case github.ListSubIssuesArgs:
		attrs = append(attrs, "owner", a.Owner, "repo", a.Repo, "issue_number", a.IssueNumber)
	case github.GetIssueIDArgs:
		attrs = append(attrs, "owner", a.Owner, "repo", a.Repo, "issue_number", a.IssueNumber)
	case github.AddSubIssuesArgs:
		attrs = append(attrs, "owner", a.Owner, "repo", a.Repo, "issue_number", a.IssueNumber, "sub_issues", len(a.SubIssueIDs))
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case github.ListIssuesResult:
		attrs = append(attrs, "issues", len(r.Issues))
	case github.SearchRepositoriesResult:
		attrs = append(attrs, "results_count", len(r.Repositories), "total_results", r.TotalCount)
	case github.GetParentIssueResult:
		attrs = append(attrs, "found", r.Found)
	case github.ListSubIssuesResult:
		attrs = append(attrs, "found", r.Found, "sub_issues", len(r.SubIssues))
	case github.GetIssueIDResult:
		attrs = append(attrs, "found", r.Found)
	case github.AddSubIssuesResult:
		attrs = append(attrs, "added", len(r.Added), "failed", len(r.Failed))
	}

	h.logger.Info("Tool executed", attrs...)
}
