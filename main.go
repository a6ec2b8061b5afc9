// GitHub MCP Server - A Model Context Protocol server for the GitHub REST API
// Provides tools for reading repositories, issues, pull requests, users, and
// managing sub-issue relationships
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/amotarao/my-github-mcp-server/internal/github"
	"github.com/amotarao/my-github-mcp-server/tools"
	"github.com/amotarao/my-github-mcp-server/tracing"
	"github.com/kelseyhightower/envconfig"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "my-github-mcp-server"
	ServerVersion = "1.0.0"
)

// serverConfig selects the transport the MCP server listens on.
type serverConfig struct {
	// Transport is "stdio" or "http".
	Transport string `envconfig:"MCP_TRANSPORT" default:"stdio"`

	// HTTPAddr is the listen address for the http transport.
	HTTPAddr string `envconfig:"MCP_HTTP_ADDR" default:":8080"`
}

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := github.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var srvCfg serverConfig
	if err := envconfig.Process("", &srvCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Create GitHub client
	client := github.NewClient(config, github.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `GitHub MCP Server provides tools for reading GitHub repositories, issues, pull requests, and users, and for managing sub-issue relationships.

Available tools:
- github_get_repository_info: Get metadata for a repository
- github_search_repositories: Search repositories by keyword
- github_list_repository_issues: List issues in a repository
- github_get_pull_request: Get details for a pull request
- github_get_user_info: Get a user's public profile
- github_get_parent_of_sub_issue: Find the parent of a sub-issue
- github_list_sub_issues: List the sub-issues of a parent issue
- github_get_issue_id: Resolve an issue number to its global ID
- github_add_sub_issues: Attach issues as sub-issues of a parent

Configure via environment variables:
- GITHUB_TOKEN: Access token for authenticated requests (optional)
- GITHUB_API_URL: API origin, defaults to https://api.github.com`,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	logger.Info("Starting GitHub MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"transport", srvCfg.Transport,
		"api_url", config.BaseURL,
		"authenticated", config.HasToken(),
	)

	switch srvCfg.Transport {
	case "http":
		if err := runHTTP(server, srvCfg.HTTPAddr, logger); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	default:
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// runHTTP serves the MCP server over streamable HTTP alongside the
// Prometheus metrics and health endpoints.
func runHTTP(server *mcp.Server, addr string, logger *slog.Logger) error {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", tokenMiddleware(mcpHandler))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", handleHealthz)

	logger.Info("Listening", "addr", addr)
	return http.ListenAndServe(addr, mux)
}

// tokenMiddleware copies the per-request GitHub token header into the
// request context so each caller can use its own credentials.
func tokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.Header.Get("X-GitHub-Token"); token != "" {
			r = r.WithContext(github.WithRequestToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"name":    ServerName,
		"version": ServerVersion,
	})
}
