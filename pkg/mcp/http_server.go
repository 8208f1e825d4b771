package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// HTTPConfig extends Config with HTTP-specific settings.
type HTTPConfig struct {
	Config

	// Addr is the address to listen on (e.g., ":8080" or "localhost:8080").
	Addr string

	// TLSCertFile is the path to the TLS certificate file (for HTTPS).
	TLSCertFile string

	// TLSKeyFile is the path to the TLS key file (for HTTPS).
	TLSKeyFile string

	// EndpointPath is the path for the MCP endpoint (default: "/mcp").
	EndpointPath string

	// EnableCORS enables CORS headers for browser-based clients.
	EnableCORS bool

	// AllowedOrigins is a list of allowed CORS origins (if EnableCORS is true).
	// If empty, allows all origins.
	AllowedOrigins []string
}

func (cfg HTTPConfig) endpointPath() string {
	if cfg.EndpointPath == "" {
		return "/mcp"
	}
	return cfg.EndpointPath
}

func debugHooks() *mcpserver.Hooks {
	hooks := &mcpserver.Hooks{}
	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any) {
		msgJSON, _ := json.Marshal(message)
		slog.Debug("mcp request", "id", id, "method", method, "message", string(msgJSON))
	})
	hooks.AddOnSuccess(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any, result any) {
		resultJSON, _ := json.Marshal(result)
		slog.Debug("mcp success", "id", id, "method", method, "result", string(resultJSON))
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any, err error) {
		slog.Debug("mcp error", "id", id, "method", method, "error", err)
	})
	return hooks
}

// NewHTTPHandler returns the HTTP handler serving the MCP endpoint, wrapped
// in CORS handling when enabled.
func NewHTTPHandler(cfg HTTPConfig) (http.Handler, error) {
	mcpServer, err := NewServer(cfg.Config, mcpserver.WithHooks(debugHooks()))
	if err != nil {
		return nil, err
	}

	endpointPath := cfg.endpointPath()

	streamable := mcpserver.NewStreamableHTTPServer(
		mcpServer,
		mcpserver.WithEndpointPath(endpointPath),
	)

	var handler http.Handler = streamable
	if cfg.EnableCORS {
		handler = corsMiddleware(cfg.AllowedOrigins)(handler)
	}

	mux := http.NewServeMux()
	mux.Handle(endpointPath, handler)
	return mux, nil
}

// RunHTTPServer starts the MCP server over streamable HTTP transport and
// shuts it down when ctx is cancelled.
func RunHTTPServer(ctx context.Context, cfg HTTPConfig) error {
	handler, err := NewHTTPHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // No timeout for SSE streaming
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("starting MCP HTTP server",
		"addr", cfg.Addr,
		"endpoint", cfg.endpointPath(),
		"tls", cfg.TLSCertFile != "",
		"cors", cfg.EnableCORS,
	)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		slog.Info("shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("error shutting down server", "error", err)
		}
	}()

	var serverErr error
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		serverErr = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		serverErr = server.ListenAndServe()
	}

	if serverErr != nil && serverErr != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", serverErr)
	}

	return nil
}

// corsMiddleware adds CORS headers to responses.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Check if origin is allowed
			allowed := len(allowedOrigins) == 0 // Allow all if empty
			for _, o := range allowedOrigins {
				if o == origin || o == "*" {
					allowed = true
					break
				}
			}

			if allowed && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id")
				w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
