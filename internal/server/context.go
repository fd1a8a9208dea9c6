package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kuali/docs-mcp/internal/docs"
	"github.com/kuali/docs-mcp/internal/google"
	"github.com/kuali/docs-mcp/internal/instrumentation"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	docsClient  *docs.Client
	docsConfig  docs.Config
	credentials google.CredentialsProvider
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	mu          sync.RWMutex
	shutdown    bool
}

// NewServerContext creates a new server context. The Docs client is created
// lazily on first use so the server can start before credentials are
// configured.
func NewServerContext(ctx context.Context, credentials google.CredentialsProvider, docsConfig docs.Config) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:         shutdownCtx,
		cancel:      cancel,
		docsConfig:  docsConfig,
		credentials: credentials,
		shutdown:    false,
	}

	// Try to create the client eagerly when credentials are already present,
	// but don't fail startup if they are missing.
	if google.HasCredentials(credentials) {
		client, err := sc.newDocsClient()
		if err != nil {
			slog.Warn("failed to create Docs client at startup, will retry on first use", "error", err)
		} else {
			sc.docsClient = client
		}
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

func (sc *ServerContext) newDocsClient() (*docs.Client, error) {
	httpClient, err := google.NewHTTPClient(sc.ctx, sc.credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	client, err := docs.NewClient(sc.ctx, httpClient, sc.docsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs client: %w", err)
	}

	return client, nil
}

// DocsClient returns the Docs client, creating and caching it on first use.
// Returns an error if credentials are missing or invalid.
func (sc *ServerContext) DocsClient() (*docs.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.docsClient != nil {
		return sc.docsClient, nil
	}

	client, err := sc.newDocsClient()
	if err != nil {
		return nil, err
	}

	sc.docsClient = client
	return client, nil
}

// SetDocsClient sets the Docs client, replacing any cached one
func (sc *ServerContext) SetDocsClient(client *docs.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.docsClient = client
}

// SetInstrumentation attaches metrics and audit logging to the server context.
// Both may be nil when instrumentation is disabled.
func (sc *ServerContext) SetInstrumentation(metrics *instrumentation.Metrics, auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
	sc.auditLogger = auditLogger
}

// Metrics returns the metrics recorder, or nil if instrumentation is disabled
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// AuditLogger returns the audit logger, or nil if instrumentation is disabled
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// HasCredentials reports whether service account credentials are available
func (sc *ServerContext) HasCredentials() bool {
	return google.HasCredentials(sc.credentials)
}

// RootFolderID returns the configured Drive root folder ID
func (sc *ServerContext) RootFolderID() string {
	return sc.docsConfig.RootFolderID
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
