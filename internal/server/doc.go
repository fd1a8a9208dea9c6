// Package server provides the MCP server context, health checks, and the
// dedicated metrics server for the docs-mcp application.
//
// # Key Components
//
// ServerContext manages the Google Docs client with lazy initialization and
// caching. Credentials come from a service account key supplied through the
// environment, so the server can start before credentials are configured and
// surface a clear error on first tool use instead.
//
// HealthChecker exposes Kubernetes-style probe endpoints (/healthz, /readyz,
// /healthz/detailed) that report readiness, shutdown state, and whether
// service account credentials are configured.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolating
// operational metrics from MCP traffic.
package server
