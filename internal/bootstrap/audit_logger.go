package bootstrap

import "context"

// AuditLog is one operator-visible event: shutdowns, imports, resets.
type AuditLog struct {
	Action  string
	Message string
	Actor   string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
