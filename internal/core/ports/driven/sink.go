package driven

import "context"

// OutputSink writes rendered output to a named target.
type OutputSink interface {
	// Write stores content at target, replacing anything already there.
	// Returns the resolved location written to.
	Write(ctx context.Context, target, content string) (string, error)
}
