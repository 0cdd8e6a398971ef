// Package workers runs background jobs of the marketplace server alongside
// the HTTP transport.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
