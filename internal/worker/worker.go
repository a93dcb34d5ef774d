package worker

import "context"

// Worker is a background process tied to the application lifecycle. The app
// starts every registered worker and cancels their context on shutdown.
type Worker interface {
	Start(ctx context.Context)
}
