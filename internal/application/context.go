package application

import (
	"context"
	"time"
)

const defaultStoreTimeout = 3 * time.Second

// storeCtx bounds a repository call so a wedged store surfaces as a
// service error instead of holding the request open.
func storeCtx(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, d)
}
