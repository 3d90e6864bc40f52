package obs

import (
	"context"
	"log/slog"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Time reports the duration of a named operation when the returned func is
// invoked, typically via defer with a pointer to the named error return.
// The request ID set by chi's RequestID middleware is attached when present.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := chimiddleware.GetReqID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.ErrorContext(ctx, "operation failed",
				"request_id", reqID, "op", name, "duration_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		slog.DebugContext(ctx, "operation complete",
			"request_id", reqID, "op", name, "duration_ms", dur.Milliseconds())
	}
}
