package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs a handler in a new goroutine, detached from the
// caller's cancellation. Used for fire-and-forget work like outbound
// notifications, where a finished HTTP request must not cancel the
// delivery.
//
// The handler gets a fresh background context carrying the caller's
// logger. Panics are recovered and logged with a stack trace; returned
// errors are logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	// Detach from the request context but keep its logger
	newCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()))
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("error in async handler", "error", err)
		}
	}()
}
