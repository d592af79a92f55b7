package logs

import (
	"context"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"

	"github.com/Alijeyrad/enquiry_backend/pkg/reqctx"
)

// withRequestID adds request_id from reqctx to records logged with a
// request context.
var withRequestID = slogmulti.NewHandleInlineMiddleware(
	func(ctx context.Context, r slog.Record, next func(context.Context, slog.Record) error) error {
		if rid := reqctx.RequestIDFromContext(ctx); rid != "" {
			r.AddAttrs(slog.String("request_id", rid))
		}
		return next(ctx, r)
	},
)

// newHandler fans records out to every handler that accepts their level.
func newHandler(handlers ...slog.Handler) slog.Handler {
	return slogmulti.Pipe(withRequestID).Handler(slogmulti.Fanout(handlers...))
}
