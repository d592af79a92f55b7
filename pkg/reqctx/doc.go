// Package reqctx carries request-scoped metadata on context.Context.
//
// HTTP middleware stores a RequestMeta once per request; services and the
// logger read it back without depending on fiber:
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
//	rid := reqctx.RequestIDFromContext(ctx)
//
// Context keys are unexported so only this package can set them.
package reqctx
