package taxes

import "context"

type callerKey struct{}

// Caller identifica al usuario y la empresa del token que lanza la operación.
type Caller struct {
	UserID    string
	CompanyID string
}

// WithCaller adjunta el llamante al contexto para que quede en los logs del lote.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom devuelve el llamante del contexto, si lo hay.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}
