package run

import (
	"context"
	"time"
)

// Scope binds one run token and a context to its controller. Engines hold a
// Scope instead of passing the three values around separately.
type Scope struct {
	ctl *Controller
	tok Token
	ctx context.Context
}

// Bind returns the Scope for run t under ctx. A nil ctx means Background.
func (c *Controller) Bind(ctx context.Context, t Token) Scope {
	if ctx == nil {
		ctx = context.Background()
	}

	return Scope{ctl: c, tok: t, ctx: ctx}
}

// Token returns the bound run token.
func (s Scope) Token() Token { return s.tok }

// Controller returns the bound controller.
func (s Scope) Controller() *Controller { return s.ctl }

// Context returns the bound context.
func (s Scope) Context() context.Context { return s.ctx }

// Wait suspends for d and reports whether the run may continue.
func (s Scope) Wait(d time.Duration) bool {
	return s.ctl.Suspend(s.ctx, s.tok, d) == Completed
}

// Do commits fn for the bound run. It refuses once ctx is done as well.
func (s Scope) Do(fn func()) bool {
	if s.ctx.Err() != nil {
		return false
	}

	return s.ctl.Commit(s.tok, fn)
}

// Live reports whether the run is active and its context has not ended.
func (s Scope) Live() bool {
	return s.ctx.Err() == nil && s.ctl.Active(s.tok)
}

// Err returns the context error, if any. A run that was merely superseded or
// cancelled through the controller yields nil: staleness is not a fault.
func (s Scope) Err() error { return s.ctx.Err() }

// Finish marks the bound run complete.
func (s Scope) Finish() bool { return s.ctl.Finish(s.tok) }
