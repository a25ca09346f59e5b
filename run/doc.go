// Package run provides the Run Context every algorithm engine executes under:
// a run epoch controller, the pause-aware suspension primitive, and a
// cancelable repeating Task used by timer-driven replays.
//
// What:
//
//   - Controller.Start() hands out a new Token and makes all older tokens stale.
//   - Pause / Resume / Toggle gate progress; Cancel and Finish end a run.
//   - Suspend(ctx, token, d) waits d of unpaused time in quanta and returns
//     Abandoned as soon as the token is stale, the run cancelled, or ctx done.
//   - Commit(token, fn) performs a mutation only while token is the active run.
//
// Why:
//
//	Engines are ordinary loops that call Suspend between visible steps. Starting
//	a new run never waits for the old one: the old run simply finds its token
//	stale at its next Suspend or Commit and stops without touching shared state.
//	Cancellation is cooperative; nothing is interrupted mid-step.
//
// Algorithm contract:
//
//	for ... {
//	    if !ctl.Commit(tok, func() { /* emit + mutate */ }) {
//	        return // superseded: silently abandon
//	    }
//	    if ctl.Suspend(ctx, tok, delay) == run.Abandoned {
//	        return
//	    }
//	}
//
// Complexity:
//
//   - Suspend wakes at most ceil(d/quantum) times while unpaused, plus once per
//     poll interval while paused.
package run
