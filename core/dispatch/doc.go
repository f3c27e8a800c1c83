// Package dispatch implements the concurrent fan-out caller used for
// cross-platform publishing and webhook notification.
//
// A Dispatcher issues one independent call per named target, each bounded by
// a per-call timeout. Failures are isolated: a slow or broken target only
// affects its own slot in the result list. Every call terminates with exactly
// one outcome:
//
//   - success: the target returned a payload
//   - timeout: the per-call deadline expired
//   - error: the target returned an error or panicked
//   - skipped: the target declined (e.g. missing credential)
//   - unknown-target: no target is registered under that name
//
// Targets are held in a Registry whose registration order defines the default
// dispatch order.
package dispatch
