// Package nav implements the navigation engine behind the termfolio header.
//
// The engine is a small set of cooperating components that all run on the
// host's single update loop:
//   - ScrollTracker derives a two-valued ScrollPhase from scroll offsets.
//   - Resolver maps the current location to at most one active Item.
//   - DismissalListener turns pointer and key events into a single dismiss
//     request, and only observes them while armed.
//   - Portal holds overlay content back until the host surface is ready.
//   - MenuController owns the open/closed menu state machine.
//   - Bar composes the above and projects the resulting state onto a
//     Presentation consumed by the renderer.
//
// Host events reach the engine through the Environment interface. Every
// subscription taken from it is released exactly once, either when the
// owning component disarms or when the Bar is unmounted.
package nav
