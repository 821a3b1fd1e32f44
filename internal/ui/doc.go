// Package ui contains the Bubble Tea program that hosts the portfolio shell.
// The Model owns message orchestration; the navigation engine in
// internal/nav owns every header decision.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses, left clicks and viewport scroll changes are published into
//     a nav.Hub. The engine reacts synchronously (closing the menu on an
//     outside click or escape, flipping the header phase on scroll) and
//     reports every committed change through the bar's OnChange callback.
//   - Navigation intents emitted by the engine are queued on the page router
//     and turned into page loads on the command bus once the handler returns.
//
// Rendering:
//   - Clickable areas are wrapped in regions (bubblezone marks) so pointer
//     presses can be hit tested against the menu boundary, the toggle and
//     each link. A region that was not part of the latest frame is detached.
//   - The collapsible menu is drawn through the engine's overlay portal onto
//     a surface layer that is composited above the page.
//
// Backend interactions:
//   - An optional backend.Watcher streams content and site file changes.
//     Update waits for those events and hands them to the dispatcher, which
//     reloads the page library or the site table; a new table rebuilds the bar.
package ui
