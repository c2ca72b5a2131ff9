// Package nav defines the static navigation menu and selection helpers.
//
// # Overview
//
// The menu is a fixed, ordered list of labels. Each entry carries a display
// category (normal, unread, important) computed once at startup from static
// membership sets, so the render path never re-checks set membership.
//
// # Classification
//
// A label present in both the unread and important sets is classified as
// important; precedence is resolved here, not at render time.
//
// # Selection
//
// Clamp, MoveUp and MoveDown implement bounded cursor movement: moving up at
// the first entry and moving down at the last entry are no-ops. The selected
// index itself lives in the UI model; this package only supplies the pure
// index arithmetic so it can be tested without a terminal.
package nav
