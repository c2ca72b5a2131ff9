// Package ui implements the cityline terminal dashboard.
//
// # Overview
//
// The UI is a single-screen Bubble Tea program: a fixed-width navigation
// column on the left and a content region on the right, split into an info
// strip, two side-by-side content panes, and a cosmetic input line. Content
// comes from a static page table keyed by the selected menu label.
//
// # Event Model
//
// There is one editing state. Arrow keys move the clamped selection, enter
// clears the input line, esc or ctrl+c quits, ctrl+t cycles the theme, and
// every other key is forwarded to the input component, which appends
// printable runes and handles backspace. Unrecognized keys are no-ops.
//
// A periodic tick (default 100ms) forces a redraw even when no input
// arrives, keeping the loop live for future animation.
//
// # Terminal Handling
//
// Bubble Tea owns raw mode and the alternate screen; both are restored on
// every exit path, including panics and errors, so the package never touches
// the terminal state directly.
//
// # Layout
//
//	┌ header: logo · selected page · theme ──────────────┐
//	│ ┌ Menu ──────┐ ┌ Info ────────────────────────────┐ │
//	│ │ > Home     │ └──────────────────────────────────┘ │
//	│ │   Items    │ ┌ Left Box ─────┐ ┌ Right Box ─────┐ │
//	│ │   ...      │ │               │ │                │ │
//	│ │            │ └───────────────┘ └────────────────┘ │
//	│ │            │ ┌ Input ───────────────────────────┐ │
//	│ │            │ └──────────────────────────────────┘ │
//	│ └────────────┘                                      │
//	└ hint bar ──────────────────────────────────────────┘
package ui
