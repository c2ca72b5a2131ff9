// Package app provides the orchestration layer for the cityline application.
//
// # Overview
//
// This package wires together configuration, preferences, the static menu and
// page data, and the UI. It is the composition root: everything is built once
// at startup and handed to the render loop, after which no new state appears.
//
// # Architecture
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()    Read ~/.config/cityline/config.toml
//	       ├─────> logging.Configure()  File-backed diagnostics
//	       ├─────> prefs.Load()     Theme preference
//	       ├─────> nav.Entries()    Static menu with precomputed categories
//	       ├─────> pages.NewTable() Static label → content lookup
//	       └─────> ui.Run()         Start TUI (blocks until quit)
//
// # Error Handling
//
// Only configuration loading and terminal setup can fail; both are fatal and
// surface from Run. Preference and logging failures degrade silently so a
// broken prefs file never prevents the dashboard from starting.
package app
