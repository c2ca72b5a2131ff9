// Package pages holds the static content shown for each navigation entry.
//
// # Overview
//
// Every menu label maps to a Page: an info blurb and two content panes. The
// table is constructed once at startup and never mutated; Lookup falls back
// to a generic "under construction" placeholder for labels with no mapping,
// so the render path never deals with a missing page.
package pages
