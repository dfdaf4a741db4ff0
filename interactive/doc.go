// Package interactive provides a full-screen terminal user interface (TUI)
// over a menu navigator.
//
// Items are chosen with arrows and enter, or by typing their number. Sub
// menus open in place; routines run with the terminal released to them via
// tea.Exec and the screen comes back once they return.
//
// Launch with: consolemenu run --tui
package interactive
