// Package menu is the engine behind consolemenu: it turns discovered entries
// into numbered frames and walks them with a small state machine.
//
// # Frames and numbering
//
// A Provider yields the entries of a location in display order. BuildFrame
// hands out keys "1", "2", ... in that order. Entries sharing an Identity
// collapse onto one key and the later entry wins. Every frame ends with a
// synthetic Quit (root) or Back (nested) entry under the next free key.
//
// # Navigation
//
// The Navigator is always Browsing, ExecutingRoutine or Terminated:
//
//	Enter(menu key)    -> push frame, discover child, Browsing
//	Enter(routine key) -> EnterOn, run, EnterOff, Browsing
//	Back()             -> pop frame (never rediscovered)
//	Quit()             -> EnterOn, Terminated
//
// Routine failures come back from Enter as *RoutineError, discovery failures
// as *DiscoveryError. Unknown keys are silently ignored.
package menu
