package pretty

// ClearSequence clears the entire screen and puts the cursor top left, the
// same thing the clear(1) command does. Empty when not interactive.
func ClearSequence() string {
	if !Interactive {
		return ""
	}
	return csif("2J") + csif("1;1H")
}
