package menu

// snapshot is everything needed to put a previous level back exactly as it
// was left: the frame object itself plus the trail and location slices.
type snapshot struct {
	frame    *Frame
	location Location
	trail    []string
}

type History struct {
	stack []snapshot
}

func (it *History) Depth() int {
	return len(it.stack)
}

func (it *History) Empty() bool {
	return len(it.stack) == 0
}

func (it *History) push(entry snapshot) {
	it.stack = append(it.stack, entry)
}

func (it *History) pop() (snapshot, bool) {
	if len(it.stack) == 0 {
		return snapshot{}, false
	}
	last := len(it.stack) - 1
	top := it.stack[last]
	it.stack[last] = snapshot{}
	it.stack = it.stack[:last]
	return top, true
}
