package menu

import (
	"strconv"
	"strings"
)

// Location addresses one menu level as a sequence of path segments, root first.
type Location []string

func (it Location) Child(segment string) Location {
	result := make(Location, 0, len(it)+1)
	result = append(result, it...)
	return append(result, segment)
}

func (it Location) String() string {
	return strings.Join(it, "/")
}

type Item struct {
	Key   string
	Entry Entry
}

// Frame is one level of the menu. Keys are unique decimal strings assigned
// once when the frame is built; frames are never renumbered afterwards.
type Frame struct {
	Breadcrumb string
	Location   Location

	keys  []string
	items map[string]Entry
}

// BuildFrame numbers discovered records into a frame. Records sharing an
// identity collapse onto the key of the first one and the later record
// replaces the earlier content. The synthetic Back (nested) or Quit (root)
// entry is appended last under the next free key.
func BuildFrame(records []Entry, breadcrumb string, location Location, nested bool) *Frame {
	frame := &Frame{
		Breadcrumb: breadcrumb,
		Location:   location,
		keys:       make([]string, 0, len(records)+1),
		items:      make(map[string]Entry, len(records)+1),
	}
	assigned := make(map[string]string, len(records))
	counter := 1
	for _, record := range records {
		if record == nil {
			continue
		}
		name := record.Identity()
		if key, ok := assigned[name]; ok {
			frame.items[key] = record
			continue
		}
		key := frame.nextFree(&counter)
		frame.put(key, record)
		assigned[name] = key
		counter++
	}
	if nested {
		frame.put(frame.nextFree(&counter), Back{})
	} else {
		frame.put(frame.nextFree(&counter), Quit{})
	}
	return frame
}

func (it *Frame) nextFree(counter *int) string {
	for {
		key := strconv.Itoa(*counter)
		if _, taken := it.items[key]; !taken {
			return key
		}
		*counter++
	}
}

// keys only ever grow from the counter, so insertion order is ascending.
func (it *Frame) put(key string, entry Entry) {
	it.keys = append(it.keys, key)
	it.items[key] = entry
}

func (it *Frame) Lookup(key string) (Entry, bool) {
	entry, ok := it.items[key]
	return entry, ok
}

func (it *Frame) Len() int {
	return len(it.keys)
}

func (it *Frame) Items() []Item {
	result := make([]Item, 0, len(it.keys))
	for _, key := range it.keys {
		result = append(result, Item{Key: key, Entry: it.items[key]})
	}
	return result
}

func (it *Frame) Keys() []string {
	result := make([]string, len(it.keys))
	copy(result, it.keys)
	return result
}
