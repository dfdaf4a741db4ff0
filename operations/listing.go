package operations

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/menu"
)

type Listing struct {
	Menus    int
	Routines int
	Failures int
	Pruned   int
}

// ListTree prints the menu tree under root without running anything. Keys
// are the ones the interactive menu would show. Failing sub menus are
// reported inline and counted, failing root is an error.
func ListTree(provider menu.Provider, root menu.Location, label string, maxDepth int, out io.Writer) (*Listing, error) {
	records, err := provider.Discover(root)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out, label)
	listing := &Listing{}
	frame := menu.BuildFrame(records, label, root, false)
	listing.walk(provider, frame, root, 1, maxDepth, out)
	return listing, nil
}

func (it *Listing) walk(provider menu.Provider, frame *menu.Frame, location menu.Location, depth, maxDepth int, out io.Writer) {
	indent := strings.Repeat("  ", depth)
	for _, item := range frame.Items() {
		switch entry := item.Entry.(type) {
		case menu.Routine:
			it.Routines++
			fmt.Fprintf(out, "%s%s - %s\n", indent, item.Key, entry.DisplayName())
		case menu.Menu:
			it.Menus++
			fmt.Fprintf(out, "%s%s - %s/\n", indent, item.Key, entry.DisplayName())
			if depth >= maxDepth {
				it.Pruned++
				fmt.Fprintf(out, "%s  ...\n", indent)
				continue
			}
			child := location.Child(entry.SubLocation)
			records, err := provider.Discover(child)
			if err != nil {
				it.Failures++
				common.Debug("Listing %q failed: %v", child.String(), err)
				fmt.Fprintf(out, "%s  ! %v\n", indent, err)
				continue
			}
			nested := menu.BuildFrame(records, entry.ShortName(), child, true)
			it.walk(provider, nested, child, depth+1, maxDepth, out)
		}
	}
}
