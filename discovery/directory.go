package discovery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/menu"
)

type Confirmer func(question string) (bool, error)

type Option func(*Directory)

func WithConfirmer(confirm Confirmer) Option {
	return func(it *Directory) {
		it.confirm = confirm
	}
}

func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(it *Directory) {
		it.stdin, it.stdout, it.stderr = stdin, stdout, stderr
	}
}

// Directory discovers entries from manifest files. A location is a path
// below Base; only the top level of that directory is scanned.
type Directory struct {
	Base string

	confirm Confirmer
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func NewDirectory(base string, options ...Option) *Directory {
	it := &Directory{
		Base:   base,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, option := range options {
		option(it)
	}
	return it
}

// Split turns a menu directory into a base and a root location, so that
// joining them gives the directory back.
func Split(folder string) (string, menu.Location, error) {
	fullpath, err := filepath.Abs(folder)
	if err != nil {
		return "", nil, err
	}
	return filepath.Dir(fullpath), menu.Location{filepath.Base(fullpath)}, nil
}

func (it *Directory) Path(location menu.Location) (string, error) {
	parts := make([]string, 0, len(location)+1)
	parts = append(parts, it.Base)
	for _, segment := range location {
		if err := validSegment(segment); err != nil {
			return "", &menu.DiscoveryError{Location: location, Reason: err.Error()}
		}
		parts = append(parts, segment)
	}
	return filepath.Join(parts...), nil
}

func validSegment(segment string) error {
	switch {
	case len(segment) == 0:
		return fmt.Errorf("empty location segment")
	case segment == "." || segment == "..":
		return fmt.Errorf("location segment %q is not allowed", segment)
	case strings.ContainsAny(segment, `/\`):
		return fmt.Errorf("location segment %q must be a single directory name", segment)
	}
	return nil
}

func ignored(name string) bool {
	return strings.HasPrefix(name, "__") || strings.HasPrefix(name, ".")
}

func (it *Directory) Discover(location menu.Location) ([]menu.Entry, error) {
	folder, err := it.Path(location)
	if err != nil {
		return nil, err
	}
	listing, err := os.ReadDir(folder)
	if err != nil {
		return nil, &menu.DiscoveryError{Location: location, Reason: "unreadable location", Err: err}
	}
	result := make([]menu.Entry, 0, len(listing))
	for _, item := range listing {
		name := item.Name()
		if item.IsDir() || ignored(name) {
			continue
		}
		decode, extension, ok := decoderFor(name)
		if !ok {
			common.Trace("Skipping %q, not a menu manifest.", filepath.Join(folder, name))
			continue
		}
		filename := filepath.Join(folder, name)
		entry, err := it.load(filename, strings.TrimSuffix(name, extension), decode)
		if err != nil {
			return nil, &menu.DiscoveryError{Location: location, Reason: fmt.Sprintf("manifest %s", name), Err: err}
		}
		result = append(result, entry)
	}
	common.Debug("Discovered %d entries in %q.", len(result), folder)
	return result, nil
}

func (it *Directory) load(filename, stem string, decode decoder) (menu.Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	found, err := decode(filename, content)
	if err != nil {
		return nil, err
	}
	if missing := found.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing or invalid %s", strings.Join(missing, ", "))
	}
	identity := found.ID
	if len(identity) == 0 {
		identity = stem
	}
	if found.kind() == typeMenu {
		submenu := strings.TrimSpace(found.SubMenu)
		if err := validSegment(submenu); err != nil {
			return nil, err
		}
		return menu.Menu{
			Short:       found.ShortName,
			Display:     found.DisplayName,
			SubLocation: submenu,
			ID:          identity,
		}, nil
	}
	action, err := it.commandAction(filepath.Dir(filename), found)
	if err != nil {
		return nil, err
	}
	return menu.Routine{
		Short:   found.ShortName,
		Display: found.DisplayName,
		Invoke:  action,
		ID:      identity,
	}, nil
}
