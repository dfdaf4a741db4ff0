package menu

import (
	"errors"
	"fmt"
)

var (
	ErrTerminated  = errors.New("menu navigator has terminated")
	ErrNotBrowsing = errors.New("menu navigator is not browsing")
)

// DiscoveryError reports a location that could not be turned into a frame.
type DiscoveryError struct {
	Location Location
	Reason   string
	Err      error
}

func (it *DiscoveryError) Error() string {
	where := it.Location.String()
	switch {
	case it.Err != nil && len(it.Reason) > 0:
		return fmt.Sprintf("discovery at %q failed: %s: %v", where, it.Reason, it.Err)
	case it.Err != nil:
		return fmt.Sprintf("discovery at %q failed: %v", where, it.Err)
	}
	return fmt.Sprintf("discovery at %q failed: %s", where, it.Reason)
}

func (it *DiscoveryError) Unwrap() error {
	return it.Err
}

// RoutineError carries the failure of a routine body back to the caller.
type RoutineError struct {
	Key   string
	Entry Entry
	Err   error
}

func (it *RoutineError) Error() string {
	return fmt.Sprintf("routine %s (%q) failed: %v", it.Key, it.Entry.ShortName(), it.Err)
}

func (it *RoutineError) Unwrap() error {
	return it.Err
}
