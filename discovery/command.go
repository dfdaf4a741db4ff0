package discovery

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/google/shlex"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/menu"
)

var ErrEmptyCommand = errors.New("command has no program to run")

// commandAction binds a routine manifest to a process launch. The command
// line is split with shell quoting rules but never run through a shell.
func (it *Directory) commandAction(folder string, found *manifest) (menu.Action, error) {
	args, err := shlex.Split(found.Command)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", found.Command, err)
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	workdir := folder
	if len(found.Workdir) > 0 {
		workdir = found.Workdir
		if !filepath.IsAbs(workdir) {
			workdir = filepath.Join(folder, workdir)
		}
	}
	environment := found.environment()
	display := found.DisplayName
	confirm := found.Confirm

	return func() error {
		if confirm && it.confirm != nil {
			proceed, err := it.confirm(fmt.Sprintf("Run %s?", display))
			if err != nil {
				return err
			}
			if !proceed {
				return nil
			}
		}
		command := exec.Command(args[0], args[1:]...)
		command.Dir = workdir
		command.Env = environment
		command.Stdin = it.stdin
		command.Stdout = it.stdout
		command.Stderr = it.stderr
		common.Debug("Running %q in %q.", args, workdir)
		if err := command.Run(); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return nil
	}, nil
}
