package wizard

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/pretty"
)

var (
	// ErrConfirmationRequired is returned when confirmation is needed but not available
	ErrConfirmationRequired = errors.New("confirmation required but terminal is not interactive")
)

// Confirm displays a yes/no confirmation prompt and returns the user's choice.
// If force is true, automatically returns true without prompting.
// In non-interactive mode without force, returns ErrConfirmationRequired.
// Accepts y/Y for yes, n/N for no. Defaults to no if user presses Enter.
func Confirm(question string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !pretty.Interactive {
		return false, ErrConfirmationRequired
	}
	return confirmFrom(os.Stdin, question)
}

func confirmFrom(input io.Reader, question string) (bool, error) {
	validator := memberValidation([]string{"y", "Y", "n", "N"}, "Please answer 'y' or 'n'.")

	response, err := ask(bufio.NewReader(input), question, "n", validator)
	if err != nil {
		return false, err
	}

	confirmed := response == "y" || response == "Y"
	if !confirmed {
		common.Stdout("%sOperation cancelled.%s\n", pretty.Grey, pretty.Reset)
	}
	return confirmed, nil
}

// Confirmer gives Confirm in the shape routine providers expect.
func Confirmer(force bool) func(string) (bool, error) {
	return func(question string) (bool, error) {
		return Confirm(question, force)
	}
}
