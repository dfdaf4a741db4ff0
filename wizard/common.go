package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/consolemenu/common"
	"github.com/joshyorko/consolemenu/pretty"
)

const (
	UNIX_NEWLINE    = "\n"
	WINDOWS_NEWLINE = "\r\n"

	newline = '\n'
)

type Validator func(string) bool

func memberValidation(members []string, erratic string) Validator {
	return func(input string) bool {
		for _, member := range members {
			if input == member {
				return true
			}
		}
		common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
		return false
	}
}

func note(form string, details ...interface{}) string {
	message := fmt.Sprintf(form, details...)
	return fmt.Sprintf("%s! %s%s%s\n", pretty.Red, pretty.White, message, pretty.Reset)
}

func ask(source *bufio.Reader, question, defaults string, validator Validator) (string, error) {
	for {
		common.Stdout("%s? %s%s %s[%s]:%s ", pretty.Green, pretty.White, question, pretty.Grey, defaults, pretty.Reset)
		reply, err := source.ReadString(newline)
		common.Stdout("\n")
		if err != nil && !(err == io.EOF && len(reply) > 0) {
			return "", err
		}
		if reply == UNIX_NEWLINE || reply == WINDOWS_NEWLINE {
			reply = defaults
		}
		reply = strings.TrimSpace(reply)
		if !validator(reply) {
			continue
		}
		return reply, nil
	}
}
