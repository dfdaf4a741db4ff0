package common

import (
	"os"
	"path/filepath"
)

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	if len(intermediate) == 0 {
		return intermediate
	}
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}
