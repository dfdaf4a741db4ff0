package hamlet

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func textOf(actual interface{}) string {
	switch value := actual.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	case fmt.Stringer:
		return value.String()
	case error:
		return value.Error()
	default:
		return fmt.Sprintf("%v", actual)
	}
}

func lengthOf(t *testing.T, actual interface{}) int {
	t.Helper()
	value := reflect.ValueOf(actual)
	switch value.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return value.Len()
	}
	t.Fatalf("%T has no length", actual)
	return -1
}

func errorAs(err error, target interface{}) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.As(err, target)
}
