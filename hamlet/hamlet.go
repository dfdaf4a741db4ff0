// Package hamlet is a tiny specification helper for tests: to be or not to be.
//
//	must_be, wont_be := hamlet.Specifications(t)
//	must_be.Equal(expected, actual)
//	wont_be.Nil(value)
//
// Failures stop the test immediately.
package hamlet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type Hamlet interface {
	Nil(actual interface{})
	True(actual bool)
	Equal(expected, actual interface{})
	Same(expected, actual interface{})
	Panic(fun func())
	Text(expected string, actual interface{})
	Length(expected int, actual interface{})
	Contains(container, element interface{})
	ErrorAs(err error, target interface{})
}

type toBe struct {
	t *testing.T
}

type notToBe struct {
	t *testing.T
}

func Specifications(t *testing.T) (Hamlet, Hamlet) {
	return &toBe{t}, &notToBe{t}
}

func (it *toBe) Nil(actual interface{}) {
	it.t.Helper()
	require.Nil(it.t, actual)
}

func (it *toBe) True(actual bool) {
	it.t.Helper()
	require.True(it.t, actual)
}

func (it *toBe) Equal(expected, actual interface{}) {
	it.t.Helper()
	require.Equal(it.t, expected, actual)
}

func (it *toBe) Same(expected, actual interface{}) {
	it.t.Helper()
	require.Same(it.t, expected, actual)
}

func (it *toBe) Panic(fun func()) {
	it.t.Helper()
	require.Panics(it.t, fun)
}

func (it *toBe) Text(expected string, actual interface{}) {
	it.t.Helper()
	require.Equal(it.t, expected, textOf(actual))
}

func (it *toBe) Length(expected int, actual interface{}) {
	it.t.Helper()
	require.Len(it.t, actual, expected)
}

func (it *toBe) Contains(container, element interface{}) {
	it.t.Helper()
	require.Contains(it.t, container, element)
}

func (it *toBe) ErrorAs(err error, target interface{}) {
	it.t.Helper()
	require.ErrorAs(it.t, err, target)
}

func (it *notToBe) Nil(actual interface{}) {
	it.t.Helper()
	require.NotNil(it.t, actual)
}

func (it *notToBe) True(actual bool) {
	it.t.Helper()
	require.False(it.t, actual)
}

func (it *notToBe) Equal(expected, actual interface{}) {
	it.t.Helper()
	require.NotEqual(it.t, expected, actual)
}

func (it *notToBe) Same(expected, actual interface{}) {
	it.t.Helper()
	require.NotSame(it.t, expected, actual)
}

func (it *notToBe) Panic(fun func()) {
	it.t.Helper()
	require.NotPanics(it.t, fun)
}

func (it *notToBe) Text(expected string, actual interface{}) {
	it.t.Helper()
	require.NotEqual(it.t, expected, textOf(actual))
}

func (it *notToBe) Length(expected int, actual interface{}) {
	it.t.Helper()
	require.NotEqual(it.t, expected, lengthOf(it.t, actual))
}

func (it *notToBe) Contains(container, element interface{}) {
	it.t.Helper()
	require.NotContains(it.t, container, element)
}

func (it *notToBe) ErrorAs(err error, target interface{}) {
	it.t.Helper()
	require.False(it.t, errorAs(err, target))
}
