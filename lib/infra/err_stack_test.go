package infra

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("boom")
	require.Error(t, err)
	require.Equal(t, "boom", err.Error())
	require.Equal(t, "boom", fmt.Sprintf("%s", err))
}

func TestWrapErrorStack(t *testing.T) {
	cause := errors.New("io failure")
	err := WrapErrorStack(cause, "load snapshot")
	require.Equal(t, "load snapshot, io failure", err.Error())
	require.ErrorIs(t, err, cause)

	require.Equal(t, "nil cause", WrapErrorStack(nil, "nil cause").Error())
}

func TestErrorStackVerboseFormatCarriesFrames(t *testing.T) {
	err := NewErrorStack("verbose")
	out := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(out, "verbose"))
	// The first captured frame is this test function.
	require.Contains(t, out, "TestErrorStackVerboseFormatCarriesFrames")
	require.Contains(t, out, "err_stack_test.go:")

	plain := fmt.Sprintf("%v", err)
	require.Equal(t, "verbose", plain)
}
