package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("NO_COLOR", "1")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(stdin)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		t.Run(flag, func(t *testing.T) {
			out, err := execute(t, strings.NewReader(""), flag)
			require.NoError(t, err)
			require.Equal(t, "jsonlog version "+version+"\n", out)
		})
	}
}

func TestHelp(t *testing.T) {
	out, err := execute(t, strings.NewReader(""), "--help")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "PNC JSON log parser\n"))
	require.Contains(t, out, "Author: thescouser89")
	require.Contains(t, out, "Usage:\n  jsonlog [flags]")
	require.Contains(t, out, "-V, --version")
	require.Contains(t, out, "-h, --help")
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, strings.NewReader(""), "app.log")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown command "app.log"`)
}

func TestFormatsStdin(t *testing.T) {
	out, err := execute(t, strings.NewReader("{\"timestamp\":\"t\",\"loggerName\":\"L\",\"level\":\"INFO\",\"message\":\"m\"}\nplain\n"))
	require.NoError(t, err)
	require.Equal(t, "[t] INFO [L] m\nplain\n", out)
}

func TestEmptyStdin(t *testing.T) {
	out, err := execute(t, strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestReadFailureIsReturned(t *testing.T) {
	boom := errors.New("boom")

	_, err := execute(t, iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}
