package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CONTACTFORM_CONFIG", "")
	var out, errOut bytes.Buffer
	code = Run(append([]string{"--theme", "mono"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSubmit_AllFields(t *testing.T) {
	code, out, errOut := run(t, "submit",
		"--first-name", "Johnny",
		"--last-name", "Doe",
		"--email", "address@gmail.com",
		"--message", "message")

	require.Equal(t, exitOK, code, errOut)
	for _, want := range []string{
		"First Name: Johnny",
		"Last Name: Doe",
		"Email: address@gmail.com",
		"Message: message",
		"ok submitted",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSubmit_WithoutMessage(t *testing.T) {
	code, out, _ := run(t, "submit",
		"--first-name", "Johnny",
		"--last-name", "Doe",
		"--email", "address@gmail.com")

	require.Equal(t, exitOK, code)
	assert.NotContains(t, out, "Message:")
}

func TestSubmit_EmptyIsRejected(t *testing.T) {
	code, out, errOut := run(t, "submit")

	assert.Equal(t, exitError, code)
	assert.Empty(t, out)
	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	assert.Equal(t, []string{
		"x firstName must have at least 5 characters",
		"x lastName is a required field",
		"x email must be a valid email address",
	}, lines)
}

func TestSubmit_EmailWithoutTLD(t *testing.T) {
	code, _, errOut := run(t, "submit",
		"--first-name", "Arria",
		"--last-name", "Marie",
		"--email", "arria@gmail")

	assert.Equal(t, exitError, code)
	assert.Equal(t, "x email must be a valid email address", strings.TrimSpace(errOut))
}

func TestRun_UsageErrors(t *testing.T) {
	tests := [][]string{
		{"submit", "--phone", "555"},
		{"submit", "extra"},
		{"bogus"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, _, errOut := run(t, args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, errOut, "Usage:")
		})
	}
}

func TestRun_BadConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("char_limit: -1\n"), 0o644))

	code, _, errOut := run(t, "--config", p, "submit")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "char_limit must be positive")
}

func TestRun_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "form.log")
	code, _, _ := run(t, "--log-file", logPath, "submit")
	require.Equal(t, exitError, code)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "submit blocked")
}
