package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"census-etl/pkg/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, run RunFunc, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(run)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_PassesDryRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "default loads", args: nil, want: false},
		{name: "dry run", args: []string{"--dry-run"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			var got bool
			_, err := execute(t, func(_ context.Context, dryRun bool) error {
				calls++
				got = dryRun
				return nil
			}, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, 1, calls)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCommand_ReturnsRunError(t *testing.T) {
	runErr := errors.New("load failed")

	_, err := execute(t, func(context.Context, bool) error { return runErr })

	assert.ErrorIs(t, err, runErr)
}

func TestRootCommand_LoadsPropertiesFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte("cli:\n  test:\n    driver: gorm\n"), 0o600))

	_, err := execute(t, func(context.Context, bool) error { return nil }, "--properties", path)

	require.NoError(t, err)
	assert.Equal(t, "gorm", resource.GetString("cli.test.driver"))
}

func TestRootCommand_MissingPropertiesFile(t *testing.T) {
	called := false
	_, err := execute(t, func(context.Context, bool) error {
		called = true
		return nil
	}, "--properties", filepath.Join(t.TempDir(), "absent.yml"))

	assert.ErrorContains(t, err, "failed to load properties")
	assert.False(t, called)
}

func TestJurisdictionsCommand(t *testing.T) {
	out, err := execute(t, func(context.Context, bool) error {
		t.Fatal("run must not be called")
		return nil
	}, "jurisdictions")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 51)
	assert.Equal(t, "01\tAL\tAlabama", lines[0])
	assert.Equal(t, "56\tWY\tWyoming", lines[50])
}
