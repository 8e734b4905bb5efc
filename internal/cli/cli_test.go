package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"compile", "validate", "inspect"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestCompileCommandFlags(t *testing.T) {
	cmd := newCompileCommand()
	assert.NotNil(t, cmd.Flags().Lookup("output"))
}

func TestCompileCommandRequiresArguments(t *testing.T) {
	cmd := newCompileCommand()
	err := cmd.Args(cmd, nil)
	assert.Error(t, err)
	assert.NoError(t, cmd.Args(cmd, []string{"module.yaml"}))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "duplicate module",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("module foo@2020-01-01 declared twice"),
			expected: 3,
		},
		{
			name: "cyclic dependency",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("cyclic module dependency: a -> b -> a"),
			expected: 4,
		},
		{
			name: "unresolved import",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("nonexistent module imported"),
			expected: 5,
		},
		{
			name: "reactor misuse",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("compile invoked twice"),
			expected: 6,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(tt.err))
		})
	}
}

func TestErrorMessagePrefersBuilderMessage(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("imported module was not found").
		WithCause(errors.New("lookup failed"))
	assert.Equal(t, "imported module was not found", errorMessage(err))
	assert.Equal(t, "boom", errorMessage(errors.New("boom")))
}
