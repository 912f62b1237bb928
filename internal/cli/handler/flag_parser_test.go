package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/export"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("format", "", "")
	cmd.Flags().String("range", "", "")
	cmd.Flags().String("from", "", "")
	cmd.Flags().String("to", "", "")
	cmd.Flags().Float64("rate", 0, "")
	cmd.Flags().Int("limit", 10, "")
	AddOutputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func isUsage(err error) bool {
	var u *cli.UsageError
	return errors.As(err, &u)
}

func TestParseString(t *testing.T) {
	v, err := NewFlagParser(newTestCommand(t, "--name", "  Nile ")).ParseString("name")
	require.NoError(t, err)
	assert.Equal(t, "Nile", v)

	_, err = NewFlagParser(newTestCommand(t, "--name", "   ")).ParseString("name")
	assert.True(t, isUsage(err))

	_, err = NewFlagParser(newTestCommand(t)).ParseString("missing")
	assert.True(t, isUsage(err))
}

func TestParsePositiveFloat(t *testing.T) {
	v, err := NewFlagParser(newTestCommand(t, "--rate", "52.5")).ParsePositiveFloat("rate")
	require.NoError(t, err)
	assert.Equal(t, 52.5, v)

	_, err = NewFlagParser(newTestCommand(t, "--rate", "0")).ParsePositiveFloat("rate")
	assert.True(t, isUsage(err))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		args []string
		want export.Format
		ok   bool
	}{
		{nil, export.CSV, true},
		{[]string{"--format", "HTML"}, export.HTML, true},
		{[]string{"--format", "csv"}, export.CSV, true},
		{[]string{"--format", "xlsx"}, "", false},
	}
	for _, tt := range tests {
		got, err := NewFlagParser(newTestCommand(t, tt.args...)).ParseFormat("format")
		if !tt.ok {
			assert.True(t, isUsage(err), "%v", tt.args)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     api.Range
		from, to string
		ok       bool
	}{
		{"default today", nil, api.RangeToday, "", "", true},
		{"preset", []string{"--range", "this-week"}, api.RangeThisWeek, "", "", true},
		{"dates imply custom", []string{"--from", "2025-01-01", "--to", "2025-01-31"}, api.RangeCustom, "2025-01-01", "2025-01-31", true},
		{"explicit custom", []string{"--range", "custom", "--from", "2025-02-01", "--to", "2025-02-01"}, api.RangeCustom, "2025-02-01", "2025-02-01", true},
		{"custom missing to", []string{"--range", "custom", "--from", "2025-01-01"}, "", "", "", false},
		{"dates on preset", []string{"--range", "today", "--from", "2025-01-01"}, "", "", "", false},
		{"bad date", []string{"--from", "01/02/2025", "--to", "2025-01-31"}, "", "", "", false},
		{"reversed", []string{"--from", "2025-02-01", "--to", "2025-01-01"}, "", "", "", false},
		{"unknown preset", []string{"--range", "fortnight"}, "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, from, to, err := NewFlagParser(newTestCommand(t, tt.args...)).ParseRange()
			if !tt.ok {
				assert.True(t, isUsage(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestOutputFormats(t *testing.T) {
	j, q, err := NewFlagParser(newTestCommand(t, "--json")).OutputFormats()
	require.NoError(t, err)
	assert.True(t, j)
	assert.False(t, q)
}

func TestArguments(t *testing.T) {
	cmd := newTestCommand(t, "--name", "Nile", "--rate", "2.5", "--json")
	args := &Arguments{Flags: parseFlagsToMap(cmd), cmd: cmd}

	assert.Equal(t, "Nile", args.GetString("name", ""))
	assert.Equal(t, "csv", args.GetString("format", "csv"))
	assert.Equal(t, 2.5, args.GetFloat("rate", 0))
	// unset flags keep the caller's default, not the flag default
	assert.Equal(t, 20, args.GetInt("limit", 20))
	assert.True(t, args.GetBool("json"))
	assert.False(t, args.GetBool("quiet"))
	assert.Same(t, cmd, args.GetCmd())
}

func TestCommand_ParseFailureSkipsHandler(t *testing.T) {
	called := false
	run := Command(Func(func(context.Context, *cli.CLI, *Arguments) (any, error) {
		called = true
		return nil, nil
	}), func(*cobra.Command) error {
		return &cli.UsageError{Message: "bad flags"}
	})

	cmd := newTestCommand(t, "--json")
	err := run(cmd, nil)
	assert.True(t, isUsage(err))
	assert.False(t, called)
}
