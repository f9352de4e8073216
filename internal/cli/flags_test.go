package cli

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var to unitFlag
	var verbose countFlag
	fs.Var(&to, "to", "")
	fs.Var(&verbose, "v", "")
	fs.Bool("V", false, "")

	testCases := []struct {
		name               string
		args               []string
		flags, positionals []string
		dangling           string
	}{
		{
			name:        "value flag consumes next token",
			args:        []string{"--to", "C", "12"},
			flags:       []string{"--to", "C"},
			positionals: []string{"12"},
		},
		{
			name:        "equals form",
			args:        []string{"12", "--to=C"},
			flags:       []string{"--to=C"},
			positionals: []string{"12"},
		},
		{
			name:        "bool flags do not consume",
			args:        []string{"-v", "-V", "-7.5"},
			flags:       []string{"-v", "-V"},
			positionals: []string{"-7.5"},
		},
		{
			name:        "separator ends flags",
			args:        []string{"--", "-v"},
			positionals: []string{"-v"},
		},
		{
			name:        "clustered verbosity is expanded",
			args:        []string{"-vvv", "1"},
			flags:       []string{"-v", "-v", "-v"},
			positionals: []string{"1"},
		},
		{
			name:        "trailing value flag is dangling",
			args:        []string{"1", "-v", "--to"},
			flags:       []string{"-v"},
			positionals: []string{"1"},
			dangling:    "--to",
		},
		{
			name:        "unknown flag is left for the parser",
			args:        []string{"--nope", "1"},
			flags:       []string{"--nope"},
			positionals: []string{"1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flags, positionals, dangling := splitArgs(fs, tc.args)
			assert.Equal(t, tc.flags, flags)
			assert.Equal(t, tc.positionals, positionals)
			assert.Equal(t, tc.dangling, dangling)
		})
	}
}

func TestCountFlag(t *testing.T) {
	var c countFlag
	assert.True(t, c.IsBoolFlag())
	assert.NoError(t, c.Set("true"))
	assert.NoError(t, c.Set("true"))
	assert.NoError(t, c.Set("false"))
	assert.Equal(t, "2", c.String())
	assert.Error(t, c.Set("maybe"))
}

func TestParseValue_RejectsNonDecimalLiterals(t *testing.T) {
	for _, raw := range []string{"0x1p4", "-0x10", "0X1", "1_000", "_1"} {
		_, err := parseValue(raw)
		assert.Error(t, err, raw)
	}
	for _, raw := range []string{"0", "-1.5e3", "+7", ".5", "inf", "-Infinity", "nan"} {
		_, err := parseValue(raw)
		assert.NoError(t, err, raw)
	}
}
