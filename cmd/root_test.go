package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{"--help"})

	if err := RootCmd.Execute(); err != nil {
		t.Errorf("root command with --help failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "migration script") {
		t.Errorf("expected help output to describe the migration script, got: %s", output)
	}
}

func TestRootCommand_RequiresDSN(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{})
	// RootCmd is shared across tests, and a --help parsed by an earlier
	// test stays set; clear it so this run reaches argument validation.
	_ = RootCmd.Flags().Set("help", "false")

	if err := RootCmd.Execute(); err == nil {
		t.Error("expected an error when no DSN is given")
	}
}

func TestRootCommand_HasSchemasFlag(t *testing.T) {
	flag := RootCmd.Flags().Lookup("schemas")
	if flag == nil {
		t.Fatal("expected a --schemas flag to be registered")
	}
	if flag.Shorthand != "s" {
		t.Errorf("expected --schemas shorthand -s, got %q", flag.Shorthand)
	}
}
