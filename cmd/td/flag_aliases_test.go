package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestDescriptionFlagAlias(t *testing.T) {
	var description string
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().StringVar(&description, "description", "", "")
	addDescriptionFlagAliases(cmd)

	cmd.SetArgs([]string{"--desc", "aliased"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if description != "aliased" {
		t.Errorf("expected alias to set description, got %q", description)
	}
	if !cmd.Flags().Changed("description") {
		t.Error("expected description flag to be marked changed")
	}
}
