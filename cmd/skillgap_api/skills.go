package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniel/skillgap-analyzer/internal/vocab"
)

var skillsSourceFlag string

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the skill vocabulary",
	Long:  "Load the skill vocabulary from its source and print one skill per line.",
	RunE:  runSkills,
}

func init() {
	skillsCmd.Flags().StringVar(&skillsSourceFlag, "skills", "", "Skill vocabulary source: CSV path or postgres:// URL (overrides SKILLS_SOURCE)")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	source, err := vocab.NewSource(ctx, resolveSkillsSource(skillsSourceFlag))
	if err != nil {
		return fmt.Errorf("failed to open skills source: %w", err)
	}
	if closer, ok := source.(interface{ Close() }); ok {
		defer closer.Close()
	}

	skills, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load skill vocabulary: %w", err)
	}

	for _, skill := range skills {
		_, _ = fmt.Fprintln(os.Stdout, skill)
	}
	return nil
}
