package main

import (
	"fmt"
	"os"

	"github.com/skilletdev/skillet/pkg/logger"
	"github.com/skilletdev/skillet/pkg/presenter"
	"github.com/skilletdev/skillet/pkg/skills"
	"github.com/spf13/cobra"
)

type NewConfig struct {
	Name   string
	Simple bool
}

func NewNewConfig() *NewConfig {
	return &NewConfig{
		Name:   "",
		Simple: false,
	}
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new skill package",
	Long: `Scaffold a new skill package under the nearest .skillet/skills
directory (or the current directory when none is found). The package gets a
SKILL.md entry document pre-filled with structuring guidance and, unless
--simple is given, example scripts/, references/ and assets/ resources.

Examples:
  skillet new --name pdf-filler
  skillet new --name commit-helper --simple`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getNewConfigFromFlags(cmd)
		runNew(cmd, config)
	},
}

func init() {
	defaults := NewNewConfig()
	newCmd.Flags().StringP("name", "n", defaults.Name, "Name of the skill to create (lowercase alphanumeric with hyphens)")
	newCmd.Flags().Bool("simple", defaults.Simple, "Create a minimal skill without the example resource directories")
	newCmd.MarkFlagRequired("name")
}

func getNewConfigFromFlags(cmd *cobra.Command) *NewConfig {
	config := NewNewConfig()
	if name, err := cmd.Flags().GetString("name"); err == nil {
		config.Name = name
	}
	if simple, err := cmd.Flags().GetBool("simple"); err == nil {
		config.Simple = simple
	}
	return config
}

func runNew(cmd *cobra.Command, config *NewConfig) {
	ctx := cmd.Context()

	scaffolder := skills.NewScaffolder(skills.NewLocator())
	skillPath, fellBack, err := scaffolder.Scaffold(config.Name, config.Simple)
	if fellBack {
		presenter.Warning(fmt.Sprintf("Could not find %s, creating in current directory", skills.LocalSkillsDir))
	}
	if err != nil {
		presenter.Error(err, "Failed to scaffold skill")
		logger.G(ctx).WithError(err).WithField("skill", config.Name).Debug("Scaffold failed")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Skill '%s' initialized successfully", config.Name))
	presenter.Info(fmt.Sprintf("Location: %s", skillPath))
	if config.Simple {
		presenter.Info("Simple mode: skipped creating example resource directories")
	}

	presenter.Separator()
	presenter.Section("Next steps")
	for i, step := range skills.NextSteps(skillPath, config.Simple) {
		presenter.Info(fmt.Sprintf("%d. %s", i+1, step))
	}
}
