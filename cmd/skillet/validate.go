package main

import (
	"fmt"
	"os"

	"github.com/skilletdev/skillet/pkg/presenter"
	"github.com/skilletdev/skillet/pkg/skills"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a skill package",
	Long: `Validate the skill package at the given path against the package
contract: a legal directory name, a SKILL.md entry document, and name and
description frontmatter with the name matching the directory.

Critical violations fail the package (exit code 1). Missing optional
resource directories are reported as advisory notes only.

Examples:
  skillet validate --path .skillet/skills/pdf-filler`,
	Run: func(cmd *cobra.Command, _ []string) {
		path, _ := cmd.Flags().GetString("path")
		runValidate(path)
	},
}

func init() {
	validateCmd.Flags().StringP("path", "p", "", "Path to the skill package root")
	validateCmd.MarkFlagRequired("path")
}

func runValidate(path string) {
	presenter.Info(fmt.Sprintf("Validating skill: %s...", skills.Identifier(path)))

	report := skills.Validate(path)

	if !report.Pass() {
		presenter.Separator()
		presenter.Section("[FAIL] Critical violations")
		for _, f := range report.Critical {
			presenter.Info(fmt.Sprintf("  ✗ %s", f.Message))
		}
		os.Exit(1)
	}

	presenter.Separator()
	presenter.Success("[PASS] Skill is valid")
	if len(report.Advisory) > 0 {
		presenter.Section("Architectural notes")
		for _, f := range report.Advisory {
			presenter.Info(fmt.Sprintf("  • %s", f.Message))
		}
	}
}
