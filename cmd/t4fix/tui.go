package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"t4fix/internal/fixer"
	"t4fix/internal/report"
	"t4fix/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [flags] <file.xml|directory>...",
	Short: "Fix T4 files interactively",
	Long:  "Open a terminal UI to choose files and options, then preview or apply the fixes with live progress.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().Bool("validate", false, "start with schema validation enabled")
	tuiCmd.Flags().String("schema", "", "path to the CRA XSD schema")
	tuiCmd.Flags().String("rules", "", "path to a TOML rule pack (default: built-in T4 table)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("tui requires a terminal; use fix or check instead")
	}

	validate, err := cmd.Flags().GetBool("validate")
	if err != nil {
		return err
	}
	schemaPath, err := cmd.Flags().GetString("schema")
	if err != nil {
		return err
	}
	rulesPath, err := cmd.Flags().GetString("rules")
	if err != nil {
		return err
	}

	files, err := expandPaths(args)
	if err != nil {
		return err
	}
	table, err := resolveTable(rulesPath)
	if err != nil {
		return err
	}

	defaults := ui.Choices{Backup: cfg.Backup, Validate: validate}
	picker := ui.NewPickerModel(files, defaults)
	final, err := tea.NewProgram(picker, tea.WithOutput(os.Stdout)).Run()
	if err != nil {
		return err
	}
	action, choices, chosen := ui.PickerOutcome(final)
	if action == ui.ActionCancel || len(chosen) == 0 {
		return nil
	}

	validator, err := resolveValidator(choices.Validate, schemaPath)
	if err != nil {
		return err
	}

	preview := action == ui.ActionPreview
	opts := fixer.Options{
		Preview:         preview,
		Backup:          choices.Backup && !preview,
		BackupSuffix:    cfg.BackupSuffix,
		RemoveNegatives: choices.RemoveNegatives,
		Jobs:            cfg.Jobs,
		Table:           table,
		Validator:       validator,
	}

	title := "fixing T4 returns"
	if preview {
		title = "checking T4 returns"
	}
	results, err := runFixWithUI(cmd.Context(), title, chosen, opts)
	if err != nil {
		return err
	}

	color.NoColor = false
	rep := report.Options{Color: true, Preview: preview, Quiet: quietEnabled(cmd)}
	for i := range results {
		report.File(os.Stdout, &results[i], rep)
	}
	report.Summary(os.Stdout, results, rep)

	if report.Failed(results) {
		return fmt.Errorf("some files were not fixed cleanly")
	}
	return nil
}
