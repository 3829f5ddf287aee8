package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"t4fix/internal/fixer"
	"t4fix/internal/report"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.xml|directory>...",
	Short: "Remove zero-value optional fields from T4 XML files",
	Long:  "Parse each T4 return, drop optional amounts, codes, and identifiers that carry no information, and write the reduced document back in place.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "report changes without writing anything")
	fixCmd.Flags().Bool("no-backup", false, "do not keep a backup of the original file")
	fixCmd.Flags().String("backup-suffix", "", "suffix for backup files (default .bak)")
	addEngineFlags(fixCmd)
}

// addEngineFlags registers the flags shared by fix and check.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strip-negative", false, "also remove negative amounts instead of only flagging them")
	cmd.Flags().Int("jobs", 0, "number of files to process in parallel (0 = all CPUs)")
	cmd.Flags().Bool("validate", false, "validate results against the CRA schema with xmllint")
	cmd.Flags().String("schema", "", "path to the CRA XSD schema")
	cmd.Flags().String("rules", "", "path to a TOML rule pack (default: built-in T4 table)")
	cmd.Flags().String("audit", "", "write a binary audit trail to this path")
	cmd.Flags().String("ui", "off", "show live progress (auto|on|off)")
}

func runFix(cmd *cobra.Command, args []string) error {
	return runFixLike(cmd, args, false)
}

// runFixLike is shared between fix and check; preview forces dry-run
// semantics while keeping the change log identical.
func runFixLike(cmd *cobra.Command, args []string, preview bool) error {
	backup := false
	backupSuffix := ""
	if !preview {
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}
		preview = dryRun

		noBackup, err := cmd.Flags().GetBool("no-backup")
		if err != nil {
			return err
		}
		backup = cfg.Backup && !noBackup

		backupSuffix, err = cmd.Flags().GetString("backup-suffix")
		if err != nil {
			return err
		}
	}
	stripNegative, err := cmd.Flags().GetBool("strip-negative")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
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
	auditPath, err := cmd.Flags().GetString("audit")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	colorOn, err := colorEnabled(cmd)
	if err != nil {
		return err
	}
	color.NoColor = !colorOn

	files, err := expandPaths(args)
	if err != nil {
		return err
	}

	table, err := resolveTable(rulesPath)
	if err != nil {
		return err
	}
	validator, err := resolveValidator(validate, schemaPath)
	if err != nil {
		return err
	}

	if backupSuffix == "" {
		backupSuffix = cfg.BackupSuffix
	}
	if jobs == 0 {
		jobs = cfg.Jobs
	}
	opts := fixer.Options{
		Preview:         preview,
		Backup:          backup,
		BackupSuffix:    backupSuffix,
		RemoveNegatives: stripNegative,
		Jobs:            jobs,
		Table:           table,
		Validator:       validator,
	}

	var results []fixer.FileResult
	if shouldUseTUI(mode) {
		title := "fixing T4 returns"
		if preview {
			title = "checking T4 returns"
		}
		results, err = runFixWithUI(cmd.Context(), title, files, opts)
		if err != nil {
			return err
		}
	} else {
		results = fixer.FixAll(cmd.Context(), files, opts)
	}

	rep := report.Options{Color: colorOn, Preview: preview, Quiet: quietEnabled(cmd)}
	for i := range results {
		report.File(os.Stdout, &results[i], rep)
	}
	report.Summary(os.Stdout, results, rep)

	if auditPath != "" {
		if err := report.WriteAudit(auditPath, results, preview); err != nil {
			return fmt.Errorf("audit: %w", err)
		}
	}

	if report.Failed(results) {
		return fmt.Errorf("some files were not fixed cleanly")
	}
	return nil
}
