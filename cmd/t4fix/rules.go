package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"t4fix/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [flags]",
	Short: "Print the active field rule table",
	Long:  "Show every field the fixer knows about, its category, and any sentinel or valid range. Pass --rules to inspect a TOML rule pack instead of the built-in table.",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("rules", "", "path to a TOML rule pack (default: built-in T4 table)")
}

func runRules(cmd *cobra.Command, args []string) error {
	rulesPath, err := cmd.Flags().GetString("rules")
	if err != nil {
		return err
	}
	colorOn, err := colorEnabled(cmd)
	if err != nil {
		return err
	}
	color.NoColor = !colorOn

	table, err := resolveTable(rulesPath)
	if err != nil {
		return err
	}

	headerColor := color.New(color.FgCyan, color.Bold)
	dimColor := color.New(color.Faint)

	fmt.Fprintf(os.Stdout, "%s\n", headerColor.Sprintf("T4 rule table — tax year %d, %d fields", table.Year(), table.Len()))

	names := table.Names()
	width := 0
	for _, name := range names {
		if l := runewidth.StringWidth(name); l > width {
			width = l
		}
	}

	for _, cat := range []rules.Category{rules.Required, rules.OptionalAmount, rules.OptionalCode, rules.OptionalIdentifier} {
		fmt.Fprintf(os.Stdout, "\n%s\n", headerColor.Sprint(cat.String()))
		for _, name := range names {
			rule, ok := table.Lookup(name)
			if !ok || rule.Category != cat {
				continue
			}
			line := "  " + runewidth.FillRight(name, width)
			if rule.Sentinel != "" {
				line += dimColor.Sprintf("  sentinel %q", rule.Sentinel)
			}
			if rule.ValidMin != 0 || rule.ValidMax != 0 {
				line += dimColor.Sprintf("  valid %d–%d", rule.ValidMin, rule.ValidMax)
			}
			fmt.Fprintln(os.Stdout, line)
		}
	}

	if tags := table.StructuralTags(); len(tags) > 0 {
		fmt.Fprintf(os.Stdout, "\n%s\n", headerColor.Sprint("structural containers"))
		for _, tag := range tags {
			fmt.Fprintf(os.Stdout, "  %s %s\n", tag, dimColor.Sprint("(removed when emptied)"))
		}
	}
	return nil
}
