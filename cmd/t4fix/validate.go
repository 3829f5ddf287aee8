package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] <file.xml|directory>...",
	Short: "Validate T4 XML files against the CRA schema",
	Long:  "Run xmllint over each file without changing anything. Useful for checking a return after manual edits.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("schema", "", "path to the CRA XSD schema")
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaPath, err := cmd.Flags().GetString("schema")
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
	validator, err := resolveValidator(true, schemaPath)
	if err != nil {
		return err
	}

	okColor := color.New(color.FgGreen, color.Bold)
	errColor := color.New(color.FgRed, color.Bold)

	failed := 0
	for _, file := range files {
		res, err := validator.Validate(cmd.Context(), file)
		if err != nil {
			return fmt.Errorf("validate %s: %w", file, err)
		}
		if res.OK {
			fmt.Fprintf(os.Stdout, "%s %s\n", okColor.Sprint("PASS"), file)
			continue
		}
		failed++
		fmt.Fprintf(os.Stdout, "%s %s\n", errColor.Sprint("FAIL"), file)
		for _, v := range res.Violations {
			fmt.Fprintf(os.Stdout, "  %s\n", v)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed validation", failed)
	}
	return nil
}
