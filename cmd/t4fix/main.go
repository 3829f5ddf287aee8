package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"t4fix/internal/config"
	"t4fix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "t4fix",
	Short: "Clean CRA T4 XML returns before filing",
	Long:  `t4fix removes zero-value optional fields and sentinel codes from T4 internet-filing XML so the return validates against the CRA schema.`,
}

var (
	cfgFile string
	cfg     config.Config
)

func main() {
	rootCmd.Version = version.Version

	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .t4fix.yaml)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".t4fix")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("T4FIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover everything.
	_ = viper.ReadInConfig()
	cfg = config.Load()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
