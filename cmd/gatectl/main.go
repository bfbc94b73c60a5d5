package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag     string
	envFileFlag string
	rootCmd     = &cobra.Command{
		Use:           "gatectl",
		Short:         "Operator CLI for the agent gate",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:3000", "Gate service base URL")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", "", "dotenv file for local commands (default .env)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
