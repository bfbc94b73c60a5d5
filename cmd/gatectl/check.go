package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/auth"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/config"
)

func init() {
	var id, codeword string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check an identifier and codeword against the local environment, without a server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runCheck(cfg.Credentials(), id, codeword, os.Stdout)
		},
	}
	checkCmd.Flags().StringVarP(&id, "id", "i", "", "Team or agent ID (required)")
	checkCmd.Flags().StringVarP(&codeword, "codeword", "c", "", "Codeword (required)")
	_ = checkCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(checkCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Summarize the credential configuration (no secrets are printed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			runConfig(cfg, os.Stdout)
			return nil
		},
	}
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	var files []string
	if envFileFlag != "" {
		files = []string{envFileFlag}
	}
	if err := config.LoadDotEnv(files...); err != nil {
		return nil, err
	}
	return config.New()
}

func runCheck(authn auth.Authenticator, id, codeword string, out io.Writer) error {
	if err := authn.Authenticate(context.Background(), id, codeword); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, auth.MsgAuthenticated)
	return nil
}

func runConfig(cfg *config.Config, out io.Writer) {
	creds := cfg.Credentials()
	_, _ = fmt.Fprintf(out, "port:              %d\n", cfg.HTTPPort)
	_, _ = fmt.Fprintf(out, "teams:             %d\n", creds.Teams())
	_, _ = fmt.Fprintf(out, "allowlist size:    %d\n", creds.Len())
	_, _ = fmt.Fprintf(out, "agent id set:      %t\n", creds.HasAgentID())
	_, _ = fmt.Fprintf(out, "fallback codeword: %t\n", creds.HasFallback())
	_, _ = fmt.Fprintf(out, "unmatched paths:   %s\n", cfg.UnmatchedMode)
}
