package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/api/respond"
)

func init() {
	var id, codeword string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Submit an identifier and codeword to a running gate service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), newClient(apiFlag), id, codeword, os.Stdout)
		},
	}
	loginCmd.Flags().StringVarP(&id, "id", "i", "", "Team or agent ID (required)")
	loginCmd.Flags().StringVarP(&codeword, "codeword", "c", "", "Codeword (required)")
	_ = loginCmd.MarkFlagRequired("id")
	_ = loginCmd.MarkFlagRequired("codeword")
	rootCmd.AddCommand(loginCmd)
}

func newClient(base string) *resty.Client {
	return resty.New().
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
}

// runLogin posts the pair to /login and prints the server's message.
// A rejected login is returned as an error so the exit status reflects it.
func runLogin(ctx context.Context, c *resty.Client, id, codeword string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var result respond.Result
	resp, err := c.R().
		SetContext(ctx).
		SetBody(map[string]string{"teamId": id, "codeword": codeword}).
		SetResult(&result).
		SetError(&result).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if result.Message == "" {
		result.Message = resp.Status()
	}
	if resp.StatusCode() != http.StatusOK || !result.Success {
		return fmt.Errorf("login rejected (%d): %s", resp.StatusCode(), result.Message)
	}
	_, _ = fmt.Fprintln(out, result.Message)
	return nil
}
