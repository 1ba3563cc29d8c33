package main

import (
	"fmt"
	"os"

	"github.com/cloo-solutions/loanfaq/internal/cli"
	"github.com/cloo-solutions/loanfaq/internal/cli/admin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loanfaqd",
		Short: "Loan FAQ fulfillment webhook",
		Long:  "Webhook backend answering loan FAQ intents for the hosted conversational platform",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())
	rootCmd.AddCommand(admin.KBCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
