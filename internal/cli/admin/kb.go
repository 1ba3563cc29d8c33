package admin

import (
	"encoding/json"
	"fmt"

	"github.com/cloo-solutions/loanfaq/internal/config"
	"github.com/cloo-solutions/loanfaq/internal/kb"
	"github.com/spf13/cobra"
)

func KBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect the loan knowledge base",
		Long:  "Validate and list the answer table the webhook serves from",
	}

	cmd.AddCommand(KBValidateCmd())
	cmd.AddCommand(KBListCmd())

	return cmd
}

func KBValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check knowledge base coverage",
		Long:  "Verify every loan type and query field pair has a well-formed entry, including any configured overrides",
		RunE:  runKBValidate,
	}
}

func runKBValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	knowledgeBase, err := buildKnowledgeBase(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("knowledge base OK: %d entries, full coverage\n", len(knowledgeBase.Entries()))
	return nil
}

func KBListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge base entries",
		Long:  "Print every knowledge base entry, optionally as JSON",
		RunE:  runKBList,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")

	return cmd
}

func runKBList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	knowledgeBase := kb.New()
	if cfg.HasKnowledgeFile() {
		if err := knowledgeBase.LoadFile(cfg.KnowledgeFile); err != nil {
			return fmt.Errorf("failed to load knowledge file: %w", err)
		}
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	entries := knowledgeBase.Entries()

	if outputFormat == "json" {
		jsonBytes, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%-10s %-15s %s\n", e.LoanType, e.Field, e.Text)
	}
	fmt.Printf("\n%d entries\n", len(entries))
	return nil
}
