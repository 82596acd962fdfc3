package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var kbYAML bool

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the knowledge base",
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored question/answer pairs",
	Long: `Lists every entry in insertion order. Questions are shown normalized,
as they are stored and matched.`,
	Args: cobra.NoArgs,
	RunE: runKBList,
}

func init() {
	kbListCmd.Flags().BoolVar(&kbYAML, "yaml", false, "output entries as YAML")
	kbCmd.AddCommand(kbListCmd)
	rootCmd.AddCommand(kbCmd)
}

func runKBList(cmd *cobra.Command, _ []string) error {
	if bot == nil {
		return errBotNotConfigured
	}
	out := cmd.OutOrStdout()

	entries := bot.Store().Entries()
	if kbYAML {
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("erro ao gerar YAML da base: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "Knowledge base is empty.")
		return nil
	}
	for i, e := range entries {
		fmt.Fprintf(out, "[%d] %s\n    %s\n", i+1, e.Question, e.Answer)
	}
	return nil
}
