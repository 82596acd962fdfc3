package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train [question] [answer]",
	Short: "Teach the bot a new answer",
	Long: `Adds a question/answer pair to the knowledge base and saves it.
Same effect as sending 'train:question|answer' in the chat.`,
	Args: cobra.ExactArgs(2),
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	if bot == nil {
		return errBotNotConfigured
	}
	out := cmd.OutOrStdout()

	entry, err := bot.Train(args[0], args[1])
	if err != nil {
		return fmt.Errorf("erro ao treinar: %w", err)
	}
	fmt.Fprintf(out, "Learned %q (%d entries)\n", entry.Question, bot.Store().Len())
	return nil
}
