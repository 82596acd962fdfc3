package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"wallyfaq/internal/utils"
)

var (
	userLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Render("You:")
	botLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Render("Bot:")
)

var chatNoTips bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Reads one message per line and prints the bot reply.
Similarity answers are annotated with their confidence.
Type 'exit' or press Ctrl+D to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatNoTips, "no-tips", false, "do not print the sample inputs on start")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if bot == nil {
		return errBotNotConfigured
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, botLabel, utils.BuildWelcome())
	if !chatNoTips {
		fmt.Fprintln(out)
		fmt.Fprintln(out, utils.BuildTips())
	}
	fmt.Fprintln(out)

	// bufio.Reader em vez de Scanner: linha colada nao tem limite de tamanho
	in := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(out, userLabel+" ")
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("erro ao ler entrada do chat: %w", err)
		}
		eof := err != nil
		text := strings.TrimSpace(line)
		if text == "" {
			if eof {
				fmt.Fprintln(out)
				return nil
			}
			continue
		}

		resp := bot.Answer(text)
		fmt.Fprintln(out, botLabel, utils.BuildReply(resp))
		fmt.Fprintln(out)

		if eof || strings.EqualFold(text, "exit") || strings.EqualFold(text, "quit") {
			return nil
		}
	}
}
