package utils

import (
	"fmt"

	"wallyfaq/internal/domain"
)

// BuildWelcome gera a mensagem inicial do chat.
func BuildWelcome() string {
	return "Hi — I'm a demo chatbot. Ask me something or teach me using 'train:question|answer'."
}

// BuildTips gera a lista de exemplos mostrada ao abrir o chat.
func BuildTips() string {
	return "Try these sample inputs:\n" +
		"- hello\n" +
		"- what can you do\n" +
		"- how do i train you\n\n" +
		"TRAINING:\n" +
		"Type training inline: train:How do I reset my password?|You can reset from Settings -> Account -> Reset Password.\n\n" +
		"Type 'exit' or press Ctrl+D to leave."
}

// BuildReply formata a resposta do bot. A confianca so aparece quando fica
// estritamente entre 0 e 1, ou seja, quando veio da busca por similaridade.
func BuildReply(resp domain.Response) string {
	if resp.Confidence > 0 && resp.Confidence < 1 {
		return fmt.Sprintf("%s (confidence: %.2f)", resp.Text, resp.Confidence)
	}
	return resp.Text
}
