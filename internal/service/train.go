package service

import (
	"fmt"
	"strings"

	"wallyfaq/internal/domain"
)

// TrainingPrefix inicia o comando de treino inline (sensivel a maiusculas).
const TrainingPrefix = "train:"

// Mensagens do fluxo de treino.
const (
	msgTrainingFormat  = "Training failed. Use format: train:question|answer"
	msgTrainingEmpty   = "Training failed. Question or answer empty."
	msgTrainingLines   = "Training failed. Question and answer must be on a single line."
	msgTrainingLearned = "Thanks — I learned a new response for: \"%s\""
)

// IsTrainingCommand informa se a entrada (ja com trim) e um comando de treino.
func IsTrainingCommand(input string) bool {
	return strings.HasPrefix(input, TrainingPrefix)
}

// ParseTrainingCommand separa "train:<pergunta>|<resposta>" no primeiro "|".
// Os dois lados voltam com trim.
func ParseTrainingCommand(input string) (question, answer string, err error) {
	payload := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), TrainingPrefix))
	q, a, ok := strings.Cut(payload, "|")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", domain.ErrMalformedTraining, payload)
	}
	return validatePair(q, a)
}

func validatePair(question, answer string) (string, string, error) {
	question, answer = strings.TrimSpace(question), strings.TrimSpace(answer)
	if question == "" {
		return "", "", domain.ErrEmptyQuestion
	}
	if answer == "" {
		return "", "", domain.ErrEmptyAnswer
	}
	if strings.ContainsAny(question, "\r\n") || strings.ContainsAny(answer, "\r\n") {
		return "", "", domain.ErrMultilineAnswer
	}
	return question, answer, nil
}
