package service

import (
	"strings"

	"wallyfaq/internal/domain"
)

// DefaultRules devolve as regras fixas, em ordem de prioridade.
// Saudacao e despedida so valem no inicio da frase; agradecimento e ajuda
// casam em qualquer posicao.
func DefaultRules() []domain.Rule {
	return []domain.Rule{
		domain.NewRule("greeting",
			`(hi|hello|hey|good morning|good afternoon|good evening)\b.*`,
			"Hello! How can I help you today?"),
		domain.NewRule("thanks",
			`.*\b(thanks|thank you|thx)\b.*`,
			"You're welcome — happy to help!"),
		domain.NewRule("farewell",
			`(bye|goodbye|see ya|exit)\b.*`,
			"Goodbye! If you need anything else, just start a new chat."),
		domain.NewRule("help",
			`.*\b(help|support)\b.*`,
			"I can answer FAQs or you can teach me new Q→A pairs using: train:question|answer"),
	}
}

// MatchRule devolve a resposta da primeira regra que cobre a entrada inteira.
func MatchRule(rules []domain.Rule, input string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, r := range rules {
		if r.Matches(input) {
			return r.Reply, true
		}
	}
	return "", false
}
