package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wallyfaq/internal/domain"
	"wallyfaq/internal/rag"
)

// Respostas fixas do despachante.
const (
	msgEmptyInput = "Please type something."
	msgFallback   = "Sorry, I don't know the answer to that. You can teach me using:\ntrain:Your question?|Your answer"
)

// Bot responde mensagens usando regras fixas, treino inline e a base de
// conhecimento. Nao guarda estado entre chamadas alem do Store compartilhado.
type Bot struct {
	store  *rag.Store
	rules  []domain.Rule
	logger *zap.Logger
}

// NewBot cria o bot sobre o Store com as regras padrao.
func NewBot(store *rag.Store, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{store: store, rules: DefaultRules(), logger: logger}
}

// Store devolve a base usada pelo bot.
func (b *Bot) Store() *rag.Store {
	return b.store
}

// Answer processa uma mensagem crua: regras, depois comando de treino,
// depois busca por similaridade e, por fim, a resposta de fallback.
func (b *Bot) Answer(input string) domain.Response {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return domain.Response{Text: msgEmptyInput, Confidence: 0}
	}

	if reply, ok := MatchRule(b.rules, trimmed); ok {
		b.logger.Debug("regra aplicada", zap.String("input", trimmed))
		return domain.Response{Text: reply, Confidence: 1}
	}

	if IsTrainingCommand(trimmed) {
		return b.trainFromCommand(trimmed)
	}

	entry, m := b.store.Lookup(trimmed)
	b.logger.Debug("busca por similaridade",
		zap.String("input", trimmed),
		zap.Int("index", m.Index),
		zap.Float64("score", m.Score))

	if m.Accepted() {
		return domain.Response{Text: entry.Answer, Confidence: m.Score}
	}
	return domain.Response{Text: msgFallback, Confidence: m.Confidence()}
}

// Train adiciona um par pergunta/resposta a base e persiste.
func (b *Bot) Train(question, answer string) (domain.KnowledgeEntry, error) {
	q, a, err := validatePair(question, answer)
	if err != nil {
		return domain.KnowledgeEntry{}, fmt.Errorf("treino rejeitado: %w", err)
	}
	entry := b.store.Append(q, a)
	b.logger.Info("novo conhecimento aprendido",
		zap.String("question", entry.Question),
		zap.Int("entries", b.store.Len()))
	return entry, nil
}

func (b *Bot) trainFromCommand(input string) domain.Response {
	q, a, err := ParseTrainingCommand(input)
	if err != nil {
		b.logger.Debug("comando de treino invalido", zap.Error(err))
		switch {
		case errors.Is(err, domain.ErrMalformedTraining):
			return domain.Response{Text: msgTrainingFormat, Confidence: 1}
		case errors.Is(err, domain.ErrMultilineAnswer):
			return domain.Response{Text: msgTrainingLines, Confidence: 1}
		}
		return domain.Response{Text: msgTrainingEmpty, Confidence: 1}
	}
	if _, err := b.Train(q, a); err != nil {
		return domain.Response{Text: msgTrainingEmpty, Confidence: 1}
	}
	return domain.Response{Text: fmt.Sprintf(msgTrainingLearned, q), Confidence: 1}
}
