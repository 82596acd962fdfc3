package rag

import (
	"wallyfaq/internal/domain"
)

// KnowledgeRepository define a interface para persistir e recuperar a base de conhecimento.
// Save sempre reescreve a base inteira, na ordem recebida.
type KnowledgeRepository interface {
	Load() ([]domain.KnowledgeEntry, error)
	Save(entries []domain.KnowledgeEntry) error
}

// defaultKnowledge e a base inicial usada quando nada foi carregado.
// As perguntas sao normalizadas antes de entrar no Store.
var defaultKnowledge = []domain.KnowledgeEntry{
	{Question: "what can you do", Answer: "I can answer frequently asked questions. You may also teach me new Q->A pairs using: train:question|answer"},
	{Question: "how do i train you", Answer: "Type: train:Your question?|Your answer. Example: train:What is your name?|I am DemoBot."},
	{Question: "how do i clear chat", Answer: "Use the Clear button in the UI to clear the conversation pane."},
	{Question: "what languages do you support", Answer: "This demo uses simple English-only preprocessing. You can expand it later."},
}

