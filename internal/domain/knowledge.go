package domain

// KnowledgeEntry representa um par pergunta/resposta aprendido pelo bot.
// A pergunta ja esta normalizada; a posicao na base identifica a entrada.
type KnowledgeEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Response e o que o bot devolve para a camada de apresentacao.
// Confidence e 1.0 para regras e treino, ou o cosseno calculado na busca por similaridade.
type Response struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}
