package rag

// ConfidenceThreshold e o score minimo para aceitar uma pergunta armazenada.
const ConfidenceThreshold = 0.30

// Match e o resultado da busca: indice da melhor pergunta e seu score.
// Index -1 (com Score -1) significa que nao havia nada para comparar.
type Match struct {
	Index int
	Score float64
}

// Found informa se a busca encontrou alguma entrada.
func (m Match) Found() bool {
	return m.Index >= 0
}

// Accepted informa se o score atinge o limiar de confianca.
func (m Match) Accepted() bool {
	return m.Found() && m.Score >= ConfidenceThreshold
}

// Confidence devolve o score limitado a [0, 1] para exibicao.
func (m Match) Confidence() float64 {
	if m.Score < 0 {
		return 0
	}
	return m.Score
}

// BestMatch compara a consulta com cada pergunta armazenada e devolve a de
// maior cosseno. A comparacao e estrita (>), entao em empate vence a entrada
// mais antiga.
func BestMatch(query Vector, questions []string) Match {
	best := Match{Index: -1, Score: -1}
	for i, q := range questions {
		sim := Cosine(query, TermFrequencies(q))
		if sim > best.Score {
			best = Match{Index: i, Score: sim}
		}
	}
	return best
}
