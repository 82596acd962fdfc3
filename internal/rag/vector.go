package rag

import (
	"math"
	"strings"
)

// Vector e o saco de palavras de um texto normalizado: token -> ocorrencias.
type Vector map[string]int

// TermFrequencies conta as ocorrencias de cada token. Sem IDF, frequencia pura.
func TermFrequencies(normalized string) Vector {
	v := make(Vector)
	for _, tok := range strings.Fields(normalized) {
		v[tok]++
	}
	return v
}

// sumSquares devolve o quadrado da norma euclidiana do vetor.
func (v Vector) sumSquares() float64 {
	var sum float64
	for _, c := range v {
		sum += float64(c) * float64(c)
	}
	return sum
}

// Cosine calcula a similaridade do cosseno entre dois vetores de contagem.
// Se algum deles for vazio (ou de norma zero) o resultado e 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// itera sobre o menor para o produto escalar
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	var dot float64
	for tok, c := range small {
		dot += float64(c) * float64(large[tok])
	}
	na2, nb2 := a.sumSquares(), b.sumSquares()
	if na2 == 0 || nb2 == 0 {
		return 0
	}
	// raiz do produto: vetores iguais dao exatamente 1
	sim := dot / math.Sqrt(na2*nb2)
	if sim > 1 {
		sim = 1
	}
	return sim
}
