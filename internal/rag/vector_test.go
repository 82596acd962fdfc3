package rag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermFrequencies(t *testing.T) {
	assert.Equal(t, Vector{"clear": 2, "chat": 1}, TermFrequencies("clear chat clear"))
	assert.Empty(t, TermFrequencies(""))
	assert.Empty(t, TermFrequencies("   "))
}

func TestCosine(t *testing.T) {
	a := TermFrequencies("reset password")
	b := TermFrequencies("reset")

	assert.InDelta(t, 1/math.Sqrt2, Cosine(a, b), 1e-9)
	assert.InDelta(t, 1.0, Cosine(a, a), 1e-9)
	assert.Equal(t, 0.0, Cosine(a, TermFrequencies("chat")))
}

func TestCosine_EmptyIsZero(t *testing.T) {
	a := TermFrequencies("reset password")
	assert.Equal(t, 0.0, Cosine(a, Vector{}))
	assert.Equal(t, 0.0, Cosine(Vector{}, a))
	assert.Equal(t, 0.0, Cosine(nil, nil))
}

func TestCosine_SymmetricAndBounded(t *testing.T) {
	texts := []string{"clear chat", "chat chat history", "reset password now", "clear", "history clear chat chat"}
	for _, x := range texts {
		for _, y := range texts {
			a, b := TermFrequencies(x), TermFrequencies(y)
			ab, ba := Cosine(a, b), Cosine(b, a)
			assert.InDelta(t, ab, ba, 1e-12, "%q vs %q", x, y)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)
		}
	}
}
