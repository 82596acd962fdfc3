package rag

import "strings"

// stopwords sao descartadas na normalizacao: artigos, preposicoes comuns,
// verbos auxiliares, alguns pronomes interrogativos e "i"/"you".
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "and": {},
	"or": {}, "not": {}, "be": {}, "do": {}, "does": {}, "did": {}, "how": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "that": {}, "i": {}, "you": {},
}

// IsStopword informa se o token e descartado pela normalizacao.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// Normalize transforma texto livre em uma sequencia limpa de tokens separados
// por um espaco. Tudo fora de [a-z0-9] vira separador e as stopwords saem.
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	fields := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	kept := fields[:0]
	for _, tok := range fields {
		if IsStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
