package domain

import "regexp"

// Rule associa um padrao (sem distinguir maiusculas) a uma resposta fixa.
// Regras sao criadas uma vez na inicializacao e nunca mudam.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Reply   string
}

// NewRule compila o padrao ancorado nas duas pontas, de modo que a regra so
// casa quando cobre a entrada inteira. Padroes que aceitam palavras no meio
// da frase precisam trazer ".*" explicitamente.
func NewRule(name, pattern, reply string) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(`(?i)^(?:` + pattern + `)$`),
		Reply:   reply,
	}
}

// Matches verifica se o padrao cobre a entrada inteira.
func (r Rule) Matches(input string) bool {
	return r.Pattern.MatchString(input)
}
