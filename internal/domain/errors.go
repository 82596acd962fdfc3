package domain

import "errors"

// Erros de dominio do treino inline.
var (
	// ErrMalformedTraining indica que o comando train: veio sem o separador "|".
	ErrMalformedTraining = errors.New("comando de treino sem separador")

	// ErrEmptyQuestion indica pergunta vazia depois do trim.
	ErrEmptyQuestion = errors.New("pergunta vazia")

	// ErrEmptyAnswer indica resposta vazia depois do trim.
	ErrEmptyAnswer = errors.New("resposta vazia")

	// ErrMultilineAnswer indica pergunta ou resposta com quebra de linha, que
	// nao cabe no formato de uma entrada por linha.
	ErrMultilineAnswer = errors.New("pergunta ou resposta com quebra de linha")
)
