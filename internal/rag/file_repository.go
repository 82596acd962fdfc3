package rag

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"wallyfaq/internal/domain"
)

// Delimiter separa pergunta e resposta em cada linha do arquivo.
// Nao ha escape: uma resposta contendo "|||" e gravada como esta e, na
// leitura, so a primeira ocorrencia conta como separador.
const Delimiter = "|||"

// DefaultFile e o caminho padrao da base, relativo ao diretorio de trabalho.
const DefaultFile = "faqs.txt"

// FileRepository grava a base em texto puro, uma entrada por linha:
// <perguntaNormalizada>|||<resposta>.
type FileRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileRepository cria o repositorio em arquivo. Caminho vazio usa DefaultFile.
func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	if path == "" {
		path = DefaultFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepository{path: path, logger: logger}
}

// Path devolve o caminho do arquivo da base.
func (r *FileRepository) Path() string {
	return r.path
}

// Load le o arquivo linha a linha, sem limite de tamanho por linha. Linhas
// sem o delimitador sao ignoradas.
// Arquivo inexistente nao e erro: devolve uma base vazia.
func (r *FileRepository) Load() ([]domain.KnowledgeEntry, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo da base %s: %w", r.path, err)
	}
	defer f.Close()

	var (
		entries []domain.KnowledgeEntry
		skipped int
	)
	rd := bufio.NewReader(f)
	for {
		line, err := rd.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("erro ao ler arquivo da base %s: %w", r.path, err)
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			if q, a, ok := strings.Cut(line, Delimiter); ok {
				entries = append(entries, domain.KnowledgeEntry{Question: q, Answer: a})
			} else {
				skipped++
			}
		}
		if err != nil {
			break
		}
	}

	if skipped > 0 {
		r.logger.Debug("linhas malformadas ignoradas", zap.String("path", r.path), zap.Int("skipped", skipped))
	}
	return entries, nil
}

// Save reescreve o arquivo inteiro. Grava num temporario no mesmo diretorio
// e renomeia por cima, para que uma falha no meio nao trunque a base.
func (r *FileRepository) Save(entries []domain.KnowledgeEntry) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".faqs-*.tmp")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporario em %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	for _, e := range entries {
		if _, err := w.WriteString(e.Question + Delimiter + e.Answer + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("erro ao gravar entrada da base: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("erro ao gravar arquivo da base: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("erro ao ajustar permissoes do arquivo da base: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("erro ao fechar arquivo temporario: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("erro ao substituir arquivo da base %s: %w", r.path, err)
	}
	return nil
}
