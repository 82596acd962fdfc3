package rag

import (
	"sync"

	"go.uber.org/zap"

	"wallyfaq/internal/domain"
)

// Store e a base de conhecimento em memoria: perguntas normalizadas e
// respostas em sequencias paralelas, so com append. Um unico mutex protege
// as sequencias, a busca que le delas e a persistencia.
type Store struct {
	mu        sync.Mutex
	questions []string
	answers   []string
	repo      KnowledgeRepository
	logger    *zap.Logger
}

// NewStore cria o Store sobre o repositorio sem carregar nada.
func NewStore(repo KnowledgeRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{repo: repo, logger: logger}
}

// Open cria o Store, carrega a base persistida e, se nada veio, usa a base inicial.
func Open(repo KnowledgeRepository, logger *zap.Logger) *Store {
	s := NewStore(repo, logger)
	if !s.Load() {
		s.SeedDefaults()
	}
	return s
}

// Load substitui o conteudo em memoria pelo que esta persistido. Devolve true
// so se pelo menos uma entrada foi carregada. Falha de leitura e registrada
// e devolve false, sem tocar na memoria.
func (s *Store) Load() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Reload recarrega a base depois de uma alteracao externa. A base so cresce:
// a recarga so e aceita quando o arquivo mantem as entradas atuais, na mesma
// ordem, como prefixo. Leitura com erro, vazia ou que remove/altera entradas
// e ignorada e o conteudo atual e mantido.
func (s *Store) Reload() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.fetchLocked()
	if !ok {
		return false
	}
	before := len(s.questions)
	if !s.isPrefixOf(entries) {
		s.logger.Warn("recarga ignorada: entradas existentes removidas ou alteradas",
			zap.Int("before", before), zap.Int("loaded", len(entries)))
		return false
	}
	s.replaceLocked(entries)
	s.logger.Info("base recarregada", zap.Int("before", before), zap.Int("entries", len(s.questions)))
	return true
}

func (s *Store) isPrefixOf(entries []domain.KnowledgeEntry) bool {
	if len(entries) < len(s.questions) {
		return false
	}
	for i := range s.questions {
		if entries[i].Question != s.questions[i] || entries[i].Answer != s.answers[i] {
			return false
		}
	}
	return true
}

func (s *Store) loadLocked() bool {
	entries, ok := s.fetchLocked()
	if !ok {
		return false
	}
	s.replaceLocked(entries)
	s.logger.Debug("base de conhecimento carregada", zap.Int("entries", len(entries)))
	return true
}

func (s *Store) fetchLocked() ([]domain.KnowledgeEntry, bool) {
	entries, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("erro ao carregar base de conhecimento", zap.Error(err))
		return nil, false
	}
	return entries, len(entries) > 0
}

func (s *Store) replaceLocked(entries []domain.KnowledgeEntry) {
	questions := make([]string, 0, len(entries))
	answers := make([]string, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, e.Question)
		answers = append(answers, e.Answer)
	}
	s.questions, s.answers = questions, answers
}

// SeedDefaults insere a base inicial (perguntas normalizadas). Nao persiste:
// o primeiro treino grava tudo junto.
func (s *Store) SeedDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range defaultKnowledge {
		s.appendLocked(e.Question, e.Answer)
	}
	s.logger.Debug("base inicial carregada", zap.Int("entries", len(defaultKnowledge)))
}

// Append normaliza a pergunta, adiciona a entrada e reescreve a persistencia
// inteira. Falha ao salvar e registrada; a entrada continua em memoria.
func (s *Store) Append(question, answer string) domain.KnowledgeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.appendLocked(question, answer)
	_ = s.saveLocked()
	return entry
}

func (s *Store) appendLocked(question, answer string) domain.KnowledgeEntry {
	q := Normalize(question)
	s.questions = append(s.questions, q)
	s.answers = append(s.answers, answer)
	return domain.KnowledgeEntry{Question: q, Answer: answer}
}

// Save grava a base inteira. O erro e registrado e devolvido, sem retry.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if err := s.repo.Save(s.entriesLocked()); err != nil {
		s.logger.Error("erro ao salvar base de conhecimento", zap.Error(err))
		return err
	}
	return nil
}

// Lookup normaliza e vetoriza a consulta e procura a pergunta mais parecida.
// A entrada devolvida so tem conteudo quando m.Found().
func (s *Store) Lookup(query string) (domain.KnowledgeEntry, Match) {
	qvec := TermFrequencies(Normalize(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	m := BestMatch(qvec, s.questions)
	if !m.Found() {
		return domain.KnowledgeEntry{}, m
	}
	return domain.KnowledgeEntry{Question: s.questions[m.Index], Answer: s.answers[m.Index]}, m
}

// Entries devolve uma copia das entradas na ordem de insercao.
func (s *Store) Entries() []domain.KnowledgeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entriesLocked()
}

func (s *Store) entriesLocked() []domain.KnowledgeEntry {
	out := make([]domain.KnowledgeEntry, len(s.questions))
	for i := range s.questions {
		out[i] = domain.KnowledgeEntry{Question: s.questions[i], Answer: s.answers[i]}
	}
	return out
}

// Len devolve o numero de entradas.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}
