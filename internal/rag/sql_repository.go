package rag

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"wallyfaq/internal/database"
	"wallyfaq/internal/domain"
)

// SQLRepository e uma implementacao do KnowledgeRepository sobre database/sql,
// usada com PostgreSQL (lib/pq) ou SQLite (modernc).
type SQLRepository struct {
	db     *sql.DB
	driver string
	logger *zap.Logger
}

// NewSQLRepository cria o repositorio SQL. driver decide o estilo de placeholder.
func NewSQLRepository(db *sql.DB, driver string, logger *zap.Logger) *SQLRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLRepository{db: db, driver: driver, logger: logger}
}

// Load recupera todas as entradas na ordem de insercao.
func (r *SQLRepository) Load() ([]domain.KnowledgeEntry, error) {
	rows, err := r.db.Query(`SELECT question, answer FROM knowledge_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conhecimento no banco de dados: %w", err)
	}
	defer rows.Close()

	var entries []domain.KnowledgeEntry
	for rows.Next() {
		var e domain.KnowledgeEntry
		if err := rows.Scan(&e.Question, &e.Answer); err != nil {
			r.logger.Warn("erro ao escanear linha de conhecimento", zap.Error(err))
			continue // Pula entradas malformadas
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteracao das linhas de conhecimento: %w", err)
	}
	return entries, nil
}

// Save substitui o conteudo da tabela pela base inteira, numa unica transacao.
func (r *SQLRepository) Save(entries []domain.KnowledgeEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("erro ao iniciar transacao: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM knowledge_entries`); err != nil {
		return fmt.Errorf("erro ao limpar knowledge_entries: %w", err)
	}

	stmt, err := tx.Prepare(r.insertQuery())
	if err != nil {
		return fmt.Errorf("erro ao preparar insercao: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(i, e.Question, e.Answer); err != nil {
			return fmt.Errorf("erro ao salvar conhecimento no banco de dados: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erro ao confirmar transacao: %w", err)
	}
	r.logger.Debug("base salva no banco", zap.String("driver", r.driver), zap.Int("entries", len(entries)))
	return nil
}

func (r *SQLRepository) insertQuery() string {
	if r.driver == database.DriverPostgres {
		return `INSERT INTO knowledge_entries (position, question, answer) VALUES ($1, $2, $3)`
	}
	return `INSERT INTO knowledge_entries (position, question, answer) VALUES (?, ?, ?)`
}
