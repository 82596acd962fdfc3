package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Drivers suportados pelos backends SQL da base de conhecimento.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open abre e valida (ping) a conexao com o banco e garante a tabela da base.
// Para SQLite o dsn e o caminho do arquivo, com query string opcional; o
// diretorio e criado se preciso.
func Open(driver, dsn string, logger *zap.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch driver {
	case DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL nao configurada para o backend postgres")
		}
	case DriverSQLite:
		path, _, hasQuery := strings.Cut(dsn, "?")
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("erro ao criar diretorio do banco sqlite: %w", err)
			}
		}
		sep := "?"
		if hasQuery {
			sep = "&"
		}
		dsn += sep + "_pragma=busy_timeout(5000)"
	default:
		return nil, fmt.Errorf("driver de banco nao suportado: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexao com o banco de dados: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao conectar com o banco de dados (ping): %w", err)
	}

	logger.Info("conexao com o banco de dados estabelecida", zap.String("driver", driver))
	if err := createKnowledgeTableIfNotExists(db, driver); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("tabela 'knowledge_entries' verificada/criada")
	return db, nil
}

// createKnowledgeTableIfNotExists cria a tabela da base de conhecimento, se ela nao existir.
// position guarda a ordem de insercao, que decide empates na busca.
func createKnowledgeTableIfNotExists(db *sql.DB, driver string) error {
	query := `
    CREATE TABLE IF NOT EXISTS knowledge_entries (
        position INTEGER PRIMARY KEY,
        question TEXT NOT NULL,
        answer   TEXT NOT NULL
    );`
	if driver == DriverPostgres {
		query = `
    CREATE TABLE IF NOT EXISTS knowledge_entries (
        position   INTEGER PRIMARY KEY,
        question   TEXT NOT NULL,
        answer     TEXT NOT NULL,
        created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
    );`
	}

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("erro ao criar tabela knowledge_entries: %w", err)
	}
	return nil
}
