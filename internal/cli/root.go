// Package cli implementa os comandos do wally: chat interativo, pergunta
// avulsa, treino, listagem da base e servidor HTTP.
package cli

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wallyfaq/config"
	"wallyfaq/internal/database"
	"wallyfaq/internal/rag"
	"wallyfaq/internal/service"
)

var (
	// Flags globais
	verbose    bool
	backend    string
	kbFile     string
	sqlitePath string
	dsn        string

	cfg    config.Config
	logger = zap.NewNop()
	db     *sql.DB
	bot    *service.Bot
)

var errBotNotConfigured = errors.New("bot nao configurado")

var rootCmd = &cobra.Command{
	Use:   "wally",
	Short: "Wally - FAQ chatbot with inline training",
	Long: `Wally answers questions by matching them against a small knowledge base
of question/answer pairs, after checking a fixed set of conversational rules
(greetings, thanks, farewells, help).

Teach it new answers at any time with:
  train:Your question?|Your answer`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "knowledge base backend: file, sqlite or postgres (env KB_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&kbFile, "file", "", "knowledge base file for the file backend (env KB_FILE)")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "database file for the sqlite backend (env SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "connection string for the postgres backend (env DATABASE_URL)")
}

// Execute roda o comando raiz.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(&loaded)
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger, err = newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("erro ao inicializar o logger: %w", err)
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	bot = service.NewBot(rag.Open(repo, logger), logger)
	logger.Debug("base de conhecimento pronta",
		zap.String("backend", cfg.Backend),
		zap.Int("entries", bot.Store().Len()))
	return nil
}

func teardown() {
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Warn("erro ao fechar banco", zap.Error(err))
		}
		db = nil
	}
	_ = logger.Sync()
}

func applyFlags(c *config.Config) {
	if backend != "" {
		c.Backend = backend
	}
	if kbFile != "" {
		c.KBFile = kbFile
	}
	if sqlitePath != "" {
		c.SQLitePath = sqlitePath
	}
	if dsn != "" {
		c.DatabaseUrl = dsn
	}
	if verbose {
		c.LogLevel = "debug"
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func openRepository(c config.Config) (rag.KnowledgeRepository, error) {
	switch c.Backend {
	case config.BackendSQLite:
		conn, err := database.Open(database.DriverSQLite, c.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		db = conn
		return rag.NewSQLRepository(conn, database.DriverSQLite, logger), nil
	case config.BackendPostgres:
		conn, err := database.Open(database.DriverPostgres, c.DatabaseUrl, logger)
		if err != nil {
			return nil, err
		}
		db = conn
		return rag.NewSQLRepository(conn, database.DriverPostgres, logger), nil
	default:
		return rag.NewFileRepository(c.KBFile, logger), nil
	}
}
