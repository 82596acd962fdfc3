package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Backends da base de conhecimento.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Backend     string `json:"backend"`
	KBFile      string `json:"kb_file"`
	SQLitePath  string `json:"sqlite_path"`
	DatabaseUrl string `json:"database_url"`
	HTTPAddr    string `json:"http_addr"`
	LogLevel    string `json:"log_level"`
}

// Default devolve a configuracao usada quando nenhuma variavel foi definida.
func Default() Config {
	return Config{
		Backend:    BackendFile,
		KBFile:     "faqs.txt",
		SQLitePath: "wally.db",
		HTTPAddr:   ":8080",
		LogLevel:   "info",
	}
}

// Load carrega as variaveis de ambiente do arquivo .env (opcional) e do
// ambiente do processo. Variaveis ausentes ficam com o valor padrao.
// A validacao fica com o chamador, depois de aplicar as flags.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("erro ao carregar o arquivo .env: %w", err)
	}

	cfg := Default()
	setFromEnv(&cfg.Backend, "KB_BACKEND")
	setFromEnv(&cfg.KBFile, "KB_FILE")
	setFromEnv(&cfg.SQLitePath, "SQLITE_PATH")
	setFromEnv(&cfg.DatabaseUrl, "DATABASE_URL")
	setFromEnv(&cfg.HTTPAddr, "HTTP_ADDR")
	setFromEnv(&cfg.LogLevel, "LOG_LEVEL")
	return cfg, nil
}

// Validate confere se o backend escolhido tem o que precisa.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.KBFile == "" {
			return errors.New("KB_FILE nao pode ser vazio para o backend file")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH nao pode ser vazio para o backend sqlite")
		}
	case BackendPostgres:
		if c.DatabaseUrl == "" {
			return errors.New("variavel de ambiente DATABASE_URL nao encontrada")
		}
	default:
		return fmt.Errorf("KB_BACKEND invalido: %q (use file, sqlite ou postgres)", c.Backend)
	}
	return nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
