// Package watcher recarrega a base de conhecimento quando o arquivo e
// editado fora do processo.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reloader e o que o watcher chama apos uma alteracao.
type Reloader interface {
	Reload() bool
}

// FileWatcher observa o diretorio do arquivo da base (editores costumam
// substituir o arquivo, o que invalida um watch direto nele) e filtra os
// eventos pelo nome.
type FileWatcher struct {
	path     string
	target   Reloader
	debounce time.Duration
	logger   *zap.Logger
}

// New cria o watcher. debounce agrupa gravacoes seguidas num unico reload.
func New(path string, target Reloader, debounce time.Duration, logger *zap.Logger) *FileWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	return &FileWatcher{path: filepath.Clean(path), target: target, debounce: debounce, logger: logger}
}

// Run bloqueia ate o contexto ser cancelado.
func (fw *FileWatcher) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("erro ao criar watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(fw.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("erro ao observar %s: %w", dir, err)
	}
	fw.logger.Info("observando base de conhecimento", zap.String("path", fw.path))

	timer := time.NewTimer(fw.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(fw.debounce)

		case <-timer.C:
			if !fw.target.Reload() {
				fw.logger.Debug("alteracao ignorada, base mantida", zap.String("path", fw.path))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("erro no watcher", zap.Error(err))
		}
	}
}
