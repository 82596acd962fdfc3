package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"wallyfaq/internal/domain"
	"wallyfaq/internal/rag"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFileWatcher_ReloadsOnExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.txt")
	require.NoError(t, os.WriteFile(path, []byte("clear chat|||Use the Clear button.\n"), 0o644))

	store := rag.Open(rag.NewFileRepository(path, nil), nil)
	require.Equal(t, 1, store.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(path, store, 20*time.Millisecond, nil).Run(ctx)
	}()

	// outro processo reescreve o arquivo
	other := rag.NewFileRepository(path, nil)
	entries := []domain.KnowledgeEntry{
		{Question: "clear chat", Answer: "Use the Clear button."},
		{Question: "your name", Answer: "I am DemoBot."},
	}
	assert.Eventually(t, func() bool {
		// repete a escrita ate o watcher estar registrado
		if err := other.Save(entries); err != nil {
			return false
		}
		return store.Len() == 2
	}, 5*time.Second, 100*time.Millisecond)

	entry, m := store.Lookup("what is your name")
	assert.True(t, m.Accepted())
	assert.Equal(t, "I am DemoBot.", entry.Answer)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

type countingReloader struct{ calls chan struct{} }

func (c *countingReloader) Reload() bool {
	c.calls <- struct{}{}
	return false
}

func TestFileWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faqs.txt")
	r := &countingReloader{calls: make(chan struct{}, 16)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(path, r, 10*time.Millisecond, nil).Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-r.calls:
		t.Fatal("reload triggered by unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "faqs.txt")
	err := New(path, &countingReloader{calls: make(chan struct{}, 1)}, 0, nil).Run(context.Background())
	assert.Error(t, err)
}
