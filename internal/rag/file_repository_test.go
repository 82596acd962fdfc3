package rag

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallyfaq/internal/domain"
)

func TestFileRepository_MissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "faqs.txt"), nil)

	entries, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileRepository_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.txt")
	content := "clear chat|||Use the Clear button.\n" +
		"no delimiter here\n" +
		"\n" +
		"pipes|||answer with ||| inside\n" +
		"|||empty question\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := NewFileRepository(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.KnowledgeEntry{
		{Question: "clear chat", Answer: "Use the Clear button."},
		{Question: "pipes", Answer: "answer with ||| inside"},
		{Question: "", Answer: "empty question"},
	}, entries)
}

func TestFileRepository_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.txt")
	repo := NewFileRepository(path, nil)

	require.NoError(t, repo.Save([]domain.KnowledgeEntry{{Question: "a b", Answer: "1"}, {Question: "c", Answer: "2"}}))
	require.NoError(t, repo.Save([]domain.KnowledgeEntry{{Question: "only", Answer: "one"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "only|||one\n", string(data))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".faqs-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileRepository_SaveFailsOnMissingDir(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing", "faqs.txt"), nil)
	assert.Error(t, repo.Save([]domain.KnowledgeEntry{{Question: "q", Answer: "a"}}))
}

func TestFileRepository_LoadErrorOnDirectory(t *testing.T) {
	_, err := NewFileRepository(t.TempDir(), nil).Load()
	assert.Error(t, err)
}

func TestNewFileRepository_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultFile, NewFileRepository("", nil).Path())
}

func TestFileRepository_LongAnswerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.txt")
	repo := NewFileRepository(path, nil)
	entries := []domain.KnowledgeEntry{
		{Question: "first", Answer: "short"},
		{Question: "huge", Answer: strings.Repeat("x", 2<<20)},
		{Question: "last", Answer: "after the long line"},
	}
	require.NoError(t, repo.Save(entries))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestFileRepository_LastLineWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.txt")
	require.NoError(t, os.WriteFile(path, []byte("a|||1\r\nb|||2"), 0o644))

	entries, err := NewFileRepository(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.KnowledgeEntry{{Question: "a", Answer: "1"}, {Question: "b", Answer: "2"}}, entries)
}
