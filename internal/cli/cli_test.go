package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallyfaq/internal/domain"
)

// run executa o comando raiz com um arquivo de base isolado.
func run(t *testing.T, kb string, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--backend", "file", "--file", kb}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		askJSON, kbYAML, chatNoTips = false, false, false
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func kbPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "faqs.txt")
}

func TestAskCmd_RequiresArgs(t *testing.T) {
	_, err := run(t, kbPath(t), "", "ask")
	assert.ErrorContains(t, err, "requires at least 1 arg(s)")
}

func TestAskCmd_SeededAnswer(t *testing.T) {
	out, err := run(t, kbPath(t), "", "ask", "what", "can", "you", "do")
	require.NoError(t, err)
	assert.Contains(t, out, "I can answer frequently asked questions.")
	assert.NotContains(t, out, "confidence")
}

func TestAskCmd_JSON(t *testing.T) {
	out, err := run(t, kbPath(t), "", "ask", "--json", "zzz qwerty unmatched")
	require.NoError(t, err)

	var resp domain.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Contains(t, resp.Text, "Sorry, I don't know the answer to that.")
	assert.Equal(t, 0.0, resp.Confidence)
}

func TestTrainCmd_ThenAsk(t *testing.T) {
	kb := kbPath(t)

	out, err := run(t, kb, "", "train", "What is your name?", "I am DemoBot.")
	require.NoError(t, err)
	assert.Contains(t, out, `Learned "your name" (5 entries)`)

	out, err = run(t, kb, "", "ask", "what is your name")
	require.NoError(t, err)
	assert.Equal(t, "I am DemoBot.\n", out)
}

func TestTrainCmd_EmptyAnswer(t *testing.T) {
	_, err := run(t, kbPath(t), "", "train", "question", " ")
	assert.ErrorContains(t, err, "erro ao treinar")
	assert.ErrorIs(t, err, domain.ErrEmptyAnswer)
}

func TestKBListCmd(t *testing.T) {
	kb := kbPath(t)

	out, err := run(t, kb, "", "kb", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] can")
	assert.Contains(t, out, "[4] languages support")

	_, err = run(t, kb, "", "ask", "train:Where is the office?|Second floor.")
	require.NoError(t, err)

	out, err = run(t, kb, "", "kb", "list", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "- question: office\n  answer: Second floor.")
}

func TestChatCmd(t *testing.T) {
	stdin := "hello\n\ntrain:What is your name?|I am DemoBot.\nyour name please\nexit\nnever read\n"
	out, err := run(t, kbPath(t), stdin, "chat", "--no-tips")
	require.NoError(t, err)

	assert.Contains(t, out, "Hello! How can I help you today?")
	assert.Contains(t, out, `I learned a new response for: "What is your name?"`)
	assert.Contains(t, out, "I am DemoBot. (confidence: 0.82)")
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "never read")
}

func TestChatCmd_LongLine(t *testing.T) {
	long := strings.Repeat("zzz ", 40*1024)
	stdin := long + "\nhello"
	out, err := run(t, kbPath(t), stdin, "chat", "--no-tips")
	require.NoError(t, err)

	assert.Contains(t, out, "Sorry, I don't know the answer to that.")
	// ultima linha sem quebra tambem e respondida
	assert.Contains(t, out, "Hello! How can I help you today?")
}

func TestServe(t *testing.T) {
	_, err := run(t, kbPath(t), "", "kb", "list")
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln) }()

	resp, err := http.Post("http://"+ln.Addr().String()+"/answer", "application/json", strings.NewReader(`{"text":"bye"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var got domain.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Goodbye! If you need anything else, just start a new chat.", got.Text)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
