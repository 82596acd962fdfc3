package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wallyfaq/internal/domain"
)

// maxBodyBytes limita o corpo das requisicoes.
const maxBodyBytes = 64 * 1024

// Bot e o que os handlers precisam do despachante.
type Bot interface {
	Answer(input string) domain.Response
	Train(question, answer string) (domain.KnowledgeEntry, error)
}

// Counter informa o tamanho da base para o health check.
type Counter interface {
	Len() int
}

type AnswerRequest struct {
	Text string `json:"text"`
}

type TrainRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

// NewMux registra as rotas do bot.
func NewMux(bot Bot, kb Counter, logger *zap.Logger) *http.ServeMux {
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/answer", AnswerHandler(bot, logger))
	mux.HandleFunc("/train", TrainHandler(bot, logger))
	mux.HandleFunc("/healthz", HealthHandler(kb))
	return mux
}

// AnswerHandler recebe {"text": "..."} e devolve a Response do bot.
func AnswerHandler(bot Bot, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "metodo nao permitido"})
			return
		}

		var req AnswerRequest
		if err := decode(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "erro ao decodificar a mensagem"})
			return
		}

		reqID := uuid.NewString()
		resp := bot.Answer(req.Text)
		logger.Info("mensagem respondida",
			zap.String("request_id", reqID),
			zap.String("text", req.Text),
			zap.Float64("confidence", resp.Confidence))

		w.Header().Set("X-Request-ID", reqID)
		writeJSON(w, http.StatusOK, resp)
	}
}

// TrainHandler recebe {"question": "...", "answer": "..."} e grava o par.
func TrainHandler(bot Bot, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "metodo nao permitido"})
			return
		}

		var req TrainRequest
		if err := decode(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "erro ao decodificar a mensagem"})
			return
		}

		entry, err := bot.Train(req.Question, req.Answer)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, domain.ErrEmptyQuestion) || errors.Is(err, domain.ErrEmptyAnswer) ||
				errors.Is(err, domain.ErrMultilineAnswer) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, errorResponse{Error: err.Error()})
			return
		}

		reqID := uuid.NewString()
		logger.Info("treino via http", zap.String("request_id", reqID), zap.String("question", entry.Question))
		w.Header().Set("X-Request-ID", reqID)
		writeJSON(w, http.StatusCreated, entry)
	}
}

// HealthHandler devolve o status do servico e o tamanho da base.
func HealthHandler(kb Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Entries: kb.Len()})
	}
}

func decode(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
