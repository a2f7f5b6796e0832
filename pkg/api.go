package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/qnkhuat/fatbot/pkg/engine"
	"github.com/qnkhuat/fatbot/pkg/strategy"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

type ctxKey int

const loggerKey ctxKey = iota

// API serves move selection over HTTP.
type API struct {
	cfg Config
	log *zap.SugaredLogger
}

func NewAPI(cfg Config, log *zap.SugaredLogger) *API {
	return &API{cfg: cfg, log: log}
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(a.requestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", a.HandleHealth)
	r.Get("/strategies", a.HandleStrategies)
	r.Group(func(r chi.Router) {
		if a.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(a.cfg.RequestTimeout))
		}
		r.Post("/move", a.HandleMove)
	})
	return r
}

// requestID tags every request with a uuid, echoed in the response header
// and attached to the request's logger.
func (a *API) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		log := a.log.With("request_id", id)
		ctx := context.WithValue(r.Context(), loggerKey, log)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) logger(ctx context.Context) *zap.SugaredLogger {
	if log, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
		return log
	}
	return a.log
}

func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(a.logger(r.Context()), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) HandleStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(a.logger(r.Context()), w, http.StatusOK, StrategiesResponse{
		Default:    a.cfg.Strategy,
		Strategies: strategy.Names,
	})
}

func (a *API) HandleMove(w http.ResponseWriter, r *http.Request) {
	log := a.logger(r.Context())

	var req MoveRequest
	if err := Decode(r.Body, &req); err != nil {
		writeJSONError(log, w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	cfg := a.cfg
	if req.Depth > cfg.MaxRequestDepth {
		writeJSONError(log, w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("%v: %d > %d", ErrDepthTooDeep, req.Depth, cfg.MaxRequestDepth),
		})
		return
	}
	if req.Depth != 0 {
		cfg.Depth = req.Depth
	}
	if req.Strategy != "" {
		cfg.Strategy = req.Strategy
	}
	if err := cfg.Validate(); err != nil {
		writeJSONError(log, w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	b, err := BoardFromFEN(req.FEN)
	if err != nil {
		writeJSONError(log, w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	player, err := NewPlayer(&cfg, log)
	if err != nil {
		log.Errorf("failed to create player: %v", err)
		writeJSONError(log, w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to create player"})
		return
	}

	reply, err := player.Play(r.Context(), b)
	switch {
	case errors.Is(err, engine.ErrNoLegalMoves):
		writeJSONError(log, w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  engine.ErrNoLegalMoves.Error(),
			Status: reply.Status.String(),
		})
		return
	case errors.Is(err, context.DeadlineExceeded):
		// the timeout middleware answers 504
		log.Warnw("Search timed out", "fen", req.FEN, "depth", cfg.Depth)
		return
	case errors.Is(err, context.Canceled):
		log.Debugw("Client went away", "fen", req.FEN)
		return
	case err != nil:
		log.Errorf("failed to pick a move: %v", err)
		writeJSONError(log, w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to pick a move"})
		return
	}

	writeJSON(log, w, http.StatusOK, NewMoveResponse(reply, cfg.Strategy))
}

func writeJSON(log *zap.SugaredLogger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := Encode(w, data); err != nil {
		log.Errorf("writeJSON encode error: %v", err)
	}
}

func writeJSONError(log *zap.SugaredLogger, w http.ResponseWriter, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = Encode(w, resp)
	log.Debugf("writeJSONError: %s", resp.Error)
}
