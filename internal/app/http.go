package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
	"github.com/Donchitos/Budgetzz-sub000/internal/scheduler"
)

const defaultListLimit = 50

func (a *App) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("POST /run", a.handleRun)
	mux.HandleFunc("GET /notifications", a.handleListNotifications)
	return mux
}

// handleRun triggers one evaluation pass and waits for it.
func (a *App) handleRun(w http.ResponseWriter, r *http.Request) {
	err := a.sched.RunOnce(r.Context())
	switch {
	case errors.Is(err, scheduler.ErrBusy):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, scheduler.ErrStopped):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	case err != nil:
		a.log.Error("manual evaluation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "evaluation failed"})
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// handleListNotifications serves the in-app feed of one user.
func (a *App) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId is required"})
		return
	}
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	list, err := a.repo.ListNotifications(r.Context(), userID, limit)
	if err != nil {
		a.log.Error("list notifications failed", zap.String("userID", userID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage error"})
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, list)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
