package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/config"
	"github.com/Donchitos/Budgetzz-sub000/internal/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		DBPath:       filepath.Join(t.TempDir(), "alertd.db"),
		HTTPAddr:     "127.0.0.1:0",
		EvalInterval: time.Hour,
		SMTP:         config.SMTP{Host: "localhost", Port: 2525, From: "alerts@budgetzz.app"},
	}
	a, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func serve(a *App, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.httpSrv.Handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHTTP_Routes(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, http.StatusOK, serve(a, http.MethodGet, "/healthz").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(a, http.MethodGet, "/run").Code)
	assert.Equal(t, http.StatusOK, serve(a, http.MethodPost, "/run").Code)
	assert.Equal(t, http.StatusBadRequest, serve(a, http.MethodGet, "/notifications").Code)
	assert.Equal(t, http.StatusBadRequest, serve(a, http.MethodGet, "/notifications?userId=u1&limit=-1").Code)

	rec := serve(a, http.MethodGet, "/notifications?userId=u1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// A budget rule fires, the insert trigger routes the notification, and a
// user without preferences ends up with failed outbound channels.
func TestPipeline_EvaluateAndDeliver(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	month := time.Now().UTC()

	seed := `{
	  "budgets": [{"id": "b1", "userId": "u1", "category": "Food", "budgetAmount": "200", "month": ` +
		strconv.Itoa(int(month.Month())) + `, "year": ` + strconv.Itoa(month.Year()) + `}],
	  "transactions": [{"id": "t1", "userId": "u1", "description": "Market", "amount": "170", "category": "Food", "type": "expense", "createdAt": "` +
		time.Date(month.Year(), month.Month(), 1, 9, 0, 0, 0, time.UTC).Format(time.RFC3339) + `"}],
	  "alertRules": [{"id": "r1", "userId": "u1", "alertType": "BUDGET_THRESHOLD", "isEnabled": true, "budgetId": "b1", "threshold": 80}]
	}`
	require.NoError(t, a.Seed(ctx, strings.NewReader(seed)))

	require.Equal(t, http.StatusOK, serve(a, http.MethodPost, "/run").Code)
	a.dispatcher.Wait()

	rec := serve(a, http.MethodGet, "/notifications?userId=u1")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	n := list[0]
	assert.Equal(t, "Budget Alert", n.Content.Title)
	assert.Equal(t, "r1", n.AlertRuleID)
	assert.Equal(t, domain.Status{
		Delivery: domain.DeliveryProcessed,
		Email:    domain.StatusFailed,
		Push:     domain.StatusFailed,
		InApp:    domain.StatusDelivered,
	}, n.Status)
}

func TestHTTP_RunAfterClose(t *testing.T) {
	a := newTestApp(t)
	a.sched.Stop()

	assert.Equal(t, http.StatusServiceUnavailable, serve(a, http.MethodPost, "/run").Code)
}
