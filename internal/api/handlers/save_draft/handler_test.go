package save_draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/delete_draft"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/handlers/get_draft"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/api/middleware"
	draftStore "github.com/manuelContrerasDev/enap-reservas-sub001/internal/infra/storage/draft"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/drafts/models"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	store, err := draftStore.Open(context.Background(), "kvdb://"+filepath.Join(t.TempDir(), "drafts.db"), "", time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	log := logger.Nop()
	svc := drafts.NewService(store, log)

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/drafts/{spaceId}", NewHandler(svc, log).Handle).Methods(http.MethodPut)
	r.HandleFunc("/drafts/{spaceId}", get_draft.NewHandler(svc, log).Handle).Methods(http.MethodGet)
	r.HandleFunc("/drafts/{spaceId}", delete_draft.NewHandler(svc, log).Handle).Methods(http.MethodDelete)
	return r
}

func do(r http.Handler, method, path, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestDraftLifecycle(t *testing.T) {
	r := newRouter(t)

	rec := do(r, http.MethodPut, "/drafts/3", "socio-1",
		`{"fechaInicio":"2026-03-01","usoReserva":"USO_PERSONAL","cantidadAdultos":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var saved models.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, int64(3), saved.SpaceID)
	assert.Equal(t, "2026-03-01", saved.StartDate)
	assert.Empty(t, saved.EndDate)

	rec = do(r, http.MethodGet, "/drafts/3", "socio-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var loaded models.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	assert.Equal(t, saved.ID, loaded.ID)
	assert.Equal(t, 2, loaded.Adults)
	assert.Equal(t, models.UsoPersonal, loaded.UsageCategory)

	// черновики других пользователей не видны
	rec = do(r, http.MethodGet, "/drafts/3", "socio-2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(r, http.MethodDelete, "/drafts/3", "socio-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, http.MethodGet, "/drafts/3", "socio-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(r, http.MethodDelete, "/drafts/3", "socio-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSave_Rejects(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name     string
		path     string
		user     string
		body     string
		wantCode int
	}{
		{"anonymous", "/drafts/3", "", `{}`, http.StatusUnauthorized},
		{"bad space id", "/drafts/0", "socio-1", `{}`, http.StatusBadRequest},
		{"broken json", "/drafts/3", "socio-1", `{`, http.StatusBadRequest},
		{"negative adults", "/drafts/3", "socio-1", `{"cantidadAdultos":-1}`, http.StatusBadRequest},
		{"bad usage", "/drafts/3", "socio-1", `{"usoReserva":"OTRO"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, http.MethodPut, tt.path, tt.user, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
