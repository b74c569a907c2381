package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string        `json:"nombre" validate:"required,max=5"`
	Age    int           `json:"edad" validate:"gte=0"`
	Nested []sampleGuest `json:"invitados" validate:"dive"`
}

type sampleGuest struct {
	Name string `json:"nombre" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	var dst sample

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nombre":"Ana","edad":3}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Ana", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nombre":"Ana","otro":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nombre":`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestValidate_ReportsJSONNames(t *testing.T) {
	fields, err := Validate(&sample{Name: "Demasiado", Age: -1, Nested: []sampleGuest{{}}})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{
		"nombre: max",
		"edad: gte",
		"invitados[0].nombre: required",
	}, fields)

	fields, err = Validate(&sample{Name: "Ana"})
	assert.NoError(t, err)
	assert.Nil(t, fields)
}

func TestPathInt64(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"spaceId": tt.value})
		got, err := PathInt64(r, "spaceId")
		if tt.wantErr {
			assert.Error(t, err, tt.value)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, "datos inválidos", []string{"edad: gte"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, []string{"edad: gte"}, body.Fields)
}
