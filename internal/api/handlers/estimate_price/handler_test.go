package estimate_price

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/pricing"
	estimatePrice "github.com/manuelContrerasDev/enap-reservas-sub001/internal/usecase/estimate_price"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/logger"
)

type stubUseCase struct {
	got  *estimatePrice.Request
	resp *estimatePrice.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *estimatePrice.Request) (*estimatePrice.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc EstimatePriceUseCase, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/spaces/{spaceId}/quote", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

const validBody = `{
	"fechaInicio": "2026-01-10",
	"fechaFin": "2026-01-12",
	"usoReserva": "CARGO_DIRECTO",
	"cantidadAdultos": 2,
	"cantidadNinos": 1,
	"invitados": [{"nombre": "Ana", "edad": 15, "usaPiscina": true}],
	"nombreResponsable": "Luis"
}`

func TestHandle_Priced(t *testing.T) {
	uc := &stubUseCase{resp: &estimatePrice.Response{
		Status:     estimatePrice.StatusPriced,
		SpaceID:    7,
		SpaceName:  "Cabaña 1",
		SpaceType:  domain.SpaceTypeCabin,
		RulesLevel: "default",
		Rules:      domain.DefaultRules(domain.SpaceTypeCabin),
		Breakdown:  &domain.PriceBreakdown{Days: 3, Member: true, BaseAmount: 90000, Total: 90000},
	}}

	rec := serve(uc, "/spaces/7/quote", validBody)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.SpaceID)
	assert.Equal(t, domain.UsageDirectCharge, uc.got.Draft.UsageCategory)
	assert.Equal(t, 3, uc.got.Draft.TotalAttendees())
	require.Len(t, uc.got.Draft.Guests, 1)
	assert.Equal(t, 15, uc.got.Draft.Guests[0].Age)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "priced", body["status"])
	desglose := body["desglose"].(map[string]interface{})
	assert.Equal(t, float64(90000), desglose["totalClp"])
	assert.Equal(t, float64(3), desglose["dias"])
	reglas := body["reglas"].(map[string]interface{})
	assert.Equal(t, float64(3), reglas["minimoDias"])
}

func TestHandle_InvalidIsOK(t *testing.T) {
	uc := &stubUseCase{resp: &estimatePrice.Response{
		Status:  estimatePrice.StatusInvalid,
		Reason:  pricing.ReasonCapacityExceeded,
		Message: pricing.UserMessage(pricing.ReasonCapacityExceeded),
	}}

	rec := serve(uc, "/spaces/7/quote", validBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid", body["status"])
	assert.Equal(t, "capacity_exceeded", body["reason"])
	assert.NotContains(t, body, "desglose")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		ucErr    error
		wantCode int
	}{
		{"bad space id", "/spaces/x/quote", validBody, nil, http.StatusBadRequest},
		{"broken json", "/spaces/7/quote", `{"fechaInicio":`, nil, http.StatusBadRequest},
		{"unknown field", "/spaces/7/quote", `{"precio": 1}`, nil, http.StatusBadRequest},
		{"bad usage", "/spaces/7/quote", `{"usoReserva":"SOCIO"}`, nil, http.StatusBadRequest},
		{"bad date format", "/spaces/7/quote", `{"fechaInicio":"10-01-2026"}`, nil, http.StatusBadRequest},
		{"impossible date", "/spaces/7/quote", `{"fechaInicio":"2026-02-30"}`, nil, http.StatusBadRequest},
		{"guest without name", "/spaces/7/quote", `{"invitados":[{"edad":3}]}`, nil, http.StatusBadRequest},
		{"adults above limit", "/spaces/7/quote", `{"cantidadAdultos":1000000000000000}`, nil, http.StatusBadRequest},
		{"pool users above limit", "/spaces/7/quote", `{"cantidadPiscina":1001}`, nil, http.StatusBadRequest},
		{"space not found", "/spaces/7/quote", validBody, estimatePrice.ErrSpaceNotFound, http.StatusNotFound},
		{"internal", "/spaces/7/quote", validBody, estimatePrice.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.ucErr}
			rec := serve(uc, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
