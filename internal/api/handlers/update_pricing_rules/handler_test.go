package update_pricing_rules

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules"
	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/service/rules/models"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Upsert(ctx context.Context, req *models.UpsertRulesRequest) (*models.RulesResponse, bool, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.RulesResponse)
	return resp, args.Bool(1), args.Error(2)
}

const cabinBody = `{
	"spaceType": "cabin",
	"minimumStayDays": 2,
	"dayCount": "exclusive",
	"poolStrategy": "per_head",
	"memberFreePoolGuests": 0,
	"guestMinBillableAge": 12
}`

func put(svc RulesService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPut, "/pricing-rules", strings.NewReader(body)))
	return rec
}

func TestHandle_CreatedAndUpdated(t *testing.T) {
	for _, created := range []bool{true, false} {
		svc := &mockService{}
		svc.On("Upsert", mock.Anything, mock.MatchedBy(func(req *models.UpsertRulesRequest) bool {
			return req.SpaceType != nil && *req.SpaceType == "cabin" &&
				req.SpaceID == nil &&
				req.MemberFreePoolGuests == 0 &&
				req.GuestMinBillableAge == 12
		})).Return(&models.RulesResponse{ID: 4, Level: "space_type", MinimumStayDays: 2}, created, nil)

		rec := put(svc, cabinBody)

		want := http.StatusOK
		if created {
			want = http.StatusCreated
		}
		require.Equal(t, want, rec.Code)

		var body models.RulesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(4), body.ID)
		svc.AssertExpectations(t)
	}
}

func TestHandle_RequestValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing free pool guests", `{"minimumStayDays":1,"dayCount":"inclusive","poolStrategy":"per_head","guestMinBillableAge":13}`},
		{"unknown space type", `{"spaceType":"hotel","minimumStayDays":1,"dayCount":"inclusive","poolStrategy":"per_head","memberFreePoolGuests":5,"guestMinBillableAge":13}`},
		{"zero minimum stay", `{"minimumStayDays":0,"dayCount":"inclusive","poolStrategy":"per_head","memberFreePoolGuests":5,"guestMinBillableAge":13}`},
		{"bad strategy", `{"minimumStayDays":1,"dayCount":"inclusive","poolStrategy":"free","memberFreePoolGuests":5,"guestMinBillableAge":13}`},
		{"broken json", `{"minimumStayDays":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			rec := put(svc, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{fmt.Errorf("%w: space 3 is of type pool", rules.ErrInvalidInput), http.StatusBadRequest},
		{rules.ErrSpaceNotFound, http.StatusNotFound},
		{rules.ErrRulesAlreadyExists, http.StatusConflict},
		{rules.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("Upsert", mock.Anything, mock.Anything).Return(nil, false, tt.err)

			rec := put(svc, cabinBody)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
