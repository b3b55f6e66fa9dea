package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/handler"
	mocks "github.com/SergeyBogomolovv/auspost-shipping/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const shipmentJSON = `{
	"from": {"name": "Sender", "lines": ["1 Main St"], "suburb": "MELBOURNE", "state": "VIC", "postcode": "3000", "country": "AU"},
	"to": {"name": "Receiver", "lines": ["2 High St"], "suburb": "SYDNEY", "state": "NSW", "postcode": "2000", "country": "AU"},
	"parcels": [{"length": 10, "height": 10, "width": 10, "weight": 1}],
	"product_id": "7E55"
}`

func newRouter(t *testing.T) (chi.Router, *mocks.MockShippingService) {
	svc := mocks.NewMockShippingService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func serve(t *testing.T, r http.Handler, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func TestHTTPHandler_Quote(t *testing.T) {
	quotes := entities.Quotes{
		Items:        []entities.Quote{{ProductID: "FPP", Cost: 9.5}, {ProductID: "PRM", Cost: 14}},
		MaxDimension: 10,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockShippingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"shipment": ` + shipmentJSON + `, "urgent": true}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().
					Quote(mock.Anything, mock.MatchedBy(func(s *entities.Shipment) bool {
						return s.To.Postcode == "2000" && len(s.Parcels) == 1
					}), true).
					Return(quotes, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"product_id":"FPP"`,
		},
		{
			name: "locality only addresses",
			body: `{"shipment": {
				"from": {"suburb": "MELBOURNE", "state": "VIC", "postcode": "3000"},
				"to": {"suburb": "SYDNEY", "state": "NSW", "postcode": "2000"},
				"parcels": [{"length": 10, "height": 10, "width": 10, "weight": 1}]}}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().
					Quote(mock.Anything, mock.MatchedBy(func(s *entities.Shipment) bool {
						return s.From.Suburb == "MELBOURNE" && s.To.State == "NSW" && s.To.Name == ""
					}), false).
					Return(quotes, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"max_dimension":10`,
		},
		{
			name: "missing postcode",
			body: `{"shipment": {
				"from": {"suburb": "MELBOURNE", "state": "VIC", "postcode": "3000"},
				"to": {"suburb": "SYDNEY", "state": "NSW"},
				"parcels": [{"length": 10, "height": 10, "width": 10, "weight": 1}]}}`,
			mockBehavior: func(*mocks.MockShippingService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"shipment.to.postcode":"required"`,
		},
		{
			name:         "no parcels",
			body:         `{"shipment": {"from": {}, "to": {}, "parcels": []}}`,
			mockBehavior: func(*mocks.MockShippingService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "broken body",
			body:         `{`,
			mockBehavior: func(*mocks.MockShippingService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "carrier error",
			body: `{"shipment": ` + shipmentJSON + `}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().
					Quote(mock.Anything, mock.Anything, false).
					Return(entities.Quotes{}, &entities.CarrierError{
						Status: 400,
						Errors: []entities.CarrierErrorEntry{{Code: "44003", Message: "The postcode is invalid"}},
					}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"The postcode is invalid"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newRouter(t)
			tc.mockBehavior(svc)

			status, body := serve(t, r, http.MethodPost, "/quotes", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_LodgeShipment(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockShippingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: `{"shipment": ` + shipmentJSON + `}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().
					LodgeShipment(mock.Anything, mock.Anything).
					Run(func(_ context.Context, s *entities.Shipment) {
						s.ShipmentID = "SHIP-1"
						s.LodgedAt = time.Date(2024, 8, 27, 5, 48, 9, 0, time.UTC)
						s.Parcels[0].TrackingArticleID = "ART-1"
					}).
					Return(nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"tracking_article_id":"ART-1"`,
		},
		{
			name:         "product required",
			body:         `{"shipment": ` + strings.Replace(shipmentJSON, `"7E55"`, `""`, 1) + `}`,
			mockBehavior: func(*mocks.MockShippingService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"shipment.product_id":"required"`,
		},
		{
			name: "already lodged",
			body: `{"shipment": ` + shipmentJSON + `}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().LodgeShipment(mock.Anything, mock.Anything).Return(entities.ErrAlreadyLodged).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"shipment already lodged"`,
		},
		{
			name: "carrier timeout",
			body: `{"shipment": ` + shipmentJSON + `}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().LodgeShipment(mock.Anything, mock.Anything).
					Return(&entities.TransportError{Method: http.MethodPost, Path: "shipments", Err: context.DeadlineExceeded}).Once()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `"carrier timeout"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newRouter(t)
			tc.mockBehavior(svc)

			status, body := serve(t, r, http.MethodPost, "/shipments", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if status == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "SHIP-1", resp["shipment_id"])
				assert.Equal(t, "DESPATCH", resp["movement_type"])
			}
		})
	}
}

func TestHTTPHandler_GetShipment(t *testing.T) {
	stored := entities.NewShipment().
		SetFrom(entities.Address{Name: "Sender", Country: "AU"}).
		SetTo(entities.Address{Name: "Receiver", Country: "AU"}).
		AddParcel(entities.Parcel{Length: 1, Height: 1, Width: 1, Weight: 1})
	stored.ShipmentID = "SHIP-1"

	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockShippingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().GetShipment(mock.Anything, "SHIP-1").Return(stored, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"shipment_id":"SHIP-1"`,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().GetShipment(mock.Anything, "SHIP-1").Return(nil, entities.ErrShipmentNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"shipment not found"`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().GetShipment(mock.Anything, "SHIP-1").Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newRouter(t)
			tc.mockBehavior(svc)

			status, body := serve(t, r, http.MethodGet, "/shipments/SHIP-1", "")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeleteShipment(t *testing.T) {
	r, svc := newRouter(t)
	svc.EXPECT().DeleteShipment(mock.Anything, "SHIP-1").Return(true, nil).Once()

	status, body := serve(t, r, http.MethodDelete, "/shipments/SHIP-1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"deleted":true}`, body)
}

func TestHTTPHandler_GetLabels(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockShippingService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "default layout",
			body: `{"shipment_ids": ["SHIP-1"]}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().
					GetLabels(mock.Anything, []string{"SHIP-1"}, entities.LabelA4OnePerPage).
					Return("https://labels/1.pdf", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"url":"https://labels/1.pdf"`,
		},
		{
			name: "thermal",
			body: `{"shipment_ids": ["SHIP-1"], "label_type": "thermal"}`,
			mockBehavior: func(svc *mocks.MockShippingService) {
				svc.EXPECT().
					GetLabels(mock.Anything, []string{"SHIP-1"}, entities.LabelThermal).
					Return("", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"url":""`,
		},
		{
			name:         "unknown layout",
			body:         `{"shipment_ids": ["SHIP-1"], "label_type": "a3"}`,
			mockBehavior: func(*mocks.MockShippingService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"label_type":"oneof"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newRouter(t)
			tc.mockBehavior(svc)

			status, body := serve(t, r, http.MethodPost, "/labels", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	r, svc := newRouter(t)
	svc.EXPECT().
		CreateOrder(mock.Anything, []string{"SHIP-1", "SHIP-2"}).
		Return(entities.Order{OrderID: entities.UnknownOrderID, ShipmentIDs: []string{"SHIP-1", "SHIP-2"}, ManifestPDF: []byte("%PDF")}, nil).Once()

	status, body := serve(t, r, http.MethodPost, "/orders", `{"shipment_ids": ["SHIP-1", "SHIP-2"]}`)
	require.Equal(t, http.StatusCreated, status)

	var resp handler.OrderResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "None", resp.OrderID)
	assert.Nil(t, resp.CreatedAt)
	assert.Equal(t, []byte("%PDF"), resp.ManifestPDF)
}
