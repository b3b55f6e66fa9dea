package carrier_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/carrier"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefix = "/test/shipping/v1/"

func newClient(t *testing.T, mode entities.ReconcileMode, routes map[string]http.HandlerFunc, opts ...carrier.ClientOption) *carrier.Client {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	gw := carrier.NewGateway(discardLogger(), carrier.GatewayConfig{
		BaseURL:       srv.URL,
		AccountNumber: testAccount,
		APIKey:        "key",
		APIPassword:   "secret",
		TestMode:      true,
		Timeout:       time.Second,
		Retry:         utils.RetryConfig{MaxAttempts: 1},
	}, nil)
	return carrier.NewClient(discardLogger(), gw, testAccount, mode, opts...)
}

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func testShipment() *entities.Shipment {
	return entities.NewShipment().
		SetFrom(entities.Address{Name: "Sender", Lines: []string{"1 Main St"}, Suburb: "MELBOURNE", State: "VIC", Postcode: "3000", Country: "AU"}).
		SetTo(entities.Address{Name: "Receiver", Lines: []string{"2 High St", "Unit 4"}, Suburb: "SYDNEY", State: "NSW", Postcode: "2000", Country: "AU", Email: "r@example.com"}).
		SetProductID("7E55").
		SetReference("REF-1").
		SetCustomerReferences("C1", "C2").
		SetDeliveryInstructions("Leave at door").
		SetEmailTracking(true).
		AddParcel(entities.Parcel{Length: 10, Height: 20, Width: 5, Weight: 1, Value: 150, ItemReference: "A", ProductID: "IGNORED", AuthorityToLeave: true}).
		AddParcel(entities.Parcel{Length: 30, Height: 1, Width: 1, Weight: 2, ItemReference: "B", DangerousGoods: true})
}

const accountBody = `{"account_number":"1234567890","name":"Shop","postage_products":[
	{"type":"PARCEL POST","product_id":"STD"},
	{"type":"EXPRESS POST","product_id":"PRM"},
	{"type":"PRIORITY","product_id":"FPP"}]}`

func TestClient_GetAccount(t *testing.T) {
	c := newClient(t, "", map[string]http.HandlerFunc{
		"GET " + prefix + "accounts/" + testAccount: reply(accountBody),
	})

	acc, err := c.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Shop", acc.Name)
	assert.Equal(t, []string{"STD", "PRM", "FPP"}, acc.ProductIDs())
}

func TestClient_MerchantAddress(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		wantOK bool
		want   entities.Address
	}{
		{
			name: "merchant location",
			body: `{"account_number":"1234567890","addresses":[
				{"type":"POSTAL","lines":["PO Box 1"],"suburb":"MELBOURNE","state":"VIC","postcode":"3001"},
				{"type":"MERCHANT_LOCATION","lines":["1 Main St"],"suburb":"MELBOURNE","state":"VIC","postcode":"3000","country":"AU"}]}`,
			wantOK: true,
			want:   entities.Address{Lines: []string{"1 Main St"}, Suburb: "MELBOURNE", State: "VIC", Postcode: "3000", Country: "AU"},
		},
		{
			name: "no merchant location",
			body: `{"account_number":"1234567890","addresses":[{"type":"POSTAL","suburb":"MELBOURNE"}]}`,
		},
		{
			name: "no addresses",
			body: accountBody,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, "", map[string]http.HandlerFunc{
				"GET " + prefix + "accounts/" + testAccount: reply(tc.body),
			})

			addr, ok, err := c.MerchantAddress(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, addr)
		})
	}
}

func TestClient_MerchantAddress_CarrierError(t *testing.T) {
	c := newClient(t, "", map[string]http.HandlerFunc{
		"GET " + prefix + "accounts/" + testAccount: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"errors":[{"code":"403","message":"Access denied"}]}`))
		},
	})

	_, ok, err := c.MerchantAddress(context.Background())
	var ce *entities.CarrierError
	require.ErrorAs(t, err, &ce)
	assert.False(t, ok)
}

const pricesBody = `{"shipments":[
	{"items":[{"product_id":"STD"}],"shipment_summary":{"total_cost":5}},
	{"items":[{"product_id":"PRM"}],"shipment_summary":{"total_cost":8}},
	{"items":[{"product_id":"FPP"}],"shipment_summary":{"total_cost":10}}]}`

func TestClient_GetQuotes(t *testing.T) {
	testCases := []struct {
		name   string
		urgent bool
		want   []entities.Quote
	}{
		{
			name:   "urgent",
			urgent: true,
			want:   []entities.Quote{{ProductID: "PRM", Cost: 8}, {ProductID: "FPP", Cost: 10}},
		},
		{
			name:   "standard",
			urgent: false,
			want:   []entities.Quote{{ProductID: "STD", Cost: 5}, {ProductID: "PRM", Cost: 8}, {ProductID: "FPP", Cost: 10}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got map[string]any
			c := newClient(t, "", map[string]http.HandlerFunc{
				"POST " + prefix + "prices/shipments": func(w http.ResponseWriter, r *http.Request) {
					got = decodeBody(t, r)
					w.Write([]byte(pricesBody))
				},
			})

			s := testShipment()
			quotes, err := c.GetQuotes(context.Background(), s, tc.urgent)
			require.NoError(t, err)
			assert.Equal(t, tc.want, quotes.Items)
			assert.Equal(t, 30, quotes.MaxDimension)

			shipments := got["shipments"].([]any)
			require.Len(t, shipments, 1)
			first := shipments[0].(map[string]any)
			assert.Equal(t, map[string]any{"suburb": "MELBOURNE", "postcode": "3000", "state": "VIC"}, first["from"])
			assert.Equal(t, map[string]any{"suburb": "SYDNEY", "postcode": "2000", "state": "NSW"}, first["to"])

			items := first["items"].([]any)
			require.Len(t, items, 2)

			covered := items[0].(map[string]any)
			assert.Equal(t, "ITM", covered["packaging_type"])
			assert.NotContains(t, covered, "product_id")
			cover := covered["features"].(map[string]any)["TRANSIT_COVER"].(map[string]any)["attributes"].(map[string]any)
			assert.Equal(t, float64(150), cover["cover_amount"])

			uncovered := items[1].(map[string]any)
			assert.NotContains(t, uncovered, "features")

			assert.Empty(t, s.ShipmentID)
			assert.Empty(t, s.Parcels[0].ItemID)
		})
	}
}

func TestClient_GetQuotes_PerProduct(t *testing.T) {
	t.Run("one shipment per account product", func(t *testing.T) {
		var got map[string]any
		c := newClient(t, "", map[string]http.HandlerFunc{
			"GET " + prefix + "accounts/" + testAccount: reply(accountBody),
			"POST " + prefix + "prices/shipments": func(w http.ResponseWriter, r *http.Request) {
				got = decodeBody(t, r)
				w.Write([]byte(`{"shipments":[
					{"items":[{}],"shipment_summary":{"total_cost":5}},
					{"items":[{"product_id":"PRM"}],"shipment_summary":{"total_cost":8}},
					{"items":[{"product_id":"FPP"}],"shipment_summary":{"total_cost":10}}]}`))
			},
		}, carrier.WithQuotePerProduct(true))

		quotes, err := c.GetQuotes(context.Background(), testShipment(), false)
		require.NoError(t, err)
		assert.Equal(t, []entities.Quote{{ProductID: "STD", Cost: 5}, {ProductID: "PRM", Cost: 8}, {ProductID: "FPP", Cost: 10}}, quotes.Items)

		shipments := got["shipments"].([]any)
		require.Len(t, shipments, 3)
		items := shipments[2].(map[string]any)["items"].([]any)
		require.Len(t, items, 2)
		assert.Equal(t, "FPP", items[1].(map[string]any)["product_id"])
	})

	t.Run("account without products prices once", func(t *testing.T) {
		var priced bool
		c := newClient(t, "", map[string]http.HandlerFunc{
			"GET " + prefix + "accounts/" + testAccount: reply(`{"account_number":"1234567890","postage_products":[]}`),
			"POST " + prefix + "prices/shipments": func(w http.ResponseWriter, r *http.Request) {
				priced = true
				shipments := decodeBody(t, r)["shipments"].([]any)
				assert.Len(t, shipments, 1)
				w.Write([]byte(pricesBody))
			},
		}, carrier.WithQuotePerProduct(true))

		quotes, err := c.GetQuotes(context.Background(), testShipment(), false)
		require.NoError(t, err)
		assert.True(t, priced)
		assert.Len(t, quotes.Items, 3)
	})
}

func TestClient_GetQuotes_CarrierError(t *testing.T) {
	c := newClient(t, "", map[string]http.HandlerFunc{
		"POST " + prefix + "prices/shipments": reply(`{"shipments":[
			{"items":[{"product_id":"STD"}],"shipment_summary":{"total_cost":5}},
			{"errors":[{"code":"44013","message":"The product PRM is not available"}]}]}`),
	})

	_, err := c.GetQuotes(context.Background(), testShipment(), false)

	var ce *entities.CarrierError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "The product PRM is not available", ce.Error())
	assert.Equal(t, "44013", ce.Code())
}

func TestClient_GetQuotes_InvalidShipment(t *testing.T) {
	c := newClient(t, "", nil)

	_, err := c.GetQuotes(context.Background(), entities.NewShipment(), false)
	assert.ErrorIs(t, err, entities.ErrInvalidShipment)
}

func TestClient_GetLabels(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "first label url",
			body: `{"labels":[{"request_id":"r1","url":"https://labels/1.pdf","status":"AVAILABLE"},{"url":"https://labels/2.pdf"}]}`,
			want: "https://labels/1.pdf",
		},
		{
			name: "no labels",
			body: `{"labels":[]}`,
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got map[string]any
			c := newClient(t, "", map[string]http.HandlerFunc{
				"POST " + prefix + "labels": func(w http.ResponseWriter, r *http.Request) {
					got = decodeBody(t, r)
					w.Write([]byte(tc.body))
				},
			})

			lt := entities.LabelType{Layout: "A4-1pp", Branded: true, LeftOffset: 2, TopOffset: 3}
			url, err := c.GetLabels(context.Background(), []string{"S1", "S2"}, lt)
			require.NoError(t, err)
			assert.Equal(t, tc.want, url)

			assert.Equal(t, true, got["wait_for_label_url"])
			pref, ok := got["preferences"].(map[string]any)
			require.True(t, ok, "preferences must be a single object")
			assert.Equal(t, "PRINT", pref["type"])
			assert.Equal(t, "PDF", pref["format"])

			groups := pref["groups"].([]any)
			names := make([]string, 0, len(groups))
			for _, g := range groups {
				group := g.(map[string]any)
				names = append(names, group["group"].(string))
				assert.Equal(t, "A4-1pp", group["layout"])
				assert.Equal(t, true, group["branded"])
				assert.Equal(t, float64(2), group["left_offset"])
				assert.Equal(t, float64(3), group["top_offset"])
			}
			assert.Equal(t, []string{
				"Parcel Post", "Express Post", "StarTrack", "Startrack Courier",
				"On Demand", "International", "Commercial",
			}, names)

			shipments := got["shipments"].([]any)
			require.Len(t, shipments, 2)
			assert.Equal(t, "S2", shipments[1].(map[string]any)["shipment_id"])
		})
	}
}

func TestClient_CreateOrder(t *testing.T) {
	t.Run("raw manifest", func(t *testing.T) {
		c := newClient(t, "", map[string]http.HandlerFunc{
			"PUT " + prefix + "orders": reply("%PDF-1.4 manifest"),
		})

		order, err := c.CreateOrder(context.Background(), []string{"S1"})
		require.NoError(t, err)
		assert.Equal(t, entities.UnknownOrderID, order.OrderID)
		assert.Equal(t, []byte("%PDF-1.4 manifest"), order.ManifestPDF)
	})

	t.Run("structured order fetches summary", func(t *testing.T) {
		var got map[string]any
		c := newClient(t, "", map[string]http.HandlerFunc{
			"PUT " + prefix + "orders": func(w http.ResponseWriter, r *http.Request) {
				got = decodeBody(t, r)
				w.Write([]byte(`{"order":{"order_id":"AP0000002422","order_creation_date":"2024-05-01T10:00:00+10:00"}}`))
			},
			"GET " + prefix + "accounts/" + testAccount + "/orders/AP0000002422/summary": reply("%PDF summary"),
		})

		order, err := c.CreateOrder(context.Background(), []string{"S1", "S2"})
		require.NoError(t, err)
		assert.Equal(t, "AP0000002422", order.OrderID)
		assert.Equal(t, []byte("%PDF summary"), order.ManifestPDF)
		assert.Equal(t, []string{"S1", "S2"}, order.ShipmentIDs)
		assert.Equal(t, 2024, order.CreatedAt.Year())
		assert.Len(t, got["shipments"], 2)
	})

	t.Run("summary error", func(t *testing.T) {
		c := newClient(t, "", map[string]http.HandlerFunc{
			"PUT " + prefix + "orders": reply(`{"order":{"order_id":"AP1"}}`),
			"GET " + prefix + "accounts/" + testAccount + "/orders/AP1/summary": func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"errors":[{"code":"51001","message":"Order not found"}]}`))
			},
		})

		_, err := c.CreateOrder(context.Background(), []string{"S1"})
		var ce *entities.CarrierError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "Order not found", ce.Error())
	})
}

func TestClient_DeleteShipment(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
		wantErr string
	}{
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			want: true,
		},
		{
			name:    "body without errors",
			handler: reply(`{}`),
			want:    true,
		},
		{
			name: "carrier error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				io.WriteString(w, `{"errors":[{"message":"Shipment already in an order"}]}`)
			},
			wantErr: "Shipment already in an order",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, "", map[string]http.HandlerFunc{
				"DELETE " + prefix + "shipments/S1": tc.handler,
			})

			ok, err := c.DeleteShipment(context.Background(), "S1")
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
