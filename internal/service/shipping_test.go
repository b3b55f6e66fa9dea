package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/service"
	mocks "github.com/SergeyBogomolovv/auspost-shipping/internal/service/mocks"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/utils"
	txMocks "github.com/SergeyBogomolovv/auspost-shipping/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	carrier   *mocks.MockCarrier
	repo      *mocks.MockShipmentRepo
	cache     *mocks.MockCache
	publisher *mocks.MockPublisher
	tx        *txMocks.MockManager
}

func newDeps(t *testing.T) deps {
	d := deps{
		carrier:   mocks.NewMockCarrier(t),
		repo:      mocks.NewMockShipmentRepo(t),
		cache:     mocks.NewMockCache(t),
		publisher: mocks.NewMockPublisher(t),
		tx:        txMocks.NewMockManager(t),
	}
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
	return d
}

type shippingService interface {
	Quote(ctx context.Context, s *entities.Shipment, urgent bool) (entities.Quotes, error)
	LodgeShipment(ctx context.Context, s *entities.Shipment) error
	GetShipment(ctx context.Context, shipmentID string) (*entities.Shipment, error)
	GetLabels(ctx context.Context, shipmentIDs []string, lt entities.LabelType) (string, error)
	CreateOrder(ctx context.Context, shipmentIDs []string) (entities.Order, error)
	DeleteShipment(ctx context.Context, shipmentID string) (bool, error)
}

func (d deps) service() shippingService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewShippingService(logger, d.tx, d.carrier, d.repo, d.cache, d.publisher,
		service.WithRetry(utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}),
	)
}

func testShipment() *entities.Shipment {
	return entities.NewShipment().
		SetFrom(entities.Address{Name: "Sender", Lines: []string{"1 Main St"}, Suburb: "MELBOURNE", State: "VIC", Postcode: "3000", Country: "AU"}).
		SetTo(entities.Address{Name: "Receiver", Lines: []string{"2 High St"}, Suburb: "SYDNEY", State: "NSW", Postcode: "2000", Country: "AU"}).
		SetProductID("7E55").
		AddParcel(entities.Parcel{Length: 10, Height: 10, Width: 10, Weight: 1})
}

func lodge(s *entities.Shipment) {
	s.ShipmentID = "SHIP-1"
	s.LodgedAt = time.Date(2024, 8, 27, 5, 48, 9, 0, time.UTC)
	s.Parcels[0].ItemID = "ITEM-1"
	s.Parcels[0].TrackingArticleID = "ART-1"
}

func TestShippingService_Quote(t *testing.T) {
	quotes := entities.Quotes{
		Items:        []entities.Quote{{ProductID: "7E55", Cost: 12.5}},
		MaxDimension: 10,
	}
	data, err := quotes.Marshal()
	require.NoError(t, err)

	carrierErr := &entities.CarrierError{Status: 400, Errors: []entities.CarrierErrorEntry{{Message: "bad postcode"}}}

	testCases := []struct {
		name         string
		mockBehavior func(d deps)
		want         entities.Quotes
		wantErr      error
	}{
		{
			name: "from cache",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(mock.Anything).Return(data, true).Once()
			},
			want: quotes,
		},
		{
			name: "cache miss fetches and stores",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(mock.Anything).Return(nil, false).Once()
				d.carrier.EXPECT().GetQuotes(mock.Anything, mock.Anything, true).Return(quotes, nil).Once()
				d.cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Once()
			},
			want: quotes,
		},
		{
			name: "broken cache entry is refetched",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(mock.Anything).Return([]byte("broken"), true).Once()
				d.carrier.EXPECT().GetQuotes(mock.Anything, mock.Anything, true).Return(quotes, nil).Once()
				d.cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Once()
			},
			want: quotes,
		},
		{
			name: "carrier error is not cached",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get(mock.Anything).Return(nil, false).Once()
				d.carrier.EXPECT().GetQuotes(mock.Anything, mock.Anything, true).Return(entities.Quotes{}, carrierErr).Once()
			},
			wantErr: carrierErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			got, err := d.service().Quote(context.Background(), testShipment(), true)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShippingService_QuoteKeyDependsOnInput(t *testing.T) {
	d := newDeps(t)

	var keys []string
	d.cache.EXPECT().Get(mock.Anything).
		Run(func(key string) { keys = append(keys, key) }).
		Return(nil, false).Times(3)
	d.carrier.EXPECT().GetQuotes(mock.Anything, mock.Anything, mock.Anything).Return(entities.Quotes{}, nil).Times(3)
	d.cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Times(3)

	svc := d.service()
	ctx := context.Background()

	heavier := testShipment()
	heavier.Parcels[0].Weight = 5

	_, err := svc.Quote(ctx, testShipment(), false)
	require.NoError(t, err)
	_, err = svc.Quote(ctx, testShipment(), true)
	require.NoError(t, err)
	_, err = svc.Quote(ctx, heavier, false)
	require.NoError(t, err)

	require.Len(t, keys, 3)
	assert.NotEqual(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
}

func TestShippingService_LodgeShipment(t *testing.T) {
	dbErr := errors.New("db error")
	carrierErr := &entities.CarrierError{Status: 400, Errors: []entities.CarrierErrorEntry{{Message: "invalid product"}}}

	testCases := []struct {
		name         string
		mockBehavior func(d deps)
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d deps) {
				d.carrier.EXPECT().Lodge(mock.Anything, mock.Anything).
					Run(func(_ context.Context, s *entities.Shipment) { lodge(s) }).
					Return(nil).Once()
				d.repo.EXPECT().SaveShipment(mock.Anything, mock.Anything).Return(nil).Once()
				d.repo.EXPECT().SaveParcels(mock.Anything, "SHIP-1", mock.Anything).Return(nil).Once()
				d.publisher.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(e entities.Event) bool {
						return e.Type == entities.EventShipmentLodged &&
							e.ShipmentID == "SHIP-1" &&
							len(e.ArticleIDs) == 1 && e.ArticleIDs[0] == "ART-1" &&
							e.ID != ""
					})).
					Return(nil).Once()
			},
		},
		{
			name: "carrier rejects",
			mockBehavior: func(d deps) {
				d.carrier.EXPECT().Lodge(mock.Anything, mock.Anything).Return(carrierErr).Once()
			},
			wantErr: carrierErr,
		},
		{
			name: "save retried",
			mockBehavior: func(d deps) {
				d.carrier.EXPECT().Lodge(mock.Anything, mock.Anything).
					Run(func(_ context.Context, s *entities.Shipment) { lodge(s) }).
					Return(nil).Once()
				// первая попытка падает
				d.repo.EXPECT().SaveShipment(mock.Anything, mock.Anything).Return(dbErr).Once()
				d.repo.EXPECT().SaveShipment(mock.Anything, mock.Anything).Return(nil).Once()
				d.repo.EXPECT().SaveParcels(mock.Anything, "SHIP-1", mock.Anything).Return(nil).Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "save keeps failing",
			mockBehavior: func(d deps) {
				d.carrier.EXPECT().Lodge(mock.Anything, mock.Anything).
					Run(func(_ context.Context, s *entities.Shipment) { lodge(s) }).
					Return(nil).Once()
				d.repo.EXPECT().SaveShipment(mock.Anything, mock.Anything).Return(nil).Times(3)
				d.repo.EXPECT().SaveParcels(mock.Anything, "SHIP-1", mock.Anything).Return(dbErr).Times(3)
			},
			wantErr: dbErr,
		},
		{
			name: "publish failure is not returned",
			mockBehavior: func(d deps) {
				d.carrier.EXPECT().Lodge(mock.Anything, mock.Anything).
					Run(func(_ context.Context, s *entities.Shipment) { lodge(s) }).
					Return(nil).Once()
				d.repo.EXPECT().SaveShipment(mock.Anything, mock.Anything).Return(nil).Once()
				d.repo.EXPECT().SaveParcels(mock.Anything, "SHIP-1", mock.Anything).Return(nil).Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			err := d.service().LodgeShipment(context.Background(), testShipment())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestShippingService_GetShipment(t *testing.T) {
	stored := testShipment()
	lodge(stored)

	testCases := []struct {
		name         string
		mockBehavior func(d deps)
		want         *entities.Shipment
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetShipmentByID(mock.Anything, "SHIP-1").Return(stored, nil).Once()
			},
			want: stored,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetShipmentByID(mock.Anything, "SHIP-1").Return(nil, entities.ErrShipmentNotFound).Once()
			},
			wantErr: entities.ErrShipmentNotFound,
		},
		{
			name: "second attempt",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetShipmentByID(mock.Anything, "SHIP-1").Return(nil, errors.New("conn reset")).Once()
				d.repo.EXPECT().GetShipmentByID(mock.Anything, "SHIP-1").Return(stored, nil).Once()
			},
			want: stored,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			got, err := d.service().GetShipment(context.Background(), "SHIP-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShippingService_GetLabels(t *testing.T) {
	d := newDeps(t)
	d.carrier.EXPECT().
		GetLabels(mock.Anything, []string{"SHIP-1"}, entities.LabelThermal).
		Return("https://labels/1.pdf", nil).Once()

	url, err := d.service().GetLabels(context.Background(), []string{"SHIP-1"}, entities.LabelThermal)
	require.NoError(t, err)
	assert.Equal(t, "https://labels/1.pdf", url)
}

func TestShippingService_CreateOrder(t *testing.T) {
	ids := []string{"SHIP-1", "SHIP-2"}

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior func(d deps, order entities.Order)
	}{
		{
			name:  "order is stored",
			order: entities.Order{OrderID: "AP0001", ShipmentIDs: ids, ManifestPDF: []byte("%PDF")},
			mockBehavior: func(d deps, order entities.Order) {
				d.repo.EXPECT().SaveOrder(mock.Anything, order).Return(nil).Once()
			},
		},
		{
			name:         "bare manifest is not stored",
			order:        entities.Order{OrderID: entities.UnknownOrderID, ShipmentIDs: ids, ManifestPDF: []byte("%PDF")},
			mockBehavior: func(deps, entities.Order) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			d.carrier.EXPECT().CreateOrder(mock.Anything, ids).Return(tc.order, nil).Once()
			d.publisher.EXPECT().
				Publish(mock.Anything, mock.MatchedBy(func(e entities.Event) bool {
					return e.Type == entities.EventOrderCreated && e.OrderID == tc.order.OrderID
				})).
				Return(nil).Once()
			tc.mockBehavior(d, tc.order)

			got, err := d.service().CreateOrder(context.Background(), ids)
			require.NoError(t, err)
			assert.Equal(t, tc.order, got)
		})
	}
}

func TestShippingService_DeleteShipment(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(d deps)
		want         bool
		wantErr      bool
	}{
		{
			name: "OK",
			mockBehavior: func(d deps) {
				d.carrier.EXPECT().DeleteShipment(mock.Anything, "SHIP-1").Return(true, nil).Once()
				d.repo.EXPECT().MarkShipmentDeleted(mock.Anything, "SHIP-1").Return(nil).Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: true,
		},
		{
			name: "unknown locally",
			mockBehavior: func(d deps) {
				d.carrier.EXPECT().DeleteShipment(mock.Anything, "SHIP-1").Return(true, nil).Once()
				d.repo.EXPECT().MarkShipmentDeleted(mock.Anything, "SHIP-1").Return(entities.ErrShipmentNotFound).Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: true,
		},
		{
			name: "carrier fails",
			mockBehavior: func(d deps) {
				d.carrier.EXPECT().DeleteShipment(mock.Anything, "SHIP-1").
					Return(false, &entities.CarrierError{Status: 404}).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			got, err := d.service().DeleteShipment(context.Background(), "SHIP-1")
			if tc.wantErr {
				var ce *entities.CarrierError
				assert.ErrorAs(t, err, &ce)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
