package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/trm"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/utils"

	"github.com/google/uuid"
)

type Carrier interface {
	GetQuotes(ctx context.Context, s *entities.Shipment, urgent bool) (entities.Quotes, error)
	Lodge(ctx context.Context, s *entities.Shipment) error
	GetLabels(ctx context.Context, shipmentIDs []string, lt entities.LabelType) (string, error)
	CreateOrder(ctx context.Context, shipmentIDs []string) (entities.Order, error)
	DeleteShipment(ctx context.Context, shipmentID string) (bool, error)
}

type ShipmentRepo interface {
	GetShipmentByID(ctx context.Context, shipmentID string) (*entities.Shipment, error)

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveShipment(ctx context.Context, s *entities.Shipment) error
	SaveParcels(ctx context.Context, shipmentID string, parcels []*entities.Parcel) error
	SaveOrder(ctx context.Context, o entities.Order) error

	MarkShipmentDeleted(ctx context.Context, shipmentID string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type Publisher interface {
	Publish(ctx context.Context, event entities.Event) error
}

type shippingService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carrier   Carrier
	repo      ShipmentRepo
	cache     Cache
	publisher Publisher
	retry     utils.RetryConfig
}

type Option func(*shippingService)

func WithRetry(cfg utils.RetryConfig) Option {
	return func(s *shippingService) {
		s.retry = cfg
	}
}

func NewShippingService(
	logger *slog.Logger,
	txManager trm.Manager,
	carrier Carrier,
	repo ShipmentRepo,
	cache Cache,
	publisher Publisher,
	opts ...Option,
) *shippingService {
	s := &shippingService{
		logger:    logger.With(slog.String("service", "shipping")),
		txManager: txManager,
		carrier:   carrier,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *shippingService) Quote(ctx context.Context, sh *entities.Shipment, urgent bool) (entities.Quotes, error) {
	key := quoteKey(sh, urgent)
	if data, ok := s.cache.Get(key); ok {
		var quotes entities.Quotes
		err := quotes.Unmarshal(data)
		if err == nil {
			return quotes, nil
		}
		s.logger.Warn("failed to unmarshal cached quotes", slog.String("key", key), slog.Any("error", err))
	}

	quotes, err := s.carrier.GetQuotes(ctx, sh, urgent)
	if err != nil {
		return entities.Quotes{}, err
	}

	data, err := quotes.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal quotes", slog.Any("error", err))
		return quotes, nil
	}
	s.cache.Set(key, data)
	return quotes, nil
}

func (s *shippingService) LodgeShipment(ctx context.Context, sh *entities.Shipment) error {
	if err := s.carrier.Lodge(ctx, sh); err != nil {
		return err
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveShipment(ctx, sh); err != nil {
				return fmt.Errorf("failed to save shipment: %w", err)
			}
			if err := s.repo.SaveParcels(ctx, sh.ShipmentID, sh.Parcels); err != nil {
				return fmt.Errorf("failed to save parcels: %w", err)
			}

			s.logger.Debug("shipment saved", "shipment_id", sh.ShipmentID)
			return nil
		})
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return fmt.Errorf("shipment %s lodged but not stored: %w", sh.ShipmentID, err)
	}

	articles := make([]string, 0, len(sh.Parcels))
	for _, p := range sh.Parcels {
		articles = append(articles, p.TrackingArticleID)
	}
	s.publish(ctx, entities.Event{
		Type:       entities.EventShipmentLodged,
		ShipmentID: sh.ShipmentID,
		ArticleIDs: articles,
	})
	return nil
}

func (s *shippingService) GetShipment(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	var sh *entities.Shipment
	fn := func() error {
		var err error
		sh, err = s.repo.GetShipmentByID(ctx, shipmentID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrShipmentNotFound); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *shippingService) GetLabels(ctx context.Context, shipmentIDs []string, lt entities.LabelType) (string, error) {
	return s.carrier.GetLabels(ctx, shipmentIDs, lt)
}

func (s *shippingService) CreateOrder(ctx context.Context, shipmentIDs []string) (entities.Order, error) {
	order, err := s.carrier.CreateOrder(ctx, shipmentIDs)
	if err != nil {
		return entities.Order{}, err
	}

	// Bare manifests carry no order id to store them under.
	if order.OrderID != entities.UnknownOrderID {
		fn := func() error {
			return s.txManager.Do(ctx, func(ctx context.Context) error {
				return s.repo.SaveOrder(ctx, order)
			})
		}
		if err := utils.Retry(ctx, s.retry, fn); err != nil {
			return entities.Order{}, fmt.Errorf("order %s created but not stored: %w", order.OrderID, err)
		}
	}

	s.publish(ctx, entities.Event{Type: entities.EventOrderCreated, OrderID: order.OrderID})
	return order, nil
}

func (s *shippingService) DeleteShipment(ctx context.Context, shipmentID string) (bool, error) {
	ok, err := s.carrier.DeleteShipment(ctx, shipmentID)
	if err != nil {
		return false, err
	}

	err = s.repo.MarkShipmentDeleted(ctx, shipmentID)
	if err != nil && !errors.Is(err, entities.ErrShipmentNotFound) {
		s.logger.Error("failed to mark shipment deleted", slog.String("shipment_id", shipmentID), slog.Any("error", err))
	}

	s.publish(ctx, entities.Event{Type: entities.EventShipmentDeleted, ShipmentID: shipmentID})
	return ok, nil
}

// publish failures are not fatal, the carrier call already succeeded.
func (s *shippingService) publish(ctx context.Context, event entities.Event) {
	event.ID = uuid.NewString()
	event.OccurredAt = time.Now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event",
			slog.String("type", string(event.Type)),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

func quoteKey(sh *entities.Shipment, urgent bool) string {
	var b strings.Builder
	b.WriteString("quote:")
	b.WriteString(strconv.FormatBool(urgent))
	for _, a := range []*entities.Address{sh.From, sh.To} {
		if a == nil {
			b.WriteString("|-")
			continue
		}
		fmt.Fprintf(&b, "|%s,%s,%s,%s", a.Country, a.State, a.Suburb, a.Postcode)
	}
	for _, p := range sh.Parcels {
		fmt.Fprintf(&b, "|%g,%g,%g,%g,%g", p.Length, p.Height, p.Width, p.Weight, p.Value)
	}
	return b.String()
}
