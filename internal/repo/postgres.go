package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var (
	shipmentColumns = []string{
		"shipment_id", "reference", "customer_reference_1", "customer_reference_2",
		"movement_type", "product_id", "delivery_instructions", "email_tracking", "lodged_at",
	}
	addressColumns = []string{
		"shipment_id", "kind", "name", "business_name", "lines",
		"suburb", "state", "postcode", "country", "phone", "email",
	}
	parcelColumns = []string{
		"shipment_id", "position", "item_id", "item_reference", "length", "height", "width",
		"weight", "value", "packaging_type", "dangerous_goods", "authority_to_leave", "safe_drop",
		"allow_partial_delivery", "tracking_article_id", "tracking_consignment_id",
	}
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetShipmentByID(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	query, args := r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"shipment_id": shipmentID}).
		Where(sq.Eq{"deleted_at": nil}).
		MustSql()

	var shipment Shipment
	err := r.getContext(ctx, &shipment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entities.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	query, args = r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"shipment_id": shipmentID}).
		MustSql()

	var addresses []Address
	if err := r.selectContext(ctx, &addresses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get addresses: %w", err)
	}

	query, args = r.qb.Select(parcelColumns...).
		From("parcels").
		Where(sq.Eq{"shipment_id": shipmentID}).
		OrderBy("position").
		MustSql()

	var parcels []Parcel
	if err := r.selectContext(ctx, &parcels, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get parcels: %w", err)
	}

	return ShipmentToEntity(shipment, addresses, parcels), nil
}

func (r *postgresRepo) SaveShipment(ctx context.Context, s *entities.Shipment) error {
	query, args := r.qb.Insert("shipments").
		Columns(shipmentColumns...).
		Values(
			s.ShipmentID, nullString(s.Reference), nullString(s.CustomerReference1), nullString(s.CustomerReference2),
			string(s.MovementType), nullString(s.ProductID), nullString(s.DeliveryInstructions), s.EmailTracking, s.LodgedAt,
		).
		Suffix("ON CONFLICT (shipment_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save shipment: %w", err)
	}

	q := r.qb.Insert("addresses").
		Columns(addressColumns...).
		Suffix("ON CONFLICT (shipment_id, kind) DO NOTHING")
	kinds := []string{addressFrom, addressTo}
	rows := 0
	for i, a := range []*entities.Address{s.From, s.To} {
		if a == nil {
			continue
		}
		rows++
		q = q.Values(
			s.ShipmentID, kinds[i], nullString(a.Name), nullString(a.BusinessName),
			nullString(strings.Join(a.Lines, "\n")), nullString(a.Suburb), nullString(a.State),
			nullString(a.Postcode), a.Country, nullString(a.Phone), nullString(a.Email),
		)
	}

	if rows == 0 {
		return nil
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save addresses: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveParcels(ctx context.Context, shipmentID string, parcels []*entities.Parcel) error {
	if len(parcels) == 0 {
		return nil
	}

	q := r.qb.Insert("parcels").
		Columns(parcelColumns...).
		Suffix("ON CONFLICT (shipment_id, position) DO NOTHING")

	for i, p := range parcels {
		q = q.Values(
			shipmentID, i, nullString(p.ItemID), nullString(p.ItemReference),
			p.Length, p.Height, p.Width, p.Weight, p.Value, nullString(p.PackagingType),
			p.DangerousGoods, p.AuthorityToLeave, p.SafeDrop, p.AllowPartialDelivery,
			nullString(p.TrackingArticleID), nullString(p.TrackingConsignmentID),
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save parcels: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("order_id", "created_at", "manifest_pdf").
		Values(o.OrderID, o.CreatedAt, o.ManifestPDF).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.ShipmentIDs) == 0 {
		return nil
	}

	q := r.qb.Insert("order_shipments").
		Columns("order_id", "shipment_id").
		Suffix("ON CONFLICT (order_id, shipment_id) DO NOTHING")
	for _, id := range o.ShipmentIDs {
		q = q.Values(o.OrderID, id)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order shipments: %w", err)
	}
	return nil
}

func (r *postgresRepo) MarkShipmentDeleted(ctx context.Context, shipmentID string) error {
	query, args := r.qb.Update("shipments").
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"shipment_id": shipmentID}).
		Where(sq.Eq{"deleted_at": nil}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark shipment deleted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark shipment deleted: %w", err)
	}
	if n == 0 {
		return entities.ErrShipmentNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
