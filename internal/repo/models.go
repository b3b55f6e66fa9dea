package repo

import (
	"database/sql"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
)

const (
	addressFrom = "from"
	addressTo   = "to"
)

type Shipment struct {
	ShipmentID           string         `db:"shipment_id"`
	Reference            sql.NullString `db:"reference"`
	CustomerReference1   sql.NullString `db:"customer_reference_1"`
	CustomerReference2   sql.NullString `db:"customer_reference_2"`
	MovementType         string         `db:"movement_type"`
	ProductID            sql.NullString `db:"product_id"`
	DeliveryInstructions sql.NullString `db:"delivery_instructions"`
	EmailTracking        bool           `db:"email_tracking"`
	LodgedAt             time.Time      `db:"lodged_at"`
}

type Address struct {
	ShipmentID   string         `db:"shipment_id"`
	Kind         string         `db:"kind"`
	Name         sql.NullString `db:"name"`
	BusinessName sql.NullString `db:"business_name"`
	Lines        sql.NullString `db:"lines"`
	Suburb       sql.NullString `db:"suburb"`
	State        sql.NullString `db:"state"`
	Postcode     sql.NullString `db:"postcode"`
	Country      string         `db:"country"`
	Phone        sql.NullString `db:"phone"`
	Email        sql.NullString `db:"email"`
}

type Parcel struct {
	ShipmentID            string         `db:"shipment_id"`
	Position              int            `db:"position"`
	ItemID                sql.NullString `db:"item_id"`
	ItemReference         sql.NullString `db:"item_reference"`
	Length                float64        `db:"length"`
	Height                float64        `db:"height"`
	Width                 float64        `db:"width"`
	Weight                float64        `db:"weight"`
	Value                 float64        `db:"value"`
	PackagingType         sql.NullString `db:"packaging_type"`
	DangerousGoods        bool           `db:"dangerous_goods"`
	AuthorityToLeave      bool           `db:"authority_to_leave"`
	SafeDrop              bool           `db:"safe_drop"`
	AllowPartialDelivery  bool           `db:"allow_partial_delivery"`
	TrackingArticleID     sql.NullString `db:"tracking_article_id"`
	TrackingConsignmentID sql.NullString `db:"tracking_consignment_id"`
}

func AddressToEntity(a Address) *entities.Address {
	var lines []string
	if a.Lines.Valid && a.Lines.String != "" {
		lines = strings.Split(a.Lines.String, "\n")
	}
	return &entities.Address{
		Name:         nullStringToString(a.Name),
		BusinessName: nullStringToString(a.BusinessName),
		Lines:        lines,
		Suburb:       nullStringToString(a.Suburb),
		State:        nullStringToString(a.State),
		Postcode:     nullStringToString(a.Postcode),
		Country:      a.Country,
		Phone:        nullStringToString(a.Phone),
		Email:        nullStringToString(a.Email),
	}
}

func ParcelToEntity(p Parcel) *entities.Parcel {
	return &entities.Parcel{
		Length:                p.Length,
		Height:                p.Height,
		Width:                 p.Width,
		Weight:                p.Weight,
		Value:                 p.Value,
		ItemReference:         nullStringToString(p.ItemReference),
		PackagingType:         nullStringToString(p.PackagingType),
		DangerousGoods:        p.DangerousGoods,
		AuthorityToLeave:      p.AuthorityToLeave,
		SafeDrop:              p.SafeDrop,
		AllowPartialDelivery:  p.AllowPartialDelivery,
		ItemID:                nullStringToString(p.ItemID),
		TrackingArticleID:     nullStringToString(p.TrackingArticleID),
		TrackingConsignmentID: nullStringToString(p.TrackingConsignmentID),
	}
}

func ShipmentToEntity(s Shipment, addresses []Address, parcels []Parcel) *entities.Shipment {
	shipment := &entities.Shipment{
		ShipmentID:           s.ShipmentID,
		Reference:            nullStringToString(s.Reference),
		CustomerReference1:   nullStringToString(s.CustomerReference1),
		CustomerReference2:   nullStringToString(s.CustomerReference2),
		MovementType:         entities.MovementType(s.MovementType),
		ProductID:            nullStringToString(s.ProductID),
		DeliveryInstructions: nullStringToString(s.DeliveryInstructions),
		EmailTracking:        s.EmailTracking,
		LodgedAt:             s.LodgedAt,
		Parcels:              make([]*entities.Parcel, 0, len(parcels)),
	}

	for _, a := range addresses {
		switch a.Kind {
		case addressFrom:
			shipment.From = AddressToEntity(a)
		case addressTo:
			shipment.To = AddressToEntity(a)
		}
	}
	for _, p := range parcels {
		shipment.Parcels = append(shipment.Parcels, ParcelToEntity(p))
	}
	return shipment
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
