package handler

import (
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
	"github.com/go-playground/validator/v10"
)

// Address адрес отправителя или получателя
type Address struct {
	Name         string   `json:"name" validate:"required"`
	BusinessName string   `json:"business_name,omitempty"`
	Lines        []string `json:"lines" validate:"required,min=1,max=4,dive,required"`
	Suburb       string   `json:"suburb" validate:"required"`
	State        string   `json:"state" validate:"required"`
	Postcode     string   `json:"postcode" validate:"required"`
	Country      string   `json:"country" validate:"required,iso3166_1_alpha2"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
}

// Parcel посылка
type Parcel struct {
	Length float64 `json:"length" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
	Width  float64 `json:"width" validate:"gt=0"`
	Weight float64 `json:"weight" validate:"gt=0"`
	Value  float64 `json:"value,omitempty" validate:"gte=0"`

	ItemReference        string `json:"item_reference,omitempty"`
	PackagingType        string `json:"packaging_type,omitempty"`
	DangerousGoods       bool   `json:"contains_dangerous_goods,omitempty"`
	AuthorityToLeave     bool   `json:"authority_to_leave,omitempty"`
	SafeDrop             bool   `json:"safe_drop_enabled,omitempty"`
	AllowPartialDelivery bool   `json:"allow_partial_delivery,omitempty"`

	ItemID                string `json:"item_id,omitempty"`
	TrackingArticleID     string `json:"tracking_article_id,omitempty"`
	TrackingConsignmentID string `json:"tracking_consignment_id,omitempty"`
}

// Shipment отправление
type Shipment struct {
	From    Address  `json:"from" validate:"required"`
	To      Address  `json:"to" validate:"required"`
	Parcels []Parcel `json:"parcels" validate:"required,min=1,dive"`

	MovementType         string `json:"movement_type,omitempty" validate:"omitempty,oneof=DESPATCH RETURN TRANSFER"`
	ProductID            string `json:"product_id,omitempty"`
	Reference            string `json:"reference,omitempty"`
	CustomerReference1   string `json:"customer_reference_1,omitempty"`
	CustomerReference2   string `json:"customer_reference_2,omitempty"`
	DeliveryInstructions string `json:"delivery_instructions,omitempty"`
	EmailTracking        bool   `json:"email_tracking,omitempty"`

	ShipmentID string     `json:"shipment_id,omitempty"`
	LodgedAt   *time.Time `json:"lodged_at,omitempty"`
}

// LodgeRequest запрос на создание отправления
type LodgeRequest struct {
	Shipment Shipment `json:"shipment" validate:"required"`
}

// Продукт нужен только при создании, для расчёта цены он не указывается
func lodgeRequestRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(LodgeRequest)
	if req.Shipment.ProductID == "" {
		sl.ReportError(req.Shipment.ProductID, "shipment.product_id", "ProductID", "required", "")
	}
}

// QuoteAddress адрес для расчёта стоимости
type QuoteAddress struct {
	Suburb   string `json:"suburb" validate:"required"`
	State    string `json:"state" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
}

// QuoteShipment отправление для расчёта стоимости
type QuoteShipment struct {
	From    QuoteAddress `json:"from" validate:"required"`
	To      QuoteAddress `json:"to" validate:"required"`
	Parcels []Parcel     `json:"parcels" validate:"required,min=1,dive"`
}

// QuoteRequest запрос расчёта стоимости
type QuoteRequest struct {
	Shipment QuoteShipment `json:"shipment" validate:"required"`
	Urgent   bool          `json:"urgent"`
}

// Quote стоимость доставки продуктом
type Quote struct {
	ProductID string  `json:"product_id"`
	Cost      float64 `json:"cost"`
}

// QuoteResponse список цен по возрастанию
type QuoteResponse struct {
	Quotes       []Quote `json:"quotes"`
	MaxDimension int     `json:"max_dimension"`
}

// LabelRequest запрос на печать этикеток
type LabelRequest struct {
	ShipmentIDs []string `json:"shipment_ids" validate:"required,min=1,dive,required"`
	LabelType   string   `json:"label_type,omitempty" validate:"omitempty,oneof=a4-1pp a4-4pp a6-1pp thermal"`
}

// LabelResponse ссылка на PDF с этикетками
type LabelResponse struct {
	URL string `json:"url"`
}

// OrderRequest запрос на создание манифеста
type OrderRequest struct {
	ShipmentIDs []string `json:"shipment_ids" validate:"required,min=1,dive,required"`
}

// OrderResponse созданный заказ, manifest_pdf в base64
type OrderResponse struct {
	OrderID     string     `json:"order_id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	ShipmentIDs []string   `json:"shipment_ids"`
	ManifestPDF []byte     `json:"manifest_pdf,omitempty"`
}

// DeleteResponse результат удаления отправления
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Name:         a.Name,
		BusinessName: a.BusinessName,
		Lines:        a.Lines,
		Suburb:       a.Suburb,
		State:        a.State,
		Postcode:     a.Postcode,
		Country:      a.Country,
		Phone:        a.Phone,
		Email:        a.Email,
	}
}

func AddressEntityToJSON(a *entities.Address) Address {
	if a == nil {
		return Address{}
	}
	return Address{
		Name:         a.Name,
		BusinessName: a.BusinessName,
		Lines:        a.Lines,
		Suburb:       a.Suburb,
		State:        a.State,
		Postcode:     a.Postcode,
		Country:      a.Country,
		Phone:        a.Phone,
		Email:        a.Email,
	}
}

func ParcelJSONToEntity(p Parcel) entities.Parcel {
	return entities.Parcel{
		Length:               p.Length,
		Height:               p.Height,
		Width:                p.Width,
		Weight:               p.Weight,
		Value:                p.Value,
		ItemReference:        p.ItemReference,
		PackagingType:        p.PackagingType,
		DangerousGoods:       p.DangerousGoods,
		AuthorityToLeave:     p.AuthorityToLeave,
		SafeDrop:             p.SafeDrop,
		AllowPartialDelivery: p.AllowPartialDelivery,
	}
}

func ParcelEntityToJSON(p *entities.Parcel) Parcel {
	return Parcel{
		Length:                p.Length,
		Height:                p.Height,
		Width:                 p.Width,
		Weight:                p.Weight,
		Value:                 p.Value,
		ItemReference:         p.ItemReference,
		PackagingType:         p.PackagingType,
		DangerousGoods:        p.DangerousGoods,
		AuthorityToLeave:      p.AuthorityToLeave,
		SafeDrop:              p.SafeDrop,
		AllowPartialDelivery:  p.AllowPartialDelivery,
		ItemID:                p.ItemID,
		TrackingArticleID:     p.TrackingArticleID,
		TrackingConsignmentID: p.TrackingConsignmentID,
	}
}

func ShipmentJSONToEntity(s Shipment) *entities.Shipment {
	shipment := entities.NewShipment().
		SetFrom(AddressJSONToEntity(s.From)).
		SetTo(AddressJSONToEntity(s.To)).
		SetProductID(s.ProductID).
		SetReference(s.Reference).
		SetCustomerReferences(s.CustomerReference1, s.CustomerReference2).
		SetDeliveryInstructions(s.DeliveryInstructions).
		SetEmailTracking(s.EmailTracking)

	if s.MovementType != "" {
		shipment.SetMovementType(entities.MovementType(s.MovementType))
	}
	for _, p := range s.Parcels {
		shipment.AddParcel(ParcelJSONToEntity(p))
	}
	return shipment
}

func QuoteShipmentJSONToEntity(s QuoteShipment) *entities.Shipment {
	shipment := entities.NewShipment().
		SetFrom(entities.Address{Suburb: s.From.Suburb, State: s.From.State, Postcode: s.From.Postcode}).
		SetTo(entities.Address{Suburb: s.To.Suburb, State: s.To.State, Postcode: s.To.Postcode})
	for _, p := range s.Parcels {
		shipment.AddParcel(ParcelJSONToEntity(p))
	}
	return shipment
}

func ShipmentEntityToJSON(s *entities.Shipment) Shipment {
	parcels := make([]Parcel, 0, len(s.Parcels))
	for _, p := range s.Parcels {
		parcels = append(parcels, ParcelEntityToJSON(p))
	}

	res := Shipment{
		From:                 AddressEntityToJSON(s.From),
		To:                   AddressEntityToJSON(s.To),
		Parcels:              parcels,
		MovementType:         string(s.MovementType),
		ProductID:            s.ProductID,
		Reference:            s.Reference,
		CustomerReference1:   s.CustomerReference1,
		CustomerReference2:   s.CustomerReference2,
		DeliveryInstructions: s.DeliveryInstructions,
		EmailTracking:        s.EmailTracking,
		ShipmentID:           s.ShipmentID,
	}
	if !s.LodgedAt.IsZero() {
		lodgedAt := s.LodgedAt
		res.LodgedAt = &lodgedAt
	}
	return res
}

func QuotesEntityToJSON(q entities.Quotes) QuoteResponse {
	quotes := make([]Quote, 0, len(q.Items))
	for _, it := range q.Items {
		quotes = append(quotes, Quote{ProductID: it.ProductID, Cost: it.Cost})
	}
	return QuoteResponse{Quotes: quotes, MaxDimension: q.MaxDimension}
}

func OrderEntityToJSON(o entities.Order) OrderResponse {
	res := OrderResponse{
		OrderID:     o.OrderID,
		ShipmentIDs: o.ShipmentIDs,
		ManifestPDF: o.ManifestPDF,
	}
	if !o.CreatedAt.IsZero() {
		createdAt := o.CreatedAt
		res.CreatedAt = &createdAt
	}
	return res
}
