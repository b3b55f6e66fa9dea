package entities

import (
	"time"
)

const DomesticCountry = "AU"

type Address struct {
	Name         string
	BusinessName string
	Lines        []string
	Suburb       string
	State        string
	Postcode     string
	Country      string
	Phone        string
	Email        string
}

func (a Address) Domestic() bool {
	return a.Country == DomesticCountry
}

type Parcel struct {
	Length float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`
	Width  float64 `validate:"gt=0"`
	Weight float64 `validate:"gt=0"`

	// Declared value, a positive value requests transit cover.
	Value float64 `validate:"gte=0"`

	ItemReference        string
	ProductID            string
	PackagingType        string
	DangerousGoods       bool
	AuthorityToLeave     bool
	SafeDrop             bool
	AllowPartialDelivery bool

	// Assigned by the carrier on lodgement.
	ItemID                string
	TrackingArticleID     string
	TrackingConsignmentID string
}

type MovementType string

const (
	MovementDespatch MovementType = "DESPATCH"
	MovementReturn   MovementType = "RETURN"
	MovementTransfer MovementType = "TRANSFER"
)

func (m MovementType) Valid() bool {
	switch m {
	case MovementDespatch, MovementReturn, MovementTransfer:
		return true
	}
	return false
}

type Shipment struct {
	From *Address `validate:"required"`
	To   *Address `validate:"required"`

	// Order matters, returned items are correlated positionally.
	Parcels []*Parcel `validate:"required,min=1,dive,required"`

	MovementType         MovementType
	ProductID            string
	Reference            string
	CustomerReference1   string
	CustomerReference2   string
	DeliveryInstructions string
	EmailTracking        bool

	ShipmentID string
	LodgedAt   time.Time
}

func NewShipment() *Shipment {
	return &Shipment{MovementType: MovementDespatch}
}

func (s *Shipment) SetFrom(a Address) *Shipment {
	s.From = &a
	return s
}

func (s *Shipment) SetTo(a Address) *Shipment {
	s.To = &a
	return s
}

func (s *Shipment) AddParcel(p Parcel) *Shipment {
	s.Parcels = append(s.Parcels, &p)
	return s
}

func (s *Shipment) SetProductID(id string) *Shipment {
	s.ProductID = id
	return s
}

func (s *Shipment) SetMovementType(m MovementType) *Shipment {
	s.MovementType = m
	return s
}

func (s *Shipment) SetReference(ref string) *Shipment {
	s.Reference = ref
	return s
}

func (s *Shipment) SetCustomerReferences(ref1, ref2 string) *Shipment {
	s.CustomerReference1 = ref1
	s.CustomerReference2 = ref2
	return s
}

func (s *Shipment) SetDeliveryInstructions(text string) *Shipment {
	s.DeliveryInstructions = text
	return s
}

func (s *Shipment) SetEmailTracking(enabled bool) *Shipment {
	s.EmailTracking = enabled
	return s
}

func (s *Shipment) Lodged() bool {
	return s.ShipmentID != ""
}

// MaxDimension returns the largest of length, height and width across all
// parcels, truncated to an integer.
func (s *Shipment) MaxDimension() int {
	var max float64
	for _, p := range s.Parcels {
		for _, d := range [...]float64{p.Length, p.Height, p.Width} {
			if d > max {
				max = d
			}
		}
	}
	return int(max)
}
