package entities

import "time"

// Order id used when the carrier answers with a bare manifest.
const UnknownOrderID = "None"

type Order struct {
	OrderID     string
	CreatedAt   time.Time
	ShipmentIDs []string
	ManifestPDF []byte
}

type Product struct {
	ProductID string
	Type      string
}

const AddressMerchantLocation = "MERCHANT_LOCATION"

// AccountAddress is an address registered on the carrier account.
type AccountAddress struct {
	Type string
	Address
}

type Account struct {
	AccountNumber string
	Name          string
	Products      []Product
	Addresses     []AccountAddress
}

// MerchantAddress returns the first address of type MERCHANT_LOCATION.
func (a Account) MerchantAddress() (Address, bool) {
	for _, addr := range a.Addresses {
		if addr.Type == AddressMerchantLocation {
			return addr.Address, true
		}
	}
	return Address{}, false
}

func (a Account) ProductIDs() []string {
	ids := make([]string, 0, len(a.Products))
	for _, p := range a.Products {
		ids = append(ids, p.ProductID)
	}
	return ids
}

type LabelType struct {
	Layout     string
	Branded    bool
	LeftOffset int
	TopOffset  int
}

var (
	LabelA4OnePerPage  = LabelType{Layout: "A4-1pp", Branded: true}
	LabelA4FourPerPage = LabelType{Layout: "A4-4pp", Branded: true}
	LabelA6OnePerPage  = LabelType{Layout: "A6-1PP", Branded: true}
	LabelThermal       = LabelType{Layout: "THERMAL-LABEL-A6-1PP", Branded: false}
)

var labelTypes = map[string]LabelType{
	"a4-1pp":  LabelA4OnePerPage,
	"a4-4pp":  LabelA4FourPerPage,
	"a6-1pp":  LabelA6OnePerPage,
	"thermal": LabelThermal,
}

func LabelTypeByName(name string) (LabelType, bool) {
	lt, ok := labelTypes[name]
	return lt, ok
}

// ReconcileMode selects how lodged items are mapped back onto parcels.
type ReconcileMode string

const (
	// Every returned item is written onto every parcel, the last one wins.
	ReconcileLegacy     ReconcileMode = "legacy"
	ReconcilePositional ReconcileMode = "positional"
	ReconcileReference  ReconcileMode = "reference"
)
