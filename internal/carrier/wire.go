package carrier

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Request and response bodies of the carrier REST API.

type apiError struct {
	Code    flexString `json:"code"`
	Name    string     `json:"name"`
	Message string     `json:"message"`
	Field   string     `json:"field,omitempty"`
}

type errorEnvelope struct {
	Errors    []apiError `json:"errors"`
	Shipments []struct {
		Errors []apiError `json:"errors"`
	} `json:"shipments"`
}

type address struct {
	Name                 string   `json:"name,omitempty"`
	BusinessName         string   `json:"business_name,omitempty"`
	Lines                []string `json:"lines,omitempty"`
	Suburb               string   `json:"suburb"`
	State                string   `json:"state"`
	Postcode             string   `json:"postcode"`
	Country              string   `json:"country,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	Email                string   `json:"email,omitempty"`
	DeliveryInstructions string   `json:"delivery_instructions,omitempty"`
}

type transitCover struct {
	Attributes struct {
		CoverAmount float64 `json:"cover_amount"`
	} `json:"attributes"`
}

type features struct {
	TransitCover *transitCover `json:"TRANSIT_COVER,omitempty"`
}

type quoteAddress struct {
	Suburb   string `json:"suburb"`
	Postcode string `json:"postcode"`
	State    string `json:"state"`
}

type quoteItem struct {
	ProductID     string    `json:"product_id,omitempty"`
	Length        float64   `json:"length"`
	Height        float64   `json:"height"`
	Width         float64   `json:"width"`
	Weight        float64   `json:"weight"`
	PackagingType string    `json:"packaging_type"`
	Features      *features `json:"features,omitempty"`
}

type quoteShipment struct {
	From  quoteAddress `json:"from"`
	To    quoteAddress `json:"to"`
	Items []quoteItem  `json:"items"`
}

type quoteRequest struct {
	Shipments []quoteShipment `json:"shipments"`
}

type shipmentSummary struct {
	TotalCost float64 `json:"total_cost"`
}

type quoteResponse struct {
	Shipments []struct {
		Items []struct {
			ProductID string `json:"product_id"`
		} `json:"items"`
		Summary shipmentSummary `json:"shipment_summary"`
		Errors  []apiError      `json:"errors"`
	} `json:"shipments"`
}

type lodgeItem struct {
	ItemReference        string    `json:"item_reference,omitempty"`
	ProductID            string    `json:"product_id"`
	Length               float64   `json:"length"`
	Height               float64   `json:"height"`
	Width                float64   `json:"width"`
	Weight               float64   `json:"weight"`
	AuthorityToLeave     bool      `json:"authority_to_leave"`
	AllowPartialDelivery bool      `json:"allow_partial_delivery"`
	SafeDropEnabled      bool      `json:"safe_drop_enabled"`
	DangerousGoods       bool      `json:"contains_dangerous_goods"`
	PackagingType        string    `json:"packaging_type,omitempty"`
	Features             *features `json:"features,omitempty"`
}

type lodgeShipment struct {
	ShipmentReference    string      `json:"shipment_reference,omitempty"`
	CustomerReference1   string      `json:"customer_reference_1,omitempty"`
	CustomerReference2   string      `json:"customer_reference_2,omitempty"`
	EmailTrackingEnabled bool        `json:"email_tracking_enabled"`
	MovementType         string      `json:"movement_type,omitempty"`
	From                 address     `json:"from"`
	To                   address     `json:"to"`
	Items                []lodgeItem `json:"items"`
}

type lodgeRequest struct {
	Shipments []lodgeShipment `json:"shipments"`
}

type lodgedItem struct {
	ItemID          string `json:"item_id"`
	ItemReference   string `json:"item_reference"`
	TrackingDetails struct {
		ArticleID     string `json:"article_id"`
		ConsignmentID string `json:"consignment_id"`
	} `json:"tracking_details"`
}

type lodgedShipment struct {
	ShipmentID string       `json:"shipment_id"`
	CreatedAt  wireTime     `json:"shipment_creation_date"`
	Items      []lodgedItem `json:"items"`
	Errors     []apiError   `json:"errors"`
}

type lodgeResponse struct {
	Shipments []lodgedShipment `json:"shipments"`
}

type labelGroup struct {
	Group      string `json:"group"`
	Layout     string `json:"layout"`
	Branded    bool   `json:"branded"`
	LeftOffset int    `json:"left_offset"`
	TopOffset  int    `json:"top_offset"`
}

type labelPreference struct {
	Type   string       `json:"type"`
	Format string       `json:"format"`
	Groups []labelGroup `json:"groups"`
}

type shipmentRef struct {
	ShipmentID string `json:"shipment_id"`
}

type labelRequest struct {
	WaitForLabelURL bool            `json:"wait_for_label_url"`
	Preferences     labelPreference `json:"preferences"`
	Shipments       []shipmentRef   `json:"shipments"`
}

type labelResponse struct {
	Labels []struct {
		RequestID string `json:"request_id"`
		URL       string `json:"url"`
		Status    string `json:"status"`
	} `json:"labels"`
}

type orderRequest struct {
	OrderReference string        `json:"order_reference,omitempty"`
	Shipments      []shipmentRef `json:"shipments"`
}

type orderResponse struct {
	Order *struct {
		OrderID   string   `json:"order_id"`
		CreatedAt wireTime `json:"order_creation_date"`
	} `json:"order"`
}

type accountResponse struct {
	AccountNumber string `json:"account_number"`
	Name          string `json:"name"`
	Products      []struct {
		Type      string `json:"type"`
		ProductID string `json:"product_id"`
	} `json:"postage_products"`
	Addresses []struct {
		Type string `json:"type"`
		address
	} `json:"addresses"`
}

// flexString accepts both JSON strings and numbers.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// Timestamp layouts seen in carrier responses.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// wireTime tolerates empty and unparsable timestamps. An unparsable value
// leaves Time zero and keeps the original text in Raw.
type wireTime struct {
	time.Time
	Raw string
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil || str == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, str); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Raw = str
	return nil
}

func (t wireTime) Invalid() bool {
	return t.Time.IsZero() && t.Raw != ""
}
