package carrier

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
)

const (
	pricesPath = "prices/shipments"

	quotePackagingType = "ITM"
)

// GetQuotes prices the shipment at the carrier. With urgent set only
// express products are returned. The shipment is not modified.
func (c *Client) GetQuotes(ctx context.Context, s *entities.Shipment, urgent bool) (entities.Quotes, error) {
	if err := s.Validate(); err != nil {
		return entities.Quotes{}, err
	}

	var products []string
	if c.quotePerProduct {
		acc, err := c.GetAccount(ctx)
		if err != nil {
			return entities.Quotes{}, err
		}
		products = acc.ProductIDs()
	}

	return c.quote(ctx, s, products, urgent)
}

func (c *Client) quote(ctx context.Context, s *entities.Shipment, products []string, urgent bool) (entities.Quotes, error) {
	maxDim := s.MaxDimension()

	req := buildQuoteRequest(s, products)
	resp, err := c.sender.Send(ctx, http.MethodPost, pricesPath, req, WithMaxDimension(maxDim))
	if err != nil {
		return entities.Quotes{}, err
	}

	var body quoteResponse
	if err := resp.Decode(pricesPath, &body); err != nil {
		return entities.Quotes{}, err
	}

	quotes := make([]entities.Quote, 0, len(body.Shipments))
	for i, sh := range body.Shipments {
		if len(sh.Errors) > 0 {
			return entities.Quotes{}, newCarrierError(resp.Status, sh.Errors)
		}

		productID := ""
		if len(sh.Items) > 0 {
			productID = sh.Items[0].ProductID
		}
		if productID == "" && i < len(products) {
			productID = products[i]
		}
		quotes = append(quotes, entities.Quote{ProductID: productID, Cost: sh.Summary.TotalCost})
	}

	c.logger.DebugContext(ctx, "quotes received",
		slog.Int("count", len(quotes)),
		slog.Bool("urgent", urgent),
		slog.Int("max_dimension", maxDim),
	)

	return entities.Quotes{
		Items:        entities.FilterQuotes(quotes, urgent),
		MaxDimension: maxDim,
	}, nil
}

// buildQuoteRequest builds a single shipment with one item per parcel. When
// products are given the shipment is repeated once per product instead.
func buildQuoteRequest(s *entities.Shipment, products []string) quoteRequest {
	from, to := toQuoteAddress(s.From), toQuoteAddress(s.To)

	if len(products) == 0 {
		return quoteRequest{Shipments: []quoteShipment{{From: from, To: to, Items: quoteItems(s, "")}}}
	}

	req := quoteRequest{Shipments: make([]quoteShipment, 0, len(products))}
	for _, productID := range products {
		req.Shipments = append(req.Shipments, quoteShipment{From: from, To: to, Items: quoteItems(s, productID)})
	}
	return req
}

func quoteItems(s *entities.Shipment, productID string) []quoteItem {
	items := make([]quoteItem, 0, len(s.Parcels))
	for _, p := range s.Parcels {
		items = append(items, quoteItem{
			ProductID:     productID,
			Length:        p.Length,
			Height:        p.Height,
			Width:         p.Width,
			Weight:        p.Weight,
			PackagingType: quotePackagingType,
			Features:      coverFeature(p.Value),
		})
	}
	return items
}

func toQuoteAddress(a *entities.Address) quoteAddress {
	return quoteAddress{Suburb: a.Suburb, Postcode: a.Postcode, State: a.State}
}
