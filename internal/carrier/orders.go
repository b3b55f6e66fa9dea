package carrier

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
)

const ordersPath = "orders"

// CreateOrder lodges a manifest for the given shipments. When the carrier
// answers with the manifest itself the order id is entities.UnknownOrderID,
// otherwise the manifest summary is fetched with a second call.
func (c *Client) CreateOrder(ctx context.Context, shipmentIDs []string) (entities.Order, error) {
	resp, err := c.sender.Send(ctx, http.MethodPut, ordersPath, orderRequest{Shipments: shipmentRefs(shipmentIDs)})
	if err != nil {
		return entities.Order{}, err
	}

	if !resp.JSON {
		return entities.Order{
			OrderID:     entities.UnknownOrderID,
			ShipmentIDs: shipmentIDs,
			ManifestPDF: resp.Body,
		}, nil
	}

	var body orderResponse
	if err := resp.Decode(ordersPath, &body); err != nil {
		return entities.Order{}, err
	}
	if body.Order == nil || body.Order.OrderID == "" {
		return entities.Order{
			OrderID:     entities.UnknownOrderID,
			ShipmentIDs: shipmentIDs,
			ManifestPDF: resp.Body,
		}, nil
	}

	c.warnInvalidTime(ctx, "order_creation_date", body.Order.CreatedAt)

	summary, err := c.orderSummary(ctx, body.Order.OrderID)
	if err != nil {
		return entities.Order{}, err
	}

	c.logger.InfoContext(ctx, "order created",
		slog.String("order_id", body.Order.OrderID),
		slog.Int("shipments", len(shipmentIDs)),
	)

	return entities.Order{
		OrderID:     body.Order.OrderID,
		CreatedAt:   body.Order.CreatedAt.Time,
		ShipmentIDs: shipmentIDs,
		ManifestPDF: summary,
	}, nil
}

func (c *Client) orderSummary(ctx context.Context, orderID string) ([]byte, error) {
	path := fmt.Sprintf("accounts/%s/orders/%s/summary", url.PathEscape(c.accountNumber), url.PathEscape(orderID))
	resp, err := c.sender.Send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// DeleteShipment removes a shipment that has not been manifested yet. It
// reports true whenever the carrier returns no errors.
func (c *Client) DeleteShipment(ctx context.Context, shipmentID string) (bool, error) {
	path := shipmentsPath + "/" + url.PathEscape(shipmentID)
	if _, err := c.sender.Send(ctx, http.MethodDelete, path, nil); err != nil {
		return false, err
	}
	return true, nil
}
