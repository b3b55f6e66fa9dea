package carrier

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
)

const shipmentsPath = "shipments"

// Lodge creates the shipment at the carrier and writes the assigned ids
// back onto s. On failure s is left untouched.
func (c *Client) Lodge(ctx context.Context, s *entities.Shipment) error {
	if s.Lodged() {
		return entities.ErrAlreadyLodged
	}
	if err := s.Validate(); err != nil {
		return err
	}

	// Domestic and international shipments share the same payload.
	req := buildLodgeRequest(s)
	resp, err := c.sender.Send(ctx, http.MethodPost, shipmentsPath, req)
	if err != nil {
		return err
	}

	var body lodgeResponse
	if err := resp.Decode(shipmentsPath, &body); err != nil {
		return err
	}
	for _, sh := range body.Shipments {
		if len(sh.Errors) > 0 {
			return newCarrierError(resp.Status, sh.Errors)
		}
	}

	reconcile(s, body.Shipments, c.mode)
	for _, sh := range body.Shipments {
		c.warnInvalidTime(ctx, "shipment_creation_date", sh.CreatedAt)
	}

	c.logger.InfoContext(ctx, "shipment lodged",
		slog.String("shipment_id", s.ShipmentID),
		slog.Int("parcels", len(s.Parcels)),
		slog.String("reconcile_mode", string(c.mode)),
	)
	return nil
}

func buildLodgeRequest(s *entities.Shipment) lodgeRequest {
	to := toWireAddress(s.To)
	to.DeliveryInstructions = s.DeliveryInstructions

	items := make([]lodgeItem, 0, len(s.Parcels))
	for _, p := range s.Parcels {
		items = append(items, lodgeItem{
			ItemReference: p.ItemReference,
			// The shipment product overrides whatever the parcel carries.
			ProductID:            s.ProductID,
			Length:               p.Length,
			Height:               p.Height,
			Width:                p.Width,
			Weight:               p.Weight,
			AuthorityToLeave:     p.AuthorityToLeave,
			AllowPartialDelivery: p.AllowPartialDelivery,
			SafeDropEnabled:      p.SafeDrop,
			DangerousGoods:       p.DangerousGoods,
			PackagingType:        p.PackagingType,
			Features:             coverFeature(p.Value),
		})
	}

	return lodgeRequest{Shipments: []lodgeShipment{{
		ShipmentReference:    s.Reference,
		CustomerReference1:   s.CustomerReference1,
		CustomerReference2:   s.CustomerReference2,
		EmailTrackingEnabled: s.EmailTracking,
		MovementType:         string(s.MovementType),
		From:                 toWireAddress(s.From),
		To:                   to,
		Items:                items,
	}}}
}

// reconcile maps the lodged shipments back onto s.
//
// ReconcileLegacy writes every returned item onto every parcel, so all
// parcels end up with the ids of the last item, and shipment id and lodge
// time come from the last block. It is kept for compatibility with existing
// consumers and is wrong for multi-parcel shipments.
//
// ReconcilePositional and ReconcileReference assign one item per parcel and
// take shipment id and lodge time from the first block. Items without a
// matching parcel are dropped.
func reconcile(s *entities.Shipment, lodged []lodgedShipment, mode entities.ReconcileMode) {
	if len(lodged) == 0 {
		return
	}

	switch mode {
	case entities.ReconcilePositional:
		i := 0
		for _, sh := range lodged {
			for _, it := range sh.Items {
				if i < len(s.Parcels) {
					assignItem(s.Parcels[i], it)
				}
				i++
			}
		}
		setShipmentIDs(s, lodged[0])

	case entities.ReconcileReference:
		byRef := make(map[string]*entities.Parcel, len(s.Parcels))
		for _, p := range s.Parcels {
			if _, dup := byRef[p.ItemReference]; !dup {
				byRef[p.ItemReference] = p
			}
		}
		for _, sh := range lodged {
			for _, it := range sh.Items {
				if p, ok := byRef[it.ItemReference]; ok {
					assignItem(p, it)
				}
			}
		}
		setShipmentIDs(s, lodged[0])

	default:
		for _, sh := range lodged {
			for _, it := range sh.Items {
				for _, p := range s.Parcels {
					assignItem(p, it)
				}
			}
			setShipmentIDs(s, sh)
		}
	}
}

func assignItem(p *entities.Parcel, it lodgedItem) {
	p.ItemID = it.ItemID
	p.TrackingArticleID = it.TrackingDetails.ArticleID
	p.TrackingConsignmentID = it.TrackingDetails.ConsignmentID
}

func setShipmentIDs(s *entities.Shipment, sh lodgedShipment) {
	s.ShipmentID = sh.ShipmentID
	s.LodgedAt = sh.CreatedAt.Time
}
