package carrier

import (
	"context"
	"net/http"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"
)

const (
	labelsPath  = "labels"
	labelFormat = "PDF"
)

// Shipping groups a label request is laid out for.
var labelGroups = []string{
	"Parcel Post",
	"Express Post",
	"StarTrack",
	"Startrack Courier",
	"On Demand",
	"International",
	"Commercial",
}

// GetLabels requests a PDF with labels for the given shipments and returns
// the url of the first label, or an empty string when none was returned.
func (c *Client) GetLabels(ctx context.Context, shipmentIDs []string, lt entities.LabelType) (string, error) {
	req := buildLabelRequest(shipmentIDs, lt)
	resp, err := c.sender.Send(ctx, http.MethodPost, labelsPath, req)
	if err != nil {
		return "", err
	}

	var body labelResponse
	if err := resp.Decode(labelsPath, &body); err != nil {
		return "", err
	}
	if len(body.Labels) == 0 {
		return "", nil
	}
	return body.Labels[0].URL, nil
}

func buildLabelRequest(shipmentIDs []string, lt entities.LabelType) labelRequest {
	groups := make([]labelGroup, 0, len(labelGroups))
	for _, g := range labelGroups {
		groups = append(groups, labelGroup{
			Group:      g,
			Layout:     lt.Layout,
			Branded:    lt.Branded,
			LeftOffset: lt.LeftOffset,
			TopOffset:  lt.TopOffset,
		})
	}

	return labelRequest{
		WaitForLabelURL: true,
		Preferences:     labelPreference{Type: "PRINT", Format: labelFormat, Groups: groups},
		Shipments:       shipmentRefs(shipmentIDs),
	}
}

func shipmentRefs(ids []string) []shipmentRef {
	refs := make([]shipmentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, shipmentRef{ShipmentID: id})
	}
	return refs
}
