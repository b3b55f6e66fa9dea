package entities

import "time"

type EventType string

const (
	EventShipmentLodged  EventType = "shipment.lodged"
	EventShipmentDeleted EventType = "shipment.deleted"
	EventOrderCreated    EventType = "order.created"
)

type Event struct {
	ID         string
	Type       EventType
	ShipmentID string
	OrderID    string
	OccurredAt time.Time

	// Tracking article ids of a lodged shipment.
	ArticleIDs []string
}
