package entities

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks that the shipment is ready to be quoted or lodged.
func (s *Shipment) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShipment, err)
	}
	if s.MovementType != "" && !s.MovementType.Valid() {
		return fmt.Errorf("%w: unknown movement type %q", ErrInvalidShipment, s.MovementType)
	}
	return nil
}
