package entities

import (
	"errors"
	"fmt"
)

var (
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyLodged    = errors.New("shipment already lodged")
	ErrInvalidShipment  = errors.New("invalid shipment")
)

type CarrierErrorEntry struct {
	Code    string
	Name    string
	Message string
	Field   string
}

// CarrierError is reported by the carrier in an errors array.
type CarrierError struct {
	Status int
	Errors []CarrierErrorEntry
}

func (e *CarrierError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("carrier error: status %d", e.Status)
	}
	return e.Errors[0].Message
}

func (e *CarrierError) Code() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Code
}

type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means a body that had to be structured could not be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response of %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
