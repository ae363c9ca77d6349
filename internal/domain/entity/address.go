// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Coordinates is the geocoded position of an address.
type Coordinates struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// Address is the canonical address resolved from a zipcode.
// Every provider payload and every stored row is normalized into this shape.
type Address struct {
	Zipcode      Zipcode      `json:"zipcode"`
	State        State        `json:"state"`
	City         City         `json:"city"`
	Neighborhood string       `json:"neighborhood"`
	Complement   *string      `json:"complement,omitempty"` // Street plus extra descriptor, provider free text.
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// JoinComplement builds the complement from a street name and an extra descriptor.
// It returns nil when the street is empty.
func JoinComplement(street, extra string) *string {
	if strings.TrimSpace(street) == "" {
		return nil
	}

	complement := strings.TrimSpace(street + " " + extra)

	return &complement
}
