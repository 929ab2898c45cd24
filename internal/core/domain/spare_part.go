package domain

import (
	"strings"
	"time"
)

// PartName is the catalogue name of an inventory item.
type PartName string

var partNames = []PartName{
	"Motherboard", "RAM", "SSD", "HDD", "CPU", "GPU", "Laptop Battery",
	"Charger", "Cooling Fan", "Screen", "Keyboard", "Touchpad", "Other",
}

func (p PartName) Valid() bool {
	for _, v := range partNames {
		if v == p {
			return true
		}
	}
	return false
}

// SparePart is an inventory line: stock on hand and unit price.
type SparePart struct {
	ID          string    `json:"id" bson:"id"`
	PartName    PartName  `json:"partName" bson:"partName"`
	Stock       int       `json:"stock" bson:"stock"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (s *SparePart) Validate() error {
	if s.PartName == "" {
		return ErrMissingInput
	}
	return validatePart(&s.PartName, &s.Stock, &s.Price)
}

type SparePartPatch struct {
	PartName    *PartName
	Stock       *int
	Price       *float64
	Description *string
}

func (p SparePartPatch) Validate() error {
	return validatePart(p.PartName, p.Stock, p.Price)
}

func validatePart(name *PartName, stock *int, price *float64) error {
	if name != nil && !name.Valid() {
		names := make([]string, len(partNames))
		for i, n := range partNames {
			names[i] = string(n)
		}
		return NewValidationError("partName must be one of: " + strings.Join(names, ", "))
	}
	if stock != nil && *stock < 0 {
		return NewValidationError("stock must be at least 0")
	}
	if price != nil && *price < 0 {
		return NewValidationError("price must be at least 0")
	}
	return nil
}

func (p SparePartPatch) Fields() []string {
	var f []string
	if p.PartName != nil {
		f = append(f, "partName")
	}
	if p.Stock != nil {
		f = append(f, "stock")
	}
	if p.Price != nil {
		f = append(f, "price")
	}
	if p.Description != nil {
		f = append(f, "description")
	}
	return f
}
