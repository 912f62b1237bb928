package models

import "strings"

// PaymentFor is a payment purpose transactions are filed under
type PaymentFor struct {
	ID        string `json:"payment_for_id"`
	Name      string `json:"payment_for_name"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (p PaymentFor) RowID() string { return p.ID }

func (p PaymentFor) Field(key string) any {
	switch key {
	case "payment_for_id", "id":
		return p.ID
	case "payment_for_name", "name":
		return p.Name
	case "created_at":
		return p.CreatedAt
	}
	return nil
}

func (p PaymentFor) Validate() error {
	return requireID("payment purpose", p.ID)
}

// PaymentMethod is how a store paid, like cash or InstaPay
type PaymentMethod struct {
	ID        string `json:"payment_method_id"`
	Name      string `json:"payment_method_name"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (p PaymentMethod) RowID() string { return p.ID }

func (p PaymentMethod) Field(key string) any {
	switch key {
	case "payment_method_id", "id":
		return p.ID
	case "payment_method_name", "name":
		return p.Name
	case "created_at":
		return p.CreatedAt
	}
	return nil
}

func (p PaymentMethod) Validate() error {
	return requireID("payment method", p.ID)
}

// PaymentForInput is the payload for adding or renaming a payment purpose
type PaymentForInput struct {
	Name string `json:"payment_for_name"`
}

func (in PaymentForInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fieldError("payment_for_name", ErrRequiredField)
	}
	return nil
}

// PaymentMethodInput is the payload for adding or renaming a payment method
type PaymentMethodInput struct {
	Name string `json:"payment_method_name"`
}

func (in PaymentMethodInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fieldError("payment_method_name", ErrRequiredField)
	}
	return nil
}
