package models

import (
	"regexp"
	"strings"
)

// e164 is a plus sign, a non-zero country digit and up to 14 more digits
var e164 = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

// PhoneNumber is a WhatsApp number attached to a store
type PhoneNumber struct {
	ID             string `json:"number_id"`
	PhoneE164      string `json:"phone_e164"`
	StoreID        string `json:"store_id,omitempty"`
	StoreNameCache string `json:"store_name_cache,omitempty"`
	OwnerName      string `json:"wapp_owner_name,omitempty"`
	TotalJobs      int    `json:"total_jobs"`
	IsPrimary      bool   `json:"is_primary"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

func (n PhoneNumber) RowID() string { return n.ID }

// LastSeen is the latest activity timestamp the backend knows about
func (n PhoneNumber) LastSeen() string {
	return firstNonEmpty(n.UpdatedAt, n.CreatedAt)
}

func (n PhoneNumber) Field(key string) any {
	switch key {
	case "number_id", "id":
		return n.ID
	case "phone", "phone_e164":
		return n.PhoneE164
	case "assigned_store", "store_name_cache":
		return n.StoreNameCache
	case "wapp_owner_name":
		return n.OwnerName
	case "total_jobs":
		return n.TotalJobs
	case "is_primary":
		return n.IsPrimary
	case "last_seen":
		return n.LastSeen()
	}
	return nil
}

func (n PhoneNumber) Validate() error {
	return requireID("phone number", n.ID)
}

// PhoneNumberInput attaches a WhatsApp number to a store
type PhoneNumberInput struct {
	StoreID   string `json:"-"`
	PhoneE164 string `json:"phone_e164"`
	OwnerName string `json:"wapp_owner_name,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

func (in PhoneNumberInput) Validate() error {
	if strings.TrimSpace(in.StoreID) == "" {
		return fieldError("store_id", ErrRequiredField)
	}
	if strings.TrimSpace(in.PhoneE164) == "" {
		return fieldError("phone_e164", ErrRequiredField)
	}
	if !e164.MatchString(in.PhoneE164) {
		return fieldError("phone_e164", ErrInvalidPhone)
	}
	return nil
}
