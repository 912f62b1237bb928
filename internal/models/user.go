package models

import (
	"slices"
	"strings"
)

// User is a dashboard operator
type User struct {
	ID        string `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (u User) RowID() string { return u.ID }

func (u User) Field(key string) any {
	switch key {
	case "user_id":
		return u.ID
	case "email":
		return u.Email
	case "full_name":
		return u.FullName
	case "role":
		return u.Role
	case "active", "is_active":
		return u.IsActive
	case "created_at":
		return u.CreatedAt
	}
	return nil
}

func (u User) Validate() error {
	return requireID("user", u.ID)
}

// UserInput is the payload for adding an operator
type UserInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (in UserInput) Validate() error {
	if strings.TrimSpace(in.Email) == "" {
		return fieldError("email", ErrRequiredField)
	}
	if strings.TrimSpace(in.FullName) == "" {
		return fieldError("full_name", ErrRequiredField)
	}
	if !slices.Contains(Roles, in.Role) {
		return fieldError("role", ErrInvalidChoice)
	}
	if in.Password == "" {
		return fieldError("password", ErrRequiredField)
	}
	return nil
}

// UserPatch carries the subset of user fields a PATCH changes. Password is
// only sent when an operator typed a new one.
type UserPatch struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (p UserPatch) Validate() error {
	if p.Role != nil && !slices.Contains(Roles, *p.Role) {
		return fieldError("role", ErrInvalidChoice)
	}
	if p.FullName != nil && strings.TrimSpace(*p.FullName) == "" {
		return fieldError("full_name", ErrRequiredField)
	}
	if p.Email != nil && strings.TrimSpace(*p.Email) == "" {
		return fieldError("email", ErrRequiredField)
	}
	return nil
}

// BotMessage is a message the bot sent to a store owner
type BotMessage struct {
	ID          string `json:"log_id"`
	StoreID     string `json:"store_id,omitempty"`
	StoreName   string `json:"store_name,omitempty"`
	PhoneE164   string `json:"phone_e164,omitempty"`
	MessageType string `json:"message_type"`
	MessageBody string `json:"message_body"`
	CreatedAt   string `json:"created_at"`
}

func (m BotMessage) RowID() string { return m.ID }

func (m BotMessage) Field(key string) any {
	switch key {
	case "log_id":
		return m.ID
	case "store_name":
		return m.StoreName
	case "phone_e164":
		return m.PhoneE164
	case "message_type":
		return m.MessageType
	case "message_body":
		return m.MessageBody
	case "created_at":
		return m.CreatedAt
	}
	return nil
}

func (m BotMessage) Validate() error {
	return requireID("bot message", m.ID)
}

// ManualMessageInput sends a one-off WhatsApp message to a store's owner
type ManualMessageInput struct {
	StoreID string `json:"store_id"`
	Message string `json:"message"`
}

func (in ManualMessageInput) Validate() error {
	if strings.TrimSpace(in.StoreID) == "" {
		return fieldError("store_id", ErrRequiredField)
	}
	if strings.TrimSpace(in.Message) == "" {
		return fieldError("message", ErrRequiredField)
	}
	return nil
}
