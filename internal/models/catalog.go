package models

import "strings"

// Prompt is a generation prompt, either global or owned by one store
type Prompt struct {
	ID         string `json:"prompt_id"`
	Name       string `json:"name"`
	PromptText string `json:"prompt_text"`
	Scope      string `json:"scope"`
	StoreID    string `json:"store_id,omitempty"`
	StoreCount int    `json:"store_count"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

func (p Prompt) RowID() string { return p.ID }

func (p Prompt) Field(key string) any {
	switch key {
	case "prompt_id":
		return p.ID
	case "name":
		return p.Name
	case "prompt_text":
		return p.PromptText
	case "scope":
		return p.Scope
	case "store_id":
		return p.StoreID
	case "store_count":
		return p.StoreCount
	case "created_at":
		return p.CreatedAt
	case "updated_at":
		return p.UpdatedAt
	}
	return nil
}

func (p Prompt) Validate() error {
	return requireID("prompt", p.ID)
}

// Package is a priced service tier stores subscribe to
type Package struct {
	ID                      string   `json:"package_id"`
	Name                    string   `json:"name"`
	PricePerDress           float64  `json:"price_per_dress"`
	Currency                string   `json:"currency"`
	ImagesPerDress          int      `json:"images_per_dress"`
	UseConsistentBackground bool     `json:"use_consistent_background"`
	PromptsOrder            []string `json:"prompts_order"`
	CreatedAt               string   `json:"created_at,omitempty"`
	UpdatedAt               string   `json:"updated_at,omitempty"`
}

func (p Package) RowID() string { return p.ID }

func (p Package) Field(key string) any {
	switch key {
	case "package_id":
		return p.ID
	case "name":
		return p.Name
	case "price_per_dress":
		return p.PricePerDress
	case "currency":
		return p.Currency
	case "images_per_dress":
		return p.ImagesPerDress
	case "use_consistent_background":
		return p.UseConsistentBackground
	case "prompts_order":
		return strings.Join(p.PromptsOrder, ", ")
	case "created_at":
		return p.CreatedAt
	case "updated_at":
		return p.UpdatedAt
	}
	return nil
}

func (p Package) Validate() error {
	return requireID("package", p.ID)
}

// PackageInput is the payload for creating or editing a package
type PackageInput struct {
	Name                    string   `json:"name"`
	PricePerDress           float64  `json:"price_per_dress"`
	Currency                string   `json:"currency"`
	ImagesPerDress          int      `json:"images_per_dress"`
	UseConsistentBackground bool     `json:"use_consistent_background"`
	PromptsOrder            []string `json:"prompts_order"`
}

func (in PackageInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fieldError("name", ErrRequiredField)
	}
	if in.PricePerDress <= 0 {
		return fieldError("price_per_dress", ErrNonPositive)
	}
	if strings.TrimSpace(in.Currency) == "" {
		return fieldError("currency", ErrRequiredField)
	}
	if in.ImagesPerDress <= 0 {
		return fieldError("images_per_dress", ErrNonPositive)
	}
	return nil
}

// PromptInput is the payload for creating or editing a prompt. The
// dashboard only manages global prompts.
type PromptInput struct {
	Name       string `json:"name"`
	PromptText string `json:"prompt_text"`
	Scope      string `json:"scope"`
}

func (in PromptInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fieldError("name", ErrRequiredField)
	}
	if strings.TrimSpace(in.PromptText) == "" {
		return fieldError("prompt_text", ErrRequiredField)
	}
	return nil
}
