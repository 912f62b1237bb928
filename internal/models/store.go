package models

import "slices"

// Store is a shop registered with the WhatsApp bot, including the
// dashboard aggregates the API joins onto it
type Store struct {
	ID                   string   `json:"store_id"`
	Number               *int     `json:"store_number,omitempty"`
	Name                 string   `json:"store_name"`
	Kind                 string   `json:"store_kind"`
	Address              string   `json:"address,omitempty"`
	PackageID            string   `json:"package_id,omitempty"`
	Prompt1ID            string   `json:"prompt1_id,omitempty"`
	Prompt1              string   `json:"prompt_1,omitempty"`
	BackgroundImageURL   string   `json:"background_image_url,omitempty"`
	OutputResolution     string   `json:"output_resolution,omitempty"`
	RegistrationDate     string   `json:"registration_date,omitempty"`
	MaxImagesPerHour     int      `json:"max_images_per_hour"`
	MaxImagesPerMsg      int      `json:"max_images_per_msg"`
	IsPaused             bool     `json:"is_paused"`
	CreditRemainingEGP   float64  `json:"credit_remaining_egp"`
	RemainingQuotaImages int      `json:"remaining_quota_images"`
	TotalTopUpsEGP       float64  `json:"total_top_ups_egp"`
	TransactionsCount    int      `json:"transactions_count"`
	ImageJobsCount       int      `json:"image_jobs_count"`
	VideoJobsCount       int      `json:"video_jobs_count"`
	ImageJobsCostEGP     float64  `json:"image_jobs_cost_egp"`
	VideoJobsCostEGP     float64  `json:"video_jobs_cost_egp"`
	RefundsEGP           float64  `json:"refunds_egp"`
	RefundedJobsCount    int      `json:"refunded_jobs_count"`
	WhatsappNumbersCount int      `json:"whatsapp_numbers_count"`
	PerImageCredit       *float64 `json:"per_image_credit,omitempty"`
	CreditsPerDress      *float64 `json:"credits_per_dress,omitempty"`
	LastActiveAt         string   `json:"last_active_at,omitempty"`
	CreatedAt            string   `json:"created_at,omitempty"`
	UpdatedAt            string   `json:"updated_at,omitempty"`

	// Resolved client side from the package list and image spend
	Package    string `json:"-"`
	PromptName string `json:"-"`
}

func (s Store) RowID() string { return s.ID }

// CreditsPerJob is the per image credit, falling back to credits per dress
func (s Store) CreditsPerJob() (float64, bool) {
	if s.PerImageCredit != nil {
		return *s.PerImageCredit, true
	}
	if s.CreditsPerDress != nil {
		return *s.CreditsPerDress, true
	}
	return 0, false
}

func (s Store) Field(key string) any {
	switch key {
	case "store_id", "id":
		return s.ID
	case "store_number":
		return opt(s.Number)
	case "store_name":
		return s.Name
	case "store_kind":
		return s.Kind
	case "address":
		return s.Address
	case "registration_date":
		return s.RegistrationDate
	case "package":
		return s.Package
	case "package_id":
		return s.PackageID
	case "credit_per_job", "per_image_credit":
		if v, ok := s.CreditsPerJob(); ok {
			return v
		}
		return nil
	case "active_status", "last_active_at":
		return s.LastActiveAt
	case "is_paused":
		return s.IsPaused
	case "max_images_per_hour":
		return s.MaxImagesPerHour
	case "max_images_per_msg":
		return s.MaxImagesPerMsg
	case "image_jobs_count":
		return s.ImageJobsCount
	case "video_jobs_count":
		return s.VideoJobsCount
	case "img_cr_used", "image_jobs_cost_egp":
		return s.ImageJobsCostEGP
	case "video_jobs_cost_egp":
		return s.VideoJobsCostEGP
	case "credit_remaining_egp":
		return s.CreditRemainingEGP
	case "remaining_quota_images":
		return s.RemainingQuotaImages
	case "transactions_count":
		return s.TransactionsCount
	case "total_top_ups_egp":
		return s.TotalTopUpsEGP
	case "refunds_egp":
		return s.RefundsEGP
	case "whatsapp_numbers_count":
		return s.WhatsappNumbersCount
	case "prompt_name":
		return s.PromptName
	case "output_resolution":
		return s.OutputResolution
	}
	return nil
}

func (s Store) Validate() error {
	return requireID("store", s.ID)
}

// StoreInput is the payload for creating or editing a store
type StoreInput struct {
	Name             string `json:"store_name"`
	Kind             string `json:"store_kind"`
	Address          string `json:"address,omitempty"`
	PackageID        string `json:"package_id,omitempty"`
	MaxImagesPerHour int    `json:"max_images_per_hour"`
	MaxImagesPerMsg  int    `json:"max_images_per_msg"`
}

func (in StoreInput) Validate() error {
	if in.Name == "" {
		return fieldError("store_name", ErrRequiredField)
	}
	if !slices.Contains(StoreKinds, in.Kind) {
		return fieldError("store_kind", ErrInvalidStoreKind)
	}
	if in.MaxImagesPerHour <= 0 {
		return fieldError("max_images_per_hour", ErrNonPositive)
	}
	if in.MaxImagesPerMsg <= 0 {
		return fieldError("max_images_per_msg", ErrNonPositive)
	}
	return nil
}

// StorePatch carries the subset of store fields a PATCH changes
type StorePatch struct {
	Name             *string `json:"store_name,omitempty"`
	Kind             *string `json:"store_kind,omitempty"`
	Address          *string `json:"address,omitempty"`
	PackageID        *string `json:"package_id,omitempty"`
	MaxImagesPerHour *int    `json:"max_images_per_hour,omitempty"`
	MaxImagesPerMsg  *int    `json:"max_images_per_msg,omitempty"`
	IsPaused         *bool   `json:"is_paused,omitempty"`
}
