package models

import "strings"

// Transaction is a top up received from a store
type Transaction struct {
	ID                  string  `json:"id"`
	TxnDate             string  `json:"txn_date,omitempty"`
	StoreID             string  `json:"store_id"`
	StoreName           string  `json:"store_name,omitempty"`
	PaymentForID        string  `json:"payment_for_id"`
	PaymentFor          string  `json:"payment_for,omitempty"`
	AmountEGP           float64 `json:"amount_egp"`
	PaymentMethodID     string  `json:"payment_method_id"`
	PaymentMethod       string  `json:"payment_method,omitempty"`
	PaymentReferenceURL string  `json:"payment_reference_url,omitempty"`
	ReceivedBy          string  `json:"received_by"`
	CreatedAt           string  `json:"created_at,omitempty"`
	UpdatedAt           string  `json:"updated_at,omitempty"`
}

func (t Transaction) RowID() string { return t.ID }

func (t Transaction) Field(key string) any {
	switch key {
	case "id":
		return t.ID
	case "txn_date":
		return t.TxnDate
	case "store_id":
		return t.StoreID
	case "store_name":
		return firstNonEmpty(t.StoreName, t.StoreID)
	case "payment_for":
		return firstNonEmpty(t.PaymentFor, t.PaymentForID)
	case "amount_egp":
		return t.AmountEGP
	case "payment_method":
		return firstNonEmpty(t.PaymentMethod, t.PaymentMethodID)
	case "payment_reference_url":
		return t.PaymentReferenceURL
	case "received_by":
		return t.ReceivedBy
	case "created_at":
		return t.CreatedAt
	}
	return nil
}

func (t Transaction) Validate() error {
	return requireID("transaction", t.ID)
}

// Refund returns credits to a store for failed jobs
type Refund struct {
	ID                  string  `json:"refund_id"`
	RefundDate          string  `json:"refund_date"`
	StoreID             string  `json:"store_id"`
	StoreName           string  `json:"store_name,omitempty"`
	JobType             string  `json:"job_type"`
	JobName             string  `json:"job_name"`
	NumOfJobs           int     `json:"num_of_jobs"`
	CreditPerJob        float64 `json:"credit_per_job"`
	AmountEGP           float64 `json:"amount_egp"`
	Reason              string  `json:"reason,omitempty"`
	PaymentReferenceURL string  `json:"payment_reference_url,omitempty"`
	ReceivedBy          string  `json:"received_by,omitempty"`
	CreatedAt           string  `json:"created_at,omitempty"`
}

func (r Refund) RowID() string { return r.ID }

func (r Refund) Field(key string) any {
	switch key {
	case "id", "refund_id":
		return r.ID
	case "refund_date":
		return r.RefundDate
	case "store_id":
		return r.StoreID
	case "store_name":
		return firstNonEmpty(r.StoreName, r.StoreID)
	case "job_type":
		return r.JobType
	case "job_name":
		return r.JobName
	case "num_of_jobs":
		return r.NumOfJobs
	case "credit_per_job":
		return r.CreditPerJob
	case "amount_egp":
		return r.AmountEGP
	case "reason":
		return r.Reason
	case "received_by":
		return r.ReceivedBy
	case "created_at":
		return r.CreatedAt
	}
	return nil
}

func (r Refund) Validate() error {
	return requireID("refund", r.ID)
}

// CreditItem prices one kind of job in credits
type CreditItem struct {
	ID            string  `json:"credit_id"`
	JobType       string  `json:"job_type"`
	JobName       string  `json:"job_name"`
	CreditsPerJob float64 `json:"credits_per_job"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

func (c CreditItem) RowID() string { return c.ID }

func (c CreditItem) Field(key string) any {
	switch key {
	case "credit_id":
		return c.ID
	case "job_type":
		return c.JobType
	case "job_name":
		return c.JobName
	case "credits_per_job":
		return c.CreditsPerJob
	case "created_at":
		return c.CreatedAt
	}
	return nil
}

func (c CreditItem) Validate() error {
	return requireID("credit item", c.ID)
}

// CreditItemInput is the payload for adding or repricing a catalog entry
type CreditItemInput struct {
	JobType       string  `json:"job_type"`
	JobName       string  `json:"job_name"`
	CreditsPerJob float64 `json:"credits_per_job"`
}

func (in CreditItemInput) Validate() error {
	if strings.TrimSpace(in.JobType) == "" {
		return fieldError("job_type", ErrRequiredField)
	}
	if strings.TrimSpace(in.JobName) == "" {
		return fieldError("job_name", ErrRequiredField)
	}
	if in.CreditsPerJob < 0 {
		return fieldError("credits_per_job", ErrNegative)
	}
	return nil
}
