package models

// ErrorLog is a pipeline failure or a store deletion audit entry
type ErrorLog struct {
	ID              string `json:"error_id"`
	StoreID         string `json:"store_id,omitempty"`
	StoreName       string `json:"store_name,omitempty"`
	JobID           string `json:"job_id,omitempty"`
	MediaType       string `json:"media_type,omitempty"`
	Stage           string `json:"stage,omitempty"`
	Provider        string `json:"provider,omitempty"`
	Kind            string `json:"kind,omitempty"`
	Timestamp       string `json:"timestamp"`
	ErrorMessage    string `json:"error_message,omitempty"`
	ShopifyEndpoint string `json:"shopify_endpoint,omitempty"`
	HTTPStatus      *int   `json:"http_status,omitempty"`
	ErrorCode       string `json:"error_code,omitempty"`
	Retryable       string `json:"retryable,omitempty"`
}

func (e ErrorLog) RowID() string { return e.ID }

// IsRetryable reports whether the backend flagged the failure as worth
// retrying
func (e ErrorLog) IsRetryable() bool {
	return e.Retryable == "Y"
}

func (e ErrorLog) Field(key string) any {
	switch key {
	case "error_id", "id":
		return e.ID
	case "store_id":
		return e.StoreID
	case "store_name":
		return firstNonEmpty(e.StoreName, e.StoreID)
	case "job_id":
		return e.JobID
	case "media_type":
		return e.MediaType
	case "stage":
		return e.Stage
	case "provider":
		return e.Provider
	case "kind":
		return firstNonEmpty(e.Kind, ErrorKindError)
	case "timestamp":
		return e.Timestamp
	case "error_message":
		return e.ErrorMessage
	case "shopify_endpoint":
		return e.ShopifyEndpoint
	case "http_status":
		return opt(e.HTTPStatus)
	case "error_code":
		return e.ErrorCode
	case "retryable":
		return e.IsRetryable()
	}
	return nil
}

func (e ErrorLog) Validate() error {
	return requireID("error log", e.ID)
}
