package models

import (
	"slices"
	"strings"
)

// Download records one export of a store's finished images
type Download struct {
	ID             string `json:"download_id"`
	StoreID        string `json:"store_id"`
	StoreNameCache string `json:"store_name_cache,omitempty"`
	MostRecentJob  string `json:"most_recent_job,omitempty"`
	LastDownloadAt string `json:"last_download_at,omitempty"`
	Method         string `json:"method"`
	FromTS         string `json:"from_ts,omitempty"`
	ToTS           string `json:"to_ts,omitempty"`
	TriggeredBy    string `json:"triggered_by,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`

	// Resolved client side from the stores and users lists
	StoreName       string `json:"-"`
	TriggeredByName string `json:"-"`
}

func (d Download) RowID() string { return d.ID }

func (d Download) Field(key string) any {
	switch key {
	case "download_id", "id":
		return d.ID
	case "store_id":
		return d.StoreID
	case "store", "store_name":
		return firstNonEmpty(d.StoreName, d.StoreNameCache, d.StoreID)
	case "most_recent_job":
		return d.MostRecentJob
	case "last_download_at":
		return d.LastDownloadAt
	case "method":
		return d.Method
	case "from_ts":
		return d.FromTS
	case "to_ts":
		return d.ToTS
	case "triggered_by":
		return firstNonEmpty(d.TriggeredByName, d.TriggeredBy)
	case "created_at":
		return d.CreatedAt
	}
	return nil
}

func (d Download) Validate() error {
	return requireID("download", d.ID)
}

// DownloadInput asks the backend to bundle a store's images
type DownloadInput struct {
	StoreID        string `json:"store_id"`
	StoreNameCache string `json:"store_name_cache,omitempty"`
	Method         string `json:"method"`
	FromTS         string `json:"from_ts,omitempty"`
	ToTS           string `json:"to_ts,omitempty"`
}

// Validate requires a store and a known method. A custom range needs both
// ends.
func (in DownloadInput) Validate() error {
	if strings.TrimSpace(in.StoreID) == "" {
		return fieldError("store_id", ErrRequiredField)
	}
	if !slices.Contains(DownloadMethods, in.Method) {
		return fieldError("method", ErrInvalidChoice)
	}
	if in.Method == DownloadRange {
		if strings.TrimSpace(in.FromTS) == "" {
			return fieldError("from_ts", ErrRequiredField)
		}
		if strings.TrimSpace(in.ToTS) == "" {
			return fieldError("to_ts", ErrRequiredField)
		}
	}
	return nil
}

// DownloadFile is one file of a prepared download
type DownloadFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// DownloadResult is what the backend returns for a new download. Older
// backends send bare URLs instead of files.
type DownloadResult struct {
	ID    string         `json:"download_id"`
	Files []DownloadFile `json:"files,omitempty"`
	URLs  []string       `json:"urls,omitempty"`
}

// Links returns every file URL of the result
func (r DownloadResult) Links() []string {
	links := make([]string, 0, len(r.Files)+len(r.URLs))
	for _, f := range r.Files {
		if f.URL != "" {
			links = append(links, f.URL)
		}
	}
	for _, u := range r.URLs {
		if u != "" && !slices.Contains(links, u) {
			links = append(links, u)
		}
	}
	return links
}
