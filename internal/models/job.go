package models

// ImageJob is one photo processing run of the bot
type ImageJob struct {
	ID                string   `json:"job_id"`
	FriendlyID        string   `json:"friendly_job_id,omitempty"`
	StoreID           string   `json:"store_id"`
	PhoneID           string   `json:"phone_id,omitempty"`
	Timestamp         string   `json:"timestamp,omitempty"`
	OriginalFileURL   string   `json:"original_file_url,omitempty"`
	RawPose1URL       string   `json:"raw_pose1_url,omitempty"`
	FrontPoseURL      string   `json:"front_pose_url,omitempty"`
	DiffPoseURL       string   `json:"diff_pose_url,omitempty"`
	ThirdPoseURL      string   `json:"third_pose_url,omitempty"`
	ProcessingTimeSec *float64 `json:"processing_time_sec,omitempty"`
	TokensUsed        *int     `json:"tokens_used,omitempty"`
	USDToEGP          *float64 `json:"usd_to_egp,omitempty"`
	MyCostEGP         *float64 `json:"my_cost_egp,omitempty"`
	CreditsPerJob     *float64 `json:"credits_per_job,omitempty"`
	StatusFront       string   `json:"status_front,omitempty"`
	StatusDiff        string   `json:"status_diff,omitempty"`
	ErrorCode         string   `json:"error_code,omitempty"`
	ReadyForPublish   bool     `json:"ready_for_publish"`
	PublishStatus     string   `json:"publish_status,omitempty"`
	Package           string   `json:"package,omitempty"`
	PackageName       string   `json:"package_name,omitempty"`
}

func (j ImageJob) RowID() string { return j.ID }

// DisplayID is the friendly id when the backend assigned one
func (j ImageJob) DisplayID() string {
	return firstNonEmpty(j.FriendlyID, j.ID)
}

// PackageLabel is the package the job was billed under. Jobs without a
// package are Elite when ready for publishing, Pro otherwise.
func (j ImageJob) PackageLabel() string {
	if label := firstNonEmpty(j.Package, j.PackageName); label != "" {
		return label
	}
	if j.ReadyForPublish {
		return "Elite"
	}
	return "Pro"
}

func (j ImageJob) Field(key string) any {
	switch key {
	case "job_id":
		return j.ID
	case "display_job_id":
		return j.DisplayID()
	case "store_id":
		return j.StoreID
	case "phone_id":
		return j.PhoneID
	case "timestamp":
		return j.Timestamp
	case "processing_time_sec":
		return opt(j.ProcessingTimeSec)
	case "tokens_used":
		return opt(j.TokensUsed)
	case "usd_to_egp":
		return opt(j.USDToEGP)
	case "my_cost_egp":
		return opt(j.MyCostEGP)
	case "status", "error_code":
		return j.ErrorCode
	case "status_front":
		return j.StatusFront
	case "status_diff":
		return j.StatusDiff
	case "ready_for_publish":
		return j.ReadyForPublish
	case "publish_status":
		return j.PublishStatus
	case "package":
		return j.PackageLabel()
	}
	return nil
}

func (j ImageJob) Validate() error {
	return requireID("image job", j.ID)
}

// VideoJob is one uploaded video billed to a store
type VideoJob struct {
	ID             string  `json:"video_job_id"`
	JobDate        string  `json:"job_date"`
	StoreID        string  `json:"store_id"`
	StoreName      string  `json:"store_name,omitempty"`
	UploadedBy     string  `json:"uploaded_by"`
	VideoType      string  `json:"video_type,omitempty"`
	DurationSec    float64 `json:"duration_sec"`
	UploadProvider string  `json:"upload_provider,omitempty"`
	CreditsPerJob  float64 `json:"credits_per_job"`
	MyCostEGP      float64 `json:"my_cost_egp"`
	SourceURL      string  `json:"source_url,omitempty"`
	ProcessedURL   string  `json:"processed_url,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

func (v VideoJob) RowID() string { return v.ID }

func (v VideoJob) Field(key string) any {
	switch key {
	case "video_job_id":
		return v.ID
	case "job_date":
		return v.JobDate
	case "store_id":
		return v.StoreID
	case "store_name":
		return firstNonEmpty(v.StoreName, v.StoreID)
	case "uploaded_by":
		return v.UploadedBy
	case "video_type":
		return v.VideoType
	case "duration_sec":
		return v.DurationSec
	case "upload_provider":
		return v.UploadProvider
	case "credits_per_job":
		return v.CreditsPerJob
	case "my_cost_egp":
		return v.MyCostEGP
	case "created_at":
		return v.CreatedAt
	}
	return nil
}

func (v VideoJob) Validate() error {
	return requireID("video job", v.ID)
}
