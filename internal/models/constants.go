package models

// Store kinds accepted by the API
const (
	StoreKindMarket   = "Market"
	StoreKindMall     = "Mall"
	StoreKindPersonal = "Personal"
)

// StoreKinds lists the store kinds in the order forms offer them
var StoreKinds = []string{StoreKindMarket, StoreKindMall, StoreKindPersonal}

// User roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Prompt scopes
const (
	ScopeGlobal = "global"
	ScopeStore  = "store"
)

// Bot message types the backend emits
const (
	MessageTopUp        = "TOP_UP"
	MessageDailySummary = "DAILY_SUMMARY"
	MessageManual       = "MANUAL"
)

// Roles lists the roles in the order forms offer them
var Roles = []string{RoleStaff, RoleAdmin}

// Error log kinds
const (
	ErrorKindError         = "error"
	ErrorKindStoreDeletion = "store_deletion"
)

// Download methods
const (
	DownloadSinceLast = "since_last_download_onward"
	DownloadAll       = "download_all"
	DownloadRange     = "custom_range"
)

// DownloadMethods lists the download methods in the order forms offer them
var DownloadMethods = []string{DownloadSinceLast, DownloadAll, DownloadRange}

// Job types priced in the credit catalog
const (
	JobTypeImage = "image"
	JobTypeVideo = "video"
)
