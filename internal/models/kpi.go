package models

// KPI is the dashboard summary for one date range
type KPI struct {
	Range string `json:"range"`
	From  string `json:"from"`
	To    string `json:"to"`

	StoresTotal int `json:"stores_total"`
	StoresNew   int `json:"stores_new"`

	TransactionsEGP  float64 `json:"transactions_egp"`
	RefundsEGP       float64 `json:"refunds_egp"`
	ImageJobsCount   int     `json:"image_jobs_count"`
	ImageJobsCostEGP float64 `json:"image_jobs_cost_egp"`
	VideoJobsCount   int     `json:"video_jobs_count"`
	VideoJobsCostEGP float64 `json:"video_jobs_cost_egp"`
	NetCashflowEGP   float64 `json:"net_cashflow_egp"`

	TierBasicPct *float64 `json:"stores_tier_basic_pct,omitempty"`
	TierProPct   *float64 `json:"stores_tier_pro_pct,omitempty"`
	TierElitePct *float64 `json:"stores_tier_elite_pct,omitempty"`
	TierTrialPct *float64 `json:"stores_tier_trial_pct,omitempty"`

	ActivePct     *float64 `json:"active_pct,omitempty"`
	LessActivePct *float64 `json:"less_active_pct,omitempty"`
	InactivePct   *float64 `json:"inactive_pct,omitempty"`

	StoresToppedUp *int     `json:"stores_topped_up,omitempty"`
	AvgTopUpEGP    *float64 `json:"avg_topup_egp,omitempty"`

	BasicAvgProcSecs *float64 `json:"basic_avg_proc_secs,omitempty"`
	ProAvgProcSecs   *float64 `json:"pro_avg_proc_secs,omitempty"`
	EliteAvgProcSecs *float64 `json:"elite_avg_proc_secs,omitempty"`

	ErrorRatePct *float64 `json:"error_rate_pct,omitempty"`
	ErrorsTotal  *int     `json:"errors_total,omitempty"`
	JobsTotal    *int     `json:"jobs_total,omitempty"`

	NetProfitEGP *float64 `json:"net_profit_egp,omitempty"`
}

// NetProfit prefers the backend figure and otherwise derives it from
// revenue minus refunds and job costs
func (k KPI) NetProfit() float64 {
	if k.NetProfitEGP != nil {
		return *k.NetProfitEGP
	}
	return k.TransactionsEGP - k.RefundsEGP - k.ImageJobsCostEGP - k.VideoJobsCostEGP
}

// CommonThings holds global settings shared by every store
type CommonThings struct {
	ID             int     `json:"id"`
	ExchangeUSDEGP float64 `json:"exchange_usd_egp"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
	UpdatedBy      string  `json:"updated_by,omitempty"`
	UpdatedByName  string  `json:"updated_by_name,omitempty"`
	UpdatedByEmail string  `json:"updated_by_email,omitempty"`
}

// Meta is the pagination block list endpoints attach to their data
type Meta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
