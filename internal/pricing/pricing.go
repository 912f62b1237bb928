// Package pricing computes package tiers and per job economics for the
// image jobs and stores pages.
package pricing

import (
	"math"
	"strings"

	"github.com/thenoetrevino/dressdash/internal/models"
)

const (
	// TrialLimitEGP is the image spend a store stays on Trial for
	TrialLimitEGP = 200.0

	// DefaultUSDToEGP applies when neither the job nor the settings carry a rate
	DefaultUSDToEGP = 48.5
)

// Tier is the normalized package family of a package label
type Tier string

const (
	TierBasic Tier = "Basic"
	TierPro   Tier = "Pro"
	TierElite Tier = "Elite"
	TierTrial Tier = "Trial"
)

// PackageTier classifies a free form package label
func PackageTier(label string) Tier {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "basic"):
		return TierBasic
	case strings.Contains(l, "pro"):
		return TierPro
	case strings.Contains(l, "elite"):
		return TierElite
	default:
		return TierTrial
	}
}

// EffectivePackage is the package a store is shown under. Stores stay on
// Trial until their image jobs cost at least TrialLimitEGP, whatever
// package they picked.
func EffectivePackage(packageName string, imageCostEGP float64) string {
	if imageCostEGP < TrialLimitEGP || packageName == "" {
		return string(TierTrial)
	}
	return packageName
}

// GeminiCostUSD is the generation cost of one image for a package label.
// Elite pricing depends on the store's output resolution.
func GeminiCostUSD(label, resolution string) float64 {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(l, "basic"):
		return 0.08
	case strings.Contains(l, "pro"):
		if strings.Contains(l, "without background") ||
			strings.Contains(l, "without bg") ||
			strings.Contains(l, "no background") {
			return 0.12
		}
		return 0.14
	case strings.Contains(l, "elite"):
		switch strings.ToUpper(strings.TrimSpace(resolution)) {
		case "2K", "4K":
			return 0.75
		}
		return 0.26
	}
	return 0
}

// Cost is the derived economics of one image job
type Cost struct {
	Package       string
	CreditsPerJob float64
	GeminiUSD     float64
	USDToEGP      float64
	CostEGP       float64
	ProfitEGP     float64
}

// JobCost prices a job. Credits come from the store when it has a per image
// or per dress price and from the job otherwise. The exchange rate recorded
// on the job wins over currentRate, which wins over DefaultUSDToEGP.
func JobCost(job models.ImageJob, store *models.Store, currentRate float64) Cost {
	c := Cost{Package: strings.TrimSpace(job.PackageLabel())}

	var resolution string
	if store != nil {
		resolution = store.OutputResolution
		if credits, ok := store.CreditsPerJob(); ok {
			c.CreditsPerJob = credits
		} else if job.CreditsPerJob != nil {
			c.CreditsPerJob = *job.CreditsPerJob
		}
	} else if job.CreditsPerJob != nil {
		c.CreditsPerJob = *job.CreditsPerJob
	}

	switch {
	case job.USDToEGP != nil && *job.USDToEGP > 0 && !math.IsNaN(*job.USDToEGP):
		c.USDToEGP = *job.USDToEGP
	case currentRate > 0:
		c.USDToEGP = currentRate
	default:
		c.USDToEGP = DefaultUSDToEGP
	}

	c.GeminiUSD = GeminiCostUSD(c.Package, resolution)
	c.CostEGP = c.GeminiUSD * c.USDToEGP
	c.ProfitEGP = c.CreditsPerJob - c.CostEGP
	return c
}

// Summary sums a set of job costs for a totals line
type Summary struct {
	Jobs      int
	Credits   float64
	CostEGP   float64
	ProfitEGP float64
}

// Totals adds up costs
func Totals(costs []Cost) Summary {
	s := Summary{Jobs: len(costs)}
	for _, c := range costs {
		s.Credits += c.CreditsPerJob
		s.CostEGP += c.CostEGP
		s.ProfitEGP += c.ProfitEGP
	}
	return s
}

// FormatErrorCode turns a backend error code into a readable label
func FormatErrorCode(code string) string {
	if code == "" {
		return ""
	}
	upper := strings.ToUpper(code)
	switch upper {
	case "INSUFFICIENT_QUOTA", "QUOTA":
		return "Insufficient Quota"
	case "DOWNLOAD_ERROR":
		return "Download Error"
	case "FRONT_POSE_ERROR":
		return "Front Pose Error"
	case "DIFF_POSE_ERROR":
		return "Different Pose Error"
	}

	words := strings.Split(strings.ToLower(upper), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
