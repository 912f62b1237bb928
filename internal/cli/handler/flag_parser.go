package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/export"
)

// dateLayout is the backend's date-only format for custom KPI ranges
const dateLayout = "2006-01-02"

// FlagParser provides common flag extraction patterns. Every failure is a
// *cli.UsageError so it maps to ExitUsage.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

func usage(format string, args ...any) error {
	return &cli.UsageError{Message: fmt.Sprintf(format, args...)}
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", usage("failed to parse %s flag: %v", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", usage("--%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", usage("failed to parse %s flag: %v", flagName, err)
	}
	return strings.TrimSpace(value), nil
}

// ParsePositiveFloat extracts a float flag that must be above zero
func (p *FlagParser) ParsePositiveFloat(flagName string) (float64, error) {
	value, err := p.cmd.Flags().GetFloat64(flagName)
	if err != nil {
		return 0, usage("failed to parse %s flag: %v", flagName, err)
	}
	if value <= 0 {
		return 0, usage("--%s must be greater than 0", flagName)
	}
	return value, nil
}

// ParseFormat extracts an export format flag
func (p *FlagParser) ParseFormat(flagName string) (export.Format, error) {
	value, err := p.ParseStringOptional(flagName)
	if err != nil {
		return "", err
	}
	format, err := export.ParseFormat(value)
	if err != nil {
		return "", usage("%v", err)
	}
	return format, nil
}

// ParseRange extracts --range with its --from/--to dates. A custom range
// needs both dates, the presets take neither.
func (p *FlagParser) ParseRange() (api.Range, string, string, error) {
	raw, err := p.ParseStringOptional("range")
	if err != nil {
		return "", "", "", err
	}
	from, err := p.ParseStringOptional("from")
	if err != nil {
		return "", "", "", err
	}
	to, err := p.ParseStringOptional("to")
	if err != nil {
		return "", "", "", err
	}

	if raw == "" {
		raw = string(api.RangeToday)
		if from != "" || to != "" {
			raw = string(api.RangeCustom)
		}
	}
	r, err := api.ParseRange(raw)
	if err != nil {
		return "", "", "", usage("%v", err)
	}

	if r != api.RangeCustom {
		if from != "" || to != "" {
			return "", "", "", usage("--from and --to only apply to --range custom")
		}
		return r, "", "", nil
	}

	if from == "" || to == "" {
		return "", "", "", usage("a custom range needs both --from and --to")
	}
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return "", "", "", usage("--from must look like 2025-01-31")
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return "", "", "", usage("--to must look like 2025-01-31")
	}
	if end.Before(start) {
		return "", "", "", usage("--to is before --from")
	}
	return r, from, to, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}
