package receivables

import (
	"time"

	"encore.dev/config"

	"github.com/franchise-ops/collections/receivables/business/escalation"
)

type Config struct {
	// GracePeriodDays is how long a case waits in the legal stage before its unit is invited.
	GracePeriodDays int
	SchedulingLink  string
	SenderAddress   string
	SenderName      string

	TemporalHost      string
	TemporalNamespace string
	// SweepSchedule is the cron expression of the escalation sweep workflow.
	SweepSchedule string
}

var cfg = config.Load[*Config]()

var secrets struct {
	ResendAPIKey string
}

func escalationConfig(c *Config) escalation.Config {
	return escalation.Config{
		GracePeriod:    time.Duration(c.GracePeriodDays) * 24 * time.Hour,
		SchedulingLink: c.SchedulingLink,
		SenderAddress:  c.SenderAddress,
		SenderName:     c.SenderName,
	}
}
