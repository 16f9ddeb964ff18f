package escalation

import (
	"context"
	"time"

	"github.com/franchise-ops/collections/receivables/model"
	"github.com/franchise-ops/collections/receivables/notification"
	"github.com/franchise-ops/collections/receivables/store/cases"
	"github.com/franchise-ops/collections/receivables/store/invitations"
)

// DefaultGracePeriod is how long a case stays in the legal stage before its unit is invited.
const DefaultGracePeriod = 7 * 24 * time.Hour

type Business interface {
	Run(ctx context.Context) (*model.EscalationResult, error)
}

// Config holds the invitation settings of the coordinator
type Config struct {
	GracePeriod    time.Duration
	SchedulingLink string
	SenderAddress  string
	SenderName     string
}

type business struct {
	caseRepo       cases.Querier
	invitationRepo invitations.Querier
	sender         notification.Sender
	config         Config
	now            func() time.Time
	dispatch       func(op string, fn func(ctx context.Context) error)
}

// NewEscalationBusiness creates the coordinator that invites legal-stage cases to a meeting
func NewEscalationBusiness(
	caseRepo cases.Querier,
	invitationRepo invitations.Querier,
	sender notification.Sender,
	config Config,
) Business {
	if config.GracePeriod <= 0 {
		config.GracePeriod = DefaultGracePeriod
	}

	return &business{
		caseRepo:       caseRepo,
		invitationRepo: invitationRepo,
		sender:         sender,
		config:         config,
		now:            time.Now,
		dispatch:       safeAsync,
	}
}
