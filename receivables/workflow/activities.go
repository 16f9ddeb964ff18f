package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/franchise-ops/collections/receivables/business/escalation"
	"github.com/franchise-ops/collections/receivables/model"
)

// Activities holds the dependencies of the escalation activities
type Activities struct {
	Escalation escalation.Business
}

// RunEscalationActivity runs one coordinator pass
func (a *Activities) RunEscalationActivity(ctx context.Context) (*model.EscalationResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing escalation activity")

	if a == nil || a.Escalation == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewNonRetryableApplicationError("activity dependencies not initialized", "DependencyError", nil)
	}

	result, err := a.Escalation.Run(ctx)
	if err != nil {
		logger.Error("Failed to run escalation", "error", err)
		return nil, err
	}

	logger.Info("Successfully ran escalation", "invited", result.InvitedCount)
	return result, nil
}
