package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/franchise-ops/collections/receivables/model"
)

const (
	EscalationSweepWorkflowID = "escalation-sweep"
	DefaultSweepSchedule      = "0 * * * *"
)

// EscalationSweep runs the coordinator once. It is started on a cron schedule with a fixed
// workflow id, so two sweeps never run side by side.
func EscalationSweep(ctx workflow.Context) (*model.EscalationResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting escalation sweep workflow")

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var a *Activities
	var result model.EscalationResult
	err := workflow.ExecuteActivity(activityCtx, a.RunEscalationActivity).Get(ctx, &result)
	if err != nil {
		logger.Error("Escalation sweep failed", "error", err)
		return nil, err
	}

	logger.Info("Escalation sweep completed", "invited", result.InvitedCount)
	return &result, nil
}
