package receivables

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"github.com/franchise-ops/collections/receivables/business/escalation"
	"github.com/franchise-ops/collections/receivables/business/titulo"
	"github.com/franchise-ops/collections/receivables/notification"
	"github.com/franchise-ops/collections/receivables/store"
	"github.com/franchise-ops/collections/receivables/workflow"
)

const taskQueue = "receivables"

var receivablesDB = sqldb.NewDatabase("receivables", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	escalation escalation.Business
	titulos    titulo.Business
	temporal   client.Client
	worker     worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(receivablesDB)

	rlog.Info("Initializing Store")
	repo := store.NewStore(pgxdb)

	sender := notification.NewResendSender(secrets.ResendAPIKey)
	escalationBusiness := escalation.NewEscalationBusiness(repo.Cases, repo.Invitations, sender, escalationConfig(cfg))

	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.EscalationSweep)
	w.RegisterActivity(&workflow.Activities{Escalation: escalationBusiness})
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	s := &Service{
		escalation: escalationBusiness,
		titulos:    titulo.NewTituloBusiness(repo.Titulos),
		temporal:   temporalClient,
		worker:     w,
	}

	if err := s.scheduleEscalationSweep(context.Background()); err != nil {
		// The manual trigger still works without the schedule.
		rlog.Error("failed to schedule escalation sweep", "workflow_id", workflow.EscalationSweepWorkflowID, "error", err)
	}

	return s, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}

// scheduleEscalationSweep starts the cron workflow that triggers the coordinator
func (s *Service) scheduleEscalationSweep(ctx context.Context) error {
	schedule := cfg.SweepSchedule
	if schedule == "" {
		schedule = workflow.DefaultSweepSchedule
	}

	options := client.StartWorkflowOptions{
		ID:           workflow.EscalationSweepWorkflowID,
		TaskQueue:    taskQueue,
		CronSchedule: schedule,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.EscalationSweep)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("escalation sweep already scheduled", "workflow_id", workflow.EscalationSweepWorkflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflow.EscalationSweepWorkflowID, err)
	}

	rlog.Info("escalation sweep scheduled", "workflow_id", workflow.EscalationSweepWorkflowID, "schedule", schedule)
	return nil
}
