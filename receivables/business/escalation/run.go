package escalation

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/franchise-ops/collections/receivables/model"
	"github.com/franchise-ops/collections/receivables/store/cases"
)

// Run invites every legal-stage case older than the grace period that has no invitation yet.
// Cases are processed one after another; a failure on one case never stops the others.
// Only a failure to list the cases aborts the run.
func (b *business) Run(ctx context.Context) (*model.EscalationResult, error) {
	cutoff := b.now().Add(-b.config.GracePeriod)

	rows, err := b.caseRepo.ListCasesByStageBefore(ctx, cases.ListCasesByStageBeforeParams{
		Stage:     string(model.CollectionStageLegal),
		CreatedAt: pgtype.Timestamptz{Time: cutoff, Valid: true},
	})
	if err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "failed to list legal-stage cases")
	}

	invited := 0
	for _, row := range rows {
		escalationCase := convertDBCaseToModel(row)

		if escalationCase.Unit == nil {
			rlog.Debug("skipping case without unit", "case_id", escalationCase.ID)
			continue
		}

		exists, err := b.invitationRepo.InvitationExists(ctx, escalationCase.ID)
		if err != nil {
			rlog.Error("failed to check invitation", "case_id", escalationCase.ID, "error", err)
			continue
		}
		if exists {
			continue
		}

		created, err := b.invite(ctx, escalationCase)
		if err != nil {
			rlog.Error("failed to invite case", "case_id", escalationCase.ID, "error", err)
			continue
		}
		if created {
			invited++
		}
	}

	rlog.Info("escalation run finished", "cases", len(rows), "invited", invited)

	return &model.EscalationResult{
		Accepted:     true,
		InvitedCount: invited,
	}, nil
}

// convertDBCaseToModel converts a joined case row to a domain EscalationCase
func convertDBCaseToModel(row cases.ListCasesByStageBeforeRow) *model.EscalationCase {
	escalationCase := &model.EscalationCase{
		ID:        row.ID,
		CreatedAt: row.CreatedAt.Time,
	}

	if row.UnitID.Valid {
		escalationCase.Unit = &model.Unit{
			ID:    row.UnitID.Int64,
			Name:  row.UnitName.String,
			Email: row.UnitEmail.String,
			Phone: row.UnitPhone.String,
		}
	}

	return escalationCase
}
