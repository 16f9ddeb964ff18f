package escalation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/rlog"

	"github.com/franchise-ops/collections/receivables/model"
	"github.com/franchise-ops/collections/receivables/store/invitations"
)

// invite creates the invitation record of a case and queues its email. It reports whether
// a new record was written.
//
// The existence check is repeated here because the caller's check and this insert are not
// atomic. Two overlapping runs can still both pass it; the unique constraint on
// invitations.case_id is what turns the second insert into a no-op.
func (b *business) invite(ctx context.Context, escalationCase *model.EscalationCase) (bool, error) {
	exists, err := b.invitationRepo.InvitationExists(ctx, escalationCase.ID)
	if err != nil {
		return false, fmt.Errorf("recheck invitation: %w", err)
	}
	if exists {
		return false, nil
	}

	_, err = b.invitationRepo.CreateInvitation(ctx, invitations.CreateInvitationParams{
		CaseID:         escalationCase.ID,
		UnitID:         escalationCase.Unit.ID,
		Status:         string(model.InvitationStatusSent),
		SchedulingLink: b.config.SchedulingLink,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			rlog.Info("case already invited by a concurrent run", "case_id", escalationCase.ID)
			return false, nil
		}
		return false, fmt.Errorf("create invitation: %w", err)
	}

	if escalationCase.Unit.Email == "" {
		rlog.Warn("unit has no contact email, invitation not sent", "case_id", escalationCase.ID, "unit_id", escalationCase.Unit.ID)
		return true, nil
	}

	email, err := buildInvitationEmail(escalationCase.Unit, b.config)
	if err != nil {
		rlog.Error("failed to build invitation email", "case_id", escalationCase.ID, "error", err)
		return true, nil
	}

	b.dispatch(fmt.Sprintf("send invitation for case %d", escalationCase.ID), func(ctx context.Context) error {
		return b.sender.Send(ctx, email)
	})

	return true, nil
}
