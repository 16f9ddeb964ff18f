package receivables

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type RunEscalationResponse struct {
	Accepted     bool `json:"sucesso"`
	InvitedCount int  `json:"total_convidados"`
}

// RunEscalationFailure is attached to the error returned when the case query fails.
type RunEscalationFailure struct {
	Accepted bool   `json:"sucesso"`
	Message  string `json:"mensagem"`
	Error    string `json:"error"`
}

func (RunEscalationFailure) ErrDetails() {}

// RunEscalation invites eligible legal-stage cases right away, outside the sweep schedule.
//
//encore:api private path=/v1/escalations/run method=POST
func (s *Service) RunEscalation(ctx context.Context) (*RunEscalationResponse, error) {
	result, err := s.escalation.Run(ctx)
	if err != nil {
		rlog.Error("failed to run escalation", "error", err)
		return nil, &errs.Error{
			Code:    errs.Internal,
			Message: "failed to run escalation",
			Details: RunEscalationFailure{
				Accepted: false,
				Message:  "Erro ao buscar escalonamentos jurídicos",
				Error:    err.Error(),
			},
		}
	}

	return &RunEscalationResponse{
		Accepted:     result.Accepted,
		InvitedCount: result.InvitedCount,
	}, nil
}
