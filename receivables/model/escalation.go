package model

import (
	"time"
)

// EscalationCase is a título that reached the legal collection stage.
type EscalationCase struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Unit      *Unit     `json:"unidade,omitempty"`
}

// Unit is the franchise unit contact attached to a case.
type Unit struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email_franqueado,omitempty"`
	Phone string `json:"telefone,omitempty"`
}

type InvitationStatus string

const (
	InvitationStatusSent InvitationStatus = "invite_sent"
)

type Invitation struct {
	ID             int64            `json:"id"`
	CaseID         int64            `json:"escalonamento_id"`
	UnitID         int64            `json:"unidade_id"`
	Status         InvitationStatus `json:"status"`
	SchedulingLink string           `json:"link_agendamento"`
	CreatedAt      time.Time        `json:"created_at"`
}

// EscalationResult is reported by each coordinator run.
type EscalationResult struct {
	Accepted     bool `json:"sucesso"`
	InvitedCount int  `json:"total_convidados"`
}
