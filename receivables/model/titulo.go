package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Titulo struct {
	ID                  int64           `json:"id"`
	UnitID              int64           `json:"unidade_id"`
	TaxpayerID          string          `json:"cnpj"`
	FormattedTaxpayerID string          `json:"cnpj_formatado"`
	Amount              decimal.Decimal `json:"valor"`
	DueDate             string          `json:"vencimento"`
	Fingerprint         string          `json:"hash"`
	Stage               CollectionStage `json:"etapa"`
	IdempotencyKey      string          `json:"idempotency_key"`
	CreatedAt           time.Time       `json:"created_at"`
}

// CollectionStage is the workflow stage a título is in.
type CollectionStage string

const (
	CollectionStageReminder CollectionStage = "reminder"
	CollectionStageNotice   CollectionStage = "notice"
	CollectionStageLegal    CollectionStage = "legal"
)

type FingerprintCheck struct {
	Fingerprint string `json:"hash"`
	Duplicate   bool   `json:"duplicado"`
}
