package receivables

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/franchise-ops/collections/receivables/business/fingerprint"
	"github.com/franchise-ops/collections/receivables/model"
)

type RegisterTituloRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	UnitID     int64   `json:"unidade_id" validate:"required,min=1"`
	TaxpayerID string  `json:"cnpj" validate:"required,max=32"`
	Amount     float64 `json:"valor" validate:"gt=0"`
	DueDate    string  `json:"vencimento" validate:"required,max=64"`
}

type TituloView struct {
	ID                  int64     `json:"id"`
	UnitID              int64     `json:"unidade_id"`
	TaxpayerID          string    `json:"cnpj"`
	FormattedTaxpayerID string    `json:"cnpj_formatado"`
	Amount              string    `json:"valor"`
	DueDate             string    `json:"vencimento"`
	Fingerprint         string    `json:"hash"`
	Stage               string    `json:"etapa"`
	CreatedAt           time.Time `json:"created_at"`
}

type TituloResponse struct {
	Titulo TituloView `json:"titulo"`
}

// RegisterTitulo stores a título, rejecting it when its fingerprint is already registered.
//
//encore:api public path=/v1/titulos method=POST tag:idempotency
func (s *Service) RegisterTitulo(ctx context.Context, req *RegisterTituloRequest) (*TituloResponse, error) {
	result, err := s.titulos.RegisterTitulo(ctx, &model.Titulo{
		UnitID:         req.UnitID,
		TaxpayerID:     req.TaxpayerID,
		Amount:         decimal.NewFromFloat(req.Amount),
		DueDate:        req.DueDate,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to register título", "error", err, "unit_id", req.UnitID)
		return nil, err
	}

	return &TituloResponse{
		Titulo: TituloView{
			ID:                  result.ID,
			UnitID:              result.UnitID,
			TaxpayerID:          result.TaxpayerID,
			FormattedTaxpayerID: result.FormattedTaxpayerID,
			Amount:              result.Amount.StringFixed(2),
			DueDate:             result.DueDate,
			Fingerprint:         result.Fingerprint,
			Stage:               string(result.Stage),
			CreatedAt:           result.CreatedAt,
		},
	}, nil
}

// IdempotencyIdentity keys retries by the título they register, so a retry that spells the
// same CNPJ, amount or due date differently replays the stored response.
func (r *RegisterTituloRequest) IdempotencyIdentity() (string, error) {
	fields, err := fingerprint.Normalize(r.TaxpayerID, decimal.NewFromFloat(r.Amount), r.DueDate)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(r.UnitID, 10) + "|" + fields.Canonical(), nil
}

// Validate implements validation for RegisterTituloRequest
func (r *RegisterTituloRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
