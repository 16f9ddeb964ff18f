package receivables

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type CheckFingerprintRequest struct {
	TaxpayerID string  `json:"cnpj" validate:"required,max=32"`
	Amount     float64 `json:"valor"`
	DueDate    string  `json:"vencimento" validate:"required,max=64"`
}

type CheckFingerprintResponse struct {
	Fingerprint string `json:"hash"`
	Duplicate   bool   `json:"duplicado"`
}

// CheckFingerprint computes the identity of a título and reports whether it is already registered.
//
//encore:api public path=/v1/titulos/fingerprint method=POST
func (s *Service) CheckFingerprint(ctx context.Context, req *CheckFingerprintRequest) (*CheckFingerprintResponse, error) {
	result, err := s.titulos.CheckFingerprint(ctx, req.TaxpayerID, decimal.NewFromFloat(req.Amount), req.DueDate)
	if err != nil {
		rlog.Error("failed to check fingerprint", "error", err)
		return nil, err
	}

	return &CheckFingerprintResponse{
		Fingerprint: result.Fingerprint,
		Duplicate:   result.Duplicate,
	}, nil
}

// Validate implements validation for CheckFingerprintRequest
func (r *CheckFingerprintRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
