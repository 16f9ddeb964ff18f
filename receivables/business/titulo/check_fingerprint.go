package titulo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"github.com/franchise-ops/collections/receivables/business/fingerprint"
	"github.com/franchise-ops/collections/receivables/model"
)

// CheckFingerprint computes the fingerprint of a título and reports whether one with the same
// identity is already registered
func (b *business) CheckFingerprint(ctx context.Context, taxpayerID string, amount decimal.Decimal, dueDate string) (*model.FingerprintCheck, error) {
	fields, err := normalizeOrInvalid(taxpayerID, amount, dueDate)
	if err != nil {
		return nil, err
	}
	hash := fields.Hash()

	exists, err := b.tituloRepo.TituloExistsByFingerprint(ctx, hash)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to check título fingerprint"}
	}

	return &model.FingerprintCheck{
		Fingerprint: hash,
		Duplicate:   exists,
	}, nil
}

func normalizeOrInvalid(taxpayerID string, amount decimal.Decimal, dueDate string) (fingerprint.Fields, error) {
	fields, err := fingerprint.Normalize(taxpayerID, amount, dueDate)
	if err != nil {
		if errors.Is(err, fingerprint.ErrInvalidDateFormat) {
			return fingerprint.Fields{}, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
		}
		return fingerprint.Fields{}, &errs.Error{Code: errs.Internal, Message: "failed to compute fingerprint"}
	}
	return fields, nil
}
