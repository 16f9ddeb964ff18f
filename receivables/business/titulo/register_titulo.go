package titulo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/franchise-ops/collections/receivables/business/fingerprint"
	"github.com/franchise-ops/collections/receivables/model"
	"github.com/franchise-ops/collections/receivables/store/titulos"
)

const dueDateLayout = "2006-01-02"

const (
	fingerprintConstraint    = "titulos_fingerprint_key"
	idempotencyKeyConstraint = "titulos_idempotency_key_key"
)

// RegisterTitulo stores a título under its fingerprint. A título with the same identity is
// rejected by the unique constraint on the fingerprint column.
func (b *business) RegisterTitulo(ctx context.Context, titulo *model.Titulo) (*model.Titulo, error) {
	if !fingerprint.ValidateTaxpayerID(titulo.TaxpayerID) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "cnpj must have 14 digits"}
	}

	fields, err := normalizeOrInvalid(titulo.TaxpayerID, titulo.Amount, titulo.DueDate)
	if err != nil {
		return nil, err
	}

	stage := titulo.Stage
	if stage == "" {
		stage = model.CollectionStageReminder
	}

	dbTitulo, err := b.tituloRepo.CreateTitulo(ctx, titulos.CreateTituloParams{
		UnitID:         titulo.UnitID,
		TaxpayerID:     fields.TaxpayerID,
		Amount:         toNumeric(titulo.Amount.Round(2)),
		DueDate:        pgtype.Date{Time: fields.DueDate, Valid: true},
		Fingerprint:    fields.Hash(),
		Stage:          string(stage),
		IdempotencyKey: titulo.IdempotencyKey,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, uniqueViolationError(e)
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to register título"}
	}

	return convertDBTituloToModel(dbTitulo), nil
}

// uniqueViolationError tells a repeated título apart from a reused idempotency key. The
// key constraint only fires once the cached response has expired.
func uniqueViolationError(e *pgconn.PgError) *errs.Error {
	switch e.ConstraintName {
	case idempotencyKeyConstraint:
		return &errs.Error{Code: errs.AlreadyExists, Message: "idempotency key already used by another título"}
	case fingerprintConstraint:
		return &errs.Error{Code: errs.AlreadyExists, Message: "título is duplicated"}
	default:
		rlog.Warn("unexpected unique violation on títulos", "constraint", e.ConstraintName)
		return &errs.Error{Code: errs.AlreadyExists, Message: "título is duplicated"}
	}
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// convertDBTituloToModel converts a database Titulo to a domain model Titulo
func convertDBTituloToModel(dbTitulo titulos.Titulo) *model.Titulo {
	return &model.Titulo{
		ID:                  dbTitulo.ID,
		UnitID:              dbTitulo.UnitID,
		TaxpayerID:          dbTitulo.TaxpayerID,
		FormattedTaxpayerID: fingerprint.FormatTaxpayerID(dbTitulo.TaxpayerID),
		Amount:              fromNumeric(dbTitulo.Amount),
		DueDate:             dbTitulo.DueDate.Time.Format(dueDateLayout),
		Fingerprint:         dbTitulo.Fingerprint,
		Stage:               model.CollectionStage(dbTitulo.Stage),
		IdempotencyKey:      dbTitulo.IdempotencyKey,
		CreatedAt:           dbTitulo.CreatedAt.Time,
	}
}
