package titulo

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/franchise-ops/collections/receivables/mocks/store/titulo_repo"
	"github.com/franchise-ops/collections/receivables/model"
	"github.com/franchise-ops/collections/receivables/store/titulos"
)

func TestRegisterTitulo(t *testing.T) {
	dueDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		input          *model.Titulo
		mockReturn     titulos.Titulo
		mockError      error
		expectRepoCall bool
		expectedError  string
	}{
		{
			name: "happy_case",
			input: &model.Titulo{
				UnitID:         7,
				TaxpayerID:     "12.345.678/0001-99",
				Amount:         decimal.NewFromFloat(1500.005),
				DueDate:        "05/01/2024",
				IdempotencyKey: "import-1",
			},
			mockReturn: titulos.Titulo{
				ID:             1,
				UnitID:         7,
				TaxpayerID:     "12345678000199",
				Amount:         pgtype.Numeric{Int: decimal.RequireFromString("1500.01").Coefficient(), Exp: -2, Valid: true},
				DueDate:        pgtype.Date{Time: dueDate, Valid: true},
				Fingerprint:    centroFingerprint,
				Stage:          "reminder",
				IdempotencyKey: "import-1",
			},
			expectRepoCall: true,
		},
		{
			name: "duplicate_fingerprint",
			input: &model.Titulo{
				UnitID:         7,
				TaxpayerID:     "12345678000199",
				Amount:         decimal.RequireFromString("1500.01"),
				DueDate:        "2024-01-05",
				IdempotencyKey: "import-2",
			},
			mockError:      &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "titulos_fingerprint_key"},
			expectRepoCall: true,
			expectedError:  "título is duplicated",
		},
		{
			name: "reused_idempotency_key",
			input: &model.Titulo{
				UnitID:         7,
				TaxpayerID:     "12345678000199",
				Amount:         decimal.RequireFromString("1500.01"),
				DueDate:        "2024-01-05",
				IdempotencyKey: "import-1",
			},
			mockError:      &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "titulos_idempotency_key_key"},
			expectRepoCall: true,
			expectedError:  "idempotency key already used by another título",
		},
		{
			name: "general_error",
			input: &model.Titulo{
				UnitID:         7,
				TaxpayerID:     "12345678000199",
				Amount:         decimal.RequireFromString("1500.01"),
				DueDate:        "2024-01-05",
				IdempotencyKey: "import-3",
			},
			mockError:      assert.AnError,
			expectRepoCall: true,
			expectedError:  "failed to register título",
		},
		{
			name: "short_taxpayer_id",
			input: &model.Titulo{
				TaxpayerID: "1234567800019",
				Amount:     decimal.RequireFromString("10"),
				DueDate:    "2024-01-05",
			},
			expectedError: "cnpj must have 14 digits",
		},
		{
			name: "invalid_due_date",
			input: &model.Titulo{
				TaxpayerID: "12345678000199",
				Amount:     decimal.RequireFromString("10"),
				DueDate:    "31/31/2024",
			},
			expectedError: "invalid date format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := titulo_repo.NewMockQuerier(ctrl)
			business := &business{tituloRepo: mockRepo}

			if tc.expectRepoCall {
				mockRepo.EXPECT().
					CreateTitulo(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg titulos.CreateTituloParams) (titulos.Titulo, error) {
						assert.Equal(t, "12345678000199", arg.TaxpayerID)
						assert.Equal(t, centroFingerprint, arg.Fingerprint)
						assert.Equal(t, dueDate, arg.DueDate.Time)
						assert.Equal(t, "reminder", arg.Stage)
						assert.Equal(t, tc.input.IdempotencyKey, arg.IdempotencyKey)
						assert.Equal(t, int32(-2), arg.Amount.Exp)
						assert.Equal(t, int64(150001), arg.Amount.Int.Int64())
						return tc.mockReturn, tc.mockError
					})
			}

			result, err := business.RegisterTitulo(context.Background(), tc.input)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(1), result.ID)
			assert.Equal(t, "12.345.678/0001-99", result.FormattedTaxpayerID)
			assert.Equal(t, "2024-01-05", result.DueDate)
			assert.Equal(t, "1500.01", result.Amount.StringFixed(2))
			assert.Equal(t, model.CollectionStageReminder, result.Stage)
		})
	}
}
