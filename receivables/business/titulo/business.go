package titulo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/franchise-ops/collections/receivables/model"
	"github.com/franchise-ops/collections/receivables/store/titulos"
)

type Business interface {
	CheckFingerprint(ctx context.Context, taxpayerID string, amount decimal.Decimal, dueDate string) (*model.FingerprintCheck, error)
	RegisterTitulo(ctx context.Context, titulo *model.Titulo) (*model.Titulo, error)
}

type business struct {
	tituloRepo titulos.Querier
}

// NewTituloBusiness creates the business layer for título identity and registration
func NewTituloBusiness(tituloRepo titulos.Querier) Business {
	return &business{
		tituloRepo: tituloRepo,
	}
}
