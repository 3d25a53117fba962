package commands

import (
	"context"

	"chatorder/internal/domain/order"
	"chatorder/internal/pkg/config"
	"chatorder/internal/pkg/errs"
)

type CatalogCommands interface {
	List(ctx context.Context) ([]CatalogItem, error)
	Upsert(ctx context.Context, name string, amount int64, currency string) (CatalogItem, error)
}

type catalogUseCaseImpl struct {
	commerce CommerceGateway
	commCfg  config.CommerceConfig
}

func NewCatalogCommands(commerce CommerceGateway, cfg config.Config) CatalogCommands {
	return &catalogUseCaseImpl{commerce: commerce, commCfg: cfg.Commerce}
}

func (u *catalogUseCaseImpl) List(ctx context.Context) ([]CatalogItem, error) {
	callCtx, cancel := context.WithTimeout(ctx, u.commCfg.Timeout)
	defer cancel()
	items, err := u.commerce.ListCatalog(callCtx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCommerceCallFailed)
	}
	return items, nil
}

func (u *catalogUseCaseImpl) Upsert(ctx context.Context, name string, amount int64, currency string) (CatalogItem, error) {
	price, err := order.NewMoney(amount, currency)
	if err != nil {
		return CatalogItem{}, err
	}
	callCtx, cancel := context.WithTimeout(ctx, u.commCfg.Timeout)
	defer cancel()
	item, err := u.commerce.UpsertCatalogItem(callCtx, name, price)
	if err != nil {
		return CatalogItem{}, errs.Mark(err, errs.ErrCommerceCallFailed)
	}
	return item, nil
}
