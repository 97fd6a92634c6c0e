package etc

import (
	"context"

	"github.com/AlexZinkM/etc-wallet/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GetAccounts lists node accounts with their balances, in node order.
// Balances are fetched concurrently; one failed lookup fails the whole call.
func (a *API) GetAccounts(ctx context.Context) ([]model.Account, error) {
	const op = "GetAccounts"
	a.log.Debug(op + " called")

	ids, err := a.node.Accounts(ctx)
	if err != nil {
		return nil, a.fail(op, err)
	}
	a.log.Debug(op+" success", zap.Strings("response", ids))

	accounts := make([]model.Account, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			balance, err := a.GetAccountBalance(gctx, id)
			if err != nil {
				return err
			}
			accounts[i] = model.Account{ID: id, Balance: balance}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, a.fail(op, err)
	}
	return accounts, nil
}
