package etc

import (
	"context"
	"fmt"
	"math/big"

	"github.com/AlexZinkM/etc-wallet/internal/client"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// GetAccountBalance returns the latest balance of accountID in wei
func (a *API) GetAccountBalance(ctx context.Context, accountID string) (*big.Int, error) {
	const op = "GetAccountBalance"
	a.log.Debug(op+" called", zap.String("account", accountID))

	res, err := a.node.GetBalance(ctx, accountID, client.BlockTagLatest)
	if err != nil {
		return nil, a.fail(op, err)
	}
	a.log.Debug(op+" success", zap.String("account", accountID), zap.String("response", res))

	balance, err := hexutil.DecodeBig(res)
	if err != nil {
		return nil, a.fail(op, fmt.Errorf("invalid balance %q: %w", res, err))
	}
	return balance, nil
}
