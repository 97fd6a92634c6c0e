package etc

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/etc-wallet/internal/model"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// syncedDifficulty is reported for both heights when the node is not syncing
const syncedDifficulty = 100

// GetSyncProgress reports the node's local and network block heights
func (a *API) GetSyncProgress(ctx context.Context) (*model.SyncProgress, error) {
	const op = "GetSyncProgress"
	a.log.Debug(op + " called")

	res, err := a.node.Syncing(ctx)
	if err != nil {
		return nil, a.fail(op, err)
	}
	a.log.Debug(op+" success", zap.Any("response", res))

	if res == nil {
		return &model.SyncProgress{
			LocalDifficulty:   syncedDifficulty,
			NetworkDifficulty: syncedDifficulty,
		}, nil
	}

	local, err := hexutil.DecodeUint64(res.CurrentBlock)
	if err != nil {
		return nil, a.fail(op, fmt.Errorf("invalid currentBlock %q: %w", res.CurrentBlock, err))
	}
	network, err := hexutil.DecodeUint64(res.HighestBlock)
	if err != nil {
		return nil, a.fail(op, fmt.Errorf("invalid highestBlock %q: %w", res.HighestBlock, err))
	}

	return &model.SyncProgress{
		LocalDifficulty:   local,
		NetworkDifficulty: network,
	}, nil
}
