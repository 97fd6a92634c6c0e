// Package etc is the API layer that handles all requests to the Mantis
// client used as the backend for the Ethereum Classic blockchain.
package etc

import (
	"context"
	"errors"

	"github.com/AlexZinkM/etc-wallet/internal/client"

	"go.uber.org/zap"
)

// ErrGenericAPI is the only error returned by API methods.
// The underlying cause is logged and dropped.
var ErrGenericAPI = errors.New("generic api error")

// Node is the subset of the Mantis JSON-RPC surface the API consumes.
// *client.MantisClient implements it.
type Node interface {
	Syncing(ctx context.Context) (*client.SyncingResult, error)
	Accounts(ctx context.Context) ([]string, error)
	GetBalance(ctx context.Context, account, blockTag string) (string, error)
}

// API translates Mantis responses into wallet response shapes
type API struct {
	node Node
	log  *zap.Logger
}

// NewAPI creates an API over node. A nil logger disables logging.
func NewAPI(node Node, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		node: node,
		log:  log.Named("etc"),
	}
}

// fail logs the cause of a failed call and replaces it with ErrGenericAPI
func (a *API) fail(op string, err error) error {
	a.log.Error(op+" error", zap.Error(err))
	return ErrGenericAPI
}
