package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	"github.com/ethereum/go-ethereum/rpc"
)

// BlockTagLatest is the block parameter used for balance lookups.
const BlockTagLatest = "latest"

const (
	methodSyncing    = "eth_syncing"
	methodAccounts   = "eth_accounts"
	methodGetBalance = "eth_getBalance"
)

// SyncingResult is the object returned by eth_syncing while the node is catching up.
// Block numbers are kept as the hex quantities the node sent.
type SyncingResult struct {
	StartingBlock string `json:"startingBlock"`
	CurrentBlock  string `json:"currentBlock"`
	HighestBlock  string `json:"highestBlock"`
}

// MantisClient is a client for the Mantis node JSON-RPC API
type MantisClient struct {
	rpcClient *rpc.Client
}

// RPCURL builds the node endpoint from host and port.
func RPCURL(host string, port int) string {
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port))
}

// DialMantis connects to the node at rpcURL.
func DialMantis(ctx context.Context, rpcURL string) (*MantisClient, error) {
	c, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial mantis node: %w", err)
	}
	return NewMantisClient(c), nil
}

// NewMantisClient wraps an already connected rpc client.
func NewMantisClient(c *rpc.Client) *MantisClient {
	return &MantisClient{rpcClient: c}
}

// Close releases the underlying connection
func (c *MantisClient) Close() {
	c.rpcClient.Close()
}

// Syncing calls eth_syncing. A nil result means the node is not syncing.
func (c *MantisClient) Syncing(ctx context.Context) (*SyncingResult, error) {
	var raw json.RawMessage
	if err := c.rpcClient.CallContext(ctx, &raw, methodSyncing); err != nil {
		return nil, fmt.Errorf("failed to get sync status: %w", err)
	}

	switch string(raw) {
	case "", "null", "false":
		return nil, nil
	}

	var res SyncingResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode sync status: %w", err)
	}
	return &res, nil
}

// Accounts calls eth_accounts
func (c *MantisClient) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := c.rpcClient.CallContext(ctx, &accounts, methodAccounts); err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// GetBalance calls eth_getBalance and returns the hex quantity unparsed
func (c *MantisClient) GetBalance(ctx context.Context, account, blockTag string) (string, error) {
	var balance string
	if err := c.rpcClient.CallContext(ctx, &balance, methodGetBalance, account, blockTag); err != nil {
		return "", fmt.Errorf("failed to get balance of %s: %w", account, err)
	}
	return balance, nil
}
