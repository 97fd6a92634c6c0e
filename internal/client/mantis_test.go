package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEth serves the eth_ namespace of a Mantis node in-process
type fakeEth struct {
	syncing  any
	accounts []string
	balances map[string]string
	err      error

	mu    sync.Mutex
	calls [][2]string
}

func (f *fakeEth) Syncing() (any, error) {
	return f.syncing, f.err
}

func (f *fakeEth) Accounts() ([]string, error) {
	return f.accounts, f.err
}

func (f *fakeEth) GetBalance(account, blockTag string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, [2]string{account, blockTag})
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.balances[account], nil
}

func newTestMantis(t *testing.T, svc *fakeEth) *MantisClient {
	t.Helper()
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", svc))
	c := NewMantisClient(rpc.DialInProc(server))
	t.Cleanup(func() {
		c.Close()
		server.Stop()
	})
	return c
}

func TestSyncing_NotSyncing(t *testing.T) {
	for name, v := range map[string]any{"false": false, "null": nil} {
		t.Run(name, func(t *testing.T) {
			c := newTestMantis(t, &fakeEth{syncing: v})

			res, err := c.Syncing(context.Background())
			require.NoError(t, err)
			assert.Nil(t, res)
		})
	}
}

func TestSyncing_InProgress(t *testing.T) {
	c := newTestMantis(t, &fakeEth{syncing: map[string]string{
		"startingBlock": "0x0",
		"currentBlock":  "0x10",
		"highestBlock":  "0x20",
	}})

	res, err := c.Syncing(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, SyncingResult{StartingBlock: "0x0", CurrentBlock: "0x10", HighestBlock: "0x20"}, *res)
}

func TestSyncing_UnexpectedShape(t *testing.T) {
	c := newTestMantis(t, &fakeEth{syncing: []int{1, 2}})

	_, err := c.Syncing(context.Background())
	assert.ErrorContains(t, err, "failed to decode sync status")
}

func TestAccounts(t *testing.T) {
	c := newTestMantis(t, &fakeEth{accounts: []string{"0xa", "0xb"}})

	accounts, err := c.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0xa", "0xb"}, accounts)
}

func TestGetBalance_SendsLatestTag(t *testing.T) {
	svc := &fakeEth{balances: map[string]string{"0xa": "0xff"}}
	c := newTestMantis(t, svc)

	balance, err := c.GetBalance(context.Background(), "0xa", BlockTagLatest)
	require.NoError(t, err)
	assert.Equal(t, "0xff", balance)
	assert.Equal(t, [][2]string{{"0xa", "latest"}}, svc.calls)
}

func TestCalls_PropagateNodeError(t *testing.T) {
	c := newTestMantis(t, &fakeEth{err: errors.New("node unavailable")})
	ctx := context.Background()

	_, err := c.Syncing(ctx)
	assert.ErrorContains(t, err, "node unavailable")

	_, err = c.Accounts(ctx)
	assert.ErrorContains(t, err, "node unavailable")

	_, err = c.GetBalance(ctx, "0xa", BlockTagLatest)
	assert.ErrorContains(t, err, "node unavailable")
}

func TestRPCURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8546", RPCURL("localhost", 8546))
	assert.Equal(t, "http://[::1]:8546", RPCURL("::1", 8546))
}
