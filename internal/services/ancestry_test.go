package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utxomerit/merit-api-service/internal/types"
)

// chainedHistoryFake lays out a straight ancestry chain gen0 <- gen1 <- ...
// <- genK where each generation spends the previous one, all same address
// and token. History entries are newest first, the way indexers serve them.
func chainedHistoryFake() *fakeLedgerClient {
	fake := newFakeLedgerClient()
	fake.transactions["gen0"] = types.TransactionRecord{
		Txid: "gen0", TokenID: testTokenId, ValidTokenTx: true,
	}
	fake.transactions["gen1"] = types.TransactionRecord{
		Txid: "gen1", TokenID: testTokenId, ValidTokenTx: true,
		Inputs: []types.Outpoint{{Txid: "gen0", Vout: 1}},
	}
	fake.transactions["gen2"] = types.TransactionRecord{
		Txid: "gen2", TokenID: testTokenId, ValidTokenTx: true,
		Inputs: []types.Outpoint{{Txid: "gen1", Vout: 1}},
	}
	fake.transactions["gen3"] = types.TransactionRecord{
		Txid: "gen3", TokenID: testTokenId, ValidTokenTx: true,
		Inputs: []types.Outpoint{{Txid: "gen2", Vout: 1}},
	}
	fake.histories[testAddress] = []types.HistoryEntry{
		{Txid: "gen3", BlockHeight: 665400},
		{Txid: "gen2", BlockHeight: 665300},
		{Txid: "gen1", BlockHeight: 665200},
		{Txid: "gen0", BlockHeight: 665000},
	}
	return fake
}

func TestOldestAncestorWalksToChainRoot(t *testing.T) {
	fake := chainedHistoryFake()
	s := newTestServices(fake, testMeritConfig())

	oldest, err := s.OldestAncestor(context.Background(), "gen3", testAddress)
	require.Nil(t, err)
	require.NotNil(t, oldest)
	assert.Equal(t, "gen0", oldest.Txid)
	assert.Equal(t, uint64(665000), oldest.BlockHeight)
	// One history lookup per resolved hop; the rootward resolve on gen0
	// bails before fetching history because gen0 has no inputs.
	assert.Equal(t, 3, fake.historyCalls)
}

func TestOldestAncestorNoParentFound(t *testing.T) {
	fake := newFakeLedgerClient()
	fake.transactions["lone"] = types.TransactionRecord{
		Txid: "lone", TokenID: testTokenId, ValidTokenTx: true,
		Inputs: []types.Outpoint{{Txid: "outsider", Vout: 0}},
	}
	fake.histories[testAddress] = []types.HistoryEntry{
		{Txid: "lone", BlockHeight: 665400},
	}
	s := newTestServices(fake, testMeritConfig())

	oldest, err := s.OldestAncestor(context.Background(), "lone", testAddress)
	require.Nil(t, err)
	assert.Nil(t, oldest)
}

// A windowed history hides old ancestors, so the walk stops short of the
// true root and the reported ancestor is younger.
func TestOldestAncestorBoundedHistoryWindow(t *testing.T) {
	unbounded := chainedHistoryFake()
	s := newTestServices(unbounded, testMeritConfig())
	fullDepth, err := s.OldestAncestor(context.Background(), "gen3", testAddress)
	require.Nil(t, err)
	require.NotNil(t, fullDepth)

	windowed := chainedHistoryFake()
	windowed.historyWindow = 2 // only gen3 and gen2 are visible
	s = newTestServices(windowed, testMeritConfig())
	shallowDepth, err := s.OldestAncestor(context.Background(), "gen3", testAddress)
	require.Nil(t, err)
	require.NotNil(t, shallowDepth)

	assert.Equal(t, "gen0", fullDepth.Txid)
	assert.Equal(t, "gen2", shallowDepth.Txid)
	assert.Greater(t, shallowDepth.BlockHeight, fullDepth.BlockHeight)
}

func TestOldestAncestorHonorsMaxHops(t *testing.T) {
	fake := chainedHistoryFake()
	cfg := testMeritConfig()
	cfg.MaxHops = 1
	s := newTestServices(fake, cfg)

	oldest, err := s.OldestAncestor(context.Background(), "gen3", testAddress)
	require.Nil(t, err)
	require.NotNil(t, oldest)
	assert.Equal(t, "gen2", oldest.Txid)
	assert.Equal(t, 1, fake.historyCalls)
}

func TestOldestAncestorCancelledContext(t *testing.T) {
	fake := chainedHistoryFake()
	s := newTestServices(fake, testMeritConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.OldestAncestor(ctx, "gen3", testAddress)
	require.NotNil(t, err)
	assert.Equal(t, types.RequestTimeout, err.ErrorCode)
	assert.Zero(t, fake.historyCalls)
}
