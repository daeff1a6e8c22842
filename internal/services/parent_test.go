package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utxomerit/merit-api-service/internal/types"
)

func TestResolveParentNoCandidateMatches(t *testing.T) {
	fake := newFakeLedgerClient()
	fake.transactions["child"] = types.TransactionRecord{
		Txid:         "child",
		TokenID:      testTokenId,
		ValidTokenTx: true,
		Inputs:       []types.Outpoint{{Txid: "stranger", Vout: 0}},
	}
	// The address never touched "stranger", so the history has no entry
	// for it.
	fake.histories[testAddress] = []types.HistoryEntry{
		{Txid: "unrelated", BlockHeight: 660000},
	}
	s := newTestServices(fake, testMeritConfig())

	parent, err := s.ResolveParent(context.Background(), "child", testAddress)
	require.Nil(t, err)
	assert.Nil(t, parent)
}

func TestResolveParentFindsSameAddressSameTokenInput(t *testing.T) {
	fake := newFakeLedgerClient()
	fake.transactions["child"] = types.TransactionRecord{
		Txid:         "child",
		TokenID:      testTokenId,
		ValidTokenTx: true,
		Inputs:       []types.Outpoint{{Txid: "parent", Vout: 2}},
	}
	fake.transactions["parent"] = types.TransactionRecord{
		Txid:         "parent",
		TokenID:      testTokenId,
		ValidTokenTx: true,
	}
	fake.histories[testAddress] = []types.HistoryEntry{
		{Txid: "parent", BlockHeight: 660123},
	}
	s := newTestServices(fake, testMeritConfig())

	parent, err := s.ResolveParent(context.Background(), "child", testAddress)
	require.Nil(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, "parent", parent.Txid)
	assert.Equal(t, uint32(2), parent.Vout)
	assert.Equal(t, uint64(660123), parent.BlockHeight)
}

func TestResolveParentSkipsWrongTokenAndInvalidTokenTx(t *testing.T) {
	fake := newFakeLedgerClient()
	fake.transactions["child"] = types.TransactionRecord{
		Txid:         "child",
		TokenID:      testTokenId,
		ValidTokenTx: true,
		Inputs: []types.Outpoint{
			{Txid: "wrongtoken", Vout: 0},
			{Txid: "invalidtx", Vout: 1},
		},
	}
	fake.transactions["wrongtoken"] = types.TransactionRecord{
		Txid: "wrongtoken", TokenID: "someothertoken", ValidTokenTx: true,
	}
	fake.transactions["invalidtx"] = types.TransactionRecord{
		Txid: "invalidtx", TokenID: testTokenId, ValidTokenTx: false,
	}
	fake.histories[testAddress] = []types.HistoryEntry{
		{Txid: "wrongtoken", BlockHeight: 660001},
		{Txid: "invalidtx", BlockHeight: 660002},
	}
	s := newTestServices(fake, testMeritConfig())

	parent, err := s.ResolveParent(context.Background(), "child", testAddress)
	require.Nil(t, err)
	assert.Nil(t, parent)
}

// When several inputs qualify, the last valid match in input order wins.
func TestResolveParentLastValidMatchWins(t *testing.T) {
	fake := newFakeLedgerClient()
	fake.transactions["child"] = types.TransactionRecord{
		Txid:         "child",
		TokenID:      testTokenId,
		ValidTokenTx: true,
		Inputs: []types.Outpoint{
			{Txid: "first", Vout: 0},
			{Txid: "second", Vout: 3},
		},
	}
	fake.transactions["first"] = types.TransactionRecord{
		Txid: "first", TokenID: testTokenId, ValidTokenTx: true,
	}
	fake.transactions["second"] = types.TransactionRecord{
		Txid: "second", TokenID: testTokenId, ValidTokenTx: true,
	}
	fake.histories[testAddress] = []types.HistoryEntry{
		{Txid: "first", BlockHeight: 650000},
		{Txid: "second", BlockHeight: 660000},
	}
	s := newTestServices(fake, testMeritConfig())

	parent, err := s.ResolveParent(context.Background(), "child", testAddress)
	require.Nil(t, err)
	require.NotNil(t, parent)
	// "first" is older, but the tie-break is input order, not block height.
	assert.Equal(t, "second", parent.Txid)
	assert.Equal(t, uint32(3), parent.Vout)
	assert.Equal(t, uint64(660000), parent.BlockHeight)
}

func TestResolveParentUnknownTransaction(t *testing.T) {
	fake := newFakeLedgerClient()
	s := newTestServices(fake, testMeritConfig())

	parent, err := s.ResolveParent(context.Background(), "ghost", testAddress)
	require.Nil(t, err)
	assert.Nil(t, parent)
}
