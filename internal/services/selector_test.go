package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utxomerit/merit-api-service/internal/clients/ledger"
	"github.com/utxomerit/merit-api-service/internal/types"
)

const (
	testAddress = "merit:qtestaddress0123456789"
	testTokenId = "4de69e374a8ed21cbddd47f2338cc0f479dc58daa2bbe11cd604ca488eca0ddf"
)

func tokenUtxo(txid string, height uint64, quantity float64) types.Utxo {
	return types.Utxo{
		Txid:        txid,
		Vout:        1,
		BlockHeight: height,
		NativeValue: 546,
		Token:       &types.TokenHolding{TokenID: testTokenId, Quantity: quantity},
	}
}

func TestSelectUtxosFiltersByExactTokenId(t *testing.T) {
	fake := newFakeLedgerClient()
	wanted := tokenUtxo("aa01", 665000, 100)
	other := types.Utxo{
		Txid: "bb02", Vout: 0, BlockHeight: 665001, NativeValue: 546,
		Token: &types.TokenHolding{TokenID: "someothertoken", Quantity: 7},
	}
	fake.utxoSets[testAddress] = &ledger.AddressUtxos{
		NativeUtxos: []types.Utxo{{Txid: "cc03", BlockHeight: 664000, NativeValue: 10_000_000}},
		TokenUtxos: map[string][]types.Utxo{
			testTokenId:      {wanted},
			"someothertoken": {other},
		},
	}
	s := newTestServices(fake, testMeritConfig())

	selected, err := s.SelectUtxos(context.Background(), testAddress, testTokenId)
	require.Nil(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, wanted, selected[0])
}

func TestSelectUtxosNativeModeReturnsNativeOnly(t *testing.T) {
	fake := newFakeLedgerClient()
	native := types.Utxo{Txid: "cc03", BlockHeight: 664000, NativeValue: 10_000_000}
	fake.utxoSets[testAddress] = &ledger.AddressUtxos{
		NativeUtxos: []types.Utxo{native},
		TokenUtxos: map[string][]types.Utxo{
			testTokenId: {tokenUtxo("aa01", 665000, 100)},
		},
	}
	s := newTestServices(fake, testMeritConfig())

	selected, err := s.SelectUtxos(context.Background(), testAddress, "")
	require.Nil(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, native, selected[0])
	assert.False(t, selected[0].IsToken())
}

func TestSelectUtxosUnknownTokenReturnsEmpty(t *testing.T) {
	fake := newFakeLedgerClient()
	fake.utxoSets[testAddress] = &ledger.AddressUtxos{
		TokenUtxos: map[string][]types.Utxo{
			testTokenId: {tokenUtxo("aa01", 665000, 100)},
		},
	}
	s := newTestServices(fake, testMeritConfig())

	selected, err := s.SelectUtxos(context.Background(), testAddress, "nosuchtoken")
	require.Nil(t, err)
	assert.Empty(t, selected)
}

func TestSelectUtxosMalformedAddress(t *testing.T) {
	fake := newFakeLedgerClient()
	s := newTestServices(fake, testMeritConfig())

	_, err := s.SelectUtxos(context.Background(), "malformed", testTokenId)
	require.NotNil(t, err)
	assert.Equal(t, types.AddressFormatError, err.ErrorCode)
}

func TestSelectUtxosPropagatesDataSourceError(t *testing.T) {
	fake := newFakeLedgerClient()
	fake.utxosErr = types.NewErrorWithMsg(
		http.StatusInternalServerError, types.DataSourceError, "indexer down",
	)
	s := newTestServices(fake, testMeritConfig())

	_, err := s.SelectUtxos(context.Background(), testAddress, testTokenId)
	require.NotNil(t, err)
	assert.Equal(t, types.DataSourceError, err.ErrorCode)
	assert.Equal(t, "indexer down", err.Err.Error())
}
