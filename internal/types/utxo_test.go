package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtxoValidate(t *testing.T) {
	native := Utxo{Txid: "aa01", Vout: 0, BlockHeight: 665000, NativeValue: 546}
	assert.NoError(t, native.Validate())
	assert.False(t, native.IsToken())

	token := Utxo{
		Txid: "bb02", Vout: 1, BlockHeight: 665000, NativeValue: 546,
		Token: &TokenHolding{TokenID: "sometoken", Quantity: 100},
	}
	assert.NoError(t, token.Validate())
	assert.True(t, token.IsToken())
}

func TestUtxoValidateRejectsMalformed(t *testing.T) {
	missingTxid := Utxo{BlockHeight: 665000}
	assert.Error(t, missingTxid.Validate())

	// A token holding without a token id is neither a native nor a token
	// variant.
	halfToken := Utxo{
		Txid: "aa01", BlockHeight: 665000,
		Token: &TokenHolding{Quantity: 5},
	}
	assert.Error(t, halfToken.Validate())

	negativeQuantity := Utxo{
		Txid: "aa01", BlockHeight: 665000,
		Token: &TokenHolding{TokenID: "sometoken", Quantity: -1},
	}
	assert.Error(t, negativeQuantity.Validate())

	negativeValue := Utxo{Txid: "aa01", NativeValue: -5}
	assert.Error(t, negativeValue.Validate())
}
