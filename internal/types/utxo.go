package types

import (
	"errors"
	"fmt"
)

// Outpoint identifies a single transaction output.
type Outpoint struct {
	Txid string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// TokenHolding is the token side of a UTXO. A UTXO either carries a full
// TokenHolding (token UTXO) or none at all (native UTXO), never a partially
// populated one.
type TokenHolding struct {
	TokenID  string  `json:"token_id"`
	Quantity float64 `json:"quantity"`
}

// Utxo is an unspent output attributed to an address. BlockHeight of 0 means
// the output is still unconfirmed.
type Utxo struct {
	Txid        string        `json:"txid"`
	Vout        uint32        `json:"vout"`
	BlockHeight uint64        `json:"block_height"`
	NativeValue int64         `json:"native_value"`
	Token       *TokenHolding `json:"token,omitempty"`
}

// IsToken reports whether the UTXO is a token UTXO.
func (u *Utxo) IsToken() bool {
	return u.Token != nil
}

// Validate checks that the UTXO is a well-formed native or token variant.
func (u *Utxo) Validate() error {
	if u.Txid == "" {
		return errors.New("utxo is missing txid")
	}
	if u.NativeValue < 0 {
		return fmt.Errorf("utxo %s:%d has negative native value", u.Txid, u.Vout)
	}
	if u.Token != nil {
		if u.Token.TokenID == "" {
			return fmt.Errorf("token utxo %s:%d is missing token id", u.Txid, u.Vout)
		}
		if u.Token.Quantity < 0 {
			return fmt.Errorf("token utxo %s:%d has negative quantity", u.Txid, u.Vout)
		}
	}
	return nil
}
