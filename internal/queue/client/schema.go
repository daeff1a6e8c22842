package client

// MeritRequestMessage asks for the merit score of a single address. Batch
// scoring is done by enqueueing one message per address.
type MeritRequestMessage struct {
	RequestId string `json:"request_id"`
	Address   string `json:"address"`
	TokenId   string `json:"token_id,omitempty"`
}

// MeritResultMessage is the computed score published to the result queue.
type MeritResultMessage struct {
	RequestId  string  `json:"request_id"`
	Address    string  `json:"address"`
	TokenId    string  `json:"token_id,omitempty"`
	Merit      float64 `json:"merit"`
	ComputedAt int64   `json:"computed_at"`
}
