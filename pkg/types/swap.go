package types

import "encoding/json"

// Asset identifies an asset by its chain and the HTLC contract that holds it
type Asset struct {
	Chain             string `json:"chain"`
	AtomicSwapAddress string `json:"atomic_swap_address"`
}

// AdditionalData carries order metadata supplied by the caller
type AdditionalData struct {
	StrategyID string `json:"strategy_id"`
	BtcAddress string `json:"btc_address,omitempty"` // Required when either leg is Bitcoin
}

// SwapParams describes what the user wants to swap
type SwapParams struct {
	FromAsset                   Asset          `json:"from_asset"`
	ToAsset                     Asset          `json:"to_asset"`
	SendAmount                  string         `json:"send_amount"`    // Includes fees and slippage
	ReceiveAmount               string         `json:"receive_amount"` // Net amount delivered
	MinDestinationConfirmations uint64         `json:"min_destination_confirmations,omitempty"`
	AdditionalData              AdditionalData `json:"additional_data"`
}

// SwapProps extends SwapParams with the caller's addressing material
type SwapProps struct {
	SwapParams

	BtcPublicKey        string `json:"btc_public_key,omitempty"`
	BtcRecipientAddress string `json:"btc_recipient_address,omitempty"`
	EVMAddress          string `json:"evm_address,omitempty"`
}

// OrderRequest is the order creation payload sent to the quote service
type OrderRequest struct {
	SourceChain                 string              `json:"source_chain"`
	DestinationChain            string              `json:"destination_chain"`
	SourceAsset                 string              `json:"source_asset"`
	DestinationAsset            string              `json:"destination_asset"`
	InitiatorSourceAddress      string              `json:"initiator_source_address"`
	InitiatorDestinationAddress string              `json:"initiator_destination_address"`
	SourceAmount                string              `json:"source_amount"`
	DestinationAmount           string              `json:"destination_amount"`
	Fee                         string              `json:"fee"`
	Nonce                       string              `json:"nonce"`
	MinDestinationConfirmations uint64              `json:"min_destination_confirmations"`
	Timelock                    uint64              `json:"timelock"`
	SecretHash                  string              `json:"secret_hash"`
	AdditionalData              OrderAdditionalData `json:"additional_data"`
}

// OrderAdditionalData carries the solver strategy and optional Bitcoin payout
// address of an order request.
type OrderAdditionalData struct {
	StrategyID               string `json:"strategy_id"`
	BitcoinOptionalRecipient string `json:"bitcoin_optional_recipient,omitempty"`
}

// AttestedQuote is the solver-signed quote. It is never inspected, only
// forwarded to the orderbook as received.
type AttestedQuote struct {
	Payload json.RawMessage
}

// SwapResult is returned to the caller once the order is accepted
type SwapResult struct {
	OrderID    string `json:"order_id"`
	Secret     string `json:"secret"`
	SecretHash string `json:"secret_hash"`
	Nonce      string `json:"nonce"`
}
