package types

import "time"

// SwapLeg is one side of a matched order as reported by the orderbook
type SwapLeg struct {
	SwapID         string `json:"swap_id"`
	Chain          string `json:"chain"`
	Asset          string `json:"asset"`
	Initiator      string `json:"initiator"`
	Redeemer       string `json:"redeemer"`
	Amount         string `json:"amount"`
	SecretHash     string `json:"secret_hash"`
	InitiateTxHash string `json:"initiate_tx_hash"`
	RedeemTxHash   string `json:"redeem_tx_hash"`
	RefundTxHash   string `json:"refund_tx_hash"`
}

// MatchedOrder is the orderbook's view of an order after a solver accepted it
type MatchedOrder struct {
	CreatedAt       time.Time    `json:"created_at"`
	SourceSwap      SwapLeg      `json:"source_swap"`
	DestinationSwap SwapLeg      `json:"destination_swap"`
	CreateOrder     OrderRequest `json:"create_order"`
}

// Order status values derived from the legs' transaction hashes
const (
	OrderStatusMatched   = "MATCHED"
	OrderStatusInitiated = "INITIATED"
	OrderStatusRedeemed  = "REDEEMED"
	OrderStatusRefunded  = "REFUNDED"
)

// Status summarises the order lifecycle from the on-chain hashes the
// orderbook has observed.
func (o *MatchedOrder) Status() string {
	switch {
	case o.SourceSwap.RefundTxHash != "":
		return OrderStatusRefunded
	case o.DestinationSwap.RedeemTxHash != "" || o.SourceSwap.RedeemTxHash != "":
		return OrderStatusRedeemed
	case o.SourceSwap.InitiateTxHash != "":
		return OrderStatusInitiated
	default:
		return OrderStatusMatched
	}
}
