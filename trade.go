package itch

import (
	"github.com/0x5487/itch/protocol"
)

// Trade reports a match against a non-displayed order.
type Trade struct {
	OrderRef    uint64 `json:"order_ref"`
	Side        Side   `json:"side"`
	Shares      uint32 `json:"shares"`
	Stock       string `json:"stock"`
	Price       Price4 `json:"price"`
	MatchNumber uint64 `json:"match_number"`
}

func (Trade) Kind() Kind { return KindTrade }

func decodeTrade(r *protocol.Reader) Body {
	return Trade{
		OrderRef:    r.Uint64("order_ref"),
		Side:        protocol.Code(r, "side", protocol.Sides),
		Shares:      r.Uint32("shares"),
		Stock:       r.Stock("stock"),
		Price:       r.Price4("price"),
		MatchNumber: r.Uint64("match_number"),
	}
}

// CrossTrade is the bulk print of an opening, closing, halt or IPO cross.
type CrossTrade struct {
	Shares      uint64             `json:"shares"`
	Stock       string             `json:"stock"`
	CrossPrice  Price4             `json:"cross_price"`
	MatchNumber uint64             `json:"match_number"`
	CrossType   protocol.CrossType `json:"cross_type"`
}

func (CrossTrade) Kind() Kind { return KindCrossTrade }

func decodeCrossTrade(r *protocol.Reader) Body {
	return CrossTrade{
		Shares:      r.Uint64("shares"),
		Stock:       r.Stock("stock"),
		CrossPrice:  r.Price4("cross_price"),
		MatchNumber: r.Uint64("match_number"),
		CrossType:   protocol.Code(r, "cross_type", protocol.CrossTypes),
	}
}

// BrokenTrade withdraws a previously reported execution.
type BrokenTrade struct {
	MatchNumber uint64 `json:"match_number"`
}

func (BrokenTrade) Kind() Kind { return KindBrokenTrade }

func decodeBrokenTrade(r *protocol.Reader) Body {
	return BrokenTrade{
		MatchNumber: r.Uint64("match_number"),
	}
}
