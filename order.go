package itch

import (
	"github.com/0x5487/itch/protocol"
)

// AddOrder is a new unattributed order accepted into the book.
type AddOrder struct {
	OrderRef uint64 `json:"order_ref"`
	Side     Side   `json:"side"`
	Shares   uint32 `json:"shares"`
	Stock    string `json:"stock"`
	Price    Price4 `json:"price"`
}

func (AddOrder) Kind() Kind { return KindAddOrder }

func readAddOrder(r *protocol.Reader) AddOrder {
	return AddOrder{
		OrderRef: r.Uint64("order_ref"),
		Side:     protocol.Code(r, "side", protocol.Sides),
		Shares:   r.Uint32("shares"),
		Stock:    r.Stock("stock"),
		Price:    r.Price4("price"),
	}
}

func decodeAddOrder(r *protocol.Reader) Body {
	return readAddOrder(r)
}

// AddOrderMPID is an AddOrder attributed to a market participant.
type AddOrderMPID struct {
	AddOrder
	Attribution string `json:"attribution"`
}

func (AddOrderMPID) Kind() Kind { return KindAddOrderMPID }

func decodeAddOrderMPID(r *protocol.Reader) Body {
	return AddOrderMPID{
		AddOrder:    readAddOrder(r),
		Attribution: r.Alpha("attribution", protocol.MPIDSize),
	}
}

// OrderExecuted reports a full or partial execution at the order's price.
type OrderExecuted struct {
	OrderRef       uint64 `json:"order_ref"`
	ExecutedShares uint32 `json:"executed_shares"`
	MatchNumber    uint64 `json:"match_number"`
}

func (OrderExecuted) Kind() Kind { return KindOrderExecuted }

func readOrderExecuted(r *protocol.Reader) OrderExecuted {
	return OrderExecuted{
		OrderRef:       r.Uint64("order_ref"),
		ExecutedShares: r.Uint32("executed_shares"),
		MatchNumber:    r.Uint64("match_number"),
	}
}

func decodeOrderExecuted(r *protocol.Reader) Body {
	return readOrderExecuted(r)
}

// OrderExecutedWithPrice reports an execution at a price other than the
// order's display price.
type OrderExecutedWithPrice struct {
	OrderExecuted
	Printable      bool   `json:"printable"`
	ExecutionPrice Price4 `json:"execution_price"`
}

func (OrderExecutedWithPrice) Kind() Kind { return KindOrderExecutedWithPrice }

func decodeOrderExecutedWithPrice(r *protocol.Reader) Body {
	return OrderExecutedWithPrice{
		OrderExecuted:  readOrderExecuted(r),
		Printable:      r.Flag("printable"),
		ExecutionPrice: r.Price4("execution_price"),
	}
}

type OrderCancel struct {
	OrderRef        uint64 `json:"order_ref"`
	CancelledShares uint32 `json:"cancelled_shares"`
}

func (OrderCancel) Kind() Kind { return KindOrderCancel }

func decodeOrderCancel(r *protocol.Reader) Body {
	return OrderCancel{
		OrderRef:        r.Uint64("order_ref"),
		CancelledShares: r.Uint32("cancelled_shares"),
	}
}

type OrderDelete struct {
	OrderRef uint64 `json:"order_ref"`
}

func (OrderDelete) Kind() Kind { return KindOrderDelete }

func decodeOrderDelete(r *protocol.Reader) Body {
	return OrderDelete{
		OrderRef: r.Uint64("order_ref"),
	}
}

// OrderReplace cancels OriginalRef and adds NewRef on the same side and
// stock, losing time priority.
type OrderReplace struct {
	OriginalRef uint64 `json:"original_order_ref"`
	NewRef      uint64 `json:"new_order_ref"`
	Shares      uint32 `json:"shares"`
	Price       Price4 `json:"price"`
}

func (OrderReplace) Kind() Kind { return KindOrderReplace }

func decodeOrderReplace(r *protocol.Reader) Body {
	return OrderReplace{
		OriginalRef: r.Uint64("original_order_ref"),
		NewRef:      r.Uint64("new_order_ref"),
		Shares:      r.Uint32("shares"),
		Price:       r.Price4("price"),
	}
}
