package itch

import (
	"github.com/0x5487/itch/protocol"
)

type (
	Side      = protocol.Side
	Ternary   = protocol.Ternary
	Price4    = protocol.Price4
	Price8    = protocol.Price8
	TimeOfDay = protocol.TimeOfDay
)

const (
	Buy  Side = protocol.SideBuy
	Sell Side = protocol.SideSell
)

// Kind identifies a message variant. It is derived from the wire tag only.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSystemEvent
	KindStockDirectory
	KindTradingAction
	KindRegSHORestriction
	KindMarketParticipantPosition
	KindMWCBDeclineLevel
	KindMWCBStatus
	KindIPOQuotingPeriodUpdate
	KindLULDAuctionCollar
	KindOperationalHalt
	KindAddOrder
	KindAddOrderMPID
	KindOrderExecuted
	KindOrderExecutedWithPrice
	KindOrderCancel
	KindOrderDelete
	KindOrderReplace
	KindTrade
	KindCrossTrade
	KindBrokenTrade
	KindNOII
	KindRetailPriceImprovement
	KindDirectListingCapitalRaise

	kindCount
)

// Metadata is the header every message carries after its tag.
type Metadata struct {
	LocateCode     uint16    `json:"locate_code"`
	TrackingNumber uint16    `json:"tracking_number"`
	Timestamp      TimeOfDay `json:"timestamp"` // nanoseconds since midnight
}

// Body is implemented by exactly one value type per Kind.
type Body interface {
	Kind() Kind
}

// Message is one decoded record. Use a type switch or assertion on Body to
// reach the kind specific fields.
type Message struct {
	Metadata Metadata `json:"metadata"`
	Body     Body     `json:"body"`
}

// Kind returns the variant of the message, or KindUnknown for the zero Message.
func (m Message) Kind() Kind {
	if m.Body == nil {
		return KindUnknown
	}
	return m.Body.Kind()
}

// Tag returns the wire tag of the message.
func (m Message) Tag() byte {
	return m.Kind().Tag()
}

func (m Message) Locate() uint16 {
	return m.Metadata.LocateCode
}

func (m Message) Timestamp() TimeOfDay {
	return m.Metadata.Timestamp
}
