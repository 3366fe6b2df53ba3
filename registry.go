package itch

import (
	"fmt"

	"github.com/0x5487/itch/protocol"
)

// decodeFunc reads one body from r. It reports failures through r.Err and
// the value it returns is discarded in that case.
type decodeFunc func(r *protocol.Reader) Body

type entry struct {
	kind   Kind
	tag    byte
	name   string
	size   int // body width in bytes
	decode decodeFunc
}

// entries is the dispatch table. Adding a message kind means adding a Kind
// constant, one line here and its body decoder.
var entries = []entry{
	{KindSystemEvent, 'S', "SystemEvent", 1, decodeSystemEvent},
	{KindStockDirectory, 'R', "StockDirectory", 28, decodeStockDirectory},
	{KindTradingAction, 'H', "TradingAction", 14, decodeTradingAction},
	{KindRegSHORestriction, 'Y', "RegSHORestriction", 9, decodeRegSHORestriction},
	{KindMarketParticipantPosition, 'L', "MarketParticipantPosition", 15, decodeMarketParticipantPosition},
	{KindMWCBDeclineLevel, 'V', "MWCBDeclineLevel", 24, decodeMWCBDeclineLevel},
	{KindMWCBStatus, 'W', "MWCBStatus", 1, decodeMWCBStatus},
	{KindIPOQuotingPeriodUpdate, 'K', "IPOQuotingPeriodUpdate", 17, decodeIPOQuotingPeriodUpdate},
	{KindLULDAuctionCollar, 'J', "LULDAuctionCollar", 24, decodeLULDAuctionCollar},
	{KindOperationalHalt, 'h', "OperationalHalt", 10, decodeOperationalHalt},
	{KindAddOrder, 'A', "AddOrder", 25, decodeAddOrder},
	{KindAddOrderMPID, 'F', "AddOrderMPID", 29, decodeAddOrderMPID},
	{KindOrderExecuted, 'E', "OrderExecuted", 20, decodeOrderExecuted},
	{KindOrderExecutedWithPrice, 'C', "OrderExecutedWithPrice", 25, decodeOrderExecutedWithPrice},
	{KindOrderCancel, 'X', "OrderCancel", 12, decodeOrderCancel},
	{KindOrderDelete, 'D', "OrderDelete", 8, decodeOrderDelete},
	{KindOrderReplace, 'U', "OrderReplace", 24, decodeOrderReplace},
	{KindTrade, 'P', "Trade", 33, decodeTrade},
	{KindCrossTrade, 'Q', "CrossTrade", 29, decodeCrossTrade},
	{KindBrokenTrade, 'B', "BrokenTrade", 8, decodeBrokenTrade},
	{KindNOII, 'I', "NOII", 39, decodeNOII},
	{KindRetailPriceImprovement, 'N', "RetailPriceImprovement", 9, decodeRetailPriceImprovement},
	{KindDirectListingCapitalRaise, 'O', "DirectListingCapitalRaise", 37, decodeDirectListingCapitalRaise},
}

type registry struct {
	byTag  [256]*entry
	byKind [kindCount]*entry
}

var reg = newRegistry(entries)

func newRegistry(list []entry) *registry {
	r := &registry{}
	for i := range list {
		e := &list[i]
		if e.kind == KindUnknown || e.kind >= kindCount {
			panic(fmt.Sprintf("itch: %s: invalid kind %d", e.name, e.kind))
		}
		if r.byTag[e.tag] != nil {
			panic(fmt.Sprintf("itch: tag %q registered twice", e.tag))
		}
		if r.byKind[e.kind] != nil {
			panic(fmt.Sprintf("itch: kind %s registered twice", e.name))
		}
		r.byTag[e.tag] = e
		r.byKind[e.kind] = e
	}
	return r
}

// Lookup returns the kind bound to a wire tag.
func Lookup(tag byte) (Kind, bool) {
	e := reg.byTag[tag]
	if e == nil {
		return KindUnknown, false
	}
	return e.kind, true
}

// Kinds returns every supported kind in registration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.kind)
	}
	return out
}

func (k Kind) entry() *entry {
	if k >= kindCount {
		return nil
	}
	return reg.byKind[k]
}

// Tag returns the wire tag, or 0 for an unsupported kind.
func (k Kind) Tag() byte {
	if e := k.entry(); e != nil {
		return e.tag
	}
	return 0
}

// BodySize returns the body width in bytes, excluding tag and metadata.
func (k Kind) BodySize() int {
	if e := k.entry(); e != nil {
		return e.size
	}
	return 0
}

// Size returns the full record width: tag, metadata and body.
func (k Kind) Size() int {
	if e := k.entry(); e != nil {
		return HeaderSize + e.size
	}
	return 0
}

func (k Kind) String() string {
	if e := k.entry(); e != nil {
		return e.name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
