package itch

import (
	"github.com/0x5487/itch/protocol"
)

// SystemEvent signals a market or data feed handler event.
type SystemEvent struct {
	EventCode protocol.EventCode `json:"event_code"`
}

func (SystemEvent) Kind() Kind { return KindSystemEvent }

func decodeSystemEvent(r *protocol.Reader) Body {
	return SystemEvent{
		EventCode: protocol.Code(r, "event_code", protocol.EventCodes),
	}
}

// MWCBDeclineLevel informs of the market wide circuit breaker breach points
// for the trading day.
type MWCBDeclineLevel struct {
	Level1 Price8 `json:"level_1"`
	Level2 Price8 `json:"level_2"`
	Level3 Price8 `json:"level_3"`
}

func (MWCBDeclineLevel) Kind() Kind { return KindMWCBDeclineLevel }

func decodeMWCBDeclineLevel(r *protocol.Reader) Body {
	return MWCBDeclineLevel{
		Level1: r.Price8("level_1"),
		Level2: r.Price8("level_2"),
		Level3: r.Price8("level_3"),
	}
}

// MWCBStatus is sent when a market wide circuit breaker level has been breached.
type MWCBStatus struct {
	BreachedLevel protocol.BreachedLevel `json:"breached_level"`
}

func (MWCBStatus) Kind() Kind { return KindMWCBStatus }

func decodeMWCBStatus(r *protocol.Reader) Body {
	return MWCBStatus{
		BreachedLevel: protocol.Code(r, "breached_level", protocol.BreachedLevels),
	}
}
