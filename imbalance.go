package itch

import (
	"github.com/0x5487/itch/protocol"
)

// NOII is the net order imbalance indicator published ahead of a cross.
type NOII struct {
	PairedShares    uint64                      `json:"paired_shares"`
	ImbalanceShares uint64                      `json:"imbalance_shares"`
	Direction       protocol.ImbalanceDirection `json:"imbalance_direction"`
	Stock           string                      `json:"stock"`
	FarPrice        Price4                      `json:"far_price"`
	NearPrice       Price4                      `json:"near_price"`
	ReferencePrice  Price4                      `json:"current_reference_price"`
	CrossType       protocol.ImbalanceCrossType `json:"cross_type"`
	PriceVariation  protocol.PriceVariation     `json:"price_variation_indicator"`
}

func (NOII) Kind() Kind { return KindNOII }

func decodeNOII(r *protocol.Reader) Body {
	return NOII{
		PairedShares:    r.Uint64("paired_shares"),
		ImbalanceShares: r.Uint64("imbalance_shares"),
		Direction:       protocol.Code(r, "imbalance_direction", protocol.ImbalanceDirections),
		Stock:           r.Stock("stock"),
		FarPrice:        r.Price4("far_price"),
		NearPrice:       r.Price4("near_price"),
		ReferencePrice:  r.Price4("current_reference_price"),
		CrossType:       protocol.Code(r, "cross_type", protocol.ImbalanceCrossTypes),
		PriceVariation:  protocol.Code(r, "price_variation_indicator", protocol.PriceVariations),
	}
}

// RetailPriceImprovement signals retail interest on one or both sides.
type RetailPriceImprovement struct {
	Stock        string                `json:"stock"`
	InterestFlag protocol.InterestFlag `json:"interest_flag"`
}

func (RetailPriceImprovement) Kind() Kind { return KindRetailPriceImprovement }

func decodeRetailPriceImprovement(r *protocol.Reader) Body {
	return RetailPriceImprovement{
		Stock:        r.Stock("stock"),
		InterestFlag: protocol.Code(r, "interest_flag", protocol.InterestFlags),
	}
}
