package itch

import (
	"github.com/0x5487/itch/protocol"
)

// StockDirectory is disseminated for every active symbol at the start of
// the day and whenever an issue is added intraday.
type StockDirectory struct {
	Stock               string                       `json:"stock"`
	MarketCategory      protocol.MarketCategory      `json:"market_category"`
	FinancialStatus     protocol.FinancialStatus     `json:"financial_status"`
	RoundLotSize        uint32                       `json:"round_lot_size"`
	RoundLotsOnly       bool                         `json:"round_lots_only"`
	IssueClassification protocol.IssueClassification `json:"issue_classification"`
	IssueSubType        string                       `json:"issue_sub_type"`
	Authenticity        protocol.Authenticity        `json:"authenticity"`
	ShortSaleThreshold  Ternary                      `json:"short_sale_threshold"`
	IPOFlag             Ternary                      `json:"ipo_flag"`
	LULDTier            protocol.LULDTier            `json:"luld_tier"`
	ETPFlag             Ternary                      `json:"etp_flag"`
	ETPLeverageFactor   uint32                       `json:"etp_leverage_factor"`
	InverseIndicator    bool                         `json:"inverse_indicator"`
}

func (StockDirectory) Kind() Kind { return KindStockDirectory }

func decodeStockDirectory(r *protocol.Reader) Body {
	return StockDirectory{
		Stock:               r.Stock("stock"),
		MarketCategory:      protocol.Code(r, "market_category", protocol.MarketCategories),
		FinancialStatus:     protocol.Code(r, "financial_status", protocol.FinancialStatuses),
		RoundLotSize:        r.Uint32("round_lot_size"),
		RoundLotsOnly:       r.Flag("round_lots_only"),
		IssueClassification: protocol.Code(r, "issue_classification", protocol.IssueClassifications),
		IssueSubType:        r.Alpha("issue_sub_type", protocol.IssueSubTypeSize),
		Authenticity:        protocol.Code(r, "authenticity", protocol.Authenticities),
		ShortSaleThreshold:  r.Ternary("short_sale_threshold"),
		IPOFlag:             r.Ternary("ipo_flag"),
		LULDTier:            protocol.Code(r, "luld_tier", protocol.LULDTiers),
		ETPFlag:             r.Ternary("etp_flag"),
		ETPLeverageFactor:   r.Uint32("etp_leverage_factor"),
		InverseIndicator:    r.Flag("inverse_indicator"),
	}
}

// TradingAction reports the trading state of a security.
type TradingAction struct {
	Stock        string                `json:"stock"`
	TradingState protocol.TradingState `json:"trading_state"`
	Reason       string                `json:"reason"`
}

func (TradingAction) Kind() Kind { return KindTradingAction }

func decodeTradingAction(r *protocol.Reader) Body {
	m := TradingAction{
		Stock:        r.Stock("stock"),
		TradingState: protocol.Code(r, "trading_state", protocol.TradingStates),
	}
	r.Skip("reserved", 1)
	m.Reason = r.Alpha("reason", protocol.ReasonSize)
	return m
}

// RegSHORestriction carries the Rule 201 short sale price test status.
type RegSHORestriction struct {
	Stock  string                `json:"stock"`
	Action protocol.RegSHOAction `json:"action"`
}

func (RegSHORestriction) Kind() Kind { return KindRegSHORestriction }

func decodeRegSHORestriction(r *protocol.Reader) Body {
	return RegSHORestriction{
		Stock:  r.Stock("stock"),
		Action: protocol.Code(r, "reg_sho_action", protocol.RegSHOActions),
	}
}

// MarketParticipantPosition reports the registration of a market
// participant in an issue.
type MarketParticipantPosition struct {
	MPID               string                          `json:"mpid"`
	Stock              string                          `json:"stock"`
	PrimaryMarketMaker bool                            `json:"primary_market_maker"`
	Mode               protocol.MarketMakerMode        `json:"market_maker_mode"`
	State              protocol.MarketParticipantState `json:"market_participant_state"`
}

func (MarketParticipantPosition) Kind() Kind { return KindMarketParticipantPosition }

func decodeMarketParticipantPosition(r *protocol.Reader) Body {
	return MarketParticipantPosition{
		MPID:               r.Alpha("mpid", protocol.MPIDSize),
		Stock:              r.Stock("stock"),
		PrimaryMarketMaker: r.Flag("primary_market_maker"),
		Mode:               protocol.Code(r, "market_maker_mode", protocol.MarketMakerModes),
		State:              protocol.Code(r, "market_participant_state", protocol.MarketParticipantStates),
	}
}

type IPOQuotingPeriodUpdate struct {
	Stock       string                       `json:"stock"`
	ReleaseTime TimeOfDay                    `json:"release_time"`
	Qualifier   protocol.IPOReleaseQualifier `json:"release_qualifier"`
	IPOPrice    Price4                       `json:"ipo_price"`
}

func (IPOQuotingPeriodUpdate) Kind() Kind { return KindIPOQuotingPeriodUpdate }

func decodeIPOQuotingPeriodUpdate(r *protocol.Reader) Body {
	return IPOQuotingPeriodUpdate{
		Stock:       r.Stock("stock"),
		ReleaseTime: r.Seconds("release_time"),
		Qualifier:   protocol.Code(r, "release_qualifier", protocol.IPOReleaseQualifiers),
		IPOPrice:    r.Price4("ipo_price"),
	}
}

// LULDAuctionCollar gives the thresholds within which a paused security can
// reopen after a limit up / limit down pause.
type LULDAuctionCollar struct {
	Stock          string `json:"stock"`
	ReferencePrice Price4 `json:"reference_price"`
	UpperPrice     Price4 `json:"upper_price"`
	LowerPrice     Price4 `json:"lower_price"`
	Extension      uint32 `json:"extension"`
}

func (LULDAuctionCollar) Kind() Kind { return KindLULDAuctionCollar }

func decodeLULDAuctionCollar(r *protocol.Reader) Body {
	return LULDAuctionCollar{
		Stock:          r.Stock("stock"),
		ReferencePrice: r.Price4("reference_price"),
		UpperPrice:     r.Price4("upper_price"),
		LowerPrice:     r.Price4("lower_price"),
		Extension:      r.Uint32("extension"),
	}
}

type OperationalHalt struct {
	Stock      string              `json:"stock"`
	MarketCode protocol.MarketCode `json:"market_code"`
	Action     protocol.HaltAction `json:"action"`
}

func (OperationalHalt) Kind() Kind { return KindOperationalHalt }

func decodeOperationalHalt(r *protocol.Reader) Body {
	return OperationalHalt{
		Stock:      r.Stock("stock"),
		MarketCode: protocol.Code(r, "market_code", protocol.MarketCodes),
		Action:     protocol.Code(r, "halt_action", protocol.HaltActions),
	}
}

// DirectListingCapitalRaise is the price discovery message for a direct
// listing with a capital raise.
type DirectListingCapitalRaise struct {
	Stock              string    `json:"stock"`
	OpenEligible       bool      `json:"open_eligible"`
	MinAllowablePrice  Price4    `json:"min_allowable_price"`
	MaxAllowablePrice  Price4    `json:"max_allowable_price"`
	NearExecutionPrice Price4    `json:"near_execution_price"`
	NearExecutionTime  TimeOfDay `json:"near_execution_time"`
	LowerCollar        Price4    `json:"lower_price_range_collar"`
	UpperCollar        Price4    `json:"upper_price_range_collar"`
}

func (DirectListingCapitalRaise) Kind() Kind { return KindDirectListingCapitalRaise }

func decodeDirectListingCapitalRaise(r *protocol.Reader) Body {
	return DirectListingCapitalRaise{
		Stock:              r.Stock("stock"),
		OpenEligible:       r.Flag("open_eligibility_status"),
		MinAllowablePrice:  r.Price4("min_allowable_price"),
		MaxAllowablePrice:  r.Price4("max_allowable_price"),
		NearExecutionPrice: r.Price4("near_execution_price"),
		NearExecutionTime:  r.Timestamp("near_execution_time"),
		LowerCollar:        r.Price4("lower_price_range_collar"),
		UpperCollar:        r.Price4("upper_price_range_collar"),
	}
}
