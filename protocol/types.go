package protocol

// Enumerated wire codes. Every constant starts at 1 so the zero value is never
// a member of its enumeration.

// EventCode signals a market or data feed handler event.
type EventCode uint8

const (
	EventStartOfMessages EventCode = iota + 1
	EventStartOfSystemHours
	EventStartOfMarketHours
	EventEndOfMarketHours
	EventEndOfSystemHours
	EventEndOfMessages
)

var EventCodes = NewCodeTable("event code", []CodeEntry[EventCode]{
	{'O', EventStartOfMessages, "start of messages"},
	{'S', EventStartOfSystemHours, "start of system hours"},
	{'Q', EventStartOfMarketHours, "start of market hours"},
	{'M', EventEndOfMarketHours, "end of market hours"},
	{'E', EventEndOfSystemHours, "end of system hours"},
	{'C', EventEndOfMessages, "end of messages"},
})

func (v EventCode) String() string {
	return EventCodes.String(v)
}

// Code returns the wire byte.
func (v EventCode) Code() byte {
	return EventCodes.Code(v)
}

// MarketCategory is the listing market or listing market tier of an issue.
type MarketCategory uint8

const (
	CategoryNasdaqGlobalSelect MarketCategory = iota + 1
	CategoryNasdaqGlobal
	CategoryNasdaqCapital
	CategoryNYSE
	CategoryNYSEAmerican
	CategoryNYSEArca
	CategoryBATSZ
	CategoryIEX
	CategoryNotAvailable
)

var MarketCategories = NewCodeTable("market category", []CodeEntry[MarketCategory]{
	{'Q', CategoryNasdaqGlobalSelect, "Nasdaq Global Select Market"},
	{'G', CategoryNasdaqGlobal, "Nasdaq Global Market"},
	{'S', CategoryNasdaqCapital, "Nasdaq Capital Market"},
	{'N', CategoryNYSE, "NYSE"},
	{'A', CategoryNYSEAmerican, "NYSE American"},
	{'P', CategoryNYSEArca, "NYSE Arca"},
	{'Z', CategoryBATSZ, "BATS Z Exchange"},
	{'V', CategoryIEX, "Investors Exchange"},
	{' ', CategoryNotAvailable, "not available"},
})

func (v MarketCategory) String() string {
	return MarketCategories.String(v)
}

// Code returns the wire byte.
func (v MarketCategory) Code() byte {
	return MarketCategories.Code(v)
}

// FinancialStatus reports compliance with Nasdaq continued listing requirements.
type FinancialStatus uint8

const (
	FinancialDeficient FinancialStatus = iota + 1
	FinancialDelinquent
	FinancialBankrupt
	FinancialSuspended
	FinancialDeficientBankrupt
	FinancialDeficientDelinquent
	FinancialDelinquentBankrupt
	FinancialDeficientDelinquentBankrupt
	FinancialCreationsSuspended
	FinancialNormal
	FinancialNotAvailable
)

var FinancialStatuses = NewCodeTable("financial status", []CodeEntry[FinancialStatus]{
	{'D', FinancialDeficient, "deficient"},
	{'E', FinancialDelinquent, "delinquent"},
	{'Q', FinancialBankrupt, "bankrupt"},
	{'S', FinancialSuspended, "suspended"},
	{'G', FinancialDeficientBankrupt, "deficient and bankrupt"},
	{'H', FinancialDeficientDelinquent, "deficient and delinquent"},
	{'J', FinancialDelinquentBankrupt, "delinquent and bankrupt"},
	{'K', FinancialDeficientDelinquentBankrupt, "deficient, delinquent and bankrupt"},
	{'C', FinancialCreationsSuspended, "creations and/or redemptions suspended"},
	{'N', FinancialNormal, "normal"},
	{' ', FinancialNotAvailable, "not available"},
})

func (v FinancialStatus) String() string {
	return FinancialStatuses.String(v)
}

// Code returns the wire byte.
func (v FinancialStatus) Code() byte {
	return FinancialStatuses.Code(v)
}

type IssueClassification uint8

const (
	IssueAmericanDepositaryShare IssueClassification = iota + 1
	IssueBond
	IssueCommonStock
	IssueDepositoryReceipt
	Issue144A
	IssueLimitedPartnership
	IssueNotes
	IssueOrdinaryShare
	IssuePreferredStock
	IssueOtherSecurities
	IssueRight
	IssueSharesOfBeneficialInterest
	IssueConvertibleDebenture
	IssueUnit
	IssueUnitsBeneficialInterest
	IssueWarrant
)

var IssueClassifications = NewCodeTable("issue classification", []CodeEntry[IssueClassification]{
	{'A', IssueAmericanDepositaryShare, "American Depositary Share"},
	{'B', IssueBond, "bond"},
	{'C', IssueCommonStock, "common stock"},
	{'F', IssueDepositoryReceipt, "depository receipt"},
	{'I', Issue144A, "144A"},
	{'L', IssueLimitedPartnership, "limited partnership"},
	{'N', IssueNotes, "notes"},
	{'O', IssueOrdinaryShare, "ordinary share"},
	{'P', IssuePreferredStock, "preferred stock"},
	{'Q', IssueOtherSecurities, "other securities"},
	{'R', IssueRight, "right"},
	{'S', IssueSharesOfBeneficialInterest, "shares of beneficial interest"},
	{'T', IssueConvertibleDebenture, "convertible debenture"},
	{'U', IssueUnit, "unit"},
	{'V', IssueUnitsBeneficialInterest, "units/beneficial interest"},
	{'W', IssueWarrant, "warrant"},
})

func (v IssueClassification) String() string {
	return IssueClassifications.String(v)
}

// Code returns the wire byte.
func (v IssueClassification) Code() byte {
	return IssueClassifications.Code(v)
}

// Authenticity tells live issues from test ones.
type Authenticity uint8

const (
	AuthenticityProduction Authenticity = iota + 1
	AuthenticityTest
)

var Authenticities = NewCodeTable("authenticity", []CodeEntry[Authenticity]{
	{'P', AuthenticityProduction, "live/production"},
	{'T', AuthenticityTest, "test"},
})

func (v Authenticity) String() string {
	return Authenticities.String(v)
}

// Code returns the wire byte.
func (v Authenticity) Code() byte {
	return Authenticities.Code(v)
}

type LULDTier uint8

const (
	LULDTier1 LULDTier = iota + 1
	LULDTier2
	LULDTierNotAvailable
)

var LULDTiers = NewCodeTable("LULD reference price tier", []CodeEntry[LULDTier]{
	{'1', LULDTier1, "tier 1"},
	{'2', LULDTier2, "tier 2"},
	{' ', LULDTierNotAvailable, "not available"},
})

func (v LULDTier) String() string {
	return LULDTiers.String(v)
}

// Code returns the wire byte.
func (v LULDTier) Code() byte {
	return LULDTiers.Code(v)
}

type TradingState uint8

const (
	StateHalted TradingState = iota + 1
	StatePaused
	StateQuotationOnly
	StateTrading
)

var TradingStates = NewCodeTable("trading state", []CodeEntry[TradingState]{
	{'H', StateHalted, "halted"},
	{'P', StatePaused, "paused"},
	{'Q', StateQuotationOnly, "quotation only"},
	{'T', StateTrading, "trading"},
})

func (v TradingState) String() string {
	return TradingStates.String(v)
}

// Code returns the wire byte.
func (v TradingState) Code() byte {
	return TradingStates.Code(v)
}

// RegSHOAction is the Rule 201 short sale price test status.
type RegSHOAction uint8

const (
	RegSHONoPriceTest RegSHOAction = iota + 1
	RegSHOIntradayPriceDrop
	RegSHORemainsInEffect
)

var RegSHOActions = NewCodeTable("Reg SHO action", []CodeEntry[RegSHOAction]{
	{'0', RegSHONoPriceTest, "no price test"},
	{'1', RegSHOIntradayPriceDrop, "restriction due to intraday price drop"},
	{'2', RegSHORemainsInEffect, "restriction remains in effect"},
})

func (v RegSHOAction) String() string {
	return RegSHOActions.String(v)
}

// Code returns the wire byte.
func (v RegSHOAction) Code() byte {
	return RegSHOActions.Code(v)
}

type MarketMakerMode uint8

const (
	ModeNormal MarketMakerMode = iota + 1
	ModePassive
	ModeSyndicate
	ModePreSyndicate
	ModePenalty
)

var MarketMakerModes = NewCodeTable("market maker mode", []CodeEntry[MarketMakerMode]{
	{'N', ModeNormal, "normal"},
	{'P', ModePassive, "passive"},
	{'S', ModeSyndicate, "syndicate"},
	{'R', ModePreSyndicate, "pre-syndicate"},
	{'L', ModePenalty, "penalty"},
})

func (v MarketMakerMode) String() string {
	return MarketMakerModes.String(v)
}

// Code returns the wire byte.
func (v MarketMakerMode) Code() byte {
	return MarketMakerModes.Code(v)
}

type MarketParticipantState uint8

const (
	ParticipantActive MarketParticipantState = iota + 1
	ParticipantExcused
	ParticipantWithdrawn
	ParticipantSuspended
	ParticipantDeleted
)

var MarketParticipantStates = NewCodeTable("market participant state", []CodeEntry[MarketParticipantState]{
	{'A', ParticipantActive, "active"},
	{'E', ParticipantExcused, "excused"},
	{'W', ParticipantWithdrawn, "withdrawn"},
	{'S', ParticipantSuspended, "suspended"},
	{'D', ParticipantDeleted, "deleted"},
})

func (v MarketParticipantState) String() string {
	return MarketParticipantStates.String(v)
}

// Code returns the wire byte.
func (v MarketParticipantState) Code() byte {
	return MarketParticipantStates.Code(v)
}

// BreachedLevel is the MWCB level that was breached.
type BreachedLevel uint8

const (
	BreachedLevel1 BreachedLevel = iota + 1
	BreachedLevel2
	BreachedLevel3
)

var BreachedLevels = NewCodeTable("breached level", []CodeEntry[BreachedLevel]{
	{'1', BreachedLevel1, "level 1"},
	{'2', BreachedLevel2, "level 2"},
	{'3', BreachedLevel3, "level 3"},
})

func (v BreachedLevel) String() string {
	return BreachedLevels.String(v)
}

// Code returns the wire byte.
func (v BreachedLevel) Code() byte {
	return BreachedLevels.Code(v)
}

type IPOReleaseQualifier uint8

const (
	IPOReleaseAnticipated IPOReleaseQualifier = iota + 1
	IPOReleaseCanceled
)

var IPOReleaseQualifiers = NewCodeTable("IPO quotation release qualifier", []CodeEntry[IPOReleaseQualifier]{
	{'A', IPOReleaseAnticipated, "anticipated"},
	{'C', IPOReleaseCanceled, "canceled or postponed"},
})

func (v IPOReleaseQualifier) String() string {
	return IPOReleaseQualifiers.String(v)
}

// Code returns the wire byte.
func (v IPOReleaseQualifier) Code() byte {
	return IPOReleaseQualifiers.Code(v)
}

type MarketCode uint8

const (
	MarketNasdaq MarketCode = iota + 1
	MarketBX
	MarketPSX
)

var MarketCodes = NewCodeTable("market code", []CodeEntry[MarketCode]{
	{'Q', MarketNasdaq, "Nasdaq"},
	{'B', MarketBX, "BX"},
	{'X', MarketPSX, "PSX"},
})

func (v MarketCode) String() string {
	return MarketCodes.String(v)
}

// Code returns the wire byte.
func (v MarketCode) Code() byte {
	return MarketCodes.Code(v)
}

type HaltAction uint8

const (
	HaltActionHalted HaltAction = iota + 1
	HaltActionResumed
)

var HaltActions = NewCodeTable("operational halt action", []CodeEntry[HaltAction]{
	{'H', HaltActionHalted, "halted"},
	{'T', HaltActionResumed, "resumed"},
})

func (v HaltAction) String() string {
	return HaltActions.String(v)
}

// Code returns the wire byte.
func (v HaltAction) Code() byte {
	return HaltActions.Code(v)
}

// Side is the buy/sell indicator of an order.
type Side uint8

const (
	SideBuy Side = iota + 1
	SideSell
)

var Sides = NewCodeTable("side", []CodeEntry[Side]{
	{'B', SideBuy, "buy"},
	{'S', SideSell, "sell"},
})

func (v Side) String() string {
	return Sides.String(v)
}

// Code returns the wire byte.
func (v Side) Code() byte {
	return Sides.Code(v)
}

// CrossType is the cross session a cross trade belongs to.
type CrossType uint8

const (
	CrossOpening CrossType = iota + 1
	CrossClosing
	CrossIPOHalted
	CrossIntraday
)

var CrossTypes = NewCodeTable("cross type", []CodeEntry[CrossType]{
	{'O', CrossOpening, "opening"},
	{'C', CrossClosing, "closing"},
	{'H', CrossIPOHalted, "IPO or halted"},
	{'I', CrossIntraday, "intraday or post-close"},
})

func (v CrossType) String() string {
	return CrossTypes.String(v)
}

// Code returns the wire byte.
func (v CrossType) Code() byte {
	return CrossTypes.Code(v)
}

type ImbalanceDirection uint8

const (
	ImbalanceBuy ImbalanceDirection = iota + 1
	ImbalanceSell
	ImbalanceNone
	ImbalanceInsufficientOrders
	ImbalancePaused
)

var ImbalanceDirections = NewCodeTable("imbalance direction", []CodeEntry[ImbalanceDirection]{
	{'B', ImbalanceBuy, "buy"},
	{'S', ImbalanceSell, "sell"},
	{'N', ImbalanceNone, "no imbalance"},
	{'O', ImbalanceInsufficientOrders, "insufficient orders to calculate"},
	{'P', ImbalancePaused, "paused"},
})

func (v ImbalanceDirection) String() string {
	return ImbalanceDirections.String(v)
}

// Code returns the wire byte.
func (v ImbalanceDirection) Code() byte {
	return ImbalanceDirections.Code(v)
}

// ImbalanceCrossType is the cross an imbalance indicator is disseminated for.
type ImbalanceCrossType uint8

const (
	ImbalanceCrossOpening ImbalanceCrossType = iota + 1
	ImbalanceCrossClosing
	ImbalanceCrossIPOHalted
	ImbalanceCrossExtendedClose
)

var ImbalanceCrossTypes = NewCodeTable("imbalance cross type", []CodeEntry[ImbalanceCrossType]{
	{'O', ImbalanceCrossOpening, "opening"},
	{'C', ImbalanceCrossClosing, "closing"},
	{'H', ImbalanceCrossIPOHalted, "IPO or halted"},
	{'A', ImbalanceCrossExtendedClose, "extended trading close"},
})

func (v ImbalanceCrossType) String() string {
	return ImbalanceCrossTypes.String(v)
}

// Code returns the wire byte.
func (v ImbalanceCrossType) Code() byte {
	return ImbalanceCrossTypes.Code(v)
}

// PriceVariation buckets the deviation of the near indicative clearing price
// from the current reference price.
type PriceVariation uint8

const (
	VariationUnder1 PriceVariation = iota + 1
	Variation1
	Variation2
	Variation3
	Variation4
	Variation5
	Variation6
	Variation7
	Variation8
	Variation9
	Variation10
	Variation20
	Variation30
	VariationNotCalculated
)

var PriceVariations = NewCodeTable("price variation indicator", []CodeEntry[PriceVariation]{
	{'L', VariationUnder1, "less than 1%"},
	{'1', Variation1, "1 to 1.99%"},
	{'2', Variation2, "2 to 2.99%"},
	{'3', Variation3, "3 to 3.99%"},
	{'4', Variation4, "4 to 4.99%"},
	{'5', Variation5, "5 to 5.99%"},
	{'6', Variation6, "6 to 6.99%"},
	{'7', Variation7, "7 to 7.99%"},
	{'8', Variation8, "8 to 8.99%"},
	{'9', Variation9, "9 to 9.99%"},
	{'A', Variation10, "10 to 19.99%"},
	{'B', Variation20, "20 to 29.99%"},
	{'C', Variation30, "30% or greater"},
	{' ', VariationNotCalculated, "cannot be calculated"},
})

func (v PriceVariation) String() string {
	return PriceVariations.String(v)
}

// Code returns the wire byte.
func (v PriceVariation) Code() byte {
	return PriceVariations.Code(v)
}

// InterestFlag reports which sides have retail price improvement interest.
type InterestFlag uint8

const (
	InterestBuy InterestFlag = iota + 1
	InterestSell
	InterestBoth
	InterestNone
)

var InterestFlags = NewCodeTable("interest flag", []CodeEntry[InterestFlag]{
	{'B', InterestBuy, "buy side"},
	{'S', InterestSell, "sell side"},
	{'A', InterestBoth, "both sides"},
	{'N', InterestNone, "none"},
})

func (v InterestFlag) String() string {
	return InterestFlags.String(v)
}

// Code returns the wire byte.
func (v InterestFlag) Code() byte {
	return InterestFlags.Code(v)
}

// Ternary is a Y / N flag that may also be not available.
type Ternary uint8

const (
	TernaryYes Ternary = iota + 1
	TernaryNo
	TernaryNotAvailable
)

var Ternaries = NewCodeTable("ternary flag", []CodeEntry[Ternary]{
	{'Y', TernaryYes, "yes"},
	{'N', TernaryNo, "no"},
	{' ', TernaryNotAvailable, "not available"},
})

func (v Ternary) String() string {
	return Ternaries.String(v)
}

// Code returns the wire byte.
func (v Ternary) Code() byte {
	return Ternaries.Code(v)
}
