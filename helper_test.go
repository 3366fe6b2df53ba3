package itch

import (
	"encoding/binary"
	"strings"

	"github.com/0x5487/itch/protocol"
)

const (
	testLocate    = 7
	testTracking  = 3
	testTimestamp = 34200000000123
)

// recordBuilder assembles wire records for tests.
type recordBuilder struct {
	buf []byte
}

func newRecord(tag byte) *recordBuilder {
	return newRecordWith(tag, testLocate, testTracking, testTimestamp)
}

func newRecordWith(tag byte, locate, tracking uint16, ts uint64) *recordBuilder {
	b := &recordBuilder{buf: []byte{tag}}
	return b.u16(locate).u16(tracking).u64(ts)
}

func (b *recordBuilder) u8(v byte) *recordBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *recordBuilder) u16(v uint16) *recordBuilder {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	return b
}

func (b *recordBuilder) u32(v uint32) *recordBuilder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
	return b
}

func (b *recordBuilder) u64(v uint64) *recordBuilder {
	b.buf = binary.BigEndian.AppendUint64(b.buf, v)
	return b
}

func (b *recordBuilder) alpha(s string, n int) *recordBuilder {
	if len(s) < n {
		s += strings.Repeat(" ", n-len(s))
	}
	b.buf = append(b.buf, s[:n]...)
	return b
}

func (b *recordBuilder) stock(s string) *recordBuilder {
	return b.alpha(s, protocol.StockSize)
}

func (b *recordBuilder) bytes() []byte {
	return b.buf
}

// lengthPrefixed frames records the way FramingLengthPrefixed expects.
func lengthPrefixed(records ...[]byte) []byte {
	var out []byte
	for _, r := range records {
		out = binary.BigEndian.AppendUint16(out, uint16(len(r)))
		out = append(out, r...)
	}
	return out
}

type fixture struct {
	kind Kind
	raw  []byte
	want Body
}

// fixtures returns one valid record per supported kind.
func fixtures() []fixture {
	return []fixture{
		{
			kind: KindSystemEvent,
			raw:  newRecord('S').u8('O').bytes(),
			want: SystemEvent{EventCode: protocol.EventStartOfMessages},
		},
		{
			kind: KindStockDirectory,
			raw: newRecord('R').stock("AAPL").u8('Q').u8('N').u32(100).u8('N').u8('C').alpha("Z", 2).
				u8('P').u8('N').u8(' ').u8('1').u8('Y').u32(2).u8('N').bytes(),
			want: StockDirectory{
				Stock:               "AAPL",
				MarketCategory:      protocol.CategoryNasdaqGlobalSelect,
				FinancialStatus:     protocol.FinancialNormal,
				RoundLotSize:        100,
				RoundLotsOnly:       false,
				IssueClassification: protocol.IssueCommonStock,
				IssueSubType:        "Z",
				Authenticity:        protocol.AuthenticityProduction,
				ShortSaleThreshold:  protocol.TernaryNo,
				IPOFlag:             protocol.TernaryNotAvailable,
				LULDTier:            protocol.LULDTier1,
				ETPFlag:             protocol.TernaryYes,
				ETPLeverageFactor:   2,
				InverseIndicator:    false,
			},
		},
		{
			kind: KindTradingAction,
			raw:  newRecord('H').stock("MSFT").u8('T').u8(' ').alpha("", 4).bytes(),
			want: TradingAction{Stock: "MSFT", TradingState: protocol.StateTrading, Reason: ""},
		},
		{
			kind: KindRegSHORestriction,
			raw:  newRecord('Y').stock("TSLA").u8('1').bytes(),
			want: RegSHORestriction{Stock: "TSLA", Action: protocol.RegSHOIntradayPriceDrop},
		},
		{
			kind: KindMarketParticipantPosition,
			raw:  newRecord('L').alpha("GSCO", 4).stock("IBM").u8('Y').u8('N').u8('A').bytes(),
			want: MarketParticipantPosition{
				MPID:               "GSCO",
				Stock:              "IBM",
				PrimaryMarketMaker: true,
				Mode:               protocol.ModeNormal,
				State:              protocol.ParticipantActive,
			},
		},
		{
			kind: KindMWCBDeclineLevel,
			raw:  newRecord('V').u64(350000000000).u64(330000000000).u64(300000000000).bytes(),
			want: MWCBDeclineLevel{Level1: 350000000000, Level2: 330000000000, Level3: 300000000000},
		},
		{
			kind: KindMWCBStatus,
			raw:  newRecord('W').u8('2').bytes(),
			want: MWCBStatus{BreachedLevel: protocol.BreachedLevel2},
		},
		{
			kind: KindIPOQuotingPeriodUpdate,
			raw:  newRecord('K').stock("RDDT").u32(34200).u8('A').u32(340000).bytes(),
			want: IPOQuotingPeriodUpdate{
				Stock:       "RDDT",
				ReleaseTime: 34200 * 1000000000,
				Qualifier:   protocol.IPOReleaseAnticipated,
				IPOPrice:    340000,
			},
		},
		{
			kind: KindLULDAuctionCollar,
			raw:  newRecord('J').stock("GME").u32(200000).u32(220000).u32(180000).u32(1).bytes(),
			want: LULDAuctionCollar{
				Stock:          "GME",
				ReferencePrice: 200000,
				UpperPrice:     220000,
				LowerPrice:     180000,
				Extension:      1,
			},
		},
		{
			kind: KindOperationalHalt,
			raw:  newRecord('h').stock("QQQ").u8('B').u8('H').bytes(),
			want: OperationalHalt{Stock: "QQQ", MarketCode: protocol.MarketBX, Action: protocol.HaltActionHalted},
		},
		{
			kind: KindAddOrder,
			raw:  newRecord('A').u64(42).u8('B').u32(100).stock("AAPL").u32(1234500).bytes(),
			want: AddOrder{OrderRef: 42, Side: Buy, Shares: 100, Stock: "AAPL", Price: 1234500},
		},
		{
			kind: KindAddOrderMPID,
			raw:  newRecord('F').u64(43).u8('S').u32(200).stock("AAPL").u32(1235000).alpha("MSCO", 4).bytes(),
			want: AddOrderMPID{
				AddOrder:    AddOrder{OrderRef: 43, Side: Sell, Shares: 200, Stock: "AAPL", Price: 1235000},
				Attribution: "MSCO",
			},
		},
		{
			kind: KindOrderExecuted,
			raw:  newRecord('E').u64(42).u32(60).u64(9001).bytes(),
			want: OrderExecuted{OrderRef: 42, ExecutedShares: 60, MatchNumber: 9001},
		},
		{
			kind: KindOrderExecutedWithPrice,
			raw:  newRecord('C').u64(42).u32(40).u64(9002).u8('Y').u32(1234400).bytes(),
			want: OrderExecutedWithPrice{
				OrderExecuted:  OrderExecuted{OrderRef: 42, ExecutedShares: 40, MatchNumber: 9002},
				Printable:      true,
				ExecutionPrice: 1234400,
			},
		},
		{
			kind: KindOrderCancel,
			raw:  newRecord('X').u64(43).u32(50).bytes(),
			want: OrderCancel{OrderRef: 43, CancelledShares: 50},
		},
		{
			kind: KindOrderDelete,
			raw:  newRecord('D').u64(43).bytes(),
			want: OrderDelete{OrderRef: 43},
		},
		{
			kind: KindOrderReplace,
			raw:  newRecord('U').u64(44).u64(45).u32(300).u32(1233000).bytes(),
			want: OrderReplace{OriginalRef: 44, NewRef: 45, Shares: 300, Price: 1233000},
		},
		{
			kind: KindTrade,
			raw:  newRecord('P').u64(0).u8('B').u32(500).stock("NVDA").u32(9000000).u64(9003).bytes(),
			want: Trade{OrderRef: 0, Side: Buy, Shares: 500, Stock: "NVDA", Price: 9000000, MatchNumber: 9003},
		},
		{
			kind: KindCrossTrade,
			raw:  newRecord('Q').u64(1500000).stock("SPY").u32(5000000).u64(9004).u8('O').bytes(),
			want: CrossTrade{
				Shares:      1500000,
				Stock:       "SPY",
				CrossPrice:  5000000,
				MatchNumber: 9004,
				CrossType:   protocol.CrossOpening,
			},
		},
		{
			kind: KindBrokenTrade,
			raw:  newRecord('B').u64(9003).bytes(),
			want: BrokenTrade{MatchNumber: 9003},
		},
		{
			kind: KindNOII,
			raw: newRecord('I').u64(10000).u64(2500).u8('B').stock("AMZN").u32(1800000).u32(1795000).u32(1790000).
				u8('C').u8(' ').bytes(),
			want: NOII{
				PairedShares:    10000,
				ImbalanceShares: 2500,
				Direction:       protocol.ImbalanceBuy,
				Stock:           "AMZN",
				FarPrice:        1800000,
				NearPrice:       1795000,
				ReferencePrice:  1790000,
				CrossType:       protocol.ImbalanceCrossClosing,
				PriceVariation:  protocol.VariationNotCalculated,
			},
		},
		{
			kind: KindRetailPriceImprovement,
			raw:  newRecord('N').stock("KO").u8('A').bytes(),
			want: RetailPriceImprovement{Stock: "KO", InterestFlag: protocol.InterestBoth},
		},
		{
			kind: KindDirectListingCapitalRaise,
			raw: newRecord('O').stock("SPOT").u8('Y').u32(1000000).u32(2000000).u32(1500000).
				u64(34500000000000).u32(1400000).u32(1600000).bytes(),
			want: DirectListingCapitalRaise{
				Stock:              "SPOT",
				OpenEligible:       true,
				MinAllowablePrice:  1000000,
				MaxAllowablePrice:  2000000,
				NearExecutionPrice: 1500000,
				NearExecutionTime:  34500000000000,
				LowerCollar:        1400000,
				UpperCollar:        1600000,
			},
		},
	}
}

func fixtureOf(kind Kind) fixture {
	for _, f := range fixtures() {
		if f.kind == kind {
			return f
		}
	}
	panic("no fixture for " + kind.String())
}
