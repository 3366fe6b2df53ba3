package protocol

// Field widths shared by several message bodies.
const (
	StockSize        = 8
	MPIDSize         = 4
	ReasonSize       = 4
	IssueSubTypeSize = 2
)
