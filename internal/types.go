package internal

// Vendor identifies a box-office export dialect.
type Vendor string

const (
	VendorBPT      Vendor = "bpt"
	VendorGoldStar Vendor = "goldstar"
	VendorGroupon  Vendor = "groupon"
	VendorExtra    Vendor = "extra"
)

const (
	SourceBPT           = "BPT"
	SourceBPTSeason     = "BPT Season"
	SourceGoldStar      = "GoldStar"
	SourceGroupon       = "Groupon"
	SourceGrouponSeason = "Groupon Season"
	SourceReserved      = "(Reserved)"
)

// AttendeeRecord is one named ticket holder. Records with the same
// (LastName, FirstName) are merged, summing Qty and concatenating TicketIDs.
type AttendeeRecord struct {
	LastName  string
	FirstName string
	Qty       int
	Source    string
	TicketIDs []string
}

type SourceInput struct {
	Vendor   Vendor
	Label    string
	Path     string
	Required bool
}

type SourceSummary struct {
	Label    string
	Path     string
	Lines    int
	Accepted int
	Rejected int
	Skipped  bool
}
