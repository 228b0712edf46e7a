package pipeline

import (
	"log/slog"
	"strings"

	"willcall/internal"
	"willcall/internal/util"
)

// BPT rows start with the numeric ticket serial.
func isBPTRow(line string) bool {
	_, ok := util.ParseLeadingInt(util.Field(util.SplitFields(line), 0))
	return ok
}

// GoldStar rows carry the quantity in the fourth column.
func isGoldStarRow(line string) bool {
	_, ok := util.ParseLeadingInt(util.Field(util.SplitFields(line), 3))
	return ok
}

func isGrouponRow(line string) bool {
	return strings.HasPrefix(line, "LG")
}

func isPurchasedGrouponRow(logger *slog.Logger) ClassifyFunc {
	return func(line string) bool {
		if !isGrouponRow(line) {
			return false
		}
		cleaned := util.StripQuotedCommas(line)
		if !strings.Contains(cleaned, "Purchased") {
			logger.Info("groupon row not purchased, skipping", "line", line)
			return false
		}
		return true
	}
}

func isExtraRow(line string) bool {
	return strings.Contains(line, ",")
}

func extractBPTRow(line, source string) internal.AttendeeRecord {
	fields := util.SplitFields(line)
	return newRecord(
		util.ToProperNameCase(util.Field(fields, 1)),
		util.ToProperNameCase(util.Field(fields, 2)),
		1,
		source,
		util.Field(fields, 0),
	)
}

// GoldStar always labels its rows itself.
func extractGoldStarRow(line, _ string) internal.AttendeeRecord {
	fields := util.SplitFields(line)
	qty, _ := util.ParseLeadingInt(util.Field(fields, 3))
	return newRecord(
		util.ToProperNameCase(util.Field(fields, 1)),
		util.ToProperNameCase(util.Field(fields, 2)),
		qty,
		internal.SourceGoldStar,
		util.Field(fields, 7),
	)
}

// Groupon exports a single "First Middle Last" column; the last token is the
// last name.
func extractGrouponRow(line, source string) internal.AttendeeRecord {
	fields := util.SplitFields(util.StripQuotedCommas(line))
	name := util.ToProperNameCase(strings.TrimSpace(util.Field(fields, 1)))
	parts := strings.Split(name, " ")
	last := parts[len(parts)-1]
	first := strings.Join(parts[:len(parts)-1], " ")
	return newRecord(last, first, 1, source, util.Field(fields, 0))
}

// Extra rows are hand-written as last,first,qty,source,ticket. The source
// column is always replaced with the reserved label.
func extractExtraRow(logger *slog.Logger) ExtractFunc {
	return func(line, _ string) internal.AttendeeRecord {
		fields := util.SplitFields(line)
		qty, ok := util.ParseLeadingInt(util.Field(fields, 2))
		if !ok {
			logger.Warn("extra row has no numeric quantity", "line", line)
		}
		return newRecord(util.Field(fields, 0), util.Field(fields, 1), qty, internal.SourceReserved, util.Field(fields, 4))
	}
}

func newRecord(last, first string, qty int, source, ticket string) internal.AttendeeRecord {
	return internal.AttendeeRecord{
		LastName:  last,
		FirstName: first,
		Qty:       qty,
		Source:    source,
		TicketIDs: []string{ticket},
	}
}
