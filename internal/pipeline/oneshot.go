package pipeline

import (
	"willcall/internal"
	"willcall/internal/util"
)

type LineVerdict struct {
	LineNo   int
	Line     string
	Accepted bool
	Record   *internal.AttendeeRecord
}

// InspectLines reports how a vendor's classifier treats each line of text,
// with the extracted record for accepted lines.
func InspectLines(vendor Vendor, text, label string) []LineVerdict {
	lines := util.SplitLines(text)
	out := make([]LineVerdict, 0, len(lines))
	for i, line := range lines {
		v := LineVerdict{LineNo: i + 1, Line: line, Accepted: vendor.Classify(line)}
		if v.Accepted {
			rec := vendor.Extract(line, label)
			v.Record = &rec
		}
		out = append(out, v)
	}
	return out
}

// InspectFile loads path the same way a build does and inspects it.
func InspectFile(vendor Vendor, path, label string) ([]LineVerdict, error) {
	text, err := LoadSource(path)
	if err != nil {
		return nil, err
	}
	return InspectLines(vendor, text, label), nil
}
