package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"willcall/internal"
)

var ErrUnknownVendor = errors.New("unknown vendor")

// ClassifyFunc reports whether a raw line is one of the vendor's data rows.
type ClassifyFunc func(line string) bool

// ExtractFunc turns a classified line into a record labelled with source.
type ExtractFunc func(line, source string) internal.AttendeeRecord

type Vendor struct {
	Name     internal.Vendor
	Classify ClassifyFunc
	Extract  ExtractFunc
}

type Options struct {
	// GrouponRequirePurchased rejects LG rows that are not marked Purchased.
	GrouponRequirePurchased bool
	Logger                  *slog.Logger
}

type Registry struct {
	vendors map[internal.Vendor]Vendor
}

func NewRegistry(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	grouponClassify := ClassifyFunc(isGrouponRow)
	if opts.GrouponRequirePurchased {
		grouponClassify = isPurchasedGrouponRow(logger)
	}

	r := &Registry{vendors: map[internal.Vendor]Vendor{}}
	r.Register(Vendor{Name: internal.VendorBPT, Classify: isBPTRow, Extract: extractBPTRow})
	r.Register(Vendor{Name: internal.VendorGoldStar, Classify: isGoldStarRow, Extract: extractGoldStarRow})
	r.Register(Vendor{Name: internal.VendorGroupon, Classify: grouponClassify, Extract: extractGrouponRow})
	r.Register(Vendor{Name: internal.VendorExtra, Classify: isExtraRow, Extract: extractExtraRow(logger)})
	return r
}

// Register adds or replaces the vendor stored under v.Name.
func (r *Registry) Register(v Vendor) {
	r.vendors[v.Name] = v
}

func (r *Registry) Lookup(name internal.Vendor) (Vendor, error) {
	v, ok := r.vendors[name]
	if !ok {
		return Vendor{}, fmt.Errorf("%w: %s", ErrUnknownVendor, name)
	}
	return v, nil
}

func (r *Registry) Names() []internal.Vendor {
	out := make([]internal.Vendor, 0, len(r.vendors))
	for name := range r.vendors {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func ParseVendor(input string) (internal.Vendor, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "bpt":
		return internal.VendorBPT, nil
	case "goldstar", "gs":
		return internal.VendorGoldStar, nil
	case "groupon":
		return internal.VendorGroupon, nil
	case "extra":
		return internal.VendorExtra, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownVendor, input)
	}
}

// DefaultLabel is the source label a vendor's rows carry when no season or
// override label applies.
func DefaultLabel(v internal.Vendor) string {
	switch v {
	case internal.VendorBPT:
		return internal.SourceBPT
	case internal.VendorGoldStar:
		return internal.SourceGoldStar
	case internal.VendorGroupon:
		return internal.SourceGroupon
	default:
		return internal.SourceReserved
	}
}
