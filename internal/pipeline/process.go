package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"willcall/internal"
	"willcall/internal/util"
)

type BuildService struct {
	registry *Registry
	logger   *slog.Logger
	load     func(path string) (string, error)
}

func NewBuildService(registry *Registry, logger *slog.Logger) *BuildService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildService{registry: registry, logger: logger, load: LoadSource}
}

type BuildResult struct {
	Records   []internal.AttendeeRecord
	Sources   []internal.SourceSummary
	Extracted int
	CSV       string
}

// SourcePaths names the export file for each source; empty paths are absent.
type SourcePaths struct {
	BPT           string
	GoldStar      string
	Groupon       string
	BPTSeason     string
	GrouponSeason string
	Extra         string
}

// Inputs lists the sources in the order their records are concatenated.
// BPT, GoldStar and Groupon are required.
func (p SourcePaths) Inputs() []internal.SourceInput {
	return []internal.SourceInput{
		{Vendor: internal.VendorBPT, Label: internal.SourceBPT, Path: p.BPT, Required: true},
		{Vendor: internal.VendorGoldStar, Label: internal.SourceGoldStar, Path: p.GoldStar, Required: true},
		{Vendor: internal.VendorGroupon, Label: internal.SourceGroupon, Path: p.Groupon, Required: true},
		{Vendor: internal.VendorBPT, Label: internal.SourceBPTSeason, Path: p.BPTSeason},
		{Vendor: internal.VendorGroupon, Label: internal.SourceGrouponSeason, Path: p.GrouponSeason},
		{Vendor: internal.VendorExtra, Label: "Extra", Path: p.Extra},
	}
}

// Build reads every source up front, extracts and merges their records, and
// renders the will-call CSV. A required source that cannot be read fails the
// whole build.
func (s *BuildService) Build(inputs []internal.SourceInput) (BuildResult, error) {
	texts := make([]string, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Path) == "" {
			if in.Required {
				return BuildResult{}, fmt.Errorf("missing required %s file", in.Label)
			}
			continue
		}
		text, err := s.load(in.Path)
		if err != nil {
			return BuildResult{}, fmt.Errorf("read %s file %s: %w", in.Label, in.Path, err)
		}
		texts[i] = text
	}

	result := BuildResult{Sources: make([]internal.SourceSummary, 0, len(inputs))}
	all := []internal.AttendeeRecord{}
	for i, in := range inputs {
		if strings.TrimSpace(in.Path) == "" {
			s.logger.Debug("no source file", "source", in.Label)
			result.Sources = append(result.Sources, internal.SourceSummary{Label: in.Label, Skipped: true})
			continue
		}
		vendor, err := s.registry.Lookup(in.Vendor)
		if err != nil {
			return BuildResult{}, err
		}
		records, summary := s.ReadRecords(vendor, texts[i], in.Label)
		summary.Path = in.Path
		result.Sources = append(result.Sources, summary)
		all = append(all, records...)
	}

	result.Extracted = len(all)
	result.Records = MergeAll(all)
	result.CSV = RenderCSV(result.Records)
	return result, nil
}

// ReadRecords classifies each line of text and extracts the accepted ones.
func (s *BuildService) ReadRecords(vendor Vendor, text, label string) ([]internal.AttendeeRecord, internal.SourceSummary) {
	lines := util.SplitLines(text)
	summary := internal.SourceSummary{Label: label, Lines: len(lines)}
	out := make([]internal.AttendeeRecord, 0, len(lines))
	for _, line := range lines {
		if !vendor.Classify(line) {
			summary.Rejected++
			continue
		}
		rec := vendor.Extract(line, label)
		if rec.LastName == "" && rec.FirstName == "" {
			s.logger.Warn("row has no attendee name", "source", label, "line", line)
		}
		out = append(out, rec)
	}
	summary.Accepted = len(out)
	return out, summary
}

// WriteOutput saves the merged list, as a workbook when outputPath ends in
// .xlsx and as CSV text otherwise.
func (s *BuildService) WriteOutput(result BuildResult, outputPath string) error {
	if strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		return ExportRecordsToXLSX(result.Records, outputPath)
	}
	return WriteCSV(result.CSV, outputPath)
}
