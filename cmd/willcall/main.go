package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"willcall/internal"
	"willcall/internal/config"
	"willcall/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	cmd := os.Args[1]
	switch cmd {
	case "build":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		bpt := fs.String("bpt", "", "Brown Paper Tickets CSV file")
		gs := fs.String("gs", "", "GoldStar CSV file")
		groupon := fs.String("groupon", "", "Groupon CSV file")
		bptSeason := fs.String("bpt-season", "", "Brown Paper Tickets season passes CSV file")
		grouponSeason := fs.String("groupon-season", "", "Groupon season passes CSV file")
		extra := fs.String("extra", "", "extra entries such as reserved tickets")
		out := fs.String("out", cfg.OutputPath, "output file (.csv or .xlsx)")
		strict := fs.Bool("groupon-strict", cfg.GrouponRequirePurchased, "only accept Groupon rows marked Purchased")
		_ = fs.Parse(os.Args[2:])

		must(cfg.Require("--bpt", *bpt))
		must(cfg.Require("--gs", *gs))
		must(cfg.Require("--groupon", *groupon))

		paths := pipeline.SourcePaths{
			BPT:           *bpt,
			GoldStar:      *gs,
			Groupon:       *groupon,
			BPTSeason:     *bptSeason,
			GrouponSeason: *grouponSeason,
			Extra:         *extra,
		}
		inputs := paths.Inputs()
		for _, in := range inputs {
			if strings.TrimSpace(in.Path) == "" {
				fmt.Printf("INFO: No %s File\n", in.Label)
				continue
			}
			fmt.Printf("Reading %s File: %s\n", in.Label, in.Path)
		}
		fmt.Printf("Output file: %s\n", *out)

		registry := pipeline.NewRegistry(pipeline.Options{GrouponRequirePurchased: *strict, Logger: logger})
		svc := pipeline.NewBuildService(registry, logger)
		result, err := svc.Build(inputs)
		must(err)
		must(svc.WriteOutput(result, *out))

		if cfg.SummaryTable {
			fmt.Println(renderSummary(result.Sources))
		}
		fmt.Printf("build done extracted=%d rows=%d output=%s\n", result.Extracted, len(result.Records), *out)
	case "inspect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		vendorName := fs.String("vendor", "", "bpt|goldstar|groupon|extra")
		input := fs.String("input", "", "vendor export file")
		label := fs.String("label", "", "source label for extracted rows")
		strict := fs.Bool("groupon-strict", cfg.GrouponRequirePurchased, "only accept Groupon rows marked Purchased")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*vendorName) == "" || strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--vendor and --input are required"))
		}

		name, err := pipeline.ParseVendor(*vendorName)
		must(err)
		registry := pipeline.NewRegistry(pipeline.Options{GrouponRequirePurchased: *strict, Logger: logger})
		vendor, err := registry.Lookup(name)
		must(err)
		source := *label
		if source == "" {
			source = pipeline.DefaultLabel(name)
		}

		verdicts, err := pipeline.InspectFile(vendor, *input, source)
		must(err)
		accepted := 0
		for _, v := range verdicts {
			if !v.Accepted {
				fmt.Printf("%5d  skip  %s\n", v.LineNo, v.Line)
				continue
			}
			accepted++
			fmt.Printf("%5d  row   %s\n", v.LineNo, pipeline.FormatRecord(*v.Record))
		}
		fmt.Printf("inspect done vendor=%s lines=%d rows=%d\n", name, len(verdicts), accepted)
	case "range":
		ids := os.Args[2:]
		if len(ids) == 0 {
			must(fmt.Errorf("at least one ticket id is required"))
		}
		fmt.Println(pipeline.RenderTicketRange(ids))
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: willcall <command>")
	fmt.Println("commands:")
	fmt.Println("  build --bpt=... --gs=... --groupon=... [--bpt-season=...] [--groupon-season=...] [--extra=...] [--out=list.csv] [--groupon-strict=true]")
	fmt.Println("  inspect --vendor=" + vendorNames() + " --input=... [--label=...]")
	fmt.Println("  range <ticket id>...")
}

func vendorNames() string {
	names := []string{}
	for _, v := range []internal.Vendor{internal.VendorBPT, internal.VendorGoldStar, internal.VendorGroupon, internal.VendorExtra} {
		names = append(names, string(v))
	}
	return strings.Join(names, "|")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
