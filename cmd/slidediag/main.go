package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/diagnostics"
	"github.com/dshills/slidediag/pkg/export"
	"github.com/dshills/slidediag/pkg/slide"
)

const version = "1.0.0"

// CLI flags
var (
	domPath    = flag.String("dom", "", "Path to a DOMDocument JSON file (required)")
	irPath     = flag.String("ir", "", "Path to an IRDocument JSON file (required)")
	outPath    = flag.String("out", "", "Output path for the DiagDocument JSON (default: stdout)")
	svgPath    = flag.String("svg", "", "Optional path to also emit an SVG debug rendering")
	configPath = flag.String("config", "", "Optional YAML file overriding tunable constants")
	verbose    = flag.Bool("verbose", false, "Print a human-readable summary to stderr")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("slidediag version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *domPath == "" || *irPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -dom and -ir flags are required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning := diagconsts.Default()
	if *configPath != "" {
		if *verbose {
			fmt.Fprintf(os.Stderr, "Loading tuning overrides from %s\n", *configPath)
		}
		loaded, err := diagconsts.LoadTuning(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load tuning config: %w", err)
		}
		tuning = loaded
	}

	dom, err := loadDOM(*domPath)
	if err != nil {
		return fmt.Errorf("failed to load DOM document: %w", err)
	}
	ir, err := loadIR(*irPath)
	if err != nil {
		return fmt.Errorf("failed to load IR document: %w", err)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "Diagnosing slide with %d DOM elements, %d IR elements\n", len(dom.Elements), len(ir.Elements))
	}

	start := time.Now()
	diag := diagnostics.NewWithTuning(tuning).Diagnose(dom, ir)
	elapsed := time.Since(start)

	if *verbose {
		fmt.Fprintf(os.Stderr, "Diagnosis complete in %s\n", elapsed)
		printSummary(diag)
	}

	data, err := export.JSON(diag)
	if err != nil {
		return fmt.Errorf("failed to serialize diagnostics: %w", err)
	}

	if *outPath == "" {
		fmt.Println(string(data))
	} else if err := os.WriteFile(*outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}

	if *svgPath != "" {
		svgData := export.RenderSVG(dom, diag, export.DefaultSVGOptions())
		if err := os.WriteFile(*svgPath, svgData, 0644); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "Wrote SVG debug rendering to %s\n", *svgPath)
		}
	}

	return nil
}

func loadDOM(path string) (*slide.DOMDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading DOM file: %w", err)
	}
	var dom slide.DOMDocument
	if err := json.Unmarshal(data, &dom); err != nil {
		return nil, fmt.Errorf("parsing DOM JSON: %w", err)
	}
	if dom.Slide.W == 0 {
		dom.Slide.W = 1280
	}
	if dom.Slide.H == 0 {
		dom.Slide.H = 720
	}
	return &dom, nil
}

func loadIR(path string) (*slide.IRDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading IR file: %w", err)
	}
	var ir slide.IRDocument
	if err := json.Unmarshal(data, &ir); err != nil {
		return nil, fmt.Errorf("parsing IR JSON: %w", err)
	}
	return &ir, nil
}

func printSummary(diag *slide.DiagDocument) {
	fmt.Fprintln(os.Stderr, "\nDiagnostics Summary:")
	fmt.Fprintf(os.Stderr, "  Defects: %d (total severity %d)\n", diag.Summary.DefectCount, diag.Summary.TotalSeverity)
	fmt.Fprintf(os.Stderr, "  Warnings: %d (severity %d)\n", diag.Summary.WarningCount, diag.Summary.WarningSeverity)
	if len(diag.Summary.ConflictGraph) > 0 {
		fmt.Fprintf(os.Stderr, "  Conflict components: %d\n", len(diag.Summary.ConflictGraph))
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: slidediag -dom <dom.json> -ir <ir.json> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'slidediag -help' for detailed help")
}

func printHelp() {
	fmt.Printf("slidediag version %s\n\n", version)
	fmt.Println("Validates and diagnoses the visual layout of a rendered HTML slide.")
	fmt.Println("\nUsage:")
	fmt.Println("  slidediag -dom <dom.json> -ir <ir.json> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -dom string")
	fmt.Println("        Path to a DOMDocument JSON file")
	fmt.Println("  -ir string")
	fmt.Println("        Path to an IRDocument JSON file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -out string")
	fmt.Println("        Output path for the DiagDocument JSON (default: stdout)")
	fmt.Println("  -svg string")
	fmt.Println("        Optional path to also emit an SVG debug rendering")
	fmt.Println("  -config string")
	fmt.Println("        Optional YAML file overriding tunable constants")
	fmt.Println("  -verbose")
	fmt.Println("        Print a human-readable summary to stderr")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Diagnose a slide, writing diagnostics to stdout")
	fmt.Println("  slidediag -dom dom.json -ir ir.json")
	fmt.Println("\n  # Write diagnostics and an SVG debug view to files")
	fmt.Println("  slidediag -dom dom.json -ir ir.json -out diag.json -svg debug.svg")
	fmt.Println("\n  # Override tunable constants (safe padding, font tiers, ...)")
	fmt.Println("  slidediag -dom dom.json -ir ir.json -config tuning.yaml -verbose")
}
