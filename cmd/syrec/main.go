// Command syrec synthesizes a reversible circuit from a PLA truth
// table and writes it out as OpenQASM 3, optionally alongside a PNG
// rendering of the gate stream. A SyReC *program* can be synthesized
// the same way through the syrec/synth package's Go API once a caller
// has built its syrec/ir representation - parsing SyReC source text
// into that IR is outside this core's scope (spec.md §1), so this CLI
// only drives the PLA entry point.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kegliz/syrecgo/internal/logger"
	"github.com/kegliz/syrecgo/internal/service"
	"github.com/kegliz/syrecgo/render"
)

func main() {
	var (
		plaPath        = flag.String("pla", "", "path to a PLA file to synthesize (required)")
		qasmOut        = flag.String("qasm", "", "path to write OpenQASM 3 output (default: stdout)")
		pngOut         = flag.String("png", "", "path to write a PNG rendering of the circuit (optional)")
		additionalLine = flag.Bool("additional-line", false, "use the extra-line coding-technique variant when the table isn't already reversible")
		debug          = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	l := logger.NewLogger(logger.LoggerOptions{Debug: *debug})

	if *plaPath == "" {
		l.Error().Msg("-pla is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(l, *plaPath, *qasmOut, *pngOut, *additionalLine); err != nil {
		l.Error().Err(err).Msg("synthesis failed")
		os.Exit(1)
	}
}

func run(l *logger.Logger, plaPath, qasmOut, pngOut string, additionalLine bool) error {
	f, err := os.Open(plaPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", plaPath, err)
	}
	defer f.Close()

	svc := service.NewService(service.Options{Logger: l})
	id, err := svc.SynthesizePLA(l, f, service.PLAOptions{AdditionalLine: additionalLine})
	if err != nil {
		return err
	}

	qasm, err := svc.QASM(id)
	if err != nil {
		return err
	}

	if qasmOut == "" {
		fmt.Println(qasm)
	} else if err := os.WriteFile(qasmOut, []byte(qasm), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", qasmOut, err)
	}

	if pngOut != "" {
		circ, err := svc.Circuit(id)
		if err != nil {
			return err
		}
		if err := render.NewPNG(60).Save(pngOut, circ); err != nil {
			return fmt.Errorf("rendering %s: %w", pngOut, err)
		}
	}

	l.Info().Str("id", id).Msg("synthesis complete")
	return nil
}
