// Package service orchestrates the two ingestion paths this module
// supports - a truth table read from a PLA file, or a SyReC program
// already available as syrec/ir (construction from SyReC source text
// is external to this core, per spec.md §1) - through synthesis and
// into a circuit keyed by a generated id, the way the teacher's
// qservice wraps qprog synthesis/rendering behind one Service
// interface and a ProgramStore.
package service

import (
	"fmt"
	"io"

	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/cube"
	"github.com/kegliz/syrecgo/ddsynth"
	"github.com/kegliz/syrecgo/gate"
	"github.com/kegliz/syrecgo/internal/logger"
	"github.com/kegliz/syrecgo/pla"
	"github.com/kegliz/syrecgo/syrec/ir"
	"github.com/kegliz/syrecgo/syrec/synth"
)

// PLAOptions controls the coding-technique embedding used when the
// table isn't already reversible; it is ignored when the table
// qualifies for the direct one-pass path.
type PLAOptions struct {
	AdditionalLine bool
}

// Options configures a Service.
type Options struct {
	Logger *logger.Logger
	Store  Store
}

// Service is the orchestration surface internal/server's handlers and
// cmd/syrec both call into.
type Service interface {
	SynthesizePLA(log *logger.Logger, r io.Reader, opts PLAOptions) (id string, err error)
	SynthesizeProgram(log *logger.Logger, program *ir.Program, backend synth.Backend, settings synth.Settings) (id string, err error)
	QASM(id string) (string, error)
	Circuit(id string) (*circuit.Circuit, error)
}

type service struct {
	logger *logger.Logger
	store  Store
}

// NewService creates a Service, defaulting to an info-level logger and
// a fresh in-memory store when the caller doesn't supply one.
func NewService(opts Options) Service {
	if opts.Logger == nil {
		opts.Logger = logger.NewLogger(logger.LoggerOptions{})
	}
	if opts.Store == nil {
		opts.Store = NewMemStore()
	}
	return &service{logger: opts.Logger, store: opts.Store}
}

// SynthesizePLA reads r as a PLA file and synthesizes its truth table:
// directly via ddsynth.SynthesizeOnePass when the table is already a
// complete bijection, otherwise via ddsynth.SynthesizeCodingTechniques
// (whose embedding handles the collisions/missing rows a one-pass
// synthesis can't).
func (s *service) SynthesizePLA(log *logger.Logger, r io.Reader, opts PLAOptions) (string, error) {
	if log == nil {
		log = s.logger
	}
	res, err := pla.Read(r)
	if err != nil {
		return "", fmt.Errorf("service: reading pla: %w", err)
	}

	var c *circuit.Circuit
	if isReversible(res.Table) {
		log.Debug().Msg("table already reversible, using one-pass synthesis")
		c = ddsynth.SynthesizeOnePass(res.Table)
	} else {
		log.Debug().Bool("additionalLine", opts.AdditionalLine).Msg("table needs coding-technique embedding")
		c = ddsynth.SynthesizeCodingTechniques(res.Table, opts.AdditionalLine)
	}
	applyLabels(c, res)

	id := s.store.Save(c)
	log.Info().Str("id", id).Int("lines", c.NumLines()).Int("gates", c.NumGates()).Msg("pla synthesis complete")
	return id, nil
}

// SynthesizeProgram walks an already-constructed SyReC program through
// synth.Synthesize. The caller is responsible for producing program
// (e.g. via a SyReC front end built on top of syrec/ir) - this core
// never parses SyReC source itself.
func (s *service) SynthesizeProgram(log *logger.Logger, program *ir.Program, backend synth.Backend, settings synth.Settings) (string, error) {
	if log == nil {
		log = s.logger
	}
	c := circuit.New()
	ok, err := synth.Synthesize(backend, c, program, settings)
	if !ok {
		if err == nil {
			err = fmt.Errorf("service: program synthesis failed")
		}
		log.Error().Err(err).Msg("program synthesis failed")
		return "", err
	}

	id := s.store.Save(c)
	log.Info().Str("id", id).Int("lines", c.NumLines()).Int("gates", c.NumGates()).Msg("program synthesis complete")
	return id, nil
}

// QASM renders the circuit stored under id as OpenQASM 3 text.
func (s *service) QASM(id string) (string, error) {
	c, err := s.store.Get(id)
	if err != nil {
		return "", err
	}
	return c.WriteQASM(), nil
}

// Circuit returns the circuit stored under id.
func (s *service) Circuit(id string) (*circuit.Circuit, error) {
	return s.store.Get(id)
}

// isReversible reports whether t is already a complete bijection: every
// input pattern of t's width is covered exactly once and no two rows
// concretize to the same output. ddsynth.SynthesizeOnePass's contract
// requires both; anything else needs SynthesizeCodingTechniques's
// collision/missing-row handling first.
func isReversible(t *cube.TruthTable) bool {
	n := t.NInputs()
	if n == 0 || t.Size() != 1<<uint(n) {
		return false
	}
	seen := make(map[uint64]struct{}, t.Size())
	for _, e := range t.Entries() {
		if e.Output.HasDontCare() {
			return false
		}
		v, ok := e.Output.ToInteger()
		if !ok {
			return false
		}
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// applyLabels best-effort renames the leading input/output lines from
// a PLA file's .ilb/.ob directives; coding-technique synthesis can add
// ancilla/decoder lines beyond what the PLA declared; those keep their
// synthesized x%d/y%d names.
func applyLabels(c *circuit.Circuit, res *pla.Result) {
	for i, name := range res.InputLabels {
		if i >= c.NumLines() {
			break
		}
		c.SetInputName(gate.Line(i), name)
	}
	for i, name := range res.OutputLabels {
		if i >= c.NumLines() {
			break
		}
		c.SetOutputName(gate.Line(i), name)
	}
}
