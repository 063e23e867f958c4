package firm

import (
	"fmt"

	ferrors "github.com/ktynski/firm/errors"
	"github.com/ktynski/firm/fixedpoint"
	"github.com/ktynski/firm/presheaf"
	"github.com/ktynski/firm/telemetry"
	"github.com/ktynski/firm/universe"
)

// DefaultMaxLevel is the top universe level built when no option
// overrides it. Four levels are enough for every canonical structure.
const DefaultMaxLevel = 3

// Foundation is the capability registry: the universe hierarchy, the
// two categories built over it, and the telemetry emitter they share.
// Dependents receive the Foundation by reference; nothing here is a
// package-level singleton.
type Foundation struct {
	Hierarchy   *universe.Hierarchy
	Presheaves  *presheaf.Category
	FixedPoints *fixedpoint.Category
	Telemetry   *telemetry.Emitter
}

// Option configures a Foundation under construction.
type Option func(*config)

type config struct {
	maxLevel int
	store    telemetry.Store
}

// WithMaxLevel sets the top universe level.
func WithMaxLevel(n int) Option {
	return func(c *config) { c.maxLevel = n }
}

// WithTelemetryStore wires a store recording every law-check outcome.
// Without it, checks still run but leave no trail.
func WithTelemetryStore(store telemetry.Store) Option {
	return func(c *config) { c.store = store }
}

// New builds a Foundation with empty registries. Call Bootstrap to run
// the startup chain before querying derived reports.
func New(opts ...Option) *Foundation {
	cfg := config{maxLevel: DefaultMaxLevel}
	for _, opt := range opts {
		opt(&cfg)
	}

	emitter := telemetry.NewEmitter(cfg.store)
	hierarchy := universe.New(cfg.maxLevel)
	return &Foundation{
		Hierarchy:   hierarchy,
		Presheaves:  presheaf.NewCategory(hierarchy, presheaf.WithEmitter(emitter)),
		FixedPoints: fixedpoint.NewCategory(fixedpoint.WithEmitter(emitter)),
		Telemetry:   emitter,
	}
}

// Bootstrap runs the full startup chain: enable the self-reference
// foundation, construct the topos structure, register one Yoneda
// embedding per universe level, verify Grace-operator readiness, and
// seed the canonical fixed points. Every step is idempotent, so
// Bootstrap may be called again after a partial failure.
func (f *Foundation) Bootstrap() error {
	if !f.Hierarchy.EnableSelfReference() {
		_, err := f.Hierarchy.Totality()
		return err
	}

	report, err := f.Presheaves.ConstructToposStructure()
	if err != nil {
		return err
	}
	if !report.Complete() {
		return ferrors.New(ferrors.CodeInvalidStateToposIncomplete, "topos structure is incomplete")
	}

	for n := 0; n < f.Hierarchy.Len(); n++ {
		if _, err := f.Presheaves.YonedaEmbed(fmt.Sprintf("level_%d", n)); err != nil {
			return err
		}
	}

	if !f.Presheaves.PrepareForGraceOperator() {
		return ferrors.New(ferrors.CodeInvalidStateGraceUnready, "presheaf category is not ready for the Grace operator")
	}

	return f.FixedPoints.Seed()
}
