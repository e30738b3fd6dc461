package skim

import "fmt"

// FieldProvider supplies the nominal magnetic field for a run. Conditions
// database access lives behind this interface; the producer only sees runs
// and teslas.
type FieldProvider interface {
	// FieldAt returns the field in tesla for the run, or an error if the
	// run has no calibration entry. A miss is fatal for the whole job: the
	// producer never substitutes a default field.
	FieldAt(run int) (float64, error)
}

// StaticFieldProvider serves fields from a fixed run table, typically the one
// loaded with the configuration bundle.
type StaticFieldProvider map[int]float64

func (p StaticFieldProvider) FieldAt(run int) (float64, error) {
	tesla, ok := p[run]
	if !ok {
		return 0, fmt.Errorf("no magnetic field entry for run %d", run)
	}
	return tesla, nil
}

// fieldCache memoizes the provider lookup per run. Events arrive grouped by
// run, so the provider is consulted exactly once per run change. The cache
// is owned by one producer; sharing a producer across goroutines would need
// external synchronization around it.
type fieldCache struct {
	provider FieldProvider
	run      int
	tesla    float64
	valid    bool
}

func (c *fieldCache) fieldFor(run int) (float64, error) {
	if c.valid && c.run == run {
		return c.tesla, nil
	}
	tesla, err := c.provider.FieldAt(run)
	if err != nil {
		return 0, err
	}
	c.run = run
	c.tesla = tesla
	c.valid = true
	return tesla, nil
}
