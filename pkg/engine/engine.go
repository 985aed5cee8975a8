package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/wildfunctions/symdiff/pkg/expr"
	"github.com/wildfunctions/symdiff/pkg/pool"
)

// Engine checks symbolic derivatives of random trees against finite
// differences.
type Engine struct {
	cfg     Config
	pool    pool.Pool
	rng     *rand.Rand
	metrics *Metrics
	log     *logrus.Entry
	runID   string
}

// New creates a new engine from the given config. Metrics are registered
// with reg, which may be nil.
func New(cfg Config, reg prometheus.Registerer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := pool.Get(cfg.Pool)
	if err != nil {
		return nil, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = rand.Int63()
	}
	seed := cfg.Seed
	runID := uuid.NewString()

	return &Engine{
		cfg:     cfg,
		pool:    p,
		rng:     rand.New(rand.NewSource(seed)),
		metrics: NewMetrics(reg),
		log: logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"pool":   cfg.Pool,
			"seed":   seed,
		}),
		runID: runID,
	}, nil
}

// Report summarizes a check run.
type Report struct {
	RunID    string        `json:"run_id"`
	Config   Config        `json:"config"`
	Cases    []Case        `json:"cases"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

// Err returns one error per failing case, or nil when every case passed.
func (r Report) Err() error {
	var errs *multierror.Error
	for _, c := range r.Cases {
		if c.OK {
			continue
		}
		if c.Error != "" {
			errs = multierror.Append(errs, fmt.Errorf("case %d: %s: %s", c.Index, c.Tree, c.Error))
			continue
		}
		errs = multierror.Append(errs, fmt.Errorf("case %d: d/d%s %s = %s: symbolic %g, numeric %g (allowed error %g)",
			c.Index, r.Config.Target, c.Tree, c.Derivative, c.Symbolic, c.Numeric, c.Allowed))
	}
	return errs.ErrorOrNil()
}

type job struct {
	idx   int
	tree  expr.Node
	point map[string]float64
}

// Run generates the configured number of trees and checks them across the
// worker pool. Cancelling ctx stops dispatch; the report then covers only
// the cases that ran and the context error is returned with it.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	e.log.WithFields(logrus.Fields{
		"trees":   e.cfg.Trees,
		"depth":   e.cfg.MaxDepth,
		"target":  e.cfg.Target,
		"workers": e.cfg.Workers,
	}).Info("Starting derivative check")

	// Trees and points come from the single seeded rng before any worker
	// starts, so a seed always reproduces the same cases.
	jobs := make([]job, e.cfg.Trees)
	for i := range jobs {
		jobs[i] = job{
			idx:   i,
			tree:  e.pool.RandomTree(e.rng, e.cfg.MaxDepth),
			point: e.randomPoint(),
		}
	}

	cases := e.checkAll(ctx, jobs)

	report := Report{
		RunID:  e.runID,
		Config: e.cfg,
	}
	for i, c := range cases {
		if c == nil {
			continue
		}
		c.Index = i
		report.Cases = append(report.Cases, *c)
		if c.OK {
			report.Passed++
		} else {
			report.Failed++
		}
	}
	report.Duration = time.Since(start)

	e.log.WithFields(logrus.Fields{
		"passed":   report.Passed,
		"failed":   report.Failed,
		"duration": report.Duration,
	}).Info("Derivative check finished")

	return report, ctx.Err()
}

func (e *Engine) randomPoint() map[string]float64 {
	point := map[string]float64{}
	for _, name := range e.pool.Variables() {
		point[name] = (e.rng.Float64()*2 - 1) * pool.PointRange
	}
	if _, ok := point[e.cfg.Target]; !ok {
		point[e.cfg.Target] = (e.rng.Float64()*2 - 1) * pool.PointRange
	}
	return point
}

// checkAll evaluates all jobs in parallel. Entries for jobs that were never
// dispatched stay nil.
func (e *Engine) checkAll(ctx context.Context, all []job) []*Case {
	cases := make([]*Case, len(all))

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan job)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				c := Check(j.tree, e.cfg.Target, j.point, e.cfg.Step, e.cfg.Tolerance)
				c.Tree = j.tree.String()
				e.metrics.observe(c, j.tree.NodeCount())
				if !c.OK {
					e.log.WithFields(logrus.Fields{
						"case":       j.idx,
						"tree":       c.Tree,
						"derivative": c.Derivative,
						"symbolic":   c.Symbolic,
						"numeric":    c.Numeric,
					}).Warn("Derivative mismatch")
				}
				cases[j.idx] = &c
			}
		}()
	}

dispatch:
	for _, j := range all {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- j:
		}
	}
	close(jobs)
	wg.Wait()

	return cases
}
