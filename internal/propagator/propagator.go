// Package propagator runs the main simulation loop: at each tick,
// refresh the ephemeris on schedule, advance every small body under the
// combined gravity of the Sun, Earth, and Moon, and emit the resulting
// records in a deterministic order — spec.md §5.
package propagator

import (
	"context"
	"runtime"
	"sync"

	"orbitsim/internal/environment"
	"orbitsim/internal/output"
	"orbitsim/internal/perturb"
	"orbitsim/internal/simerr"
	"orbitsim/internal/smallbody"
	"orbitsim/internal/vector"
)

// Config controls the tick cadence and worker pool size.
type Config struct {
	StepSeconds         float64
	SolarRefreshSeconds float64 // ephemeris refresh interval; must be >= StepSeconds
	EndSeconds          float64 // 0 means run until the context is cancelled
	Workers             int     // <=0 means runtime.GOMAXPROCS(0)
	SummaryOnly         bool    // emit one combined PerturbationRecord per body per tick instead of one per ephemeris body
}

// Propagator advances a set of small bodies through an Environment,
// writing records to a Sink.
type Propagator struct {
	env    *environment.Environment
	bodies []smallbody.Body
	cfg    Config
	sink   output.Sink
}

// New builds a Propagator. cfg.Workers, if unset, defaults to
// runtime.GOMAXPROCS(0).
func New(env *environment.Environment, bodies []smallbody.Body, cfg Config, sink output.Sink) *Propagator {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.SolarRefreshSeconds < cfg.StepSeconds {
		cfg.SolarRefreshSeconds = cfg.StepSeconds
	}
	return &Propagator{env: env, bodies: bodies, cfg: cfg, sink: sink}
}

// Run advances the simulation one tick at a time until ctx is cancelled
// or, if cfg.EndSeconds > 0, that many simulated seconds have elapsed.
// Per spec.md §5, tick N's updates are fully committed before tick N+1
// begins; cancellation is observed only between ticks, never mid-tick.
func (p *Propagator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if p.env.SimTimeS-p.env.LastSolarUpdateS >= p.cfg.SolarRefreshSeconds {
			if err := p.emitSolarObjects(); err != nil {
				return err
			}
			p.env.SetDay(p.env.Day + (p.env.SimTimeS-p.env.LastSolarUpdateS)/86400)
			p.env.Refresh()
		}

		if err := p.tick(); err != nil {
			return err
		}

		p.env.SimTimeS += p.cfg.StepSeconds
		if p.cfg.EndSeconds > 0 && p.env.SimTimeS >= p.cfg.EndSeconds {
			return nil
		}
	}
}

type tickResult struct {
	newPos, newVel vector.Vector3
	perBody        []perturb.Record
	summed         perturb.Record
	err            error
}

type tickJob struct {
	idx      int
	resultCh chan tickResult
}

// tick computes one step for every small body. Workers pull jobs off a
// shared channel the way internal/d2prog's worker pool pulls arcs, but
// each job carries its own one-slot result channel; a second channel
// (orderCh) carries those result channels in submission order, and the
// drain loop below blocks on them strictly in that order. This is
// d2prog's prCh pattern: output determinism comes from the order results
// are *drained* in, not from the order workers *finish* in.
func (p *Propagator) tick() error {
	n := len(p.bodies)
	if n == 0 {
		return nil
	}

	workers := p.cfg.Workers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	jobCh := make(chan tickJob, n)
	orderCh := make(chan chan tickResult, n)
	for idx := 0; idx < n; idx++ {
		rc := make(chan tickResult, 1)
		jobCh <- tickJob{idx: idx, resultCh: rc}
		orderCh <- rc
	}
	close(jobCh)
	close(orderCh)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				b := p.bodies[j.idx]
				newPos, newVel, perBody, summed, err := perturb.Step(p.env, b.ID, b.Position, b.Velocity, p.cfg.StepSeconds)
				j.resultCh <- tickResult{newPos: newPos, newVel: newVel, perBody: perBody, summed: summed, err: err}
			}
		}()
	}

	results := make([]tickResult, n)
	idx := 0
	for rc := range orderCh {
		results[idx] = <-rc
		idx++
	}
	wg.Wait()

	for idx := 0; idx < n; idx++ {
		if results[idx].err != nil {
			return results[idx].err
		}
	}

	for idx := 0; idx < n; idx++ {
		r := results[idx]
		p.bodies[idx].Position = r.newPos
		p.bodies[idx].Velocity = r.newVel

		if p.cfg.SummaryOnly {
			if err := p.writePerturbation(p.bodies[idx].ID, r.summed); err != nil {
				return err
			}
			continue
		}
		for _, rec := range r.perBody {
			if err := p.writePerturbation(p.bodies[idx].ID, rec); err != nil {
				return err
			}
		}
	}

	for idx := 0; idx < n; idx++ {
		b := p.bodies[idx]
		if err := p.sink.WriteObjectState(output.ObjectStateRecord{
			BodyID: b.ID, Kind: b.Kind.String(), SimTimeS: p.env.SimTimeS,
			X: b.Position.X, Y: b.Position.Y, Z: b.Position.Z,
			VX: b.Velocity.X, VY: b.Velocity.Y, VZ: b.Velocity.Z,
		}); err != nil {
			return simerr.Wrap(simerr.OutputSinkFailure, "writing object state record", err)
		}
	}
	return nil
}

func (p *Propagator) emitSolarObjects() error {
	for _, b := range p.env.Bodies() {
		m := b.Coords.ToMeters()
		if err := p.sink.WriteSolarObject(output.SolarObjectRecord{
			SimTimeS: p.env.SimTimeS, Kind: b.Kind.String(),
			X: m.Vec.X, Y: m.Vec.Y, Z: m.Vec.Z,
		}); err != nil {
			return simerr.Wrap(simerr.OutputSinkFailure, "writing solar object record", err)
		}
	}
	return nil
}

func (p *Propagator) writePerturbation(id uint32, rec perturb.Record) error {
	if err := p.sink.WritePerturbation(output.PerturbationRecord{
		BodyID: id, SimTimeS: rec.SimTimeS, PerturbType: rec.Kind,
		AX: rec.Accel.X, AY: rec.Accel.Y, AZ: rec.Accel.Z,
	}); err != nil {
		return simerr.Wrap(simerr.OutputSinkFailure, "writing perturbation record", err)
	}
	return nil
}
