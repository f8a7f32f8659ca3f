package model

// Reporter observes the grid produced by each round
type Reporter interface {
	Report(round int, v View)
}

// ReporterFunc adapts a plain function to Reporter
type ReporterFunc func(round int, v View)

// Report calls f(round, v)
func (f ReporterFunc) Report(round int, v View) { f(round, v) }

// Reporters fans a round out to several reporters in order; nil entries are skipped
func Reporters(reps ...Reporter) Reporter {
	return ReporterFunc(func(round int, v View) {
		for _, r := range reps {
			if r != nil {
				r.Report(round, v)
			}
		}
	})
}

// Simulation drives repeated generations over a pair of buffers in one encoding
type Simulation[B any] struct {
	enc  Encoding[B]
	pool *BufferPool[B]
}

// NewSimulation returns a driver for enc. pool may be nil, in which case every run allocates
// its own second buffer.
func NewSimulation[B any](enc Encoding[B], pool *BufferPool[B]) *Simulation[B] {
	return &Simulation[B]{enc: enc, pool: pool}
}

// Encoding returns the encoding the simulation was built with
func (s *Simulation[B]) Encoding() Encoding[B] {
	return s.enc
}

/*
Run advances initial by iterations rounds and returns the buffer holding the final grid.

Each round clears the next buffer, steps the current one into it, reports it to rep and
swaps the two roles without copying. Run takes ownership of initial: once it returns, only
the returned buffer may be used. With zero iterations initial is returned untouched and rep
is never called.
*/
func (s *Simulation[B]) Run(initial B, size int, iterations uint, rep Reporter) B {
	if err := s.enc.Validate(size); err != nil {
		panic(err)
	}
	if iterations == 0 {
		return initial
	}

	var (
		cur  = initial
		next = s.acquire(size)
	)
	for round := uint(1); round <= iterations; round++ {
		s.enc.Clear(next, size)
		Step(s.enc, cur, next, size)
		if rep != nil {
			rep.Report(int(round), Bind(s.enc, next, size))
		}
		cur, next = next, cur
	}

	BufferToPool(s.pool, next, size)
	return cur
}

func (s *Simulation[B]) acquire(size int) B {
	if s.pool != nil {
		return s.pool.Get(size)
	}
	return s.enc.Alloc(size)
}

// Run is a convenience for NewSimulation(enc, nil).Run(initial, size, iterations, rep)
func Run[B any](enc Encoding[B], initial B, size int, iterations uint, rep Reporter) B {
	return NewSimulation(enc, nil).Run(initial, size, iterations, rep)
}
