package aco

// IterationStats summarises one completed colony iteration.
type IterationStats struct {
	// Iteration is the zero-based iteration number.
	Iteration int
	// IterationBest is the shortest tour length produced by this iteration's ants.
	IterationBest float64
	// BestLength is the incumbent length after this iteration.
	BestLength float64
	// Improved reports whether this iteration replaced the incumbent.
	Improved bool
	// PheromoneTotal is the sum of all pheromone cells after the update.
	PheromoneTotal float64
}

// Improvement describes a replacement of the incumbent.
type Improvement struct {
	Iteration int
	Ant       int
	Length    float64
	// Previous is the replaced length; 0 together with First=true for the first tour.
	Previous float64
	First    bool
}

// Observer receives colony events. Calls happen on the goroutine that called
// Run, in iteration order, never concurrently.
type Observer interface {
	OnIteration(stats IterationStats)
	OnImprovement(imp Improvement)
}

// NoopObserver is a no-op implementation of Observer.
type NoopObserver struct{}

func (NoopObserver) OnIteration(IterationStats) {}
func (NoopObserver) OnImprovement(Improvement)  {}

// ObserverFuncs adapts plain functions to Observer; nil fields are skipped.
type ObserverFuncs struct {
	Iteration   func(IterationStats)
	Improvement func(Improvement)
}

// OnIteration implements Observer.
func (f ObserverFuncs) OnIteration(s IterationStats) {
	if f.Iteration != nil {
		f.Iteration(s)
	}
}

// OnImprovement implements Observer.
func (f ObserverFuncs) OnImprovement(imp Improvement) {
	if f.Improvement != nil {
		f.Improvement(imp)
	}
}

var (
	_ Observer = NoopObserver{}
	_ Observer = ObserverFuncs{}
)
