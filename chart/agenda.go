package chart

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Agenda orders edges waiting to enter the chart. It is a LIFO: an edge
// pushed in is the next one popped, so a chart rule that just completed an
// edge gets to react to it (e.g. predict/complete off of it) before older,
// still-pending edges are revisited. This finishes a parse sooner than a
// FIFO agenda would, since freshly completed edges tend to unblock the most
// further progress.
type Agenda struct {
	stack *linkedliststack.Stack
	total int // edges ever pushed, including ones later popped
}

// NewAgenda returns an empty agenda.
func NewAgenda() *Agenda {
	return &Agenda{stack: linkedliststack.New()}
}

// Push adds a single edge.
func (a *Agenda) Push(e *Edge) {
	a.stack.Push(e)
	a.total++
}

// Extend adds a sequence of edges, in order, each becoming poppable before
// anything pushed earlier.
func (a *Agenda) Extend(edges []*Edge) {
	for _, e := range edges {
		a.Push(e)
	}
}

// Pop removes and returns the most recently pushed edge. The second return
// value is false if the agenda is empty.
func (a *Agenda) Pop() (*Edge, bool) {
	v, ok := a.stack.Pop()
	if !ok {
		return nil, false
	}
	return v.(*Edge), true
}

// Len returns the number of edges currently waiting.
func (a *Agenda) Len() int { return a.stack.Size() }

// Total returns the number of edges ever pushed onto this agenda.
func (a *Agenda) Total() int { return a.total }
