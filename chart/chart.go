package chart

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/aeryon-dev/semchart/grammar"
)

// Chart is a 2D table of edges indexed by (start, end), together with a
// backpointer map recording, for every edge, the tuples of child edges that
// derived it (there can be more than one tuple when the edge is ambiguous).
//
// The teacher's Chart and IncrementalChart were two classes, the second
// growing its backing grid on demand; here that's one type with growth
// either disabled (NewChart, a fixed-capacity chart sized up front) or
// enabled (NewIncrementalChart, used by the robust driver so a chart can be
// reused and extended across incremental parse calls).
type Chart struct {
	edges        [][]map[string]*Edge
	byKey        map[string]*Edge
	backpointers map[string][][]*Edge

	size    int // logical size in use; edges[i][j] valid for i,j < size
	maxSize int // capacity of the edges grid
	incSize int // growth step; 0 means growth is disabled

	// ChartI is the parser's progress cursor: when ChartI == m, input is
	// being considered between token positions m-1 and m. Scan/predict
	// rules read and the robust driver advances it directly.
	ChartI int
}

func newGrid(n int) [][]map[string]*Edge {
	g := make([][]map[string]*Edge, n)
	for i := range g {
		g[i] = make([]map[string]*Edge, n)
		for j := range g[i] {
			g[i][j] = make(map[string]*Edge)
		}
	}
	return g
}

// NewChart builds a fixed-capacity chart for size token positions, 0
// through size-1 (size is normally len(tokens) + 1). Its capacity never
// grows.
func NewChart(size int) *Chart {
	return &Chart{
		edges:        newGrid(size),
		byKey:        make(map[string]*Edge),
		backpointers: make(map[string][][]*Edge),
		size:         size,
		maxSize:      size,
	}
}

// NewIncrementalChart builds a chart that starts empty and grows its grid
// by incSize whenever an added edge would exceed current capacity.
func NewIncrementalChart(initSize, incSize int) *Chart {
	return &Chart{
		edges:        newGrid(initSize),
		byKey:        make(map[string]*Edge),
		backpointers: make(map[string][][]*Edge),
		size:         0,
		maxSize:      initSize,
		incSize:      incSize,
	}
}

// Size returns the chart's logical size in use (not its grid capacity).
func (c *Chart) Size() int { return c.size }

func (c *Chart) increaseCapacity() {
	for i := 0; i < c.maxSize; i++ {
		for k := 0; k < c.incSize; k++ {
			c.edges[i] = append(c.edges[i], make(map[string]*Edge))
		}
	}
	newMax := c.maxSize + c.incSize
	for i := 0; i < c.incSize; i++ {
		row := make([]map[string]*Edge, newMax)
		for j := range row {
			row[j] = make(map[string]*Edge)
		}
		c.edges = append(c.edges, row)
	}
	c.maxSize = newMax
}

// AddEdge inserts edge into the chart and, whenever child is given, appends
// backpointer tuples to edge's existing ones: each tuple prev already has,
// extended by child, or just (child,) when prev is nil or has none. Nothing
// is recorded when edge and child share a key. Returns true if edge was not
// already present.
func (c *Chart) AddEdge(edge, prev, child *Edge) bool {
	if c.incSize > 0 {
		if int(edge.End)+1 > c.size {
			c.size = int(edge.End) + 1
		}
		for c.size >= c.maxSize {
			c.increaseCapacity()
		}
	}

	bucket := c.edges[edge.Start][edge.End]
	_, existed := bucket[edge.Key()]
	if !existed {
		bucket[edge.Key()] = edge
		c.byKey[edge.Key()] = edge
		tracer().Debugf("new edge %s", edge)
		dumpRange(c, int(edge.Start), int(edge.End))
	}

	if child != nil && edge.Key() != child.Key() {
		if prev == nil {
			c.backpointers[edge.Key()] = append(c.backpointers[edge.Key()], []*Edge{child})
		} else if prevTuples, ok := c.backpointers[prev.Key()]; ok {
			for _, tuple := range prevTuples {
				c.backpointers[edge.Key()] = append(c.backpointers[edge.Key()], append(append([]*Edge(nil), tuple...), child))
			}
		} else {
			c.backpointers[edge.Key()] = append(c.backpointers[edge.Key()], []*Edge{child})
		}
	}

	return !existed
}

// FilterEdgesForPrediction returns every edge ending at end, across all
// start positions — candidates for predicting off of an edge that just
// reached this position.
func (c *Chart) FilterEdgesForPrediction(end int) []*Edge {
	if end < 0 || end >= c.size {
		return nil
	}
	limit := c.size
	if end+1 < limit {
		limit = end + 1
	}
	var out []*Edge
	for i := 0; i < limit; i++ {
		for _, e := range c.edges[i][end] {
			out = append(out, e)
		}
	}
	return out
}

// FilterEdgesForCompletion returns every edge ending at end whose RHS right
// after the dot is, by identity, rhsAfterDot.
func (c *Chart) FilterEdgesForCompletion(end int, rhsAfterDot grammar.Element) []*Edge {
	if end < 0 || end >= c.size {
		return nil
	}
	limit := c.size
	if end+1 < limit {
		limit = end + 1
	}
	var out []*Edge
	for i := 0; i < limit; i++ {
		for _, e := range c.edges[i][end] {
			if e.Dot != len(e.Production.RHS) && e.Production.RHSAt(e.Dot) == rhsAfterDot {
				out = append(out, e)
			}
		}
	}
	return out
}

// FilterCompletedEdges returns every completed edge starting at start whose
// production's LHS is, by identity, lhs.
func (c *Chart) FilterCompletedEdges(start int, lhs grammar.Element) []*Edge {
	if start < 0 || start >= c.size {
		return nil
	}
	var out []*Edge
	for j := 0; j < c.size; j++ {
		for _, e := range c.edges[start][j] {
			if e.IsComplete() && e.Production.LHS == lhs {
				out = append(out, e)
			}
		}
	}
	return out
}

// RootCandidates returns every edge spanning the whole chart (from position
// 0 to its current logical size minus one), complete or not — callers
// filter for completeness and goal match themselves.
func (c *Chart) RootCandidates() []*Edge {
	if c.size <= 1 {
		return nil
	}
	var out []*Edge
	for _, e := range c.edges[0][c.size-1] {
		out = append(out, e)
	}
	return out
}

// Backpointers returns the child-edge tuples recorded for edge, and whether
// any were recorded at all (a leaf edge has none).
func (c *Chart) Backpointers(edge *Edge) ([][]*Edge, bool) {
	tuples, ok := c.backpointers[edge.Key()]
	return tuples, ok
}

func (c *Chart) String() string {
	var lines []string
	for i := 0; i < c.size; i++ {
		for j := 0; j < c.size; j++ {
			for _, e := range c.edges[i][j] {
				lines = append(lines, e.String())
			}
		}
	}
	slices.Sort(lines)
	return strings.Join(lines, "\n")
}

// PrintBackpointers renders every edge's backpointer tuples, sorted for
// deterministic debug output.
func (c *Chart) PrintBackpointers() string {
	var lines []string
	for key, tuples := range c.backpointers {
		edge := c.byKey[key]
		if edge == nil {
			continue
		}
		parts := make([]string, len(tuples))
		for i, tuple := range tuples {
			childStrs := make([]string, len(tuple))
			for j, ce := range tuple {
				childStrs[j] = ce.String()
			}
			parts[i] = "(" + strings.Join(childStrs, ", ") + ")"
		}
		lines = append(lines, edge.String()+" :-> {"+strings.Join(parts, ", ")+"}")
	}
	slices.Sort(lines)
	return strings.Join(lines, "\n")
}
