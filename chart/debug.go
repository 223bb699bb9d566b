package chart

// dumpRange traces every edge in edges[start][end] at debug level, useful
// when stepping through a stuck or unexpectedly ambiguous parse.
func dumpRange(c *Chart, start, end int) {
	for _, e := range c.edges[start][end] {
		tracer().Debugf("edge %s", e)
	}
}

// DumpAgenda traces every edge currently waiting on an agenda, in pop
// order.
func DumpAgenda(a *Agenda) {
	tracer().Debugf("--- agenda (%d waiting, %d total pushed) ---", a.Len(), a.Total())
	for _, v := range a.stack.Values() {
		tracer().Debugf("edge %s", v.(*Edge))
	}
}
