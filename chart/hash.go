package chart

import (
	"fmt"

	"github.com/cnf/structhash"
)

// edgeHash derives a stable identity string for an edge from plain,
// structhash-friendly values — never from the production pointer directly,
// since grammar.Production embeds interface- and regexp-typed fields
// structhash can't walk. prodKey is production.Key(), already a pointer-
// identity digest computed in the grammar package.
func edgeHash(start, end uint, prodKey string, dot int) string {
	h, err := structhash.Hash(struct {
		Start uint
		End   uint
		Prod  string
		Dot   int
	}{Start: start, End: end, Prod: prodKey, Dot: dot}, 1)
	if err != nil {
		panic(fmt.Errorf("chart: hashing edge: %w", err))
	}
	return h
}
