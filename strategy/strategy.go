package strategy

// TopDown predicts every production of a nonterminal before ever trying to
// scan it against input — simplest to reason about, slowest on grammars
// with many alternatives.
var TopDown = Strategy{
	Name:      "top-down",
	InitRules: []InitRule{TopDownInit{}},
	EdgeRules: []EdgeRule{TopDownScan{}, TopDownPredict{}, Complete{}},
}

// BottomUp scans every terminal the grammar could possibly start with
// against input first, then predicts upward from whatever matched —
// avoids wasted top-down prediction, at the cost of trying terminals the
// context could never actually license.
var BottomUp = Strategy{
	Name:      "bottom-up",
	InitRules: []InitRule{BottomUpScan{}},
	EdgeRules: []EdgeRule{BottomUpPredict{}, Complete{}},
}

// LeftCorner predicts only productions whose left-corner terminal can
// match the current phrase, combining top-down's precision with
// bottom-up's restraint. This is the default strategy for the robust
// driver.
var LeftCorner = Strategy{
	Name:      "left-corner",
	InitRules: []InitRule{TopDownInit{}},
	EdgeRules: []EdgeRule{LeftCornerPredictScan{}, Complete{}},
}
