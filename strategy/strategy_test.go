package strategy

import "testing"

func TestIsLeftCornerOnlyTrueForLeftCornerStrategy(t *testing.T) {
	if TopDown.IsLeftCorner() {
		t.Fatal("TopDown must not report IsLeftCorner")
	}
	if BottomUp.IsLeftCorner() {
		t.Fatal("BottomUp must not report IsLeftCorner")
	}
	if !LeftCorner.IsLeftCorner() {
		t.Fatal("LeftCorner must report IsLeftCorner")
	}
}

func TestStrategiesHaveAtLeastOneInitAndEdgeRule(t *testing.T) {
	for _, s := range []Strategy{TopDown, BottomUp, LeftCorner} {
		if len(s.InitRules) == 0 {
			t.Fatalf("%s: InitRules must not be empty", s.Name)
		}
		if len(s.EdgeRules) == 0 {
			t.Fatalf("%s: EdgeRules must not be empty", s.Name)
		}
	}
}

func TestEveryStrategyRunsCompleteAsAnEdgeRule(t *testing.T) {
	for _, s := range []Strategy{TopDown, BottomUp, LeftCorner} {
		found := false
		for _, r := range s.EdgeRules {
			if _, ok := r.(Complete); ok {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: every strategy must run the Complete rule on each popped edge", s.Name)
		}
	}
}
