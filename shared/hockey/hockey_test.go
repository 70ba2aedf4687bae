package hockey

import "testing"

func TestSideOpponent(t *testing.T) {
	if SideTop.Opponent() != SideBottom || SideBottom.Opponent() != SideTop {
		t.Fatal("Opponent must swap ends")
	}
}

func TestGoalSpanCenteredOnField(t *testing.T) {
	if GoalSpanMax-GoalSpanMin != GoalWidth {
		t.Fatalf("goal span width %f, want %f", GoalSpanMax-GoalSpanMin, GoalWidth)
	}
	center := (GoalSpanMin + GoalSpanMax) / 2
	if center != FieldWidth/2 {
		t.Fatalf("goal mouth off center: %f", center)
	}
}

func TestServePuck(t *testing.T) {
	puck := ServePuck()
	if !puck.Locked {
		t.Fatal("serve must lock the puck")
	}
	if puck.VX != 0 || puck.VY != 0 {
		t.Fatalf("serve must be stationary, got (%f, %f)", puck.VX, puck.VY)
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "playing" || Phase(99).String() != "unknown" {
		t.Fatal("unexpected phase names")
	}
}
