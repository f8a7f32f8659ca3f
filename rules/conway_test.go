package rules

import (
	"testing"

	"github.com/sheikhrachel/go-gol/cell"
)

func TestNextStateTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := cell.Dead
		if n == 2 || n == 3 {
			wantAlive = cell.Alive
		}
		if got := NextState(cell.Alive, n); got != wantAlive {
			t.Errorf("NextState(alive, %d) = %v, want %v", n, got, wantAlive)
		}

		wantDead := cell.Dead
		if n == 3 {
			wantDead = cell.Alive
		}
		if got := NextState(cell.Dead, n); got != wantDead {
			t.Errorf("NextState(dead, %d) = %v, want %v", n, got, wantDead)
		}
	}
}

func TestApplyConwayRulesMatchesNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			want := NextState(cell.FromBool(alive), n) == cell.Alive
			if got := ApplyConwayRules(n, alive); got != want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", n, alive, got, want)
			}
		}
	}
}
