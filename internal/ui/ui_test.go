package ui

import (
	"strings"
	"testing"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range tests {
		if got := toRoman(in); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestWaveLabel(t *testing.T) {
	if got := WaveLabel(0, 5); got != "First wave in 5s" {
		t.Errorf("Expected first wave label, got %q", got)
	}
	if got := WaveLabel(3, 25); got != "Wave III - next in 25s" {
		t.Errorf("Expected wave III label, got %q", got)
	}
}

func TestStatsLines(t *testing.T) {
	lines := StatsLines(component.MatchStats{MatchTime: 125, RedDamageDealt: 300, BlueMinionsSpawned: 18, Winner: types.SideRed})
	if lines[0] != "Match time: 2:05" {
		t.Errorf("Expected formatted match time, got %q", lines[0])
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Red damage dealt:  300") || !strings.Contains(joined, "Blue minions spawned: 18") {
		t.Errorf("Expected stats in the panel, got\n%s", joined)
	}
	if Title(types.SideRed) != "Red TEAM WINS" {
		t.Errorf("Expected winner title, got %q", Title(types.SideRed))
	}
}

func TestPipCentersGrowInDirection(t *testing.T) {
	left := NewBaseHealthIndicator(100, 20, types.SideRed, 1).PipCenters(3)
	right := NewBaseHealthIndicator(100, 20, types.SideBlue, -1).PipCenters(3)
	if len(left) != 3 || left[2][0] <= left[0][0] {
		t.Errorf("Expected pips growing right, got %v", left)
	}
	if right[2][0] >= right[0][0] {
		t.Errorf("Expected pips growing left, got %v", right)
	}
}

func TestCarryLabel(t *testing.T) {
	if CarryLabel("") != "no mask" {
		t.Errorf("Expected empty-handed label, got %q", CarryLabel(""))
	}
	if got := CarryLabel(types.MaskBuffHP); got != "carrying +HP" {
		t.Errorf("Expected carried label, got %q", got)
	}
}
