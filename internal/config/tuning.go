package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Tuning holds the tick-based tunables of a match. All durations are in ticks.
type Tuning struct {
	TicksPerSecond       int     `json:"ticks_per_second"`
	FirstWaveDelay       int     `json:"first_wave_delay"`
	WaveInterval         int     `json:"wave_interval"`
	WaveStagger          int     `json:"wave_stagger"`
	MinionsPerLane       int     `json:"minions_per_lane"`
	MaskInterval         int     `json:"mask_interval"`
	MinionAttackCooldown int     `json:"minion_attack_cooldown"`
	TowerAttackCooldown  int     `json:"tower_attack_cooldown"`
	DeathGraceTicks      int     `json:"death_grace_ticks"`
	BaseHP               int     `json:"base_hp"`
	BaseReachRadius      float64 `json:"base_reach_radius"`
	WaypointRadius       float64 `json:"waypoint_radius"`
	ProjectileSpeed      float64 `json:"projectile_speed"`
	ProjectileArrival    float64 `json:"projectile_arrival"`
	MaskSpawnMargin      float64 `json:"mask_spawn_margin"`
}

// DefaultTuning returns the constant set the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		TicksPerSecond:       60,
		FirstWaveDelay:       300,
		WaveInterval:         25 * 60,
		WaveStagger:          30,
		MinionsPerLane:       3,
		MaskInterval:         450,
		MinionAttackCooldown: 60,
		TowerAttackCooldown:  90,
		DeathGraceTicks:      30,
		BaseHP:               3,
		BaseReachRadius:      40,
		WaypointRadius:       20,
		ProjectileSpeed:      8,
		ProjectileArrival:    10,
		MaskSpawnMargin:      150,
	}
}

// Validate checks that the tuning describes a playable match.
func (t Tuning) Validate() error {
	switch {
	case t.TicksPerSecond <= 0:
		return errors.New("ticks_per_second must be positive")
	case t.FirstWaveDelay <= 0:
		return errors.New("first_wave_delay must be positive")
	case t.WaveInterval <= 0:
		return errors.New("wave_interval must be positive")
	case t.WaveStagger < 0:
		return errors.New("wave_stagger must not be negative")
	case t.MinionsPerLane <= 0:
		return errors.New("minions_per_lane must be positive")
	case t.MaskInterval <= 0:
		return errors.New("mask_interval must be positive")
	case t.BaseHP <= 0:
		return errors.New("base_hp must be positive")
	case t.ProjectileSpeed <= 0:
		return errors.New("projectile_speed must be positive")
	case t.MaskSpawnMargin*2 >= ScreenHeight:
		return fmt.Errorf("mask_spawn_margin %.0f leaves no room on a %dx%d arena", t.MaskSpawnMargin, ScreenWidth, ScreenHeight)
	}
	return nil
}

// LoadTuning reads a JSON tuning file. Fields missing from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	file, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(file, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning %s: %w", path, err)
	}
	return t, nil
}
