package config

import "sync"

// LifeSettings holds the automaton settings that can change while running.
type LifeSettings struct {
	mu    sync.RWMutex
	speed int // frames per generation, in units of life.BaseFrames
}

const (
	MinLifeSpeed = 1
	MaxLifeSpeed = 60
)

var globalLifeSettings = &LifeSettings{
	speed: 3, // default value
}

// GetLifeSpeed returns the current automaton speed multiplier
func GetLifeSpeed() int {
	globalLifeSettings.mu.RLock()
	defer globalLifeSettings.mu.RUnlock()
	return globalLifeSettings.speed
}

// SetLifeSpeed sets the automaton speed multiplier
func SetLifeSpeed(speed int) {
	globalLifeSettings.mu.Lock()
	defer globalLifeSettings.mu.Unlock()

	// Clamp to reasonable values
	if speed < MinLifeSpeed {
		speed = MinLifeSpeed
	}
	if speed > MaxLifeSpeed {
		speed = MaxLifeSpeed
	}

	globalLifeSettings.speed = speed
}

// RenderSettings holds the frame pacing settings.
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means uncapped
}

const MaxFPSLimit = 1000

var globalRenderSettings = &RenderSettings{}

// GetFPSLimit returns the frame rate cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap. Values <= 0 remove the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	globalRenderSettings.fpsLimit = limit
}
