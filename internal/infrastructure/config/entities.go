package config

// PlayerConfig describes the controlled body
type PlayerConfig struct {
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Mass     float64 `json:"mass" yaml:"mass"`
	Friction float64 `json:"friction" yaml:"friction"`
}

// PickupsConfig holds per-kind collectible settings
type PickupsConfig struct {
	DoubleJump PickupConfig     `json:"doubleJump" yaml:"double_jump"`
	TimeSlower TimeSlowerConfig `json:"timeSlower" yaml:"time_slower"`
}

type PickupConfig struct {
	Radius float64 `json:"radius" yaml:"radius"`
}

// TimeSlowerConfig is a pickup that scales game time for a while
type TimeSlowerConfig struct {
	Radius   float64 `json:"radius" yaml:"radius"`
	Scale    float64 `json:"scale" yaml:"scale"`       // (0, 1]
	Duration float64 `json:"duration" yaml:"duration"` // real seconds
}
