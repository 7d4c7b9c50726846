package config

// DefaultTuning returns the stock tuning shipped with the game
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:   320,
			ScreenHeight:  240,
			Scale:         3,
			Framerate:     60,
			PixelsPerUnit: 16,
		},
		Physics: PhysicsSettings{
			Gravity:      -9.81,
			GravityScale: 2,
			Iterations:   20,
		},
		Movement: MovementConfig{
			Acceleration:        10,
			MaxSpeed:            8,
			BrakeDeceleration:   15,
			NaturalDeceleration: 2,
		},
		Jump: JumpConfig{
			Force:         12,
			HoldForce:     8,
			HoldDuration:  0.3,
			CutMultiplier: 0.5,
		},
		GroundSensor: GroundSensorConfig{
			OffsetX: 0,
			OffsetY: -0.5,
			Radius:  0.1,
			Layers:  []string{"ground", "danger", "finish"},
		},
		Player: PlayerConfig{
			Width:    0.8,
			Height:   1,
			Mass:     1,
			Friction: 0,
		},
		Pickups: PickupsConfig{
			DoubleJump: PickupConfig{Radius: 0.3},
			TimeSlower: TimeSlowerConfig{Radius: 0.3, Scale: 0.4, Duration: 1.5},
		},
		Camera: CameraConfig{
			FollowSpeed:        1,
			UsePlayerSpeed:     true,
			FollowHorizontally: true,
			FollowVertically:   false,
			SmoothTime:         0.1,
		},
		Input: InputConfig{
			MoveLeft:  []string{"A", "ArrowLeft"},
			MoveRight: []string{"D", "ArrowRight"},
			Jump:      []string{"Space", "W"},
			Brake:     []string{"S", "ArrowDown"},
		},
	}
}
