package config

// TuningConfig is the root config for tuning.yaml (or tuning.json)
type TuningConfig struct {
	Display      DisplayConfig      `json:"display" yaml:"display"`
	Physics      PhysicsSettings    `json:"physics" yaml:"physics"`
	Movement     MovementConfig     `json:"movement" yaml:"movement"`
	Jump         JumpConfig         `json:"jump" yaml:"jump"`
	GroundSensor GroundSensorConfig `json:"groundSensor" yaml:"ground_sensor"`
	Player       PlayerConfig       `json:"player" yaml:"player"`
	Pickups      PickupsConfig      `json:"pickups" yaml:"pickups"`
	Camera       CameraConfig       `json:"camera" yaml:"camera"`
	Input        InputConfig        `json:"input" yaml:"input"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth" yaml:"screen_width"`
	ScreenHeight  int     `json:"screenHeight" yaml:"screen_height"`
	Scale         int     `json:"scale" yaml:"scale"`
	Framerate     int     `json:"framerate" yaml:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixels_per_unit"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity" yaml:"gravity"`            // world units/s², negative is down
	GravityScale float64 `json:"gravityScale" yaml:"gravity_scale"` // multiplier on Gravity
	Iterations   int     `json:"iterations" yaml:"iterations"`      // solver iterations
}

// MovementConfig tunes the horizontal motion model. All values are non-negative.
type MovementConfig struct {
	Acceleration        float64 `json:"acceleration" yaml:"acceleration"`
	MaxSpeed            float64 `json:"maxSpeed" yaml:"max_speed"`
	BrakeDeceleration   float64 `json:"brakeDeceleration" yaml:"brake_deceleration"`
	NaturalDeceleration float64 `json:"naturalDeceleration" yaml:"natural_deceleration"`
}

// JumpConfig tunes the jump state machine
type JumpConfig struct {
	Force         float64 `json:"force" yaml:"force"`                  // launch speed
	HoldForce     float64 `json:"holdForce" yaml:"hold_force"`         // upward acceleration while held
	HoldDuration  float64 `json:"holdDuration" yaml:"hold_duration"`   // seconds
	CutMultiplier float64 `json:"cutMultiplier" yaml:"cut_multiplier"` // [0, 1]
}

// GroundSensorConfig places the ground probe circle relative to the body origin
type GroundSensorConfig struct {
	OffsetX float64  `json:"offsetX" yaml:"offset_x"`
	OffsetY float64  `json:"offsetY" yaml:"offset_y"`
	Radius  float64  `json:"radius" yaml:"radius"`
	Layers  []string `json:"layers" yaml:"layers"`
}

type CameraConfig struct {
	FollowSpeed        float64 `json:"followSpeed" yaml:"follow_speed"`
	UsePlayerSpeed     bool    `json:"usePlayerSpeed" yaml:"use_player_speed"`
	FollowHorizontally bool    `json:"followHorizontally" yaml:"follow_horizontally"`
	FollowVertically   bool    `json:"followVertically" yaml:"follow_vertically"`
	OffsetX            float64 `json:"offsetX" yaml:"offset_x"`
	OffsetY            float64 `json:"offsetY" yaml:"offset_y"`
	SmoothTime         float64 `json:"smoothTime" yaml:"smooth_time"`
	UseSmoothDamping   bool    `json:"useSmoothDamping" yaml:"use_smooth_damping"`
}

// InputConfig binds named actions to key names
type InputConfig struct {
	MoveLeft  []string `json:"moveLeft" yaml:"move_left"`
	MoveRight []string `json:"moveRight" yaml:"move_right"`
	Jump      []string `json:"jump" yaml:"jump"`
	Brake     []string `json:"brake" yaml:"brake"`
}
