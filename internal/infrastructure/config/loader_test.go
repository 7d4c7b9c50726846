package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadTuning(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 10.0, cfg.Movement.Acceleration)
	assert.Equal(t, 8.0, cfg.Movement.MaxSpeed)
	assert.Equal(t, 12.0, cfg.Jump.Force)
	assert.Equal(t, 0.3, cfg.Jump.HoldDuration)
	assert.Equal(t, -0.5, cfg.GroundSensor.OffsetY)
	assert.Equal(t, []string{"ground", "danger", "finish"}, cfg.GroundSensor.Layers)
	assert.Equal(t, 0.4, cfg.Pickups.TimeSlower.Scale)
	assert.Equal(t, []string{"Space", "W"}, cfg.Input.Jump)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 1.0, cfg.TileSize)
	assert.Equal(t, 2, cfg.PlayerSpawn.X)
	assert.Equal(t, 9, cfg.PlayerSpawn.Y)
	assert.Len(t, cfg.Layers.Collision, 12)
	assert.Len(t, cfg.Pickups, 2)

	ground, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, ground.Solid)
	assert.Equal(t, "ground", ground.Type)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Tuning)
}

func TestLoader_TuningFormats(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		check   func(t *testing.T, cfg *TuningConfig)
		wantErr bool
	}{
		{
			name: "yaml overrides defaults",
			files: fstest.MapFS{
				"tuning.yaml": {Data: []byte("movement:\n  max_speed: 5\njump:\n  force: 9\n")},
			},
			check: func(t *testing.T, cfg *TuningConfig) {
				assert.Equal(t, 5.0, cfg.Movement.MaxSpeed)
				assert.Equal(t, 9.0, cfg.Jump.Force)
				assert.Equal(t, 10.0, cfg.Movement.Acceleration, "untouched keys keep defaults")
			},
		},
		{
			name: "json fallback",
			files: fstest.MapFS{
				"tuning.json": {Data: []byte(`{"movement":{"maxSpeed":6},"camera":{"useSmoothDamping":true}}`)},
			},
			check: func(t *testing.T, cfg *TuningConfig) {
				assert.Equal(t, 6.0, cfg.Movement.MaxSpeed)
				assert.True(t, cfg.Camera.UseSmoothDamping)
			},
		},
		{
			name: "yaml wins over json",
			files: fstest.MapFS{
				"tuning.yaml": {Data: []byte("movement:\n  max_speed: 3\n")},
				"tuning.json": {Data: []byte(`{"movement":{"maxSpeed":6}}`)},
			},
			check: func(t *testing.T, cfg *TuningConfig) {
				assert.Equal(t, 3.0, cfg.Movement.MaxSpeed)
			},
		},
		{
			name:    "missing",
			files:   fstest.MapFS{},
			wantErr: true,
		},
		{
			name: "empty yaml",
			files: fstest.MapFS{
				"tuning.yaml": {Data: []byte("  \n")},
			},
			wantErr: true,
		},
		{
			name: "malformed yaml",
			files: fstest.MapFS{
				"tuning.yaml": {Data: []byte("movement: [unclosed\n")},
			},
			wantErr: true,
		},
		{
			name: "invalid values",
			files: fstest.MapFS{
				"tuning.yaml": {Data: []byte("movement:\n  acceleration: -1\n")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFSLoader(tt.files, ".")
			cfg, err := loader.LoadTuning()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoader_InvalidValuesWrapSentinel(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"tuning.yaml": {Data: []byte("jump:\n  cut_multiplier: 2\n")},
	}, ".")

	_, err := loader.LoadTuning()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "jump.cutMultiplier")
}

func TestLoader_EmptyTuningIsInvalid(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"tuning.yaml": {Data: []byte{}},
	}, ".")

	_, err := loader.LoadTuning()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoader_LoadStageErrors(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{"missing", fstest.MapFS{}},
		{"malformed", fstest.MapFS{"stages/bad.json": {Data: []byte("{")}}},
		{"no rows", fstest.MapFS{"stages/bad.json": {Data: []byte(`{"tileSize":1}`)}}},
		{"unknown tile type", fstest.MapFS{"stages/bad.json": {Data: []byte(
			`{"tileSize":1,"layers":{"collision":["#"]},"tileMapping":{"#":{"type":"lava"}}}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.files, ".").LoadStage("bad")
			assert.Error(t, err)
		})
	}
}

func TestIsConfigFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"configs/tuning.yaml", true},
		{"configs/tuning.YML", true},
		{"configs/stages/demo.json", true},
		{"configs/tuning.yaml~", false},
		{"configs/notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfigFile(tt.path))
		})
	}
}
