package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runner/internal/application/replay"
	"github.com/younwookim/runner/internal/application/simulation"
	"github.com/younwookim/runner/internal/application/system"
	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

func loadDemo(t *testing.T) (*config.Loader, *config.TuningConfig, *entity.Stage) {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	tuning, err := loader.LoadTuning()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)
	stage, err := system.LoadStage(stageCfg)
	require.NoError(t, err)
	return loader, tuning, stage
}

func TestNewLoader_Directory(t *testing.T) {
	loader, err := newLoader("configs")
	require.NoError(t, err)
	assert.Equal(t, "configs", loader.BasePath())

	_, err = loader.LoadStage("demo")
	assert.NoError(t, err)
}

func TestReplayIdlePlayer_Stability(t *testing.T) {
	_, tuning, stage := loadDemo(t)

	result, err := runReplay(stage, tuning, replay.NewReplayer(replay.CreateTestReplayData(120, "demo")))
	require.NoError(t, err)
	require.Equal(t, 120, result.Frames)
	assert.Zero(t, result.Reloads)

	// Skip the first frames for settling
	settled := result.Positions[30]
	for i := 30; i < len(result.Positions); i++ {
		assert.InDelta(t, settled.X, result.Positions[i].X, 1e-9, "X at frame %d", i)
		assert.InDelta(t, settled.Y, result.Positions[i].Y, 0.01, "Y at frame %d", i)
		assert.InDelta(t, 0, result.Velocities[i].X, 1e-9, "VX at frame %d", i)
	}
}

func TestReplayDeterminism(t *testing.T) {
	_, tuning, stage := loadDemo(t)
	data := movementReplay()

	result1, err := runReplay(stage, tuning, replay.NewReplayer(data))
	require.NoError(t, err)
	result2, err := runReplay(stage, tuning, replay.NewReplayer(data))
	require.NoError(t, err)

	require.Equal(t, len(result1.Positions), len(result2.Positions), "Frame count should match")
	for i := range result1.Positions {
		assert.Equal(t, result1.Positions[i], result2.Positions[i], "Position at frame %d should match", i)
		assert.Equal(t, result1.Velocities[i], result2.Velocities[i], "Velocity at frame %d should match", i)
	}
}

// movementReplay idles, runs right, jumps while holding, then idles
func movementReplay() replay.ReplayData {
	data := replay.CreateTestReplayData(120, "demo")
	for i := range data.Frames {
		fi := &data.Frames[i]
		if i >= 30 && i < 60 {
			fi.MX = 1
		}
		if i >= 60 && i < 90 {
			fi.JH = true
			fi.JP = i == 60
		}
		fi.JR = i == 90
	}
	return data
}

func TestReplayWithMovement(t *testing.T) {
	_, tuning, stage := loadDemo(t)

	result, err := runReplay(stage, tuning, replay.NewReplayer(movementReplay()))
	require.NoError(t, err)
	assert.Zero(t, result.Reloads)

	// Player should have moved right during frames 30-60
	assert.Greater(t, result.Positions[59].X, result.Positions[29].X+1)

	peak := result.Positions[60].Y
	for i := 60; i < 90; i++ {
		peak = max(peak, result.Positions[i].Y)
	}
	assert.Greater(t, peak, result.Positions[59].Y+1, "Player should jump")
}

func TestReplayReloadsOnHazard(t *testing.T) {
	tuning := config.DefaultTuning()
	stage := &entity.Stage{
		Name:     "pit",
		Width:    3,
		Height:   3,
		TileSize: 1,
		Spawn:    entity.Vec2{X: 1.5, Y: 1.5},
		Tiles: [][]entity.Tile{
			make([]entity.Tile, 3),
			make([]entity.Tile, 3),
			{
				{Type: entity.TileDanger, Solid: true},
				{Type: entity.TileDanger, Solid: true},
				{Type: entity.TileDanger, Solid: true},
			},
		},
	}

	result, err := runReplay(stage, tuning, replay.NewReplayer(replay.CreateTestReplayData(60, "pit")))
	require.NoError(t, err)

	require.NotZero(t, result.Reloads)
	assert.Len(t, result.Outcomes, result.Reloads)
	assert.Equal(t, simulation.OutcomeDied, result.Outcomes[0])
}

func TestRecorderAndReplayer(t *testing.T) {
	// Record the intents a live latch produces
	var latch system.InputLatch
	recorder := replay.NewRecorder("demo", 1.0/60.0)
	events := []func(){
		func() { latch.SetMove(1) },
		func() { latch.PressJump() },
		func() {},
		func() { latch.ReleaseJump(); latch.SetMove(0) },
	}

	var want []entity.InputIntent
	for _, ev := range events {
		ev()
		in := latch.Consume()
		want = append(want, in)
		recorder.RecordFrame(in)
	}
	assert.Equal(t, 4, recorder.FrameCount())

	replayer := replay.NewReplayer(recorder.GetData())
	assert.Equal(t, "demo", replayer.Stage())
	assert.Equal(t, 4, replayer.TotalFrames())

	for i, expected := range want {
		got, ok := replayer.GetInput()
		require.True(t, ok, "Should have input for frame %d", i)
		assert.Equal(t, expected, got, "intent at frame %d", i)
	}

	// Should be at end
	_, ok := replayer.GetInput()
	assert.False(t, ok, "Should be at end of replay")
}

func TestPlayReplay(t *testing.T) {
	loader, tuning, _ := loadDemo(t)

	recorder := replay.NewRecorder("demo", 1.0/60.0)
	for i := 0; i < 20; i++ {
		recorder.RecordFrame(entity.InputIntent{MoveAxis: 1})
	}
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, recorder.Save(path))

	result, err := playReplay(loader, tuning, path)
	require.NoError(t, err)
	assert.Equal(t, 20, result.Frames)
	assert.Greater(t, result.Final().X, result.Positions[0].X)
}

func TestPlayReplay_Errors(t *testing.T) {
	loader, tuning, _ := loadDemo(t)

	_, err := playReplay(loader, tuning, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	recorder := replay.NewRecorder("nowhere", 1.0/60.0)
	recorder.RecordFrame(entity.InputIntent{})
	path := filepath.Join(t.TempDir(), "bad_stage.json")
	require.NoError(t, recorder.Save(path))

	_, err = playReplay(loader, tuning, path)
	assert.Error(t, err)
}
