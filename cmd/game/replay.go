package main

import (
	"fmt"
	"log"

	"github.com/younwookim/runner/internal/application/replay"
	"github.com/younwookim/runner/internal/application/simulation"
	"github.com/younwookim/runner/internal/application/system"
	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Frames     int
	Reloads    int
	Outcomes   []simulation.Outcome // every outcome that triggered a reload
	Positions  []entity.Vec2
	Velocities []entity.Vec2
}

// Final returns the last recorded position
func (r ReplayResult) Final() entity.Vec2 {
	if len(r.Positions) == 0 {
		return entity.Vec2{}
	}
	return r.Positions[len(r.Positions)-1]
}

// runReplay feeds every recorded intent through a fresh simulation of
// stage. Reload outcomes rebuild the simulation the way the playing scene does.
func runReplay(stage *entity.Stage, tuning *config.TuningConfig, replayer *replay.Replayer) (ReplayResult, error) {
	sim, err := simulation.New(stage, tuning)
	if err != nil {
		return ReplayResult{}, err
	}
	defer func() { sim.Close() }()

	dt := replayer.DT()
	result := ReplayResult{
		Positions:  make([]entity.Vec2, 0, replayer.TotalFrames()),
		Velocities: make([]entity.Vec2, 0, replayer.TotalFrames()),
	}

	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}

		sim.Latch().Load(in)
		outcome, err := sim.Step(dt)
		if err != nil {
			return result, fmt.Errorf("frame %d: %w", replayer.CurrentFrame()-1, err)
		}

		result.Positions = append(result.Positions, sim.PlayerPosition())
		result.Velocities = append(result.Velocities, sim.PlayerVelocity())
		result.Frames = replayer.CurrentFrame()

		if outcome.NeedsReload() {
			result.Outcomes = append(result.Outcomes, outcome)
			result.Reloads++
			next, err := simulation.New(stage, tuning)
			if err != nil {
				return result, fmt.Errorf("failed to reload stage: %w", err)
			}
			sim.Close()
			sim = next
		}
	}

	return result, nil
}

// playReplay loads a recording and runs it headlessly against the stage it
// was recorded on
func playReplay(loader *config.Loader, tuning *config.TuningConfig, filename string) (ReplayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return ReplayResult{}, err
	}

	stageCfg, err := loader.LoadStage(data.Stage)
	if err != nil {
		return ReplayResult{}, err
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return ReplayResult{}, err
	}

	result, err := runReplay(stage, tuning, replay.NewReplayer(*data))
	if err != nil {
		return result, err
	}

	final := result.Final()
	log.Printf("Replay %s: %d frames on stage %s, %d reloads, final position (%.2f, %.2f)",
		filename, result.Frames, data.Stage, result.Reloads, final.X, final.Y)
	return result, nil
}
