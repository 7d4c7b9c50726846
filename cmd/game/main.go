package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/runner/internal/application/game"
	"github.com/younwookim/runner/internal/application/scene/playing"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	stageName := flag.String("stage", "demo", "Stage to play")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headlessly and exit")
	watchFlag := flag.Bool("watch", false, "Reload tuning and stage files on change (needs -config)")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if _, err := playReplay(loader, cfg.Tuning, *replayFlag); err != nil {
			log.Fatalf("Failed to run replay: %v", err)
		}
		return
	}

	var watcher *config.Watcher
	if *watchFlag {
		if *configDir == "" {
			log.Fatalf("-watch needs -config to point at a config directory")
		}
		watcher, err = config.NewWatcher(*configDir, filepath.Join(*configDir, "stages"))
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		log.Printf("Watching %s for changes", *configDir)
	}

	first, err := playing.New(cfg.Tuning, playing.Options{
		Loader:     loader,
		Stage:      *stageName,
		RecordPath: *recordFlag,
		Watcher:    watcher,
	})
	if err != nil {
		log.Fatalf("Failed to create stage: %v", err)
	}

	display := cfg.Tuning.Display
	g := game.New(first, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Runner")
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	if watcher != nil {
		_ = watcher.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
