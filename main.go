package main

import (
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/esp-overlay/internal/config"
	"github.com/iburimskiy/esp-overlay/internal/cue"
	"github.com/iburimskiy/esp-overlay/internal/export"
	"github.com/iburimskiy/esp-overlay/internal/fonts"
	"github.com/iburimskiy/esp-overlay/internal/game"
	"github.com/iburimskiy/esp-overlay/internal/scene"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	exportPath := flag.String("export", "", "render one frame to this PDF and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	lib := fonts.NewLibrary()
	for name, path := range cfg.Fonts {
		if err := lib.RegisterFile(name, path); err != nil {
			log.Printf("font %s: %v (available: %s)", name, err, strings.Join(lib.Names(), ", "))
		}
	}

	if *exportPath != "" {
		w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
		s := scene.New(w, h)
		s.PointerMove(s.FOV.Position, time.Now())
		path := export.WithPDFExt(*exportPath)
		if err := export.WriteFile(path, w, h, lib, s); err != nil {
			log.Fatal(err)
		}
		log.Printf("exported frame to %s", path)
		return
	}

	var player *cue.Player
	if cfg.Cue.Enabled {
		player, err = cue.NewPlayer(cfg.Cue.SampleRate, cfg.Cue.Frequency, cfg.Cue.Duration, cfg.Cue.Volume)
		if err != nil {
			log.Printf("lock-on cue disabled: %v", err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	g := game.New(cfg, lib, player)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
