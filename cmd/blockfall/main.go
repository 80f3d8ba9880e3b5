package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/config"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/render"
)

var (
	configFlag = flag.String("config", "", "path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "write debug logs to logs/")
	seedFlag   = flag.Int64("seed", 0, "shape randomizer seed (0 = time-based)")
	muteFlag   = flag.Bool("mute", false, "disable audio cues")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	keyTable := input.DefaultKeyTable()
	if cfg.Keymap != "" {
		data, err := os.ReadFile(cfg.Keymap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keymap read: %v\n", err)
			os.Exit(1)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		keyTable.Merge(override)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "blockfall crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	player := audio.NewPlayer()
	if cfg.Audio && !*muteFlag {
		if err := player.Init(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("audio init failed: %v", err)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting game: arena %dx%d, gravity %v, seed %d",
		cfg.ArenaWidth, cfg.ArenaHeight, cfg.GravityInterval(), seed)

	game := engine.NewGame(cfg.ArenaWidth, cfg.ArenaHeight,
		engine.WithGravityInterval(cfg.GravityInterval()),
		engine.WithShapeSource(engine.NewRandomSource(seed)),
		engine.WithClearHandler(func(rows int) {
			log.Printf("cleared %d rows", rows)
			player.ClearCue(rows)
		}),
		engine.WithGameOverHandler(func() {
			log.Print("game over")
			player.GameOverCue()
		}),
	)

	machine := input.NewMachine(keyTable)
	renderer := render.NewRenderer(screen)

	run(screen, game, machine, renderer)
}

// run is the main loop: a frame ticker drives gravity and rendering,
// an event goroutine pumps terminal input. All game mutation happens
// on this goroutine.
func run(screen tcell.Screen, game *engine.Game, machine *input.Machine, renderer *render.Renderer) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			game.Tick()
			renderer.Draw(game)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch machine.Map(ev) {
				case input.ActionQuit:
					return
				case input.ActionMoveLeft:
					game.Move(-1)
				case input.ActionMoveRight:
					game.Move(1)
				case input.ActionRotateCW:
					game.Rotate(engine.Clockwise)
				case input.ActionRotateCCW:
					game.Rotate(engine.CounterClockwise)
				case input.ActionDrop:
					game.Drop()
				}
				renderer.Draw(game)
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}
