package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/tundra/config"
	"github.com/automoto/tundra/fonts"
	"github.com/automoto/tundra/network"
	"github.com/automoto/tundra/scenes"
	"github.com/automoto/tundra/shared/leveldata"
	"github.com/automoto/tundra/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const protocolVersion = "1"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadLevel reads a TMX file, or generates terrain when path is empty or
// unreadable.
func loadLevel(path string) *leveldata.Level {
	if path != "" {
		level, err := leveldata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err == nil {
			return level
		}
		log.Printf("Warning: could not load level %s: %v", path, err)
	}
	return leveldata.Generate("generated", config.World.BoardDimensions(), config.World.TileSize)
}

// levelDirLoader finds server-named levels as <dir>/<name>.tmx.
func levelDirLoader(dir string) scenes.LevelLoader {
	return func(name string) (*leveldata.Level, error) {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return nil, fmt.Errorf("invalid level name %q", name)
		}
		return leveldata.Load(os.DirFS(dir), name+".tmx")
	}
}

func main() {
	addr := flag.String("addr", "", "server address (host:port); empty runs the offline sandbox")
	levelPath := flag.String("level", "", "TMX level for the offline sandbox")
	levelDir := flag.String("levels", "levels", "directory of TMX levels named by the server")
	name := flag.String("name", "", "player name")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and fill unset flags from the last session
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if last, err := systems.LoadSession(); err == nil && last != nil && *name == "" {
		*name = last.PlayerName
	}
	if *name == "" {
		*name = "player"
	}

	var scene Scene
	if *addr == "" {
		scene = scenes.NewOfflineScene(loadLevel(*levelPath))
	} else {
		client := network.NewClient()
		client.Connect(*addr, protocolVersion, *name)
		defer client.Disconnect()
		scene = scenes.NewNetworkedScene(client, levelDirLoader(*levelDir))
	}
	if err := systems.SaveSession(&systems.SavedSession{Addr: *addr, PlayerName: *name, Level: *levelPath}); err != nil {
		log.Printf("Warning: Could not save session: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.World.TPS)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
