/*
geogen builds the primitive meshes listed in a catalogue and exports them
as glTF, STL and a PNG contact sheet.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spaghettifunk/geogen/engine"
	"github.com/spaghettifunk/geogen/engine/assets/loaders"
	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/testbed"
)

func main() {
	config := &engine.ApplicationConfig{}
	var (
		formats string
		initial bool
	)
	flag.StringVar(&config.CataloguePath, "catalogue", "", "TOML catalogue to generate (the built-in shapes catalogue when empty)")
	flag.StringVar(&config.OutputDir, "out", "", "output directory, overrides the catalogue")
	flag.IntVar(&config.Workers, "workers", 0, "number of generation workers, overrides the catalogue")
	flag.StringVar(&config.LogLevel, "log-level", "", "debug, info, warn, error or fatal; overrides the catalogue")
	flag.StringVar(&formats, "formats", "", "comma separated export formats (gltf, glb, stl, png), overrides the catalogue")
	flag.BoolVar(&config.Watch, "watch", false, "regenerate whenever the catalogue file is written")
	flag.BoolVar(&initial, "init", false, "write the built-in catalogue to -catalogue (or catalogue.toml) and exit")
	flag.Parse()

	if len(formats) > 0 {
		config.Formats = strings.Split(formats, ",")
	}

	if initial {
		path := config.CataloguePath
		if len(path) == 0 {
			path = "catalogue.toml"
		}
		if err := (&loaders.CatalogueLoader{}).Save(path, testbed.DefaultCatalogue()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		core.LogInfo("wrote %s", path)
		return
	}

	tb := testbed.NewTestGame(config)

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		core.LogFatal("%s", err)
	}

	// cancel the run on sigterm and other system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError("%s", err)
	}
	if runErr != nil {
		core.LogFatal("%s", runErr)
	}
}
