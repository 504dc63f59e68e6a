package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fogleman/gg"
	"github.com/kr/pretty"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/areamesh"
	"github.com/osuushi/areamesh/advanced"
	"github.com/osuushi/areamesh/config"
	"github.com/osuushi/areamesh/scene"
	"github.com/osuushi/areamesh/svgdoc"
	"github.com/osuushi/areamesh/svgpath"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("areamesh", "Triangulate filled chart areas.")
	verbose    = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
	configPath = app.Flag("config", "YAML config file.").ExistingFile()
	samples    = app.Flag("samples", "Samples per curve segment.").Int()
	epsilon    = app.Flag("epsilon", "Minimum width of a cross-section. Negative uses the configured value.").Default("-1").Float64()

	meshCmd    = app.Command("mesh", "Print the mesh for the area between two paths as JSON.")
	meshTop    = meshCmd.Arg("top", "Top path.").Required().String()
	meshBottom = meshCmd.Arg("bottom", "Bottom path.").Required().String()

	runsCmd    = app.Command("runs", "Print the areas and chains found between two paths.")
	runsTop    = runsCmd.Arg("top", "Top path.").Required().String()
	runsBottom = runsCmd.Arg("bottom", "Bottom path.").Required().String()

	renderCmd    = app.Command("render", "Render the areas of an SVG chart to a PNG.")
	renderSVG    = renderCmd.Arg("svg", "Chart with data-area groups.").Required().ExistingFile()
	renderOut    = renderCmd.Flag("out", "Output PNG.").Short('o').Default("out.png").String()
	renderImgcat = renderCmd.Flag("imgcat", "Also print the image to the terminal.").Bool()
	renderWidth  = renderCmd.Flag("width", "Image width.").Int()
	renderHeight = renderCmd.Flag("height", "Image height.").Int()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	areamesh.SetLogger(logger)

	cfg := loadConfig()

	switch command {
	case meshCmd.FullCommand():
		mesh, err := areamesh.GenMeshWithOptions(*meshTop, *meshBottom, cfg.Options())
		app.FatalIfError(err, "mesh")
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		app.FatalIfError(encoder.Encode(mesh), "mesh")

	case runsCmd.FullCommand():
		printRuns(cfg, *runsTop, *runsBottom)

	case renderCmd.FullCommand():
		render(cfg, logger)
	}
}

func loadConfig() config.Config {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		app.FatalIfError(err, "")
	}
	flags := config.Flags{
		Samples: *samples,
		Width:   *renderWidth,
		Height:  *renderHeight,
	}
	if *epsilon >= 0 {
		flags.Epsilon = epsilon
	}
	cfg.Resolve(flags)
	app.FatalIfError(cfg.Validate(), "")
	return cfg
}

// Runs the pipeline by hand to show the intermediate areas and chains
func printRuns(cfg config.Config, top, bottom string) {
	opts := cfg.Options()
	topPoints := samplePath("top", top, opts)
	bottomPoints := samplePath("bottom", bottom, opts)

	var primitives []advanced.Primitive
	func() {
		defer func() {
			if r := recover(); r != nil {
				app.FatalIfError(advanced.HandleMeshPanicRecover(r), "pair")
			}
		}()
		primitives = advanced.PairPoints(topPoints, bottomPoints, opts.Epsilon)
	}()

	areas := advanced.FindAreas(primitives)
	chains := advanced.FindChains(primitives)
	fmt.Printf("%d areas, %d chains\n", len(areas), len(chains))
	for i := range areas {
		fmt.Println(&areas[i])
		pretty.Println(areas[i].Middle)
	}
	for i := range chains {
		fmt.Println(&chains[i])
		pretty.Println(chains[i])
	}
}

func samplePath(name, path string, opts areamesh.Options) []advanced.Point {
	cmds, err := svgpath.Parse(path)
	app.FatalIfError(err, "%s path", name)
	if opts.AllowRelative {
		cmds = svgpath.ToAbsolute(cmds)
	}
	points, err := advanced.SamplePath(cmds, opts.SamplesPerSegment)
	app.FatalIfError(err, "%s path", name)
	return points
}

func render(cfg config.Config, logger *slog.Logger) {
	sources, err := svgdoc.LoadFile(*renderSVG)
	app.FatalIfError(err, "render")

	background, err := scene.ParseColor(cfg.Background)
	app.FatalIfError(err, "background")

	s := scene.New()
	s.Options = cfg.Options()
	s.Background = background
	s.LineWidth = cfg.LineWidth
	for _, source := range sources {
		err := s.AddArea(source.Top, source.Bottom, source.Fill)
		app.FatalIfError(err, "area %q", source.Name)
		logger.Debug("added area", "name", source.Name, "fill", source.Fill)
	}

	img := s.Render(cfg.Width, cfg.Height)
	app.FatalIfError(gg.SavePNG(*renderOut, img), "render")
	logger.Info("wrote image", "path", *renderOut, "areas", len(sources), "objects", s.Len())

	if *renderImgcat {
		imgcat.CatFile(*renderOut, os.Stdout)
	}
}
