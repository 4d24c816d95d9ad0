package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/gridinterp/io"
	"github.com/phil-mansfield/gridinterp/logging"
	"github.com/phil-mansfield/gridinterp/math/interpolate"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		lookup, dump, plot string
		exampleConfig string
		plotAxis, plotPoints int
		plotFile, plotAt, profileFile string
		debug bool
	)
	vars := map[string]*string {
		"Lookup": &lookup,
		"Dump": &dump,
		"Plot": &plot,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&lookup, "Lookup", "",
		"Configuration file for [Lookup] mode. Every point in the " +
			"configuration's TargetFile is evaluated and printed to stdout.",
	)
	flag.StringVar(
		&dump, "Dump", "",
		"Configuration file for [Dump] mode. The grid is printed to stdout " +
			"as a CSV table.",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Configuration file for [Plot] mode. Every data set is plotted " +
			"along a single axis.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "", "Prints an example " +
			"configuration file of the specified type to stdout. The only " +
			"accepted argument is 'Grid'.",
	)
	flag.IntVar(&plotAxis, "PlotAxis", 0, "Index of the axis swept in [Plot] mode.")
	flag.IntVar(&plotPoints, "PlotPoints", 200, "Number of points plotted in [Plot] mode.")
	flag.StringVar(&plotFile, "PlotFile", "grid.png", "Output image for [Plot] mode.")
	flag.StringVar(
		&plotAt, "PlotAt", "",
		"Comma-separated values of the axes which are not swept in [Plot] " +
			"mode. The value of the swept axis is ignored. Defaults to the " +
			"center of every axis.",
	)
	flag.StringVar(&profileFile, "ProfileFile", "", "Write a CPU profile here.")
	flag.BoolVar(&debug, "Debug", false, "Print debugging messages.")

	flag.Parse()

	if debug { logging.Mode = logging.Debug }

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	if modeName == "ExampleConfig" {
		switch exampleConfig {
		case "Grid":
			fmt.Println(io.ExampleGridFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Grid'.",
			)
		}
		return
	}

	wrap, err := io.ReadGridConfig(*vars[modeName])
	if err != nil { log.Fatal(err.Error()) }

	fg := &FileGroup{}
	defer fg.Close()

	logger, logFile, err := wrap.Grid.Logger()
	if err != nil { log.Fatal(err.Error()) }
	fg.log = logFile

	if profileFile != "" {
		fg.prof, err = os.Create(profileFile)
		if err != nil { log.Fatal(err.Error()) }
		if err := pprof.StartCPUProfile(fg.prof); err != nil {
			log.Fatal(err.Error())
		}
	}

	g, err := wrap.Build(logger)
	if err != nil { log.Fatal(err.Error()) }
	logger.Debug(fmt.Sprintf(
		"Built grid with %d points and %d data sets. %s",
		g.NumGridPoints(), g.NumDataSets(), logging.MemString(),
	))

	switch modeName {
	case "Lookup":
		err = lookupMain(wrap, g)
	case "Dump":
		err = g.WriteCSV(os.Stdout)
	case "Plot":
		err = plotMain(g, plotAxis, plotPoints, plotAt, plotFile)
	default:
		panic("Impossible")
	}

	if err != nil { log.Fatal(err.Error()) }
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gridinterp " +
				"only accepts one mode flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// lookupMain evaluates the grid at every point in the TargetFile.
func lookupMain(wrap *io.GridWrapper, g *interpolate.RegularGrid) error {
	if wrap.Grid.TargetFile == "" {
		return fmt.Errorf("[Lookup] mode requires a TargetFile.")
	}

	targets, err := io.ReadTargets(wrap.Grid.TargetFile, g.NumAxes())
	if err != nil { return err }

	return io.WriteResults(os.Stdout, g, targets)
}
