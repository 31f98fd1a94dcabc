// Command mmusim runs the paging simulator against an input file and a
// random-number file, following the fixed trace/summary grammar the
// grading tooling expects on stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/config"
	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/engine"
	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/loader"
	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/mlog"
	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/policy"
	"github.com/sisoputnfrba/tp-2025-1c-simulador-paginacion/internal/vm"
)

// Defaults holds the ambient settings a JSON config file may override —
// nothing here changes simulator semantics, only how it logs.
type Defaults struct {
	LogLevel string `json:"log_level"`
	LogPath  string `json:"log_path"`
}

func main() {
	os.Exit(run())
}

func run() int {
	frames := flag.Int("f", 128, "number of physical frames")
	algo := flag.String("a", "f", "replacement policy: f=FIFO r=Random c=Clock e=NRU a=Aging w=WorkingSet")
	optString := flag.String("o", "", "output option letters (subset of OPFSxyfa)")
	dumpSwap := flag.Bool("dumpswap", false, "log swap-out/swap-in diagnostics via slog.Debug")
	configPath := flag.String("config", "", "optional JSON file overriding ambient log settings")
	flag.Parse()

	defaults := Defaults{LogLevel: "INFO", LogPath: "./mmusim.log"}
	if *configPath != "" {
		if err := config.Load(*configPath, &defaults); err != nil {
			fmt.Fprintf(os.Stderr, "mmusim: %v\n", err)
			return 1
		}
	}
	if err := mlog.Init(defaults.LogPath, defaults.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "mmusim: %v\n", err)
		return 1
	}

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "mmusim: usage: mmusim [-f N] [-a X] [-o OPTS] [-dumpswap] inputfile randomfile")
		return 1
	}
	inputPath, randomPath := flag.Arg(0), flag.Arg(1)

	if *frames < 1 || *frames > vm.MaxFrames {
		fmt.Fprintf(os.Stderr, "mmusim: frame count %d out of range (1..%d)\n", *frames, vm.MaxFrames)
		return 1
	}

	opts, err := engine.ParseOptions(*optString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mmusim: %v\n", err)
		return 1
	}
	opts.DumpSwap = *dumpSwap

	input, err := loader.LoadInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mmusim: %v\n", err)
		return 1
	}

	values, err := loader.LoadRandomNumbers(randomPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mmusim: %v\n", err)
		return 1
	}
	stream := policy.NewRandomStream(values)

	if len(*algo) != 1 {
		fmt.Fprintf(os.Stderr, "mmusim: algorithm letter must be a single character, got %q\n", *algo)
		return 1
	}
	active, err := policy.New((*algo)[0], *frames, stream)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mmusim: %v\n", err)
		return 1
	}

	slog.Info("starting simulation", "frames", *frames, "policy", active.Name(), "processes", len(input.Processes))

	pool := vm.NewFramePool(*frames)
	sim := engine.New(pool, input.Processes, active, vm.DefaultCosts(), opts, os.Stdout)
	sim.Run(input.Instructions)
	sim.PrintFinal()

	slog.Info("simulation complete",
		"instructions", sim.InstructionCount(),
		"total_cost", sim.TotalCost())

	return 0
}
