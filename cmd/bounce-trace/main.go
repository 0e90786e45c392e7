package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"psi-bounce/internal/bounce"
	"psi-bounce/internal/core"

	"github.com/guptarohit/asciigraph"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("bad pressure %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	preset := flag.String("config", "", "YAML preset to load")
	sweep := flag.Float64("sweep", 0, "sweep the full pressure range in steps of this size")
	fps := flag.Float64("fps", 60, "frame rate the ticks are spaced at")
	jitter := flag.Float64("jitter", 0, "random frame interval variation as a fraction (0-0.9)")
	seed := flag.Int64("seed", 1, "seed for frame jitter")
	height := flag.Int("height", 0, "view height in pixels (defaults to the config height)")
	plot := flag.Bool("plot", true, "plot the ball altitude of each run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	var pressures floatList
	flag.Var(&pressures, "pressure", "pressure in PSI to trace (repeatable or comma separated)")
	flag.Parse()

	cfg := bounce.DefaultConfig()
	if *preset != "" {
		loaded, err := bounce.LoadConfig(*preset)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *jitter < 0 || *jitter > 0.9 {
		log.Fatalf("jitter %.2f outside [0, 0.9]", *jitter)
	}
	if *sweep > 0 {
		pressures = append(pressures, sweepRange(*sweep)...)
	}
	if len(pressures) == 0 {
		pressures = append(pressures, cfg.Pressure)
	}
	for _, p := range pressures {
		if p < bounce.PressureMin || p > bounce.PressureMax {
			log.Printf("pressure %.2f is outside [%.1f, %.1f]; restitution extrapolates", p, bounce.PressureMin, bounce.PressureMax)
		}
	}
	if *workers < 1 {
		*workers = 1
	}

	geom := bounce.GeometryFor(core.Size{W: cfg.Width, H: cfg.Height}, cfg.Physics)
	opts := bounce.DefaultTraceOptions()
	opts.FPS = *fps
	opts.Jitter = *jitter
	opts.Seed = *seed

	jobs := make(chan float64)
	results := make(chan bounce.TraceResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- bounce.Trace(bounce.Setup{Pressure: p, Physics: cfg.Physics, Geometry: geom}, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, p := range pressures {
			jobs <- p
		}
		close(jobs)
	}()

	var all []bounce.TraceResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Pressure < all[j].Pressure })

	for _, res := range all {
		printResult(res, cfg.Physics.RecordedBounces)
		if *plot && len(res.Altitudes) > 1 {
			fmt.Println(asciigraph.Plot(res.Altitudes,
				asciigraph.Height(8),
				asciigraph.Width(72),
				asciigraph.Precision(2),
				asciigraph.Caption(fmt.Sprintf("altitude (m) at %.1f PSI", res.Pressure))))
			fmt.Println()
		}
	}
	if len(all) == 0 {
		os.Exit(1)
	}
}

func sweepRange(step float64) []float64 {
	var out []float64
	n := int((bounce.PressureMax-bounce.PressureMin)/step + 1e-9)
	for i := 0; i <= n; i++ {
		out = append(out, bounce.PressureMin+float64(i)*step)
	}
	return out
}

func printResult(res bounce.TraceResult, slots int) {
	board := bounce.NewScoreboard(slots)
	for i, h := range res.Heights {
		board.Record(i+1, h)
	}
	fmt.Printf("%.2f PSI  COR %.4f  ticks %d  bounces %d  stop %s\n",
		res.Pressure, res.Restitution, res.Ticks, res.Bounces, res.Reason)
	fmt.Printf("  %s\n", strings.Join(board.Lines(), "  "))
}
