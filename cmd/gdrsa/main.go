// Command gdrsa solves one routing-and-spectrum-allocation demand
// against a Graphviz-described network and prints the result.
//
// Usage:
//
//	gdrsa -graph network.dot -src 0 -dst 5 -ncu 2
//
// Configuration is loaded with the same priority as the rest of the
// ambient stack: environment variables (GDRSA_ prefix), then
// config.yaml in the standard search paths, then defaults.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/config"
	"github.com/iszczesniak/gdrsa/dotgraph"
	"github.com/iszczesniak/gdrsa/logging"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/search"
	"github.com/iszczesniak/gdrsa/stats"
)

func main() {
	graphPath := flag.String("graph", "", "path to a Graphviz .dot network description")
	src := flag.Int("src", 0, "source vertex")
	dst := flag.Int("dst", 0, "destination vertex")
	ncu := flag.Int("ncu", 1, "number of contiguous spectrum units requested")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gdrsa: failed to load configuration:", err)
		os.Exit(1)
	}
	logging.InitWithConfig(logging.Config{
		Level:      cfg.Log.Level,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})

	if *graphPath == "" {
		logging.Error("no -graph path given")
		os.Exit(1)
	}

	if err := safeRun(*graphPath, *src, *dst, *ncu, cfg); err != nil {
		logging.Error("set_up failed", "error", err)
		os.Exit(1)
	}
}

// safeRun recovers a cross-check-mismatch panic raised by search.Router,
// turning the core's "abort the process" behaviour into a logged,
// non-zero exit at the application boundary rather than a process crash
// with a raw Go stack trace.
func safeRun(graphPath string, src, dst, ncu int, cfg *config.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gdrsa: aborted: %v", r)
		}
	}()
	return run(graphPath, src, dst, ncu, cfg)
}

func run(graphPath string, src, dst, ncu int, cfg *config.Config) error {
	data, err := os.ReadFile(graphPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", graphPath, err)
	}

	g, l, err := dotgraph.Load(data)
	if err != nil {
		return err
	}

	routerCfg, err := cfg.RouterConfig()
	if err != nil {
		return err
	}

	router, err := search.NewRouter(adaptive.NewPolicy(l), routerCfg)
	if err != nil {
		return err
	}

	recorder := stats.NewRecorder()

	demand := rsagraph.Demand{Src: rsagraph.Vertex(src), Dst: rsagraph.Vertex(dst), NCU: ncu}
	res, diag, err := router.SetUp(g, demand)
	if err != nil {
		return err
	}
	if diag != nil {
		recorder.Record(search.Generic, *diag)
	}

	if res == nil {
		logging.WithDemand(src, dst).Info("no path found", "ncu", ncu)
		fmt.Println("no path")
		return nil
	}

	report := recorder.Snapshot(search.Generic)
	logging.WithDemand(src, dst).Info("path found",
		"ncu", ncu, "units", res.Units.String(), "edges", len(res.Path),
		"mean_peak_labels", report.MeanPeakLabels)

	fmt.Printf("units=%s path=%v\n", res.Units, res.Path)
	return nil
}
