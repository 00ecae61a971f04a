package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-equity/internal/batch"
)

type CLI struct {
	Hands       []string `arg:"" optional:"" help:"Starting hands in rank notation (e.g. AA AKs Q7o). Defaults to all 169 starting hands."`
	Runs        int      `help:"Independent runs per hand (default 10)"`
	Simulations int      `short:"n" help:"Monte Carlo trials per run (default 10000)"`
	Seed        int64    `help:"Random seed for reproducible results (0 for time-based)"`
	Workers     int      `help:"Concurrent workers (0 for all CPUs)"`
	Output      string   `short:"o" help:"Directory for per-hand result files (default equity_simulation_results)"`
	Config      string   `short:"c" help:"HCL batch configuration file" type:"path"`
	Verbose     bool     `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	equityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	settings, err := resolveSettings(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	logger.Info("settings resolved", "seed", settings.Seed, "runs", settings.Runs, "simulations", settings.Simulations)

	startTime := time.Now()
	runner := batch.NewRunner(settings, logger)
	summaries, err := runner.Run()
	duration := time.Since(startTime)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	displaySummaries(os.Stdout, summaries, settings, duration)
}

// resolveSettings layers the configuration sources: built-in defaults,
// then the config file when one is given, then explicit command-line
// flags on top. Flags carry no kong defaults, so a zero value means the
// flag was not supplied and the layer below shows through.
func resolveSettings(cli CLI) (batch.SimulationSettings, error) {
	config := batch.DefaultConfig()
	if cli.Config != "" {
		loaded, err := batch.LoadConfig(cli.Config)
		if err != nil {
			return batch.SimulationSettings{}, err
		}
		config = loaded
	}
	settings := config.Simulation

	if len(cli.Hands) > 0 {
		settings.Hands = cli.Hands
	}
	if cli.Runs > 0 {
		settings.Runs = cli.Runs
	}
	if cli.Simulations > 0 {
		settings.Simulations = cli.Simulations
	}
	if cli.Seed != 0 {
		settings.Seed = cli.Seed
	}
	if cli.Workers > 0 {
		settings.Workers = cli.Workers
	}
	if cli.Output != "" {
		settings.OutputDir = cli.Output
	}

	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	return settings, nil
}

func displaySummaries(out io.Writer, summaries []batch.HandSummary, settings batch.SimulationSettings, duration time.Duration) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("equity"),
		headerStyle.Render("median"),
		headerStyle.Render("95% ci"),
		headerStyle.Render("std dev"))

	for _, summary := range summaries {
		lower, upper := summary.Stats.ConfidenceInterval95()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(summary.Hand),
			equityStyle.Render(fmt.Sprintf("%.4f", summary.Stats.Mean())),
			equityStyle.Render(fmt.Sprintf("%.4f", summary.Stats.Median())),
			rangeStyle.Render(fmt.Sprintf("[%.4f, %.4f]", lower, upper)),
			rangeStyle.Render(fmt.Sprintf("%.4f", summary.Stats.StdDev())))
	}

	w.Flush()

	fmt.Fprintf(out, "\n%d hands, %d runs of %d simulations each in %v\n",
		len(summaries), settings.Runs, settings.Simulations, duration.Truncate(time.Millisecond))
}
