// Package batch drives equity simulations for a list of starting hands:
// per-hand repeated runs, summary statistics, and persisted result files.
package batch

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete batch configuration
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// SimulationSettings controls one batch of equity simulations
type SimulationSettings struct {
	Hands       []string `hcl:"hands,optional"`       // starting hands in notation form; empty = all 169
	Runs        int      `hcl:"runs,optional"`        // independent runs per hand
	Simulations int      `hcl:"simulations,optional"` // Monte Carlo trials per run
	Seed        int64    `hcl:"seed,optional"`        // master RNG seed; 0 = time-based
	Workers     int      `hcl:"workers,optional"`     // concurrent workers; 0 = GOMAXPROCS
	OutputDir   string   `hcl:"output_dir,optional"`  // directory for per-hand result files
}

// DefaultConfig returns the default batch configuration
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Runs:        10,
			Simulations: 10000,
			OutputDir:   "equity_simulation_results",
		},
	}
}

// LoadConfig loads batch configuration from an HCL file. A missing file
// yields the defaults; a malformed one is an error.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Simulation.Runs == 0 {
		config.Simulation.Runs = 10
	}
	if config.Simulation.Simulations == 0 {
		config.Simulation.Simulations = 10000
	}
	if config.Simulation.OutputDir == "" {
		config.Simulation.OutputDir = "equity_simulation_results"
	}
}

// Validate rejects settings the simulator would refuse at run time
func (s SimulationSettings) Validate() error {
	if s.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", s.Runs)
	}
	if s.Simulations <= 0 {
		return fmt.Errorf("simulations must be positive, got %d", s.Simulations)
	}
	return nil
}
