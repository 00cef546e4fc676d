// Package main provides a performance benchmarking tool for the leaguestat CLI.
// It generates synthetic league exports of increasing size, runs each command
// several times, treats the first successful run as cold and averages the rest as warm,
// and writes a CSV of the timings.
//
// Prerequisites:
// - leaguestat binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the generated exports and outputs
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// BenchmarkResult holds the timings of one command on one export size.
type BenchmarkResult struct {
	Players  int
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Sizes    []int // players per roster
	Commands []BenchmarkCommand
}

// BenchmarkCommand is one timed invocation; the export path follows the subcommand.
type BenchmarkCommand struct {
	Name string
	Args []string
}

var roles = []string{"素问", "九灵", "铁衣", "血河", "碎梦", "神相", "龙吟"}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 2 * time.Minute,
		Runs:    4,
		Sizes:   []int{30, 300, 3000},
		Commands: []BenchmarkCommand{
			{Name: "report", Args: []string{"report", "--output-file", "bench.xlsx"}},
			{Name: "report-history", Args: []string{"report", "--output-file", "bench.xlsx", "--history-backend", "sqlite", "--history-db-connect", "bench.db"}},
			{Name: "stats", Args: []string{"stats", "--by", "leader", "--output", "csv", "--output-file", "bench.csv"}},
			{Name: "top", Args: []string{"top", "--roster", "both", "--limit", "50", "--output", "json", "--output-file", "bench.json"}},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results, config)
}

// checkPrerequisites verifies that the leaguestat binary and the work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("leaguestat"); err != nil {
		return fmt.Errorf("leaguestat binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// runBenchmarks generates one export per size and times every command on it
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %v timeout, %d runs per command\n",
		len(config.Sizes), config.Timeout, config.Runs)

	for _, size := range config.Sizes {
		export := filepath.Join(config.WorkDir, fmt.Sprintf("export_%d.csv", size))
		if err := writeExport(export, size); err != nil {
			return nil, fmt.Errorf("failed to generate export of %d players: %w", size, err)
		}
		fmt.Printf("Benchmarking %d players per roster\n", size)

		for _, c := range config.Commands {
			args := append([]string{c.Args[0], export}, c.Args[1:]...)
			cold, warm := runBenchmark(config, args)
			result := BenchmarkResult{Players: size, Command: c.Name, ColdTime: formatSeconds(cold), WarmTime: averageSeconds(warm)}
			fmt.Printf("  %-15s cold: %s, warm average: %s\n", c.Name, result.ColdTime, result.WarmTime)
			results = append(results, result)
		}
	}

	return results, nil
}

// runBenchmark executes a leaguestat command several times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()

		cmd := exec.CommandContext(ctx, "leaguestat", args...)
		cmd.Dir = config.WorkDir
		if err := cmd.Run(); err == nil {
			times = append(times, time.Since(start).Seconds())
		}
		cancel()
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// writeExport writes a synthetic two-roster export with players per roster
func writeExport(path string, players int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	header := []string{"帮会名", "玩家", "等级", "职业", "所在团长", "击败", "助攻", "战备资源", "对玩家伤害",
		"对建筑伤害", "治疗值", "承受伤害", "重伤", "青灯焚骨", "化羽", "控制"}
	if err := writer.Write(header); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(uint64(players), 42))
	for roster, team := range []string{"甲", "乙"} {
		if roster == 1 {
			if err := writer.Write([]string{""}); err != nil {
				return err
			}
		}
		for i := range players {
			row := []string{
				team,
				fmt.Sprintf("%s%04d", team, i),
				strconv.Itoa(70 + rng.IntN(20)),
				roles[rng.IntN(len(roles))],
				fmt.Sprintf("%s团%d", team, i%8),
			}
			for range 11 {
				row = append(row, strconv.Itoa(rng.IntN(500000)))
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatSeconds(s float64) string {
	if s <= 0 {
		return "TIMEOUT"
	}
	return fmt.Sprintf("%.3fs", s)
}

func averageSeconds(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("leaguestat_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"players", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{strconv.Itoa(result.Players), result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult, config BenchmarkConfig) {
	fmt.Printf("Benchmark complete\n")
	for _, c := range config.Commands {
		fmt.Printf("%s:\n", c.Name)
		for _, result := range results {
			if result.Command == c.Name {
				fmt.Printf("  %6d players: Cold: %s, Warm: %s\n", result.Players, result.ColdTime, result.WarmTime)
			}
		}
	}
}
