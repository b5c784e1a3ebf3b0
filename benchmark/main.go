// Package main is a performance harness for the compareview CLI.
// It generates dashboard documents of increasing size, runs each command
// several times against them, and writes the timings as CSV.
//
// Prerequisites:
// - compareview binary installed and available in PATH
//
// Usage: go run benchmark/main.go [runs]
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/huangsam/compareview/schema"
	"gopkg.in/yaml.v3"
)

// BenchmarkResult holds the timings of one command on one document size.
type BenchmarkResult struct {
	Size    string
	Command string
	First   string
	Average string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Runs    int
	Timeout time.Duration
	Sizes   map[string][2]int // name -> items, metrics
	Order   []string
}

// commands are the invocations timed per document; the document path is appended.
var commands = map[string][]string{
	"compare-table":  {"compare", "--output", "csv"},
	"compare-radar":  {"compare", "--view", "radar", "--output", "json"},
	"chart-bar-svg":  {"chart", "bar", "--format", "svg"},
	"chart-line-png": {"chart", "line", "--format", "png"},
	"flow-sankey":    {"flow", "sankey", "--output", "json"},
}

var commandOrder = []string{"compare-table", "compare-radar", "chart-bar-svg", "chart-line-png", "flow-sankey"}

func main() {
	runs := 5
	if len(os.Args) == 2 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Printf("Usage: %s [runs]\n", os.Args[0])
			os.Exit(1)
		}
		runs = n
	}

	config := BenchmarkConfig{
		Runs:    runs,
		Timeout: time.Minute,
		Sizes: map[string][2]int{
			"small":  {6, 8},
			"medium": {50, 40},
			"large":  {500, 200},
		},
		Order: []string{"small", "medium", "large"},
	}

	if _, err := exec.LookPath("compareview"); err != nil {
		fmt.Println("Prerequisites check failed: compareview binary not found in PATH")
		os.Exit(1)
	}

	dir, err := os.MkdirTemp("", "compareview-bench-*")
	if err != nil {
		fmt.Printf("Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	results, err := runBenchmarks(config, dir)
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

// runBenchmarks writes one document per size and times every command on it.
func runBenchmarks(config BenchmarkConfig, dir string) ([]BenchmarkResult, error) {
	var results []BenchmarkResult
	fmt.Printf("Starting benchmark: %d sizes, %d commands, %d runs each\n", len(config.Order), len(commandOrder), config.Runs)

	for _, size := range config.Order {
		dims := config.Sizes[size]
		path := filepath.Join(dir, size+".yaml")
		if err := writeDocument(path, dims[0], dims[1]); err != nil {
			return nil, err
		}
		fmt.Printf("Benchmarking %s (%d items x %d metrics)\n", size, dims[0], dims[1])
		for _, name := range commandOrder {
			args := append(append([]string{}, commands[name]...), path)
			if name == "chart-line-png" {
				args = append(args, "--output-file", filepath.Join(dir, size+".png"))
			}
			first, avg := runBenchmark(config, args)
			fmt.Printf("  %-15s first: %s, average: %s\n", name, first, avg)
			results = append(results, BenchmarkResult{Size: size, Command: name, First: first, Average: avg})
		}
	}
	return results, nil
}

// runBenchmark runs args config.Runs times and returns the first and mean wall times.
func runBenchmark(config BenchmarkConfig, args []string) (first, average string) {
	var times []float64
	for range config.Runs {
		start := time.Now()
		cmd := exec.Command("compareview", args...)
		done := make(chan error, 1)
		go func() { done <- cmd.Run() }()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}
	if len(times) == 0 {
		return "FAILED", "FAILED"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", times[0]), fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// writeDocument generates a dashboard with deterministic values.
func writeDocument(path string, items, metrics int) error {
	doc := schema.Document{Title: fmt.Sprintf("Benchmark %dx%d", items, metrics)}
	formats := schema.AllFormatKinds
	for m := range metrics {
		doc.Metrics = append(doc.Metrics, schema.MetricDefinition{
			Key:    fmt.Sprintf("m%d", m),
			Label:  fmt.Sprintf("Metric %d", m),
			Format: formats[m%len(formats)],
		})
	}
	for i := range items {
		item := schema.Item{ID: fmt.Sprintf("item-%d", i), Label: fmt.Sprintf("Item %d", i), Metrics: map[string]schema.MetricValue{}}
		for m := range metrics {
			item.Metrics[fmt.Sprintf("m%d", m)] = schema.Number(float64((i*31+m*17)%1000) + 0.5)
		}
		doc.Items = append(doc.Items, item)
		doc.Points = append(doc.Points, schema.DataPoint{Label: item.Label, Value: float64((i * 37) % 500)})
		doc.Links = append(doc.Links, schema.FlowLink{From: fmt.Sprintf("Source %d", i%10), To: item.Label, Users: float64((i * 53) % 900)})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/compareview_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"size", "cmd", "first", "average"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Size, r.Command, r.First, r.Average}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final results grouped by command.
func printSummary(results []BenchmarkResult, config BenchmarkConfig) {
	fmt.Printf("Benchmark complete\n")
	for _, name := range commandOrder {
		fmt.Printf("%s:\n", name)
		for _, size := range config.Order {
			for _, r := range results {
				if r.Command == name && r.Size == size {
					fmt.Printf("  %-8s first: %s, average: %s\n", r.Size, r.First, r.Average)
				}
			}
		}
	}
}
