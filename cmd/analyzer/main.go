package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"chatlens/domain"
	"chatlens/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so
// defers execute and the exit path stays testable.
func run() error {
	out := flag.String("out", "", "Write the JSON report to this file instead of stdout")
	summary := flag.Bool("summary", false, "Print a human-readable overview table to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: analyzer [-out report.json] [-summary] <transcript.txt>")
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Read the transcript
	payload, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}

	// 4. Run the pipeline
	service, err := services.NewAnalyzerService(log, config.MaxPayloadBytes)
	if err != nil {
		return err
	}
	report, stats, err := service.Analyze(ctx, services.AnalyzeRequest{Payload: payload})
	if err != nil {
		return err
	}
	if stats != nil && stats.Warnings() > 0 {
		log.Warn("Parse anomalies recovered", "warnings", stats.Warnings())
	}

	// 5. Emit the report
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if *out != "" {
		if err := os.WriteFile(*out, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	} else {
		fmt.Println(string(encoded))
	}

	if *summary {
		printSummary(report)
	}
	return nil
}

// printSummary renders the per-participant cards as a terminal table.
func printSummary(report domain.AnalysisReport) {
	header := fmt.Sprintf("  ====== %d messages | %s | %.1f msg/day ======",
		report.TotalMessages, report.TotalDuration, report.AvgMessagesPerDay)
	fmt.Fprintln(os.Stderr, color.New(color.BgBlack, color.FgGreen).Render(header))

	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"Participant", "Messages", "Avg Sentiment", "Positive %", "Avg Words", "Avg Response (min)", "Started"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for i, person := range report.SentimentByPerson {
		table.Append([]string{
			person.Author,
			fmt.Sprintf("%d", person.TotalMessages),
			fmt.Sprintf("%.3f", person.AverageSentiment),
			fmt.Sprintf("%.1f", person.PositivePct),
			fmt.Sprintf("%.1f", person.AvgMessageLength),
			fmt.Sprintf("%.1f", person.AvgResponseTimeMinutes),
			fmt.Sprintf("%d", report.ConversationInitiation[i].ConversationsStarted),
		})
	}
	table.Render()
}
