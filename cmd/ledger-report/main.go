package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"kastelo.dev/ledger"
	"kastelo.dev/ledger/excel"
	"kastelo.dev/ledger/events"
)

func main() {
	// Settings may come from a .env file in the working directory.
	_ = godotenv.Load()

	app := kingpin.New("ledger-report", "Monthly and daily balance reports from a transaction ledger.")
	input := app.Flag("input", "Transaction CSV file").Short('i').Default("data.csv").Envar("LEDGER_INPUT").String()
	encoding := app.Flag("encoding", "Character set of the input file").Default("utf-8").Envar("LEDGER_ENCODING").String()
	strict := app.Flag("strict", "Fail on the first malformed input line").Envar("LEDGER_STRICT").Bool()
	logLevel := app.Flag("log-level", "Log level").Default("info").Envar("LEDGER_LOG_LEVEL").Enum("debug", "info", "warn", "error")

	cmdMonthly := app.Command("monthly", "Write the monthly balance summary").Default()
	monthlyOutput := cmdMonthly.Flag("output", "Output file").Short('o').Default("output.csv").Envar("LEDGER_OUTPUT").String()

	cmdDaily := app.Command("daily", "Print daily credit balances")

	cmdXLSX := app.Command("xlsx", "Write an Excel report")
	xlsxOutput := cmdXLSX.Flag("output", "Output file").Short('o').Default("report.xlsx").Envar("LEDGER_XLSX_OUTPUT").String()

	cmdVerify := app.Command("verify", "Compare the monthly summary with a previously written file")
	verifyAgainst := cmdVerify.Flag("against", "Previously written output file").Default("output.csv").Envar("LEDGER_OUTPUT").String()

	cmdExport := app.Command("export", "Send the summaries to PostgreSQL and/or Kafka")
	var exp exportOptions
	cmdExport.Flag("postgres-dsn", "PostgreSQL connection string").Envar("LEDGER_POSTGRES_DSN").StringVar(&exp.postgresDSN)
	cmdExport.Flag("kafka-brokers", "Comma separated Kafka broker addresses").Envar("LEDGER_KAFKA_BROKERS").StringVar(&exp.kafkaBrokers)
	cmdExport.Flag("kafka-topic", "Kafka topic").Default(events.DefaultTopic).Envar("LEDGER_KAFKA_TOPIC").StringVar(&exp.kafkaTopic)
	cmdExport.Flag("timeout", "Time limit for the export").Default("30s").Envar("LEDGER_EXPORT_TIMEOUT").DurationVar(&exp.timeout)

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	runID := uuid.NewString()
	var level slog.Level
	_ = level.UnmarshalText([]byte(*logLevel))
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("run_id", runID))

	eng := load(*input, ledger.ParseOptions{Encoding: *encoding, Strict: *strict})

	switch cmd {
	case cmdMonthly.FullCommand():
		for _, line := range eng.RenderAllDailyBalances() {
			slog.Debug("Daily balance", "line", line)
		}
		if err := ledger.WriteFile(*monthlyOutput, eng.ExportAllMonthlyRows()); err != nil {
			fatal("Error writing output", err)
		}
		slog.Info("Results can be found in the output file", "file", *monthlyOutput)

	case cmdDaily.FullCommand():
		if err := ledger.WriteRows(os.Stdout, eng.RenderAllDailyBalances()); err != nil {
			fatal("Error printing daily balances", err)
		}

	case cmdXLSX.FullCommand():
		bs, err := excel.ReportXLSX(excel.Report{
			Monthly: eng.AllMonthlyRows(),
			Daily:   eng.AllDailyRows(),
		})
		if err != nil {
			fatal("Error creating Excel file", err)
		}
		if err := os.WriteFile(*xlsxOutput, bs, 0o644); err != nil {
			fatal("Error writing Excel file", err)
		}
		slog.Info("Excel report written", "file", *xlsxOutput)

	case cmdVerify.FullCommand():
		old, err := os.ReadFile(*verifyAgainst)
		if err != nil {
			fatal("Error reading previous output", err)
		}
		if d := ledger.Diff(*verifyAgainst, string(old), eng.ExportAllMonthlyRows()); d != "" {
			fmt.Print(d)
			slog.Warn("Monthly summary differs from previous output", "file", *verifyAgainst)
			os.Exit(1)
		}
		slog.Info("Monthly summary matches previous output", "file", *verifyAgainst)

	case cmdExport.FullCommand():
		if err := export(runID, eng, exp); err != nil {
			fatal("Error exporting", err)
		}
	}
}

func load(path string, opts ledger.ParseOptions) *ledger.Engine {
	res, err := ledger.ReadFile(path, opts)
	if err != nil {
		fatal("Error reading transactions", err)
	}
	for _, lerr := range res.Rejected {
		slog.Debug("Skipping malformed line", "line", lerr.Line, "text", lerr.Text, "error", lerr.Err)
	}
	if n := len(res.Rejected); n > 0 {
		slog.Warn("Skipped malformed lines", "count", n)
	}
	slog.Info("The file is done being processed", "file", path, "transactions", len(res.Transactions))

	eng := ledger.NewEngine()
	eng.Ingest(res.Transactions)
	slog.Debug("Aggregated transactions", "customers", eng.Len())
	return eng
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
