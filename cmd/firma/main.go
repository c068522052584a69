package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Sepeciuc/Laborator-6/internal/config"
	"github.com/Sepeciuc/Laborator-6/internal/query"
	"github.com/Sepeciuc/Laborator-6/internal/source"
	"github.com/Sepeciuc/Laborator-6/internal/version"
)

const (
	usageText = `Firma - Employee report

Usage:
  firma [command]

Commands:
  run        Load the employee list and print the report (default)
  version    Print version information
  help       Display this help message

Environment:
  FIRMA_SOURCE           json (default) or postgres
  FIRMA_DATA_FILE        Employee JSON file (default: angajati.json)
  FIRMA_DB_HOST          PostgreSQL host (default: 127.0.0.1)
  FIRMA_DB_PORT          PostgreSQL port (default: 5432)
  FIRMA_DB_USER          PostgreSQL user (default: postgres)
  FIRMA_DB_PASSWORD      PostgreSQL password
  FIRMA_DB_NAME          PostgreSQL database (default: postgres)
  FIRMA_DB_TABLE         Employee table (default: angajati)
  FIRMA_REFERENCE_DATE   Report as of this date, YYYY-MM-DD (default: today)

Examples:
  firma                Print the report for angajati.json
  firma version        Show version and build info
  firma help           Show this help
`

	loadFailedMessage = "Nu s-a putut încărca lista de angajați."
)

func main() {
	command := "run"
	if len(os.Args) >= 2 {
		command = os.Args[1]
	}

	switch command {
	case "run":
		os.Exit(runReport(os.Stdout, os.Stderr, time.Now()))
	case "version":
		printVersion()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(1)
	}
}

// runReport loads the employees and prints the report to stdout. It returns
// the process exit code.
func runReport(stdout, stderr io.Writer, now time.Time) int {
	log.Printf("[INFO] Starting %s", version.Get())

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, loadFailedMessage)
		log.Printf("[FATAL] %v", err)
		return source.ExitCode(source.ErrorCodeInvalidConfig)
	}

	loader, closeSource, err := source.Open(cfg)
	if err != nil {
		return reportLoadError(stderr, err)
	}
	defer func() {
		if err := closeSource(); err != nil {
			log.Printf("[ERROR] Failed to close employee source: %v", err)
		}
	}()

	employees, err := loader.Load(context.Background())
	if err != nil {
		return reportLoadError(stderr, err)
	}
	log.Printf("[INFO] Loaded %d employees from %s source", len(employees), cfg.Source)

	runner := query.NewRunner(employees, cfg.Today(now))
	result, err := runner.Run(stdout)
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return source.ExitCodeInternalError
	}

	log.Printf("[INFO] Report complete: %d queries over %d employees in %v",
		result.QueryCount, result.EmployeeCount, result.ExecutionTime)
	return 0
}

func reportLoadError(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, loadFailedMessage)

	var srcErr *source.SourceError
	if errors.As(err, &srcErr) {
		if srcErr.Detail != "" {
			fmt.Fprintln(stderr, srcErr.Detail)
		}
		log.Printf("[ERROR] %v", srcErr)
		return source.ExitCode(srcErr.Code)
	}

	log.Printf("[ERROR] %v", err)
	return source.ExitCodeInternalError
}

func printVersion() {
	info := version.Get()
	fmt.Println(info.Full())
}

func printUsage() {
	fmt.Print(usageText)
}
