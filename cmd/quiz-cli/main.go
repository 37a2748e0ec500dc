package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eduquiz/internal/cli"
)

func main() {
	bankPath := flag.String("bank", os.Getenv("QUIZ_BANK"), "YAML question bank (default: built-in)")
	dbPath := flag.String("db", os.Getenv("QUIZ_DB"), "SQLite file for result history (default: disabled)")
	uiMode := flag.String("ui", os.Getenv("QUIZ_UI"), "UI mode: auto, live or plain")
	history := flag.Int("history", 5, "number of recent results shown after a pass")
	noColor := flag.Bool("no-color", os.Getenv("NO_COLOR") != "", "disable colors in the interactive UI")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx, os.Stdin, os.Stdout, cli.Config{
		BankPath:     *bankPath,
		DBPath:       *dbPath,
		UIMode:       *uiMode,
		HistoryLimit: *history,
		NoColor:      *noColor,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
