package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"eduquiz/internal/userclient"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "quiz service base URL")
	results := flag.Int("results", 5, "number of recent results to list")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	err := userclient.Run(context.Background(), os.Stdin, os.Stdout, userclient.Config{
		ServerURL:    *server,
		ResultsLimit: *results,
		HTTPTimeout:  *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
