package userclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"eduquiz/internal/quiz"
)

const (
	defaultServer       = "http://127.0.0.1:8080"
	defaultResultsLimit = 5
	defaultHTTPTimeout  = 5 * time.Second
)

type Config struct {
	ServerURL    string
	ResultsLimit int
	HTTPTimeout  time.Duration
}

// Run plays the server's session from line-oriented input.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}
	resultsLimit := cfg.ResultsLimit
	if resultsLimit == 0 {
		resultsLimit = defaultResultsLimit
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := NewHTTPClient(serverURL, &http.Client{Timeout: timeout})
	reader := bufio.NewReader(in)

	state, err := client.Session(ctx)
	if err != nil {
		return describeClientError(err, serverURL)
	}

	fmt.Fprintf(out, "quiz remote\nserver=%s\n", serverURL)
	printHelp(out)
	printState(out, state)

	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		args := strings.Fields(strings.ToLower(line))
		word := ""
		if len(args) > 0 {
			word = args[0]
		}

		var next sessionState
		switch word {
		case "help", "?":
			printHelp(out)
			continue
		case "q", "quit", "exit":
			return nil
		case "results":
			limit, parseErr := parseSignedLimit(args, 1, resultsLimit)
			if parseErr != nil {
				fmt.Fprintf(out, "invalid results limit: %v\n", parseErr)
				continue
			}
			results, err := client.Results(ctx, limit)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", describeClientError(err, serverURL))
				continue
			}
			printResults(out, results)
			continue
		case "", "ok", "next":
			if state.Phase == quiz.PhaseRevealed {
				next, err = client.Intent(ctx, "advance")
			} else {
				next, err = client.Intent(ctx, "confirm")
			}
		case "h", "hint":
			next, err = client.Intent(ctx, "hint")
		case "50", "f":
			next, err = client.Intent(ctx, "fifty-fifty")
		case "s", "skip":
			next, err = client.Intent(ctx, "skip")
			if err == nil {
				fmt.Fprintln(out, "Skipped.")
				next, err = client.Intent(ctx, "advance")
			}
		case "save":
			next, err = client.Intent(ctx, "record")
		case "r", "reset":
			next, err = client.Intent(ctx, "reset")
		default:
			option, ok := parseOption(word)
			if !ok {
				fmt.Fprintf(out, "Unknown command %q. Type \"help\".\n", word)
				continue
			}
			next, err = client.Select(ctx, option)
		}

		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.Rejected() {
				fmt.Fprintf(out, "Not now: %s\n", apiErr.Message)
				continue
			}
			return describeClientError(err, serverURL)
		}
		state = next
		printState(out, state)
	}
}
