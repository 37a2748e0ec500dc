package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"eduquiz/internal/bank"
	"eduquiz/internal/quiz"
	"eduquiz/internal/quiz/sqlite"
	"eduquiz/internal/ui/tui"
)

const defaultHistoryLimit = 5

type Config struct {
	// BankPath is a YAML question bank; empty selects the built-in bank.
	BankPath string
	// DBPath enables result history when set.
	DBPath       string
	UIMode       string
	HistoryLimit int
	// NoColor turns off styling in the interactive UI.
	NoColor bool
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	choice, err := chooseUI(cfg.UIMode, out)
	if err != nil {
		return err
	}

	questions := bank.Default()
	if strings.TrimSpace(cfg.BankPath) != "" {
		questions, err = bank.Load(cfg.BankPath)
		if err != nil {
			return err
		}
	}

	var results quiz.ResultRepository
	if strings.TrimSpace(cfg.DBPath) != "" {
		store, err := sqlite.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer store.Close()
		results = store
	}

	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}

	service := quiz.NewService(questions, results)
	if choice.notice != "" {
		fmt.Fprintln(out, choice.notice)
	}
	if choice.interactive {
		return tui.Run(ctx, service, in, out, tui.Options{HistoryLimit: historyLimit, NoColor: cfg.NoColor})
	}
	return Play(ctx, service, in, out, historyLimit)
}

// Play drives one session from line-oriented input until the player quits or
// input ends.
func Play(ctx context.Context, service *quiz.Service, in io.Reader, out io.Writer, historyLimit int) error {
	reader := bufio.NewReader(in)
	session := service.NewSession()

	fmt.Fprintf(out, "Educational quiz: %d questions (%s). Type \"help\" for commands.\n",
		service.Bank().Len(), strings.Join(service.Bank().Categories(), ", "))
	printQuestion(out, session.Snapshot())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}

		cmd, option := parseCommand(line)
		if cmd == cmdQuit {
			return nil
		}
		if cmd == cmdHelp {
			printHelp(out)
			continue
		}

		done, err := apply(ctx, service, session, cmd, option, out, historyLimit)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// apply forwards one command to the session and prints what changed. It
// reports done when the player declines another pass.
func apply(ctx context.Context, service *quiz.Service, session *quiz.Session, cmd command, option int, out io.Writer, historyLimit int) (bool, error) {
	if session.Phase() == quiz.PhaseComplete {
		if cmd != cmdReset {
			return true, nil
		}
		session.Reset()
		printQuestion(out, session.Snapshot())
		return false, nil
	}

	var err error
	switch cmd {
	case cmdSelect:
		if err = session.SelectOption(option); err == nil {
			fmt.Fprintf(out, "Selected %s. Press Enter to confirm.\n", optionLetter(option))
		}
	case cmdEnter, cmdConfirm, cmdNext:
		if session.Phase() == quiz.PhaseRevealed {
			return advance(ctx, service, session, out, historyLimit)
		}
		if cmd == cmdNext {
			err = session.Advance()
			break
		}
		if err = session.Confirm(); err == nil {
			printReveal(out, session.Snapshot())
		}
	case cmdHint:
		if err = session.RequestHint(); err == nil {
			printHint(out, session.Snapshot())
		}
	case cmdFiftyFifty:
		if err = session.UseFiftyFifty(); err == nil {
			printOptions(out, session.Snapshot())
		}
	case cmdSkip:
		if err = session.Skip(); err == nil {
			fmt.Fprintln(out, "Skipped.")
			return advance(ctx, service, session, out, historyLimit)
		}
	case cmdReset:
		session.Reset()
		fmt.Fprintln(out, "Starting over.")
		printQuestion(out, session.Snapshot())
	default:
		fmt.Fprintln(out, "Unknown command. Type \"help\" for commands.")
	}

	if err != nil {
		printRejection(out, err)
	}
	return false, nil
}

func advance(ctx context.Context, service *quiz.Service, session *quiz.Session, out io.Writer, historyLimit int) (bool, error) {
	if err := session.Advance(); err != nil {
		printRejection(out, err)
		return false, nil
	}
	if session.Phase() != quiz.PhaseComplete {
		printQuestion(out, session.Snapshot())
		return false, nil
	}

	result, err := service.Finish(ctx, session)
	if err != nil {
		return false, err
	}
	printSummary(out, session.Snapshot(), result)

	if service.HistoryEnabled() {
		history, err := service.RecentResults(ctx, historyLimit)
		if err != nil {
			return false, err
		}
		printHistory(out, history)
	}

	fmt.Fprintln(out, "\nType r to play again or press Enter to quit.")
	return false, nil
}

type command int

const (
	cmdUnknown command = iota
	cmdEnter
	cmdSelect
	cmdConfirm
	cmdNext
	cmdHint
	cmdFiftyFifty
	cmdSkip
	cmdReset
	cmdHelp
	cmdQuit
)

func parseCommand(line string) (command, int) {
	input := strings.ToLower(strings.TrimSpace(line))
	if input == "" {
		return cmdEnter, 0
	}
	if len(input) == 1 {
		letter := input[0]
		if letter >= 'a' && letter < 'a'+quiz.OptionCount {
			return cmdSelect, int(letter - 'a')
		}
		if letter >= '1' && letter < '1'+quiz.OptionCount {
			return cmdSelect, int(letter - '1')
		}
	}

	switch input {
	case "ok", "confirm":
		return cmdConfirm, 0
	case "n", "next":
		return cmdNext, 0
	case "h", "hint":
		return cmdHint, 0
	case "f", "50", "fifty", "50/50":
		return cmdFiftyFifty, 0
	case "s", "skip":
		return cmdSkip, 0
	case "r", "reset", "restart":
		return cmdReset, 0
	case "?", "help":
		return cmdHelp, 0
	case "q", "quit", "exit":
		return cmdQuit, 0
	}
	return cmdUnknown, 0
}
