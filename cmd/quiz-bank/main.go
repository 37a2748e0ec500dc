package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"eduquiz/internal/bank"
	"eduquiz/internal/opentdb"
	"eduquiz/internal/quiz"
)

func main() {
	amount := flag.Int("amount", 10, "number of questions to request from OpenTriviaDB")
	out := flag.String("out", "", "output YAML file (default: stdout)")
	title := flag.String("title", "OpenTriviaDB", "bank title")
	timeout := flag.Duration("timeout", 10*time.Second, "HTTP timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := opentdb.NewClient(&http.Client{Timeout: *timeout})
	raw, err := client.FetchQuestions(ctx, *amount)
	if err != nil {
		log.Fatalf("fetch questions: %v", err)
	}

	questions, err := quiz.NewBank(bank.FromOpenTDB(raw, rand.New(rand.NewSource(time.Now().UnixNano()))))
	if err != nil {
		log.Fatalf("build bank: %v", err)
	}

	data, err := bank.Encode(*title, questions.Questions())
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("write bank: %v", err)
		}
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write bank: %v", err)
	}
	log.Printf("wrote %d of %d questions to %s", questions.Len(), len(raw), *out)
}
