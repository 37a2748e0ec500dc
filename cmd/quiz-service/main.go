package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"eduquiz/internal/bank"
	"eduquiz/internal/httpapi"
	"eduquiz/internal/quiz"
	"eduquiz/internal/quiz/sqlite"
)

func main() {
	defaultAddr := os.Getenv("ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8080"
	}

	addr := flag.String("addr", defaultAddr, "HTTP listen address")
	bankPath := flag.String("bank", os.Getenv("QUIZ_BANK"), "YAML question bank (default: built-in)")
	dbPath := flag.String("db", os.Getenv("QUIZ_DB"), "SQLite file for result history (default: disabled)")
	flag.Parse()

	questions := bank.Default()
	if *bankPath != "" {
		loaded, err := bank.Load(*bankPath)
		if err != nil {
			log.Fatalf("load bank: %v", err)
		}
		questions = loaded
	}

	var results quiz.ResultRepository
	if *dbPath != "" {
		store, err := sqlite.NewSQLiteStore(*dbPath)
		if err != nil {
			log.Fatalf("open history: %v", err)
		}
		defer store.Close()
		results = store
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(quiz.NewService(questions, results)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("quiz-service listening on %s (%d questions, history=%t)", *addr, questions.Len(), results != nil)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
