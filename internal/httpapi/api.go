package httpapi

import (
	"sync"

	"eduquiz/internal/quiz"
)

// API exposes one quiz session over HTTP. Intents are applied one at a time.
type API struct {
	mu           sync.Mutex
	service      *quiz.Service
	session      *quiz.Session
	lastResult   *quiz.Result
	recordErr    error // set while lastResult is waiting to be stored
	historyLimit int
}

func NewAPI(service *quiz.Service) *API {
	api := &API{
		service:      service,
		historyLimit: defaultListLimit,
	}
	if service != nil {
		api.session = service.NewSession()
	}
	return api
}
