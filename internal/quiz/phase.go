package quiz

import "fmt"

// Phase is the tagged state of a session.
type Phase int

const (
	// PhaseAnswering accepts selection, hints, fifty-fifty, confirm and skip.
	PhaseAnswering Phase = iota
	// PhaseRevealed follows a confirm or skip; only advance and reset are accepted.
	PhaseRevealed
	// PhaseComplete is reached after advancing past the last question.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseRevealed:
		return "revealed"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for _, candidate := range []Phase{PhaseAnswering, PhaseRevealed, PhaseComplete} {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}
