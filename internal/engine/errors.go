package engine

import "errors"

// Validation and precondition errors surfaced by engine transitions. All
// are local-computation failures with no engine-level retry: the caller
// (API handler, service orchestrator or simulator) decides whether to
// abort the match, report the error or no-op the turn. A failed
// transition never leaves partially mutated score or hand state behind.
var (
	// ErrFactionNotKnown: a card's faction is absent from the configured
	// faction order. The advantage math must not guess a default cycle
	// position, so this fails the turn outright.
	ErrFactionNotKnown = errors.New("engine: card faction not present in faction order")

	// ErrPowerNotFound: the chosen power kind is absent from a card's
	// power list. Catalog validation makes this unreachable for catalog
	// cards, but the resolver re-checks rather than trusting its input.
	ErrPowerNotFound = errors.New("engine: chosen power kind not present on card")

	// ErrPowerKindNotKnown: the chosen power kind is absent from the
	// configured power order.
	ErrPowerKindNotKnown = errors.New("engine: power kind not present in power order")

	// ErrCardNotFound: a deck entry has no catalog counterpart.
	ErrCardNotFound = errors.New("engine: card name not found in catalog")

	// ErrDeckExhausted: a draw was requested from an empty deck.
	ErrDeckExhausted = errors.New("engine: deck is empty")

	// ErrWrongPhase: a transition was invoked outside its phase.
	ErrWrongPhase = errors.New("engine: transition not valid in current phase")

	// ErrAlreadySelected: the seat already committed a card this turn.
	// A card instance is played at most once.
	ErrAlreadySelected = errors.New("engine: active card already selected this turn")

	// ErrHandIndexOutOfRange: the requested hand position does not exist.
	ErrHandIndexOutOfRange = errors.New("engine: hand index out of range")

	// ErrMissingSelection: combat was requested before both seats
	// committed an active card and power.
	ErrMissingSelection = errors.New("engine: both active cards and powers must be selected before combat")

	// ErrMatchFinished: the match already reached its terminal state.
	ErrMatchFinished = errors.New("engine: match is finished")

	// ErrPlayerCount: the match does not have exactly two seats.
	ErrPlayerCount = errors.New("engine: match must have exactly two players")
)
