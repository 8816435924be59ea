package leagues

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a participant list that cannot produce a full
// round robin: fewer than two entries, an odd count, or duplicates. Odd
// counts are rejected outright; callers that want bye weeks must handle
// them before calling.
var ErrInvalidInput = errors.New("invalid participant list")

// Pairing is a single fixture in a round-robin schedule. Round is 1-based.
type Pairing[T comparable] struct {
	Round int
	Home  T
	Away  T
}

// RoundRobinPairings builds a single round robin for an even number of
// participants using the circle method: position 0 stays fixed while the
// rest of the ring rotates one step after every round, the last element
// moving into the slot just after the anchor. For N participants it
// returns N-1 rounds of N/2 pairings each, and every unordered pair of
// participants appears exactly once across the schedule.
//
// Home is always the lower ring position, so home/away counts are not
// balanced across rounds. The input slice is never modified, and the same
// input order always yields the same schedule.
func RoundRobinPairings[T comparable](participants []T) ([]Pairing[T], error) {
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: need at least two participants, got %d", ErrInvalidInput, len(participants))
	}
	if len(participants)%2 != 0 {
		return nil, fmt.Errorf("%w: participant count must be even, got %d", ErrInvalidInput, len(participants))
	}
	seen := make(map[T]struct{}, len(participants))
	for _, p := range participants {
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: duplicate participant %v", ErrInvalidInput, p)
		}
		seen[p] = struct{}{}
	}

	// Rotation happens on a copy so the caller's slice is left alone.
	ring := make([]T, len(participants))
	copy(ring, participants)

	rounds := len(ring) - 1
	pairings := make([]Pairing[T], 0, rounds*len(ring)/2)
	for round := 0; round < rounds; round++ {
		for i := 0; i < len(ring)/2; i++ {
			pairings = append(pairings, Pairing[T]{
				Round: round + 1,
				Home:  ring[i],
				Away:  ring[len(ring)-1-i],
			})
		}
		rotateRing(ring)
	}
	return pairings, nil
}

// rotateRing moves the last element into position 1; position 0 is the
// fixed anchor of the circle method.
func rotateRing[T comparable](ring []T) {
	if len(ring) <= 2 {
		return
	}
	last := ring[len(ring)-1]
	copy(ring[2:], ring[1:len(ring)-1])
	ring[1] = last
}
