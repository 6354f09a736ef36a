// Package idgen supplies the opaque identifiers given to users, content and
// programs. Generators are plain functions so they can be injected wherever
// entities are created and swapped for deterministic ones in tests.
package idgen

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Strategy names accepted by New.
const (
	StrategyUUID       = "uuid"
	StrategySequential = "sequential"
)

// Func returns a new identifier on every call.
type Func func() string

// UUID returns a generator of random (version 4) UUID strings.
func UUID() Func {
	return uuid.NewString
}

// Sequential returns a generator producing prefix-1, prefix-2, and so on.
// It is safe for concurrent use.
func Sequential(prefix string) Func {
	var (
		mu   sync.Mutex
		next int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return prefix + "-" + strconv.Itoa(next)
	}
}

// New returns the generator for the named strategy.
func New(strategy, prefix string) (Func, error) {
	switch strategy {
	case StrategyUUID:
		return UUID(), nil
	case StrategySequential:
		return Sequential(prefix), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
