package service

import (
	"math/rand"
	"sync"
	"time"
)

// Picker selects a uniformly random index in [0, n). It is an interface so
// tests can inject deterministic sequences and assert the exact choice.
type Picker interface {
	IntN(n int) int
}

// randPicker is the production Picker. A mutex guards the rand.Rand since
// creation requests arrive concurrently.
type randPicker struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomPicker returns a Picker seeded from the wall clock.
func NewRandomPicker() Picker {
	return &randPicker{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *randPicker) IntN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.Intn(n)
}
