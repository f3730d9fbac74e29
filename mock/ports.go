package mock

import (
	"fmt"
	"time"

	"gitlab.com/chronicle/chronicle"
)

// Confirmer answers every prompt with Answer and records the prompts
type Confirmer struct {
	Answer  bool
	Prompts []string
}

// Confirm records prompt
func (c *Confirmer) Confirm(prompt string) bool {
	c.Prompts = append(c.Prompts, prompt)
	return c.Answer
}

// Notifier records notifications
type Notifier struct {
	Messages []string
}

// Notify records message
func (n *Notifier) Notify(message string) {
	n.Messages = append(n.Messages, message)
}

// Clock starts at Start and advances Step on every call
type Clock struct {
	Start time.Time
	Step  time.Duration
	calls int
}

// NewClock starting at a fixed date, one second per tick
func NewClock() *Clock {
	return &Clock{Start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Step: time.Second}
}

// Now returns the next tick
func (c *Clock) Now() time.Time {
	t := c.Start.Add(time.Duration(c.calls) * c.Step)
	c.calls++
	return t
}

// IDs generates kind_1, kind_2 ... per kind
type IDs struct {
	counts map[string]int
}

// NewID for kind
func (g *IDs) NewID(kind string) string {
	if g.counts == nil {
		g.counts = make(map[string]int)
	}
	g.counts[kind]++
	return fmt.Sprintf("%s_%d", kind, g.counts[kind])
}

// Store wraps another KeyValueStore and fails reads or writes on demand
type Store struct {
	chronicle.KeyValueStore
	GetErr error
	SetErr error
	Sets   int
}

// Get fails with GetErr if set
func (s *Store) Get(key string) ([]byte, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.KeyValueStore.Get(key)
}

// Set fails with SetErr if set
func (s *Store) Set(key string, value []byte) error {
	s.Sets++
	if s.SetErr != nil {
		return s.SetErr
	}
	return s.KeyValueStore.Set(key, value)
}
