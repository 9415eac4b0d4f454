package assistant

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
)

// Generator produces an assistant reply for a user message. The only
// implementation in this repository is the keyword-matching mock; the
// interface is the seam a real backend would fill.
type Generator interface {
	Generate(ctx context.Context, userMessage string) (string, error)
}

// responseRule maps a keyword group to a fixed reply. Rules are tested in
// declaration order and the first match wins, so a message containing
// several keywords always resolves the same way.
type responseRule struct {
	keywords []string
	reply    string
}

var responseRules = []responseRule{
	{keywords: []string{"sentient"}, reply: sentientResponse},
	{keywords: []string{"meaning of life"}, reply: meaningOfLifeResponse},
	{keywords: []string{"love"}, reply: loveResponse},
	{keywords: []string{"ai", "artificial intelligence"}, reply: aiResponse},
}

// MockGenerator simulates model latency and picks replies from the fixed
// rule table. The delay is the sole suspension point; it honors ctx
// cancellation, which is the only way generation can fail.
type MockGenerator struct {
	minDelay time.Duration
	maxDelay time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
	jitter   func(span time.Duration) time.Duration
}

// MockOption customizes a MockGenerator.
type MockOption func(*MockGenerator)

// WithDelayRange overrides the simulated latency bounds.
func WithDelayRange(min, max time.Duration) MockOption {
	return func(g *MockGenerator) {
		g.minDelay = min
		g.maxDelay = max
	}
}

// WithSleep replaces the delay primitive so tests can fast-forward instead
// of waiting on the wall clock.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) MockOption {
	return func(g *MockGenerator) {
		g.sleep = sleep
	}
}

// WithJitter replaces the random jitter source for deterministic tests.
func WithJitter(jitter func(span time.Duration) time.Duration) MockOption {
	return func(g *MockGenerator) {
		g.jitter = jitter
	}
}

// NewMockGenerator builds the mock with the original 1000-3000ms latency
// window.
func NewMockGenerator(opts ...MockOption) *MockGenerator {
	g := &MockGenerator{
		minDelay: time.Second,
		maxDelay: 3 * time.Second,
		sleep:    sleepContext,
		jitter: func(span time.Duration) time.Duration {
			return rand.N(span)
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ Generator = (*MockGenerator)(nil)

// Generate waits out the simulated latency, then matches the lower-cased
// message against the rule table, falling back to the generic reply.
func (g *MockGenerator) Generate(ctx context.Context, userMessage string) (string, error) {
	delay := g.minDelay
	if span := g.maxDelay - g.minDelay; span > 0 {
		delay += g.jitter(span)
	}
	if err := g.sleep(ctx, delay); err != nil {
		return "", err
	}

	lower := strings.ToLower(userMessage)
	for _, rule := range responseRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.reply, nil
			}
		}
	}
	return fallbackResponse, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
