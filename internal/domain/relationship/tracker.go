package relationship

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"companion-api/internal/domain/chat"
)

// Tier is the discrete relationship-progress bucket derived from the score.
type Tier string

const (
	TierStranger Tier = "stranger"
	TierFriend   Tier = "friend"
	TierRomantic Tier = "romantic"
	TierLover    Tier = "lover"
	TierSoulmate Tier = "soulmate"
)

const (
	MinScore = 0
	MaxScore = 100
)

// TierFor maps a score to its tier. Boundaries are inclusive-lower.
func TierFor(score int) Tier {
	switch {
	case score >= 80:
		return TierSoulmate
	case score >= 60:
		return TierLover
	case score >= 40:
		return TierRomantic
	case score >= 20:
		return TierFriend
	default:
		return TierStranger
	}
}

// Display is the score/tier pair exposed to the UI.
type Display struct {
	Score int  `json:"score"`
	Tier  Tier `json:"tier"`
}

// Store persists the attraction score between turns. Every successful
// mutation is written through before the mutating call returns.
type Store interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
}

// Tracker owns the attraction score. A companion reply earns 1-3 points; a
// companion-in-game message earns a single point 30% of the time; user turns
// earn nothing locally (a remote attraction service may credit them).
// The score never decreases except through Reset or AdminSet.
type Tracker struct {
	mu    sync.Mutex
	store Store
	rng   *rand.Rand
	score int
}

// NewTracker loads the persisted score, defaulting to zero when the store
// has no value.
func NewTracker(ctx context.Context, store Store, rng *rand.Rand) (*Tracker, error) {
	score, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attraction score: %w", err)
	}
	return &Tracker{
		store: store,
		rng:   rng,
		score: clamp(score),
	}, nil
}

// Display returns the current score and tier.
func (t *Tracker) Display() Display {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Display{Score: t.score, Tier: TierFor(t.score)}
}

// Score returns the current score.
func (t *Tracker) Score() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.score
}

// ApplyIncrement applies the per-message increment rule for the given sender
// and returns the new score. Senders other than companion and
// companion_in_game never change the score here.
func (t *Tracker) ApplyIncrement(ctx context.Context, sender chat.Sender) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var next int
	switch sender {
	case chat.SenderCompanion:
		next = clamp(t.score + t.rng.Intn(3) + 1)
	case chat.SenderCompanionInGame:
		if t.rng.Float64() >= 0.3 {
			return t.score, nil
		}
		next = clamp(t.score + 1)
	default:
		return t.score, nil
	}
	return t.commit(ctx, next)
}

// Reset sets the score back to zero.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := t.commit(ctx, MinScore)
	return err
}

// AdminSet overrides the score, bypassing the increment rules. The value is
// clamped to the valid range.
func (t *Tracker) AdminSet(ctx context.Context, value int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.commit(ctx, clamp(value))
}

// commit persists the new score before adopting it, so a failed save leaves
// the in-memory value matching what the store actually holds.
func (t *Tracker) commit(ctx context.Context, next int) (int, error) {
	if err := t.store.Save(ctx, next); err != nil {
		return t.score, fmt.Errorf("persist attraction score: %w", err)
	}
	t.score = next
	return t.score, nil
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
