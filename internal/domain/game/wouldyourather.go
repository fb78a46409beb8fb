package game

import (
	"context"
	"fmt"
	"strings"
)

var wouldYouRatherQuestions = []string{
	"Would you rather have the ability to fly or be invisible?",
	"Would you rather always be 10 minutes late or 20 minutes early?",
	"Would you rather have unlimited money or unlimited time?",
	"Would you rather read minds or predict the future?",
	"Would you rather live in the past or the future?",
}

type wouldYouRatherState struct {
	asked int
}

// WouldYouRather walks a fixed list of either/or questions. Any answer
// advances the pointer; the companion comments along the way.
type WouldYouRather struct{}

func NewWouldYouRather() *WouldYouRather { return &WouldYouRather{} }

func (g *WouldYouRather) ID() ID        { return IDWouldYouRather }
func (g *WouldYouRather) Title() string { return "Would You Rather" }

func (g *WouldYouRather) Welcome() string {
	return fmt.Sprintf("❓ Would You Rather! I'll give you two choices and you pick one. Here's your first: %s", wouldYouRatherQuestions[0])
}

func (g *WouldYouRather) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *wouldYouRatherState { return &wouldYouRatherState{} })

	if strings.Contains(strings.ToLower(input), "start") {
		return Result{
			Messages:            systemMessages(fmt.Sprintf("❓ %s", wouldYouRatherQuestions[0])),
			ContinueToCompanion: true,
		}
	}

	msgs := []string{"❓ Interesting choice! I can see why you'd pick that."}
	data.asked++

	if data.asked < len(wouldYouRatherQuestions) {
		msgs = append(msgs, fmt.Sprintf("❓ Next question: %s", wouldYouRatherQuestions[data.asked]))
	} else {
		msgs = append(msgs, "❓ That was fun! We've gone through all my questions. Type '/exit' to leave the game.")
	}
	return Result{Messages: systemMessages(msgs...), ContinueToCompanion: true}
}
