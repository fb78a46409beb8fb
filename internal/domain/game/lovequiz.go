package game

import (
	"context"
	"fmt"
	"strings"
)

var loveQuizQuestions = []string{
	"What's your ideal date activity?",
	"What's most important in a relationship?",
	"How do you prefer to show affection?",
	"What's your love language?",
	"What makes you feel most loved?",
}

type loveQuizState struct {
	current int
}

// LoveQuiz asks a fixed list of preference questions. There are no wrong
// answers; the companion reacts to each one.
type LoveQuiz struct{}

func NewLoveQuiz() *LoveQuiz { return &LoveQuiz{} }

func (g *LoveQuiz) ID() ID        { return IDLoveQuiz }
func (g *LoveQuiz) Title() string { return "Love Language Quiz" }

func (g *LoveQuiz) Welcome() string {
	return "💕 Love Language Quiz! Let's discover how compatible we are. I'll ask you questions about preferences and feelings. Ready?"
}

func (g *LoveQuiz) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *loveQuizState { return &loveQuizState{} })

	if strings.Contains(strings.ToLower(input), "start") {
		return Result{
			Messages:            systemMessages(fmt.Sprintf("💕 Love Language Quiz! Question 1: %s", loveQuizQuestions[0])),
			ContinueToCompanion: true,
		}
	}

	msgs := []string{"💕 Interesting answer! That tells me a lot about you."}
	data.current++

	if data.current < len(loveQuizQuestions) {
		msgs = append(msgs, fmt.Sprintf("💕 Question %d: %s", data.current+1, loveQuizQuestions[data.current]))
	} else {
		msgs = append(msgs, "💕 Thanks for sharing! I feel like I know you better now. We're very compatible! Type '/exit' to leave the game.")
	}
	return Result{Messages: systemMessages(msgs...), ContinueToCompanion: true}
}
