package game

import (
	"context"
	"fmt"
	"strings"
)

type triviaQuestion struct {
	q string
	a string
}

var triviaQuestions = []triviaQuestion{
	{q: "What is the capital of France?", a: "paris"},
	{q: "What year did World War II end?", a: "1945"},
	{q: "What is the largest planet in our solar system?", a: "jupiter"},
	{q: "Who painted the Mona Lisa?", a: "leonardo da vinci"},
	{q: "What is 15 + 27?", a: "42"},
}

type triviaState struct {
	score   int
	asked   int
	current int // index into triviaQuestions, -1 when no question pending
}

// Trivia walks a fixed question list in order, scoring each answer by
// case-insensitive substring match.
type Trivia struct{}

func NewTrivia() *Trivia { return &Trivia{} }

func (g *Trivia) ID() ID        { return IDTrivia }
func (g *Trivia) Title() string { return "Trivia Challenge" }

func (g *Trivia) Welcome() string {
	return "🧠 Welcome to Trivia Challenge! I'll ask you questions and keep track of your score. Ready to begin?"
}

func (g *Trivia) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *triviaState {
		return &triviaState{current: -1}
	})
	lowered := strings.ToLower(strings.TrimSpace(input))

	if strings.Contains(lowered, "start") && data.current < 0 {
		data.asked = 0
		data.score = 0
		data.current = 0
		return Result{Messages: systemMessages(fmt.Sprintf("🧠 Question %d: %s", data.asked+1, triviaQuestions[data.current].q))}
	}

	if data.current >= 0 {
		question := triviaQuestions[data.current]
		var msgs []string
		if strings.Contains(lowered, question.a) {
			data.score++
			msgs = append(msgs, fmt.Sprintf("🧠 Correct! Score: %d/%d", data.score, data.asked+1))
		} else {
			msgs = append(msgs, fmt.Sprintf("🧠 Wrong! The answer was: %s. Score: %d/%d", question.a, data.score, data.asked+1))
		}

		data.asked++
		if data.asked < len(triviaQuestions) {
			data.current = data.asked
			msgs = append(msgs, fmt.Sprintf("🧠 Question %d: %s", data.asked+1, triviaQuestions[data.current].q))
		} else {
			data.current = -1
			msgs = append(msgs, fmt.Sprintf("🧠 Game over! Final score: %d/%d. Type '/exit' to leave the game.", data.score, len(triviaQuestions)))
		}
		return Result{Messages: systemMessages(msgs...)}
	}

	return Result{ContinueToCompanion: true}
}
