package game

import (
	"context"
	"fmt"
	"strings"
)

type movie struct {
	clue   string
	answer string
}

var movies = []movie{
	{clue: "🎬 A group of friends in New York, one's a paleontologist, another's a chef...", answer: "friends"},
	{clue: "🎬 A wizard boy attends a magical school and fights a dark lord", answer: "harry potter"},
	{clue: "🎬 'I'll be back' - Time traveling robots", answer: "terminator"},
}

type movieGuessState struct {
	current int
	score   int
}

// MovieGuess describes movies and shows in order; substring match on the
// title scores.
type MovieGuess struct{}

func NewMovieGuess() *MovieGuess { return &MovieGuess{} }

func (g *MovieGuess) ID() ID        { return IDMovieGuess }
func (g *MovieGuess) Title() string { return "Movie/TV Guessing" }

func (g *MovieGuess) Welcome() string {
	return fmt.Sprintf("🎬 Movie/TV Guessing! I'll describe a movie or show, and you guess what it is. Here's your first clue: %q", strings.TrimPrefix(movies[0].clue, "🎬 "))
}

func (g *MovieGuess) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *movieGuessState { return &movieGuessState{} })
	lowered := strings.ToLower(input)

	if strings.Contains(lowered, "start") {
		return Result{Messages: systemMessages(fmt.Sprintf("🎬 Movie/TV Guessing! Here's your first clue: %s", movies[0].clue))}
	}

	if data.current >= len(movies) {
		return Result{ContinueToCompanion: true}
	}

	current := movies[data.current]
	var msgs []string
	if strings.Contains(lowered, current.answer) {
		data.score++
		msgs = append(msgs, fmt.Sprintf("🎬 Correct! It was %q. Score: %d", current.answer, data.score))
	} else {
		msgs = append(msgs, fmt.Sprintf("🎬 Not quite! It was %q. Score: %d", current.answer, data.score))
	}

	data.current++
	if data.current < len(movies) {
		msgs = append(msgs, fmt.Sprintf("🎬 Next clue: %s", movies[data.current].clue))
	} else {
		msgs = append(msgs, fmt.Sprintf("🎬 Game over! Final score: %d/%d. Type '/exit' to leave the game.", data.score, len(movies)))
	}
	return Result{Messages: systemMessages(msgs...)}
}
