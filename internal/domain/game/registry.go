package game

import "math/rand"

// DefaultProcessors builds the full game catalog. The completer feeds the
// two provider-backed games and may be nil, in which case they fall back to
// their canned behavior.
func DefaultProcessors(completer Completer, rng *rand.Rand) []Processor {
	return []Processor{
		NewTwentyQuestions(completer, rng),
		NewTrivia(),
		NewStoryBuilding(completer),
		NewWordAssociation(),
		NewWouldYouRather(),
		NewSongGuess(),
		NewMovieGuess(),
		NewRoleplay(),
		NewLoveQuiz(),
	}
}
