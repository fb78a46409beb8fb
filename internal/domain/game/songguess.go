package game

import (
	"context"
	"fmt"
	"strings"
)

type song struct {
	clue   string
	answer string
	artist string
}

var songs = []song{
	{clue: "🎵 'Is this the real life? Is this just fantasy?'", answer: "bohemian rhapsody", artist: "Queen"},
	{clue: "🎵 'Hello, is it me you're looking for?'", answer: "hello", artist: "Lionel Richie"},
	{clue: "🎵 'I see trees of green, red roses too'", answer: "what a wonderful world", artist: "Louis Armstrong"},
}

type songGuessState struct {
	current int
	score   int
}

// SongGuess shows lyric clues in order; a guess containing either the title
// or the artist scores.
type SongGuess struct{}

func NewSongGuess() *SongGuess { return &SongGuess{} }

func (g *SongGuess) ID() ID        { return IDSongGuess }
func (g *SongGuess) Title() string { return "Song Guessing" }

func (g *SongGuess) Welcome() string {
	return "🎵 Song Guessing Game! I'll give you lyrics or clues, and you guess the song and artist. Ready for your first clue?"
}

func (g *SongGuess) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *songGuessState { return &songGuessState{} })
	lowered := strings.ToLower(input)

	if strings.Contains(lowered, "start") {
		return Result{Messages: systemMessages(fmt.Sprintf("🎵 Song Guessing Game! Here's your first clue: %s", songs[0].clue))}
	}

	if data.current >= len(songs) {
		return Result{ContinueToCompanion: true}
	}

	current := songs[data.current]
	var msgs []string
	if strings.Contains(lowered, current.answer) || strings.Contains(lowered, strings.ToLower(current.artist)) {
		data.score++
		msgs = append(msgs, fmt.Sprintf("🎵 Correct! It was %q by %s. Score: %d", current.answer, current.artist, data.score))
	} else {
		msgs = append(msgs, fmt.Sprintf("🎵 Not quite! It was %q by %s. Score: %d", current.answer, current.artist, data.score))
	}

	data.current++
	if data.current < len(songs) {
		msgs = append(msgs, fmt.Sprintf("🎵 Next clue: %s", songs[data.current].clue))
	} else {
		msgs = append(msgs, fmt.Sprintf("🎵 Game over! Final score: %d/%d. Type '/exit' to leave the game.", data.score, len(songs)))
	}
	return Result{Messages: systemMessages(msgs...)}
}
