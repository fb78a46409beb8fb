package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/llm"
)

func TestTriviaFullRound(t *testing.T) {
	g := NewTrivia()
	s := &Session{GameID: IDTrivia}

	res := g.Process(context.Background(), s, "start")
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0].Text(), "Question 1: What is the capital of France?")
	assert.False(t, res.ContinueToCompanion)

	res = g.Process(context.Background(), s, "I think it's Paris")
	require.Len(t, res.Messages, 2)
	assert.Contains(t, res.Messages[0].Text(), "Correct! Score: 1/1")
	assert.Contains(t, res.Messages[1].Text(), "Question 2")

	res = g.Process(context.Background(), s, "1939")
	assert.Contains(t, res.Messages[0].Text(), "Wrong! The answer was: 1945. Score: 1/2")

	g.Process(context.Background(), s, "jupiter")
	g.Process(context.Background(), s, "leonardo da vinci")
	res = g.Process(context.Background(), s, "42")
	require.Len(t, res.Messages, 2)
	assert.Contains(t, res.Messages[1].Text(), "Game over! Final score: 4/5")

	// After the round ends, chatter flows back to the companion.
	res = g.Process(context.Background(), s, "that was fun")
	assert.Empty(t, res.Messages)
	assert.True(t, res.ContinueToCompanion)
}

func TestStoryBuildingAppendsBothContributions(t *testing.T) {
	completer := &mockCompleter{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			assert.Contains(t, req.UserMessage, "Once upon a time")
			assert.Contains(t, req.UserMessage, "A dragon appeared.")
			return `"The dragon sneezed fire."`, nil
		},
	}
	g := NewStoryBuilding(completer)
	s := &Session{GameID: IDStoryBuilding}

	res := g.Process(context.Background(), s, "A dragon appeared.")
	require.Len(t, res.Messages, 2)
	assert.Equal(t, chat.SenderCompanionInGame, res.Messages[0].Sender)
	assert.Equal(t, "The dragon sneezed fire.", res.Messages[0].Text())
	assert.Equal(t, chat.SenderGameSystem, res.Messages[1].Sender)
	assert.Contains(t, res.Messages[1].Text(), "Once upon a time, in a land far away... A dragon appeared. The dragon sneezed fire.")
	assert.False(t, res.ContinueToCompanion)
}

func TestStoryBuildingProviderFailure(t *testing.T) {
	completer := &mockCompleter{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return "", errors.New("unavailable")
		},
	}
	g := NewStoryBuilding(completer)
	s := &Session{GameID: IDStoryBuilding}

	res := g.Process(context.Background(), s, "A dragon appeared.")
	require.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0].Text(), "having trouble thinking of what to add")
}

func TestWordAssociationBuildsChain(t *testing.T) {
	g := NewWordAssociation()
	s := &Session{GameID: IDWordAssociation}

	res := g.Process(context.Background(), s, "start")
	assert.Contains(t, res.Messages[0].Text(), `Starting word: "sunshine"`)
	assert.False(t, res.ContinueToCompanion)

	res = g.Process(context.Background(), s, "Beach")
	assert.Contains(t, res.Messages[0].Text(), "sunshine → beach")
	assert.True(t, res.ContinueToCompanion)

	res = g.Process(context.Background(), s, "waves")
	assert.Contains(t, res.Messages[0].Text(), "sunshine → beach → waves")
}

func TestWouldYouRatherRunsOutOfQuestions(t *testing.T) {
	g := NewWouldYouRather()
	s := &Session{GameID: IDWouldYouRather}

	res := g.Process(context.Background(), s, "start")
	assert.Contains(t, res.Messages[0].Text(), "fly or be invisible")
	assert.True(t, res.ContinueToCompanion)

	for i := 1; i < len(wouldYouRatherQuestions); i++ {
		res = g.Process(context.Background(), s, "fly")
		require.Len(t, res.Messages, 2)
		assert.Contains(t, res.Messages[1].Text(), wouldYouRatherQuestions[i])
	}

	res = g.Process(context.Background(), s, "the future")
	assert.Contains(t, res.Messages[1].Text(), "gone through all my questions")
}

func TestSongGuessMatchesTitleOrArtist(t *testing.T) {
	g := NewSongGuess()
	s := &Session{GameID: IDSongGuess}

	g.Process(context.Background(), s, "start")

	res := g.Process(context.Background(), s, "bohemian rhapsody!")
	assert.Contains(t, res.Messages[0].Text(), "Correct!")

	res = g.Process(context.Background(), s, "lionel richie")
	assert.Contains(t, res.Messages[0].Text(), "Correct!")

	res = g.Process(context.Background(), s, "no idea")
	assert.Contains(t, res.Messages[0].Text(), "Not quite!")
	assert.Contains(t, res.Messages[1].Text(), fmt.Sprintf("Final score: 2/%d", len(songs)))
}

func TestMovieGuessRound(t *testing.T) {
	g := NewMovieGuess()
	s := &Session{GameID: IDMovieGuess}

	res := g.Process(context.Background(), s, "start")
	assert.Contains(t, res.Messages[0].Text(), "paleontologist")

	res = g.Process(context.Background(), s, "is it friends?")
	assert.Contains(t, res.Messages[0].Text(), "Correct!")

	res = g.Process(context.Background(), s, "lord of the rings")
	assert.Contains(t, res.Messages[0].Text(), `Not quite! It was "harry potter"`)

	res = g.Process(context.Background(), s, "terminator")
	assert.Contains(t, res.Messages[1].Text(), fmt.Sprintf("Final score: 2/%d", len(movies)))
}

func TestRoleplayCapturesScenario(t *testing.T) {
	g := NewRoleplay()
	s := &Session{GameID: IDRoleplay}

	res := g.Process(context.Background(), s, "start")
	assert.Contains(t, res.Messages[0].Text(), "What scenario")
	assert.False(t, res.ContinueToCompanion)

	res = g.Process(context.Background(), s, "cafe date")
	assert.Contains(t, res.Messages[0].Text(), "Let's roleplay a cafe date scenario")
	assert.True(t, res.ContinueToCompanion)

	res = g.Process(context.Background(), s, "I order a latte")
	assert.Contains(t, res.Messages[0].Text(), "*Playing along in the cafe date scenario*")
	assert.True(t, res.ContinueToCompanion)
}

func TestLoveQuizWalksQuestions(t *testing.T) {
	g := NewLoveQuiz()
	s := &Session{GameID: IDLoveQuiz}

	res := g.Process(context.Background(), s, "start")
	assert.Contains(t, res.Messages[0].Text(), loveQuizQuestions[0])
	assert.True(t, res.ContinueToCompanion)

	for i := 1; i < len(loveQuizQuestions); i++ {
		res = g.Process(context.Background(), s, "long walks")
		require.Len(t, res.Messages, 2)
		assert.Contains(t, res.Messages[1].Text(), loveQuizQuestions[i])
	}

	res = g.Process(context.Background(), s, "hugs")
	assert.Contains(t, res.Messages[1].Text(), "We're very compatible!")
}
