package game

import (
	"context"
	"fmt"
	"strings"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/llm"
)

const storyOpening = "Once upon a time, in a land far away..."

type storyState struct {
	sentences []string
}

// StoryBuilding alternates sentences between the user and the companion.
// The companion's contribution is generated per turn and rendered as a
// companion-styled message rather than a game-system one.
type StoryBuilding struct {
	completer Completer
}

func NewStoryBuilding(completer Completer) *StoryBuilding {
	return &StoryBuilding{completer: completer}
}

func (g *StoryBuilding) ID() ID        { return IDStoryBuilding }
func (g *StoryBuilding) Title() string { return "Story Building" }

func (g *StoryBuilding) Welcome() string {
	return "📖 Let's build a story together! I'll start with the first sentence, then we'll take turns adding to it. Here we go: 'Once upon a time, in a land far away...' Add your sentence!"
}

func (g *StoryBuilding) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *storyState {
		return &storyState{sentences: []string{storyOpening}}
	})

	if strings.Contains(strings.ToLower(input), "start") {
		return Result{Messages: systemMessages("📖 Let's build a story together! I'll start: 'Once upon a time, in a land far away...' Now add your sentence!")}
	}

	data.sentences = append(data.sentences, input)

	contribution := g.contribute(ctx, data.sentences)
	if contribution == "" {
		return Result{Messages: systemMessages("📖 I'm having trouble thinking of what to add. Your turn again!")}
	}

	data.sentences = append(data.sentences, contribution)
	return Result{
		Messages: []chat.Message{
			chat.NewMessage(chat.SenderCompanionInGame, contribution),
			systemMessage(fmt.Sprintf("📖 Updated story: %q Your turn again!", strings.Join(data.sentences, " "))),
		},
	}
}

// contribute asks the provider for exactly one continuation sentence.
func (g *StoryBuilding) contribute(ctx context.Context, sentences []string) string {
	if g.completer == nil {
		return ""
	}

	prompt := fmt.Sprintf("We're playing a collaborative story-building game. Here's our story so far: %q\n\nPlease add exactly ONE sentence to continue this story. Make it engaging and creative, but keep it appropriate for the story's tone. Only respond with the single sentence to add - nothing else.", strings.Join(sentences, " "))

	reply, err := g.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: "You are helping build a collaborative story. Respond with exactly one sentence to continue the story.",
		UserMessage:  prompt,
	})
	if err != nil {
		return ""
	}
	return trimQuotes(strings.TrimSpace(reply))
}
