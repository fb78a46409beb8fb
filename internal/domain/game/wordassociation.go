package game

import (
	"context"
	"fmt"
	"strings"
)

const startingWord = "sunshine"

type wordAssociationState struct {
	chain []string
}

// WordAssociation keeps a running chain of words, one per turn. There is no
// scoring; the companion is expected to riff alongside.
type WordAssociation struct{}

func NewWordAssociation() *WordAssociation { return &WordAssociation{} }

func (g *WordAssociation) ID() ID        { return IDWordAssociation }
func (g *WordAssociation) Title() string { return "Word Association" }

func (g *WordAssociation) Welcome() string {
	return "🔤 Word Association time! I'll say a word, and you respond with the first word that comes to mind. Here's your starting word: 'Sunshine'"
}

func (g *WordAssociation) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *wordAssociationState {
		return &wordAssociationState{chain: []string{startingWord}}
	})
	lowered := strings.ToLower(strings.TrimSpace(input))

	if strings.Contains(lowered, "start") {
		return Result{Messages: systemMessages(fmt.Sprintf("🔤 Word Association! Starting word: %q. What word comes to mind?", data.chain[len(data.chain)-1]))}
	}

	data.chain = append(data.chain, lowered)
	return Result{
		Messages:            systemMessages(fmt.Sprintf("🔤 %q - good one! Chain: %s", lowered, strings.Join(data.chain, " → "))),
		ContinueToCompanion: true,
	}
}
