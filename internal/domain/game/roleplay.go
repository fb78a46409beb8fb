package game

import (
	"context"
	"fmt"
	"strings"
)

type roleplayState struct {
	scenario string
	started  bool
}

// Roleplay captures a scenario from the user's first message and then lets
// the companion carry the scene.
type Roleplay struct{}

func NewRoleplay() *Roleplay { return &Roleplay{} }

func (g *Roleplay) ID() ID        { return IDRoleplay }
func (g *Roleplay) Title() string { return "Role Playing" }

func (g *Roleplay) Welcome() string {
	return "🎭 Role Playing time! Let's act out a fun scenario. What kind of scenario would you like to explore?"
}

func (g *Roleplay) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *roleplayState { return &roleplayState{} })

	if strings.Contains(strings.ToLower(input), "start") && !data.started {
		return Result{Messages: systemMessages("🎭 Role Playing time! What scenario would you like to explore? (cafe date, adventure quest, mystery detective, etc.)")}
	}

	if !data.started && data.scenario == "" {
		data.scenario = input
		data.started = true
		return Result{
			Messages:            systemMessages(fmt.Sprintf("🎭 Great! Let's roleplay a %s scenario. I'll play along with whatever character fits the scene!", input)),
			ContinueToCompanion: true,
		}
	}

	return Result{
		Messages:            systemMessages(fmt.Sprintf("🎭 *Playing along in the %s scenario* This is so much fun!", data.scenario)),
		ContinueToCompanion: true,
	}
}
