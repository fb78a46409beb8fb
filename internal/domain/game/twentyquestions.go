package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"companion-api/internal/domain/chat"
	"companion-api/internal/domain/llm"
)

const (
	twentyQuestionsLimit     = 20
	guessEligibleAfter       = 15
	guessIssuedAfter         = 18
	nextQuestionDelay        = time.Second
	firstQuestion            = "Is it alive?"
	defaultFollowUpQuestion  = "Is it something you use every day?"
	yesNoRePrompt            = "🎯 Please answer with 'YES' or 'NO' only!"
	questionGenSystemPrompt  = "You are playing 20 questions. Generate the best next yes/no question."
	guessSystemPrompt        = "You are making a guess in 20 questions. Respond with just the object name."
)

// fallbackQuestions is drawn from uniformly when no provider is available
// to generate the next question.
var fallbackQuestions = []string{
	"Is it bigger than a breadbox?",
	"Can you hold it in your hand?",
	"Is it made by humans?",
	"Is it found indoors?",
	"Is it electronic?",
	"Is it soft?",
	"Does it make noise?",
	"Is it used for work?",
	"Would children play with it?",
	"Is it colorful?",
}

type twentyQuestionsPhase string

const (
	phaseWaiting     twentyQuestionsPhase = "waiting"
	phaseReady       twentyQuestionsPhase = "ready"
	phaseQuestioning twentyQuestionsPhase = "questioning"
	phaseGuessing    twentyQuestionsPhase = "guessing"
	phaseEnded       twentyQuestionsPhase = "ended"
)

type twentyQuestionsState struct {
	phase            twentyQuestionsPhase
	questionsAsked   int
	waitingForAnswer bool
	questions        []string
	answers          []string
}

// TwentyQuestions guesses what the user is thinking of within twenty yes/no
// questions. Question generation and the final guess are delegated to the
// completer; a canned list covers the no-provider case.
type TwentyQuestions struct {
	completer Completer
	rng       *rand.Rand
}

func NewTwentyQuestions(completer Completer, rng *rand.Rand) *TwentyQuestions {
	return &TwentyQuestions{completer: completer, rng: rng}
}

func (g *TwentyQuestions) ID() ID        { return IDTwentyQuestions }
func (g *TwentyQuestions) Title() string { return "20 Questions" }

func (g *TwentyQuestions) Welcome() string {
	return "🎯 Welcome to 20 Questions! Think of something and I'll try to guess it in 20 questions or less. Type 'start' when you're ready!"
}

func (g *TwentyQuestions) Process(ctx context.Context, s *Session, input string) Result {
	data := stateOf(s, func() *twentyQuestionsState {
		return &twentyQuestionsState{phase: phaseWaiting}
	})
	lowered := strings.ToLower(strings.TrimSpace(input))

	if strings.Contains(lowered, "start") && data.phase == phaseWaiting {
		data.phase = phaseReady
		return Result{
			Messages:            systemMessages("🎯 Great! Think of something (an object, animal, person, etc.) and I'll try to guess it. Type 'ready' when you've thought of something!"),
			ContinueToCompanion: true,
		}
	}

	if strings.Contains(lowered, "ready") && data.phase == phaseReady {
		data.phase = phaseQuestioning
		data.questionsAsked = 0
		data.waitingForAnswer = true
		data.questions = []string{firstQuestion}
		data.answers = nil
		return Result{
			Messages:            systemMessages(fmt.Sprintf("🎯 Perfect! Question 1/%d: %s (Please answer YES or NO)", twentyQuestionsLimit, firstQuestion)),
			ContinueToCompanion: true,
		}
	}

	if data.phase == phaseQuestioning && data.waitingForAnswer {
		answer, ok := classifyYesNo(lowered)
		if !ok {
			return Result{Messages: systemMessages(yesNoRePrompt)}
		}

		data.answers = append(data.answers, answer)
		data.questionsAsked++
		data.waitingForAnswer = false

		if data.questionsAsked >= guessEligibleAfter {
			guess := g.makeGuess(ctx, data)
			if guess != "" && data.questionsAsked >= guessIssuedAfter {
				data.phase = phaseGuessing
				return Result{Messages: systemMessages(fmt.Sprintf("🎯 I think I know! Is it a %s? (YES or NO)", guess))}
			}
		}

		if data.questionsAsked >= twentyQuestionsLimit {
			data.phase = phaseEnded
			return Result{Messages: systemMessages("🎯 I've used all 20 questions! I give up. What were you thinking of?")}
		}

		return Result{Deferred: g.deferredNextQuestion(data)}
	}

	if data.phase == phaseGuessing {
		switch {
		case strings.Contains(lowered, "yes"):
			data.phase = phaseEnded
			return Result{Messages: systemMessages("🎯 Yes! I guessed it! Thanks for playing! That was fun. Type '/exit' to leave the game.")}
		case strings.Contains(lowered, "no"):
			data.phase = phaseQuestioning
			data.waitingForAnswer = true
			return Result{
				Messages: systemMessages("🎯 Hmm, let me ask more questions then..."),
				Deferred: g.deferredNextQuestion(data),
			}
		default:
			return Result{Messages: systemMessages(yesNoRePrompt)}
		}
	}

	if data.phase == phaseEnded && !data.waitingForAnswer {
		return Result{Messages: systemMessages(fmt.Sprintf("🎯 %q - interesting! I should have guessed that! Thanks for playing! Type '/exit' to leave the game.", input))}
	}

	return Result{ContinueToCompanion: true}
}

// deferredNextQuestion schedules question generation so the reveal lands a
// beat after the answer is scored.
func (g *TwentyQuestions) deferredNextQuestion(data *twentyQuestionsState) *Deferred {
	return &Deferred{
		Delay: nextQuestionDelay,
		Fire: func(ctx context.Context) []chat.Message {
			data.waitingForAnswer = true
			question := g.nextQuestion(ctx, data)
			data.questions = append(data.questions, question)
			return systemMessages(fmt.Sprintf("🎯 Question %d/%d: %s (Please answer YES or NO)", data.questionsAsked+1, twentyQuestionsLimit, question))
		},
	}
}

func (g *TwentyQuestions) nextQuestion(ctx context.Context, data *twentyQuestionsState) string {
	if g.completer == nil {
		return fallbackQuestions[g.rng.Intn(len(fallbackQuestions))]
	}

	var sb strings.Builder
	sb.WriteString("You are playing 20 questions. Here are the questions asked and answers received:\n")
	writeQuestionLog(&sb, data)
	sb.WriteString("\nBased on these clues, what is the BEST next yes/no question to narrow down what they're thinking of? Only respond with the question, nothing else.")

	reply, err := g.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: questionGenSystemPrompt,
		UserMessage:  sb.String(),
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		return defaultFollowUpQuestion
	}
	return trimQuotes(strings.TrimSpace(reply))
}

func (g *TwentyQuestions) makeGuess(ctx context.Context, data *twentyQuestionsState) string {
	if g.completer == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Based on this 20 questions game, what do you think they're thinking of?\n")
	writeQuestionLog(&sb, data)
	sb.WriteString("\nWhat is your best guess? Respond with just the object/animal/thing name, nothing else.")

	reply, err := g.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: guessSystemPrompt,
		UserMessage:  sb.String(),
	})
	if err != nil {
		return ""
	}
	return strings.ToLower(trimQuotes(strings.TrimSpace(reply)))
}

func writeQuestionLog(sb *strings.Builder, data *twentyQuestionsState) {
	for i, q := range data.questions {
		if i >= len(data.answers) {
			break
		}
		fmt.Fprintf(sb, "Q: %s A: %s\n", q, data.answers[i])
	}
}

// classifyYesNo applies the strict substring gate: anything without a "yes"
// or "no" in it is rejected rather than guessed at.
func classifyYesNo(lowered string) (string, bool) {
	hasYes := strings.Contains(lowered, "yes")
	hasNo := strings.Contains(lowered, "no")
	if !hasYes && !hasNo {
		return "", false
	}
	if hasYes {
		return "yes", true
	}
	return "no", true
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
