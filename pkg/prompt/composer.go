package prompt

import (
	"fmt"
	"strings"

	"jukugi-bokujo-be/pkg/sessionmode"
)

// HistoryItem is a prior statement shown to the agent for context.
type HistoryItem struct {
	AgentName  string
	PhaseLabel string
	Content    string
}

// DiscussionContext carries everything an agent needs to produce one statement.
type DiscussionContext struct {
	TopicTitle       string
	TopicDescription string
	AgentName        string
	Persona          string
	Tone             string
	Stance           string
	Knowledge        []string
	History          []HistoryItem
	TurnNumber       int
	MaxTurns         int
}

// Composer assembles the full prompt for one agent's turn.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

func (c *Composer) Compose(strategy sessionmode.Strategy, ctx DiscussionContext) string {
	var prompt strings.Builder

	c.writePersona(&prompt, ctx)
	c.writeTopic(&prompt, ctx)
	c.writeKnowledge(&prompt, ctx)
	c.writeHistory(&prompt, ctx)

	// Phase framing comes straight from the session mode strategy.
	cfg := strategy.GetPhaseConfig(ctx.TurnNumber, ctx.MaxTurns)
	prompt.WriteString(strategy.BuildPhasePromptSection(cfg, ctx.TurnNumber, ctx.MaxTurns))
	prompt.WriteString("\n")

	c.writeInstruction(&prompt, ctx)

	if suffix := strategy.GetUserPromptSuffix(ctx.TurnNumber, ctx.MaxTurns); suffix != "" {
		prompt.WriteString("\n")
		prompt.WriteString(suffix)
		prompt.WriteString("\n")
	}

	return prompt.String()
}

func (c *Composer) writePersona(prompt *strings.Builder, ctx DiscussionContext) {
	prompt.WriteString("<persona>\n")
	prompt.WriteString(fmt.Sprintf("あなたは「%s」として討論に参加しています。\n", ctx.AgentName))
	prompt.WriteString(ctx.Persona)
	prompt.WriteString("\n")
	if ctx.Tone != "" {
		prompt.WriteString(fmt.Sprintf("口調: %s\n", ctx.Tone))
	}
	if ctx.Stance != "" {
		prompt.WriteString(fmt.Sprintf("基本姿勢: %s\n", ctx.Stance))
	}
	prompt.WriteString("</persona>\n\n")
}

func (c *Composer) writeTopic(prompt *strings.Builder, ctx DiscussionContext) {
	prompt.WriteString("<topic>\n")
	prompt.WriteString(ctx.TopicTitle)
	prompt.WriteString("\n")
	if ctx.TopicDescription != "" {
		prompt.WriteString(ctx.TopicDescription)
		prompt.WriteString("\n")
	}
	prompt.WriteString("</topic>\n\n")
}

func (c *Composer) writeKnowledge(prompt *strings.Builder, ctx DiscussionContext) {
	if len(ctx.Knowledge) == 0 {
		return
	}
	prompt.WriteString("<knowledge>\n")
	prompt.WriteString("あなたが参照できる知識:\n")
	for _, k := range ctx.Knowledge {
		prompt.WriteString("- ")
		prompt.WriteString(k)
		prompt.WriteString("\n")
	}
	prompt.WriteString("</knowledge>\n\n")
}

func (c *Composer) writeHistory(prompt *strings.Builder, ctx DiscussionContext) {
	if len(ctx.History) == 0 {
		return
	}
	prompt.WriteString("<discussion_history>\n")
	for _, h := range ctx.History {
		if h.PhaseLabel != "" {
			prompt.WriteString(fmt.Sprintf("[%s] %s: %s\n", h.PhaseLabel, h.AgentName, h.Content))
		} else {
			prompt.WriteString(fmt.Sprintf("%s: %s\n", h.AgentName, h.Content))
		}
	}
	prompt.WriteString("</discussion_history>\n\n")
}

func (c *Composer) writeInstruction(prompt *strings.Builder, ctx DiscussionContext) {
	prompt.WriteString("<instruction>\n")
	prompt.WriteString("ペルソナを保ったまま、現在のフェーズの指示に従って発言してください。\n")
	prompt.WriteString("発言のみを出力し、名前やラベルは付けないでください。\n")
	prompt.WriteString("</instruction>\n")
}
