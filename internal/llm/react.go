package llm

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

const (
	finalAnswerMarker    = "Final Answer:"
	observationStop      = "\nObservation:"
	iterationLimitAnswer = "Agent stopped due to iteration limit or time limit."
)

var actionRegex = regexp.MustCompile(`(?s)Action\s*\d*\s*:\s*(.*?)\s*Action\s*\d*\s*Input\s*\d*\s*:\s*(.*)`)

// agentStep is one parsed model turn: either a tool call or a final answer.
type agentStep struct {
	final     bool
	answer    string
	tool      string
	toolInput string
}

type agentPromptData struct {
	Tools      []Tool
	ToolNames  string
	History    string
	Input      string
	Scratchpad string
}

// Executor runs a zero-shot ReAct loop: the model reasons in
// Thought / Action / Action Input steps, tools answer with an Observation, and
// the loop ends at "Final Answer:".
type Executor struct {
	gen           Generator
	prompts       *PromptManager
	provider      ModelProvider
	tools         []Tool
	memory        *ConversationMemory
	maxIterations int
	logger        *slog.Logger
}

// Run answers input. When the model never produces a final answer within
// maxIterations, a fixed stop message is returned instead of an error.
func (e *Executor) Run(ctx context.Context, input string) (string, error) {
	var scratchpad strings.Builder
	history := ""
	if e.memory != nil {
		history = e.memory.String()
	}

	for i := 0; i < e.maxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		prompt, err := e.prompts.Render(AgentPrompt, e.provider, agentPromptData{
			Tools:      e.tools,
			ToolNames:  toolNames(e.tools),
			History:    history,
			Input:      input,
			Scratchpad: scratchpad.String(),
		})
		if err != nil {
			return "", err
		}

		response, err := e.gen.Generate(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("agent step %d: %w", i+1, err)
		}
		response = truncateAtObservation(response)

		step := parseAgentOutput(response)
		if step.final {
			e.logger.Debug("agent finished", "iterations", i+1)
			e.remember(input, step.answer)
			return step.answer, nil
		}

		observation, err := e.invoke(ctx, step.tool, step.toolInput)
		if err != nil {
			return "", err
		}
		e.logger.Debug("agent tool call", "tool", step.tool, "input_len", len(step.toolInput))

		scratchpad.WriteString(response)
		scratchpad.WriteString("\nObservation: ")
		scratchpad.WriteString(observation)
		scratchpad.WriteString("\nThought:")
	}

	e.logger.Warn("agent hit the iteration limit", "max_iterations", e.maxIterations)
	e.remember(input, iterationLimitAnswer)
	return iterationLimitAnswer, nil
}

func (e *Executor) invoke(ctx context.Context, name, input string) (string, error) {
	for _, t := range e.tools {
		if t.Name == name {
			return t.Run(ctx, input)
		}
	}
	return fmt.Sprintf("%s is not a valid tool, try one of [%s].", name, toolNames(e.tools)), nil
}

func (e *Executor) remember(input, output string) {
	if e.memory != nil {
		e.memory.Save(input, output)
	}
}

func truncateAtObservation(response string) string {
	if idx := strings.Index(response, observationStop); idx >= 0 {
		return response[:idx]
	}
	return response
}

// parseAgentOutput is lenient: text with neither an action nor a final answer
// is taken as the answer itself.
func parseAgentOutput(text string) agentStep {
	if idx := strings.LastIndex(text, finalAnswerMarker); idx >= 0 {
		return agentStep{final: true, answer: strings.TrimSpace(text[idx+len(finalAnswerMarker):])}
	}
	if m := actionRegex.FindStringSubmatch(text); m != nil {
		return agentStep{
			tool:      strings.TrimSpace(m[1]),
			toolInput: strings.Trim(strings.TrimSpace(m[2]), `"`),
		}
	}
	return agentStep{final: true, answer: strings.TrimSpace(text)}
}
