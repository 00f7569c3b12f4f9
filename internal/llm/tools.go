package llm

import (
	"context"
	"fmt"
	"strings"
)

// Tool is a named text-to-text function the agent loop may invoke.
type Tool struct {
	Name        string
	Description string
	Run         func(ctx context.Context, input string) (string, error)
}

type toolInput struct {
	Input string
}

// promptTool builds a tool that renders its input into key and asks gen.
func promptTool(name, description string, key PromptKey, provider ModelProvider, prompts *PromptManager, gen Generator) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Run: func(ctx context.Context, input string) (string, error) {
			prompt, err := prompts.Render(key, provider, toolInput{Input: input})
			if err != nil {
				return "", err
			}
			out, err := gen.Generate(ctx, prompt)
			if err != nil {
				return "", fmt.Errorf("tool %s: %w", name, err)
			}
			return out, nil
		},
	}
}

func reviewTools(prompts *PromptManager, provider ModelProvider, gen Generator) []Tool {
	return []Tool{
		promptTool("code_analyzer", "Analyze a specific code snippet for issues and improvements",
			CodeAnalyzerToolPrompt, provider, prompts, gen),
		promptTool("security_checker", "Check for common security vulnerabilities in code",
			SecurityCheckerToolPrompt, provider, prompts, gen),
		promptTool("performance_analyzer", "Analyze code for performance issues and optimization opportunities",
			PerformanceToolPrompt, provider, prompts, gen),
	}
}

func toolNames(tools []Tool) string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
