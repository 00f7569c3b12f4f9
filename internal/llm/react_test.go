package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAgentOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  agentStep
	}{
		{
			name:  "Final answer",
			input: " I now know the final answer\nFinal Answer: All good.\n",
			want:  agentStep{final: true, answer: "All good."},
		},
		{
			name:  "Action with quoted input",
			input: " Check it\nAction: code_analyzer\nAction Input: \"func main() {}\"",
			want:  agentStep{tool: "code_analyzer", toolInput: "func main() {}"},
		},
		{
			name:  "Numbered action, multiline input",
			input: "Action 1: performance_analyzer\nAction 1 Input: for i := range n {\n  work()\n}",
			want:  agentStep{tool: "performance_analyzer", toolInput: "for i := range n {\n  work()\n}"},
		},
		{
			name:  "Final answer wins over action",
			input: "Action: code_analyzer\nAction Input: x\nFinal Answer: done",
			want:  agentStep{final: true, answer: "done"},
		},
		{
			name:  "No markers",
			input: "\n  Just a review.  \n",
			want:  agentStep{final: true, answer: "Just a review."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAgentOutput(tt.input))
		})
	}
}

func TestTruncateAtObservation(t *testing.T) {
	assert.Equal(t, "Action: a\nAction Input: b", truncateAtObservation("Action: a\nAction Input: b\nObservation: made up"))
	assert.Equal(t, "Final Answer: x", truncateAtObservation("Final Answer: x"))
}
