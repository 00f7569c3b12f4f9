package llm

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationMemory(t *testing.T) {
	m := NewConversationMemory()
	assert.Equal(t, "", m.String())

	m.Save("review #1", "looks fine")
	m.Save("review #2", "needs tests")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "Human: review #1\nAI: looks fine\nHuman: review #2\nAI: needs tests", m.String())

	turns := m.Turns()
	turns[0].Output = "changed"
	assert.Equal(t, "looks fine", m.Turns()[0].Output)
}

func TestConversationMemory_ConcurrentSave(t *testing.T) {
	m := NewConversationMemory()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Save(fmt.Sprintf("in %d", i), "out")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())
}
