package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindReviewFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addReviewFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"-a", "local", "-m", "llama3", "--no-security", "--parallel"}))

	require.NoError(t, bindReviewFlags(cmd))

	assert.Equal(t, "local", settings.GetString("review.agent"))
	assert.Equal(t, "llama3", settings.GetString("review.model"))
	assert.True(t, settings.GetBool("review.parallel_analysis"))
	assert.False(t, settings.GetBool("review.security_analysis"))
}
