package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
}

func TestIngestCmd_HasRebuildFlag(t *testing.T) {
	flag := ingestCmd.Flags().Lookup("rebuild")
	require.NotNil(t, flag, "rebuild flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestChatCmd_Use(t *testing.T) {
	assert.Equal(t, "chat", chatCmd.Use)
}
