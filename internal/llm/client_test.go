package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeminiClientRequiresKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "", "gemini-1.5-flash", 0.7)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestUnavailableClient(t *testing.T) {
	client := NewUnavailable(errors.New("no API key"))

	_, err := client.GenerateContent(context.Background(), "any prompt")
	assert.Error(t, err)
	assert.NoError(t, client.Close())
}
