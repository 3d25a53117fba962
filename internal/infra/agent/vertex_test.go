//go:build unit

package agent

import (
	"testing"

	"chatorder/internal/domain/chat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortCircuitReply(t *testing.T) {
	cases := []struct {
		name      string
		message   string
		concluded bool
	}{
		{name: "stop keyword", message: "stop", concluded: true},
		{name: "stop embedded in sentence", message: "please STOP now", concluded: true},
		{name: "pay keyword", message: "I want to pay", concluded: true},
		{name: "ordinary message", message: "pad thai please", concluded: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply, concluded := shortCircuitReply(tc.message)
			assert.Equal(t, tc.concluded, concluded)
			if tc.concluded {
				assert.NotEmpty(t, reply)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	turns := []tokenTurn{
		{Customer: "hi", Agent: "hello"},
		{Customer: "pad thai", Agent: "noted"},
	}
	token := encodeToken(turns)
	decoded := decodeToken(token)
	assert.Equal(t, turns, decoded)
}

func TestDecodeTokenTolerance(t *testing.T) {
	assert.Nil(t, decodeToken(""))
	// A corrupt token starts a fresh conversation instead of failing the turn.
	assert.Nil(t, decodeToken("not json at all"))
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bare json", input: `{"dish_name": "x"}`, expected: `{"dish_name": "x"}`},
		{name: "json fence", input: "```json\n{\"dish_name\": \"x\"}\n```", expected: `{"dish_name": "x"}`},
		{name: "plain fence", input: "```\n{}\n```", expected: `{}`},
		{name: "surrounding whitespace", input: "  {}  ", expected: `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stripCodeFence(tc.input))
		})
	}
}

func TestBuildConversePrompt(t *testing.T) {
	prompt := buildConversePrompt("", "hello", "", "")
	assert.Contains(t, prompt, "hello")
	assert.Contains(t, prompt, "[]")
	assert.Contains(t, prompt, "STOPPING CHAT")
}

func TestFormatTranscript(t *testing.T) {
	out := formatTranscript([]chat.Turn{{Customer: "hi", Agent: "hello"}})
	require.JSONEq(t, `[{"customer": "hi", "agent": "hello"}]`, out)
}
