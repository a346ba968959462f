package compare

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"mrkgnao/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name      string
	text      string
	err       error
	status    int
	generated atomic.Int32
	pinged    atomic.Int32
	lastMsg   atomic.Value
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ context.Context, message string) (string, error) {
	s.generated.Add(1)
	s.lastMsg.Store(message)
	return s.text, s.err
}

func (s *stubProvider) Ping(context.Context) (int, error) {
	if llm.IsNotConfigured(s.err) {
		return 0, s.err
	}
	s.pinged.Add(1)
	return s.status, nil
}

func notConfigured(name string) error {
	return &llm.Error{Provider: name, Kind: llm.KindNotConfigured}
}

func TestValidateMessage(t *testing.T) {
	assert.ErrorIs(t, ValidateMessage(""), ErrMessageRequired)
	assert.ErrorIs(t, ValidateMessage(" \t\n "), ErrMessageRequired)
	assert.ErrorIs(t, ValidateMessage(strings.Repeat("a", 501)), ErrMessageTooLong)
	assert.NoError(t, ValidateMessage(strings.Repeat("a", 500)))
	assert.NoError(t, ValidateMessage("cat"))
	// Length counts characters, not bytes
	assert.NoError(t, ValidateMessage(strings.Repeat("é", 500)))
}

func TestCompareRejectsInvalidWithoutCalls(t *testing.T) {
	claude := &stubProvider{name: "Claude API", text: "x"}
	gemini := &stubProvider{name: "Gemini API", text: "y"}
	c := New(claude, gemini)

	for _, msg := range []string{"", "   ", strings.Repeat("b", 501)} {
		res, err := c.Compare(context.Background(), msg)
		assert.Error(t, err)
		assert.Nil(t, res)
	}
	assert.Zero(t, claude.generated.Load())
	assert.Zero(t, gemini.generated.Load())
}

func TestCompareBothSucceed(t *testing.T) {
	claude := &stubProvider{name: "Claude API", text: "Mrkgnao"}
	gemini := &stubProvider{name: "Gemini API", text: "Mrrrkgnao"}

	res, err := New(claude, gemini).Compare(context.Background(), "  cat ")
	require.NoError(t, err)
	assert.Equal(t, llm.Succeeded("Mrkgnao"), res.Claude)
	assert.Equal(t, llm.Succeeded("Mrrrkgnao"), res.Gemini)
	// The raw message goes upstream
	assert.Equal(t, "  cat ", claude.lastMsg.Load())
	assert.EqualValues(t, 1, gemini.generated.Load())
}

func TestComparePartialFailure(t *testing.T) {
	claude := &stubProvider{name: "Claude API", err: errors.New("connection reset")}
	gemini := &stubProvider{name: "Gemini API", text: "Sllt"}

	res, err := New(claude, gemini).Compare(context.Background(), "printing press")
	require.NoError(t, err)
	assert.False(t, res.Claude.Success)
	assert.NotEmpty(t, res.Claude.Message)
	assert.Equal(t, llm.Succeeded("Sllt"), res.Gemini)
}

func TestCompareBothUnconfigured(t *testing.T) {
	claude := &stubProvider{name: "Claude API", err: notConfigured("Claude API")}
	gemini := &stubProvider{name: "Gemini API", err: notConfigured("Gemini API")}

	res, err := New(claude, gemini).Compare(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, llm.Failed("Claude API key not configured"), res.Claude)
	assert.Equal(t, llm.Failed("Gemini API key not configured"), res.Gemini)
}

func TestProbe(t *testing.T) {
	claude := &stubProvider{name: "Claude API", status: 200}
	gemini := &stubProvider{name: "Gemini API", status: 500}
	c := New(claude, gemini)
	c.now = func() time.Time { return time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC) }

	h := c.Probe(context.Background())
	assert.True(t, h.Claude)
	assert.False(t, h.Gemini)
	assert.Equal(t, "2026-10-14T08:00:00.000Z", h.Timestamp)
}

func TestProbeUnconfiguredMakesNoCall(t *testing.T) {
	claude := &stubProvider{name: "Claude API", err: notConfigured("Claude API")}
	gemini := &stubProvider{name: "Gemini API", err: notConfigured("Gemini API")}

	h := New(claude, gemini).Probe(context.Background())
	assert.False(t, h.Claude)
	assert.False(t, h.Gemini)
	assert.Zero(t, claude.pinged.Load())
	assert.Zero(t, gemini.pinged.Load())
}
