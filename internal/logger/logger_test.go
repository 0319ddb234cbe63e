package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Str("entity", "account").Msg("row inserted")

	out := buf.String()
	if !strings.Contains(out, "row inserted") {
		t.Errorf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "account") {
		t.Errorf("expected field in output, got: %s", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	ctx := WithContext(context.Background(), log)
	fromCtx := FromContext(ctx)
	fromCtx.Info().Msg("from context")

	if buf.Len() == 0 {
		t.Error("expected output from logger retrieved via context")
	}
}

func TestFromContextFallback(t *testing.T) {
	// Must not panic and must return a usable logger.
	log := FromContext(context.Background())
	log.Debug().Msg("fallback")
}
