package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "req-1")

	ctx := WithLogger(context.Background(), reqLogger)
	FromContext(ctx).Info("loan created")

	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctx = WithAttrs(ctx, "loan_id", 7)
	FromContext(ctx).Info("loan returned")

	assert.Contains(t, buf.String(), "loan_id=7")
}
