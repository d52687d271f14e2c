package pdf

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderError_Unwrap(t *testing.T) {
	err := &RenderError{Err: os.ErrNotExist}
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "rendering engine")
}

func TestChromeEngine_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewChromeEngine(1).Render(ctx, "<html></html>")
	var rerr *RenderError
	assert.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewChromeEngine_MinimumParallelism(t *testing.T) {
	e := NewChromeEngine(0)
	assert.Equal(t, 1, cap(e.sem))
}

func TestChromeEngine_SemaphoreBlocksWhenFull(t *testing.T) {
	e := NewChromeEngine(1)
	e.sem <- struct{}{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Render(ctx, "<html></html>")
	assert.True(t, errors.Is(err, context.Canceled))
}
