package tui_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/icbutler/internal/testutil"
	"github.com/jask/icbutler/internal/tui"
)

func TestRunRequiresService(t *testing.T) {
	err := tui.Run(context.Background(), tui.Config{})
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("buy milk")
	in, _ := io.Pipe()
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tui.Run(ctx, tui.Config{Service: svc, Input: in, Output: &out})
	}()

	assert.Eventually(t, func() bool { return svc.Calls(testutil.MethodListTasks) > 0 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("terminal client did not stop")
	}
}
