package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/icbutler/cmd/icbutler/commands"
	"github.com/jask/icbutler/internal/rpc"
	"github.com/jask/icbutler/internal/task"
	"github.com/jask/icbutler/internal/testutil"
)

type cli struct {
	t    *testing.T
	base []string
}

func newCLI(t *testing.T) cli {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ICBUTLER_CONFIG", "")
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	return cli{t: t, base: []string{"icbutler", "--no-log", "--db-path", dbPath}}
}

func (c cli) run(args ...string) (string, error) {
	c.t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), append(append([]string{}, c.base...), args...), strings.NewReader(""), &stdout, &stderr)
	return stdout.String(), err
}

func TestCLIAddGetList(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("add", "buy", "milk")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = c.run("add", "write report", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2"}`, out)

	out, err = c.run("get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Description:  buy milk")

	out, err = c.run("list")
	require.NoError(t, err)
	assert.Equal(t, "ID  DESCRIPTION\n1   buy milk\n2   write report\n", out)

	out, err = c.run("list", "--match", "by milk", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","description":"buy milk"}]`, out)
}

func TestCLIReset(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("add", "buy milk")
	require.NoError(t, err)

	_, err = c.run("reset")
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCode(err))

	_, err = c.run("reset", "--yes")
	require.NoError(t, err)

	out, err := c.run("list")
	require.NoError(t, err)
	assert.Empty(t, out)

	// Ids are not reused after a reset.
	out, err = c.run("add", "call mom")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestCLISeed(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("seed", "--count", "3", "--seed", "42")
	require.NoError(t, err)

	out, err := c.run("list", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, `"description"`))

	_, err = c.run("seed", "--count", "0")
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestCLIServeStopsOnCancel(t *testing.T) {
	c := newCLI(t)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	args := append(append([]string{}, c.base...), "serve", "--listen", "127.0.0.1:0")
	err := Run(ctx, args, strings.NewReader(""), &stdout, &stderr)
	assert.NoError(t, err)
}

func TestCLIErrors(t *testing.T) {
	tests := map[string]struct {
		args    []string
		expCode int
	}{
		"Unknown ids are a usage error.": {
			args:    []string{"get", "999999"},
			expCode: exitUsage,
		},
		"Blank descriptions are a usage error.": {
			args:    []string{"add", "   "},
			expCode: exitUsage,
		},
		"Unknown commands are a usage error.": {
			args:    []string{"frobnicate"},
			expCode: exitUsage,
		},
		"Out of range scores are a usage error.": {
			args:    []string{"list", "--match", "x", "--min-score", "2"},
			expCode: exitUsage,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newCLI(t).run(test.args...)
			require.Error(t, err)
			assert.Equal(t, test.expCode, exitCode(err))
		})
	}
}

func TestCLIRemoteStore(t *testing.T) {
	svc := testutil.NewFakeService()
	srv, err := rpc.NewServer(rpc.ServerConfig{Service: svc})
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	c := newCLI(t)
	out, err := c.run("--endpoint", ts.URL, "add", "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
	assert.Equal(t, 1, svc.Calls(testutil.MethodAddTask))

	_, err = c.run("--endpoint", ts.URL, "get", "42")
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestCLIConfigInit(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("config", "init")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), filepath.Join(".config", "icbutler", "config.toml")))

	_, err = c.run("config", "init")
	assert.Equal(t, exitUsage, exitCode(err))

	_, err = c.run("config", "init", "--force")
	assert.NoError(t, err)
}

func TestCLIMissingExplicitConfig(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("--config", filepath.Join(t.TempDir(), "missing.toml"), "list")
	require.ErrorContains(t, err, "could not load config")
	assert.Equal(t, exitUsage, exitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err     error
		expCode int
	}{
		"No error.":        {err: nil, expCode: exitOK},
		"Usage error.":     {err: fmt.Errorf("x: %w", commands.ErrUsage), expCode: exitUsage},
		"Not found.":       {err: fmt.Errorf("x: %w", task.ErrNotFound), expCode: exitUsage},
		"Backend failure.": {err: errors.New("database is locked"), expCode: exitBackend},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expCode, exitCode(test.err))
		})
	}
}
