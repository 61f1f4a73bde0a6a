package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/cmd/strata/commands"
	"go.trai.ch/strata/internal/build"
	"go.trai.ch/strata/internal/engine/buildcache"
)

type mockApp struct {
	cleanFunc func() error
	stats     buildcache.Stats
}

func (m *mockApp) Clean() error {
	if m.cleanFunc != nil {
		return m.cleanFunc()
	}
	return nil
}

func (m *mockApp) Stats() buildcache.Stats {
	return m.stats
}

func TestCommands_Stats(t *testing.T) {
	mock := &mockApp{stats: buildcache.Stats{Files: 12, Artifacts: 7, Edges: 23}}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"stats"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "files:     12")
	assert.Contains(t, buf.String(), "artifacts: 7")
	assert.Contains(t, buf.String(), "edges:     23")
}

func TestCommands_Clean(t *testing.T) {
	t.Run("delegates to the app", func(t *testing.T) {
		called := false
		mock := &mockApp{cleanFunc: func() error {
			called = true
			return nil
		}}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"clean"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
	})

	t.Run("returns error on clean failure", func(t *testing.T) {
		mock := &mockApp{cleanFunc: func() error {
			return errors.New("simulated error")
		}}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"clean"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "strata version "+build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"bogus"})

	require.Error(t, cli.Execute(context.Background()))
}
