package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/muhammadolammi/aithera/internal/oracle"
	"github.com/muhammadolammi/aithera/internal/scenario"
	"github.com/muhammadolammi/aithera/internal/softskills"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startedHost(t *testing.T) *softskills.Host {
	t.Helper()
	s, err := oracle.NewMock().GenerateScenario(context.Background(), "Handling a missed deadline")
	require.NoError(t, err)
	host := softskills.NewHost(nil, zap.NewNop())
	require.NoError(t, host.StartWith(s))
	return host
}

func TestPlayLoopToSummary(t *testing.T) {
	host := startedHost(t)
	var out bytes.Buffer

	err := playLoop(strings.NewReader("x\n9\n2\n1\n"), &out, host)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Your teammate missed a deadline")
	assert.Contains(t, text, "Pick a number between 1 and 2")
	assert.Contains(t, text, "Feedback: They appreciated the discretion.")
	assert.Contains(t, text, "Simulation complete: Handling a missed deadline")
	assert.Contains(t, text, "You chose: Offer to help re-plan the work")
	assert.Equal(t, softskills.StateIdle, host.View().State)
}

func TestPlayLoopQuit(t *testing.T) {
	host := startedHost(t)

	err := playLoop(strings.NewReader("1\nq\n"), &bytes.Buffer{}, host)
	assert.ErrorIs(t, err, errQuit)

	err = playLoop(strings.NewReader(""), &bytes.Buffer{}, startedHost(t))
	assert.ErrorIs(t, err, errQuit)
}

func TestValidateFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	good := `title: Standup
description: Your update runs long
startingStepId: a
steps:
  - id: a
    situation: The team looks bored.
    choices:
      - text: Wrap up
        feedback: Respectful of everyone's time.
        nextStepId: END
`
	dangling := strings.Replace(good, "nextStepId: END", "nextStepId: b", 1)
	require.NoError(t, afero.WriteFile(fs, "good.yaml", []byte(good), 0o644))
	require.NoError(t, afero.WriteFile(fs, "dangling.yaml", []byte(dangling), 0o644))

	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	require.NoError(t, validateFiles(fs, cmd, []string{"good.yaml"}))
	assert.Contains(t, stdout.String(), `ok   good.yaml ("Standup", 1 steps)`)

	err := validateFiles(fs, cmd, []string{"good.yaml", "dangling.yaml", "missing.yaml"})
	assert.ErrorIs(t, err, errInvalidFiles)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Contains(t, stderr.String(), "FAIL dangling.yaml")
	assert.Contains(t, stderr.String(), scenario.ErrCorruptedScenario.Error())
}
