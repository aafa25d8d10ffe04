package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muhammadolammi/aithera/internal/scenario"
	"github.com/muhammadolammi/aithera/internal/softskills"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errQuit = errors.New("simulation abandoned")

func newPlayCmd() *cobra.Command {
	var (
		file     string
		describe string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a soft skill scenario in the terminal",
		Example: `  aithera play --file scenarios/missed-deadline.yaml
  aithera play --describe "Handling a disagreement with a teammate"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := playHost(cmd.Context(), file, describe)
			if err != nil {
				return err
			}
			defer host.Wait()
			return playLoop(cmd.InOrStdin(), cmd.OutOrStdout(), host)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "scenario YAML or JSON file")
	cmd.Flags().StringVar(&describe, "describe", "", "free-text description to generate a scenario from")
	cmd.MarkFlagsOneRequired("file", "describe")
	cmd.MarkFlagsMutuallyExclusive("file", "describe")
	return cmd
}

// playHost loads the scenario from a file, or asks the oracle for one and
// waits for it.
func playHost(ctx context.Context, file, describe string) (*softskills.Host, error) {
	if file != "" {
		s, err := scenario.LoadFile(afero.NewOsFs(), file)
		if err != nil {
			return nil, err
		}
		host := softskills.NewHost(nil, zap.NewNop())
		if err := host.StartWith(s); err != nil {
			return nil, err
		}
		return host, nil
	}

	cfg, log, err := setup()
	if err != nil {
		return nil, err
	}
	orc, err := newOracle(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	host := softskills.NewHost(orc, log, softskills.WithTimeout(cfg.OracleTimeout))
	if err := host.Start(describe); err != nil {
		return nil, err
	}
	host.Wait()
	return host, nil
}

// playLoop renders the host's simulation and feeds it the numbered choices
// read from in. Typing q leaves the simulation.
func playLoop(in io.Reader, out io.Writer, host *softskills.Host) error {
	defer host.End()

	sc := bufio.NewScanner(in)
	for {
		v := host.View()
		if v.State == softskills.StateError {
			return errors.New(v.Error)
		}
		if v.Simulation == nil {
			return softskills.ErrNoSimulation
		}
		sim := v.Simulation
		if sim.LastFeedback != nil {
			fmt.Fprintf(out, "\nFeedback: %s\n", *sim.LastFeedback)
		}

		switch sim.Status {
		case scenario.StatusFinished:
			renderSummary(out, sim)
			return nil
		case scenario.StatusCorrupted:
			fmt.Fprintln(out, sim.Error)
			return scenario.ErrCorruptedScenario
		}

		if sim.Steps == 0 {
			fmt.Fprintf(out, "%s\n%s\n", sim.Title, sim.Description)
		}
		fmt.Fprintf(out, "\n%s\n", sim.Situation)
		for _, c := range sim.Choices {
			fmt.Fprintf(out, "  %d) %s\n", c.Index+1, c.Text)
		}

		for {
			fmt.Fprint(out, "> ")
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return err
				}
				return errQuit
			}
			line := strings.TrimSpace(sc.Text())
			if strings.EqualFold(line, "q") {
				return errQuit
			}
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(sim.Choices) {
				fmt.Fprintf(out, "Pick a number between 1 and %d, or q to quit.\n", len(sim.Choices))
				continue
			}
			if _, err := host.Select(n - 1); err != nil {
				return err
			}
			break
		}
	}
}

func renderSummary(out io.Writer, sim *scenario.View) {
	fmt.Fprintf(out, "\nSimulation complete: %s\n", sim.Title)
	for i, e := range sim.Path {
		fmt.Fprintf(out, "%d. %s\n   You chose: %s\n   %s\n", i+1, e.Situation, e.Choice, e.Feedback)
	}
}
