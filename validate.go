package main

import (
	"errors"
	"fmt"

	"github.com/muhammadolammi/aithera/internal/scenario"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var errInvalidFiles = errors.New("some scenario files are invalid")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check scenario files for shape errors and dangling step references",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateFiles(afero.NewOsFs(), cmd, args)
		},
	}
}

func validateFiles(fs afero.Fs, cmd *cobra.Command, paths []string) error {
	failed := 0
	for _, p := range paths {
		s, err := scenario.LoadFile(fs, p)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", p, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%q, %d steps)\n", p, s.Title, len(s.Steps))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidFiles, failed, len(paths))
	}
	return nil
}
