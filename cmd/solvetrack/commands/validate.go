package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/solvetrack/solvetrack/internal/event"
)

const (
	validateCmdUse   = "validate <events.json>"
	validateCmdShort = "Validate an events dataset against the event schema"
	validateArgCount = 1
)

// ErrDatasetInvalid is returned when the dataset fails schema validation.
var ErrDatasetInvalid = errors.New("dataset is invalid")

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   validateCmdUse,
		Short: validateCmdShort,
		Args:  cobra.ExactArgs(validateArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], nocolor)
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(path string, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	data, readErr := os.ReadFile(path) //nolint:gosec // path comes from the CLI user
	if readErr != nil {
		return fmt.Errorf("read dataset: %w", readErr)
	}

	validateErr := event.Validate(data)
	if validateErr == nil {
		color.New(color.FgGreen).Fprintf(os.Stdout, "Dataset is valid (%s)\n", path)

		return nil
	}

	var schemaErr *event.ValidationError
	if !errors.As(validateErr, &schemaErr) {
		return fmt.Errorf("validate dataset: %w", validateErr)
	}

	color.New(color.FgRed).Fprintf(os.Stdout, "Dataset validation failed (%s)\n", path)
	fmt.Fprintf(os.Stdout, "\nErrors:\n")

	for _, problem := range schemaErr.Problems {
		color.New(color.FgRed).Fprintf(os.Stdout, "  - %s\n", problem)
	}

	return ErrDatasetInvalid
}
