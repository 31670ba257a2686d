package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pdxmph/todo-tui/internal/arith"
	"github.com/spf13/cobra"
)

func newCalcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Multiply, divide or average numbers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:                "multiply A B",
			Short:              "Print A * B",
			Args:               cobra.ExactArgs(2),
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := arith.Multiply(operand(args[0]), operand(args[1]))
				if err != nil {
					return err
				}
				printNumber(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:                "divide A B",
			Short:              "Print A / B",
			Args:               cobra.ExactArgs(2),
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := arith.Divide(operand(args[0]), operand(args[1]))
				if err != nil {
					return err
				}
				printNumber(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:                "average [X...]",
			Short:              "Print the mean of the arguments",
			Args:               cobra.ArbitraryArgs,
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				vals := make([]any, len(args))
				for i, a := range args {
					vals[i] = operand(a)
				}
				v, err := arith.Average(vals)
				if err != nil {
					return err
				}
				printNumber(cmd.OutOrStdout(), v)
				return nil
			},
		},
	)

	return cmd
}

// operand returns s as a float64 when it parses as one, otherwise the raw
// string so arith rejects it.
func operand(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func printNumber(w io.Writer, v float64) {
	fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
}
