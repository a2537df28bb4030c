package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cadastro/pkg/form"
)

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <field> <value>",
		Short: "Validate a single field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, f, err := setup(opts)
			if err != nil {
				return err
			}

			res, err := f.BlurContext(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			if !res.Valid {
				return errInvalid
			}
			return nil
		},
	}
}

func submitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <field=value>...",
		Short: "Validate every field of the form",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, f, err := setup(opts)
			if err != nil {
				return err
			}

			values := make(map[string]string, len(args))
			for _, arg := range args {
				name, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected field=value, got %q", arg)
				}
				values[name] = value
			}

			report, err := f.SubmitContext(cmd.Context(), values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				printResult(out, res)
			}
			if !report.Valid {
				return errInvalid
			}
			fmt.Fprintln(out, report.Message)
			return nil
		},
	}
}

func printResult(w io.Writer, res form.Result) {
	if res.Valid {
		fmt.Fprintf(w, "%s: ok\n", res.Field)
		return
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", res.Field, res.Message, res.Rule)
}
