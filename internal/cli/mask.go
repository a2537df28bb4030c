package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cadastro/pkg/mask"
)

func maskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mask <telefone|cpf|data> <value>",
		Short: "Format a value with a mask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := mask.ParseKind(args[0])
			if err != nil {
				return err
			}
			out, _ := mask.Apply(kind, args[1])
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
