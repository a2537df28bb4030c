package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cadastro/pkg/rules"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules available to field bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range rules.Names() {
				msg, err := rules.MessageFor(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, msg)
			}
			return nil
		},
	}
}
