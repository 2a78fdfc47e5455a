package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/library/pkg/library"
)

const modulePath = "github.com/mesh-intelligence/library"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "library v%s\nmodule: %s\n", library.Version, modulePath)
			return nil
		},
	}
}
