package cmd

import (
	"fmt"

	"github.com/rmfarias/capacita/internal/catalog"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME [CATEGORY]",
	Short: "Resolve a service name to its training module key",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		category := ""
		if len(args) == 2 {
			category = args[1]
		}

		key, ok := catalog.Resolve(name, category)
		if !ok {
			return fmt.Errorf("no training module matches %q", name)
		}
		fmt.Println(key)
		return nil
	},
}
