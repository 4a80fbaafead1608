package cmd

import (
	"fmt"

	"github.com/rmfarias/capacita/internal/catalog"
	"github.com/rmfarias/capacita/internal/store"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the training modules and their completion status",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		completed, err := st.CompletionRepo().Completions(cmd.Context())
		if err != nil {
			return fmt.Errorf("load completions: %w", err)
		}

		for _, m := range catalog.All() {
			status := " "
			if completed[m.Key] {
				status = "✔"
			}
			fmt.Printf("%s %-24s %s (%d perguntas)\n", status, m.Key, m.Label, len(m.Questions))
		}
		return nil
	},
}
