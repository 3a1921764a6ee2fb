// Command seed writes synthetic spreadsheets for every dashboard
// module, giving a fresh install something to serve before real data
// arrives.
package main

import (
	"fmt"
	"os"

	"painel/adapters/excel"
	"painel/domain/core"
	"painel/domain/schema"
	"painel/internal/synth"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newSeedCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	var dir string
	var seed int64
	var rows int
	var force bool

	cmd := &cobra.Command{
		Use:   "seed [modules...]",
		Short: "Generate synthetic spreadsheets for dashboard modules",
		Long: `Generate synthetic spreadsheets for dashboard modules.

Without arguments every registered module is written. Existing files
are left alone unless --force is set.

Example: seed --dir dados --seed 42 ensino extensao`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := schema.NewRegistry()

			modules := args
			if len(modules) == 0 {
				modules = registry.Modules()
			}

			generator := synth.NewGenerator(synth.Config{
				Seed:      seed,
				StartYear: 2019,
				EndYear:   2025,
			})
			writer := excel.NewWriter(dir, excel.WriterConfig{
				ReadOnly:       false,
				AllowCreate:    true,
				AllowOverwrite: force,
			})

			for _, module := range modules {
				desc, err := registry.Lookup(module)
				if err != nil {
					return err
				}

				tbl, err := generator.Generate(module, rows)
				if err != nil {
					return err
				}

				path, err := writer.WriteTable(desc, tbl, core.Now().UpdateStamp())
				if core.IsWriteBlocked(err) {
					fmt.Printf("skipped %s: %v\n", module, err)
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to write %s: %w", module, err)
				}
				fmt.Printf("wrote %s (%d rows) to %s\n", module, tbl.Len(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "dados", "Target directory for spreadsheets")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Generation seed")
	cmd.Flags().IntVar(&rows, "rows", 0, "Exact row count per module (0 = natural size)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing spreadsheets")

	return cmd
}
