package main

import (
	"fmt"

	"github.com/ochairo/xercesdist/internal/domain/entities"
	"github.com/ochairo/xercesdist/internal/external-adapters/yaml"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	var (
		format string
		family string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the distribution table",
		Example: `  xercesdist table
  xercesdist table --family Linux
  xercesdist table --format yaml > xerces.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case "yaml":
				if family != "" {
					return fmt.Errorf("--family cannot be combined with --format yaml")
				}
				data, err := yaml.MarshalTable(a.table)
				if err != nil {
					return err
				}
				cmd.Print(string(data))
				return nil
			case "text":
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}

			entries := a.table.Entries()
			if family != "" {
				f, err := entities.ParseFamily(family)
				if err != nil {
					return err
				}
				entries = lo.Filter(entries, func(e entities.TableEntry, _ int) bool {
					return e.Family == f
				})
			}

			cmd.Printf("Distribution table (%s):\n\n", a.repo.Source())
			for _, e := range entries {
				cmd.Printf("  %-8s 32bit  %s\n", e.Family, e.Pair.Bits32)
				cmd.Printf("  %-8s 64bit  %s\n", "", e.Pair.Bits64)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, yaml")
	cmd.Flags().StringVar(&family, "family", "", "Only show this OS family")
	return cmd
}
