package main

import (
	"github.com/spf13/cobra"
)

func newNameCmd(a *app) *cobra.Command {
	var archive bool

	cmd := &cobra.Command{
		Use:   "name",
		Short: "Print the distribution identifier for the host",
		Example: `  xercesdist name
  xercesdist name --os Linux --arch 386
  xercesdist name --archive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := a.selection()
			if err != nil {
				return err
			}
			if archive {
				cmd.Println(sel.ArchiveName())
				return nil
			}
			cmd.Println(sel.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&archive, "archive", false, "Print the archive file name (.zip or .tar.gz)")
	return cmd
}
