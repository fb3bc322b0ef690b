package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newEnvCmd(a *app) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the resolution as shell variable assignments",
		Example: `  eval "$(xercesdist env)"
  xercesdist env --export >> build.env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := a.selection()
			if err != nil {
				return err
			}

			prefix := ""
			if export {
				prefix = "export "
			}

			vars := []struct{ key, value string }{
				{"XERCES_NAME", sel.Name},
				{"XERCES_ARCHIVE", sel.ArchiveName()},
				{"XERCES_IS_ZIP", strconv.FormatBool(sel.IsZip)},
				{"XERCES_IS_64", strconv.FormatBool(sel.Is64)},
			}
			for _, kv := range vars {
				cmd.Printf("%s%s=%s\n", prefix, kv.key, strconv.Quote(kv.value))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, "Prefix each assignment with export")
	return cmd
}
