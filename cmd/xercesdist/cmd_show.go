package main

import (
	"encoding/json"
	"fmt"

	"github.com/ochairo/xercesdist/internal/domain/entities"
	"github.com/ochairo/xercesdist/internal/external-adapters/yaml"
	"github.com/spf13/cobra"
)

// SelectionReport is the JSON form of a resolved selection
type SelectionReport struct {
	Family  string `json:"family"`
	Width   string `json:"width"`
	Name    string `json:"name"`
	Archive string `json:"archive"`
	IsZip   bool   `json:"is_zip"`
	Is64    bool   `json:"is_64"`
	Bits32  string `json:"bits32"`
	Bits64  string `json:"bits64"`
}

func newShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the full resolution for the host",
		Example: `  xercesdist show
  xercesdist show --format json
  xercesdist show --os Windows --arch 64 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := a.selection()
			if err != nil {
				return err
			}

			switch format {
			case "text":
				printSelection(cmd, sel)
			case "json":
				data, err := json.MarshalIndent(newSelectionReport(sel), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode selection: %w", err)
				}
				cmd.Println(string(data))
			case "yaml":
				data, err := yaml.MarshalSelection(sel)
				if err != nil {
					return err
				}
				cmd.Print(string(data))
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, yaml")
	return cmd
}

func newSelectionReport(sel entities.Selection) SelectionReport {
	return SelectionReport{
		Family:  sel.Host.Family.String(),
		Width:   sel.Host.Width.String(),
		Name:    sel.Name,
		Archive: sel.ArchiveName(),
		IsZip:   sel.IsZip,
		Is64:    sel.Is64,
		Bits32:  sel.Pair.Bits32,
		Bits64:  sel.Pair.Bits64,
	}
}

func printSelection(cmd *cobra.Command, sel entities.Selection) {
	cmd.Printf("%-10s %s\n", "Host:", sel.Host)
	cmd.Printf("%-10s %s\n", "Name:", sel.Name)
	cmd.Printf("%-10s %s\n", "Archive:", sel.ArchiveName())
	cmd.Printf("%-10s %t\n", "IsZip:", sel.IsZip)
	cmd.Printf("%-10s %t\n", "Is64:", sel.Is64)
}
