package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/assistant/core/segment"
)

func newSegmentsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "segments [text...]",
		Short: "Print how text splits into prose and code segments",
		Example: "  assistant segments 'run ```go test ./...``` first'\n" +
			"  assistant segments --json < reply.md",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			segs := segment.Parse(text)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(segs)
			}

			for i, seg := range segs {
				fmt.Fprintf(out, "[%d] %s\n%s\n", i, seg.Kind, seg.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print segments as JSON")
	return cmd
}
