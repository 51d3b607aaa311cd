package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/assistant/assistant"
	"github.com/tailored-agentic-units/assistant/core/segment"
)

var errBlankInput = errors.New("input is blank")

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [text...]",
		Short: "Submit one message and print the reply",
		Long: `Submits text to a fresh conversation and prints the assistant's reply.
Reads standard input when no text is given.`,
		Example: `  assistant ask /review
  echo "how do coroutines work in Kotlin?" | assistant ask`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			a, err := assistant.New(cmd.Context(), opts.cfg, assistant.SurfacePage)
			if err != nil {
				return err
			}

			if !a.Submit(text) {
				return errBlankInput
			}

			rendered := a.Render()
			reply := rendered[len(rendered)-1]
			fmt.Fprintln(cmd.OutOrStdout(), segment.Join(reply.Segments))
			return nil
		},
	}
}

// inputText joins args, or reads all of stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
