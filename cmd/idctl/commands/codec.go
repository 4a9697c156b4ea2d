package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type encodeResult struct {
	Value   string `json:"value" yaml:"value"`
	Encoded string `json:"encoded" yaml:"encoded"`
}

type decodeResult struct {
	Value   string `json:"value" yaml:"value"`
	Decoded string `json:"decoded" yaml:"decoded"`
}

func encodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [value...]",
		Short: "Encode raw values into the local-id alphabet",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := c.inputs(args)
			if err != nil {
				return err
			}
			results := make([]encodeResult, len(values))
			for i, v := range values {
				results[i] = encodeResult{Value: v, Encoded: c.ids.Encode(v)}
			}
			return c.render(results, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintln(w, r.Encoded); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func decodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [value...]",
		Short: "Decode local-id fragments back to raw text",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := c.inputs(args)
			if err != nil {
				return err
			}
			results := make([]decodeResult, len(values))
			for i, v := range values {
				results[i] = decodeResult{Value: v, Decoded: c.ids.Decode(v)}
			}
			return c.render(results, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintln(w, r.Decoded); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
