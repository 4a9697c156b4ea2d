package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"socialid/src/core/usecase"
)

func parseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [id...]",
		Short: "Split wire identifiers into domain and local id",
		RunE: func(cmd *cobra.Command, args []string) error {
			wires, err := c.inputs(args)
			if err != nil {
				return err
			}
			views := make([]usecase.IdentifierView, len(wires))
			for i, w := range wires {
				views[i] = c.ids.Inspect(w)
			}
			return c.render(views, func(w io.Writer) error {
				return writeViews(w, views)
			})
		},
	}
}

func composeCmd(c *cli) *cobra.Command {
	var rawDomain string

	cmd := &cobra.Command{
		Use:   "compose [local-id...]",
		Short: "Build wire identifiers from a raw domain and raw local ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			locals, err := c.inputs(args)
			if err != nil {
				return err
			}
			views := make([]usecase.IdentifierView, len(locals))
			for i, l := range locals {
				views[i] = c.ids.Compose(rawDomain, l)
			}
			return c.render(views, func(w io.Writer) error {
				for _, v := range views {
					if _, err := fmt.Fprintln(w, v.ID); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&rawDomain, "domain", "d", "", "raw domain name (empty for local ids)")
	return cmd
}

func groupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "group [id...]",
		Short: "Bucket wire identifiers by domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			wires, err := c.inputs(args)
			if err != nil {
				return err
			}
			groups, err := c.ids.Group(cmd.Context(), wires)
			if err != nil {
				return err
			}
			return c.render(groups, func(w io.Writer) error {
				for _, g := range groups {
					name := g.Domain
					if name == "" {
						name = "(local)"
					}
					if _, err := fmt.Fprintf(w, "%s: %s\n", name, strings.Join(g.IDs, " ")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func writeViews(w io.Writer, views []usecase.IdentifierView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDOMAIN\tLOCAL ID\tDECODED\tRESERVED")
	for _, v := range views {
		domain := v.DomainDecoded
		if !v.Global {
			domain = "-"
		}
		reserved := string(v.Reserved)
		if reserved == "" {
			reserved = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.ID, domain, v.LocalID, v.LocalIDDecoded, reserved)
	}
	return tw.Flush()
}
