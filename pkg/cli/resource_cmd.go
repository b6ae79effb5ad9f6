package cli

import (
	"os"

	"github.com/spf13/cobra"

	"jdbc-bridge/internal/domain"
)

func newResourceCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage registered resources",
	}
	cmd.AddCommand(
		newResourceAddCmd(client),
		newResourceListCmd(client),
		newResourceGetCmd(client),
		newResourceRemoveCmd(client),
	)
	return cmd
}

func newResourceAddCmd(client *Client) *cobra.Command {
	var (
		kind    string
		props   []string
		comment string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			properties, err := parseProperties(props)
			if err != nil {
				return err
			}

			created, err := client.CreateResource(cmd.Context(), domain.CreateResourceRequest{
				Name:       args[0],
				Kind:       kind,
				Properties: properties,
				Comment:    comment,
			})
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, created)
			}
			printResourceTable(os.Stdout, []domain.Resource{*created})
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "jdbc", "Resource kind")
	cmd.Flags().StringArrayVar(&props, "property", nil, "Resource property as key=value (repeatable)")
	cmd.Flags().StringVar(&comment, "comment", "", "Resource comment")
	return cmd
}

func newResourceListCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := client.ListResources(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, all)
			}
			printResourceTable(os.Stdout, all)
			return nil
		},
	}
}

func newResourceGetCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.GetResource(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, res)
			}
			printResourceTable(os.Stdout, []domain.Resource{*res})
			return nil
		},
	}
}

func newResourceRemoveCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a resource",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteResource(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, map[string]string{"deleted": args[0]})
			}
			cmd.Printf("deleted %s\n", args[0])
			return nil
		},
	}
}
