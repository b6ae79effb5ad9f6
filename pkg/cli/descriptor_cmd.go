package cli

import (
	"os"

	"github.com/spf13/cobra"

	"jdbc-bridge/internal/domain"
)

func newDescriptorCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "descriptor",
		Short: "Resolve external-table connection descriptors",
	}
	cmd.AddCommand(newDescriptorResolveCmd(client))
	return cmd
}

func newDescriptorResolveCmd(client *Client) *cobra.Command {
	var (
		table       string
		database    string
		catalog     string
		props       []string
		sessionVars string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a connection descriptor from table properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			properties, err := parseProperties(props)
			if err != nil {
				return err
			}

			req := domain.DescriptorRequest{
				TableName:  table,
				Database:   database,
				Catalog:    catalog,
				Properties: properties,
			}
			// Only an explicitly set flag overrides the server default.
			if cmd.Flags().Changed("session-variables") {
				req.SessionVariables = &sessionVars
			}

			desc, err := client.ResolveDescriptor(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, desc)
			}
			printDescriptorTable(os.Stdout, desc)
			return nil
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "External table name")
	cmd.Flags().StringVar(&database, "database", "", "Database holding the table")
	cmd.Flags().StringVar(&catalog, "catalog", "", "Catalog holding the table")
	cmd.Flags().StringArrayVar(&props, "property", nil, "Table property as key=value (repeatable)")
	cmd.Flags().StringVar(&sessionVars, "session-variables", "", "Session variables to merge into the JDBC URL")
	return cmd
}
