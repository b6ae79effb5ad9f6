package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"jdbc-bridge/internal/domain"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResourceTable(w io.Writer, resources []domain.Resource) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tURI\tCOMMENT")
	for _, r := range resources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Name, r.Kind, r.Property(domain.PropURI), r.Comment)
	}
	_ = tw.Flush()
}

func printDescriptorTable(w io.Writer, d *domain.ConnectionDescriptor) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "DRIVER NAME\t%s\n", d.DriverName)
	fmt.Fprintf(tw, "DRIVER CLASS\t%s\n", d.DriverClass)
	fmt.Fprintf(tw, "DRIVER URL\t%s\n", d.DriverURL)
	fmt.Fprintf(tw, "JDBC URL\t%s\n", d.JDBCURL)
	fmt.Fprintf(tw, "TABLE\t%s\n", d.JDBCTable)
	_ = tw.Flush()
}

// parseProperties turns key=value pairs into a property map.
func parseProperties(pairs []string) (map[string]string, error) {
	props := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q: expected key=value", pair)
		}
		props[key] = value
	}
	return props, nil
}
