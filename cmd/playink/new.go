package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/threechain/playink/scaffold"
)

func newNewCmd() *cobra.Command {
	var data scaffold.Data
	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a starter documentation site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			name := dir
			if idx := strings.LastIndex(dir, "/"); idx >= 0 {
				name = dir[idx+1:]
			}
			data.ProjectName = name
			if data.SiteName == "" {
				data.SiteName = toTitle(name)
			}
			if data.Organization == "" {
				data.Organization = name
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Creating new playink site: %s\n\n", dir)
			created, err := scaffold.Create(dir, data)
			for _, f := range created {
				fmt.Fprintf(out, "  created %s\n", f)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Done! Next steps:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  cd %s\n", dir)
			fmt.Fprintln(out, "  playink serve")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Edit playink.yaml for navigation and footer links, and add pages under docs/.")
			return nil
		},
	}
	cmd.Flags().StringVar(&data.SiteName, "title", "", "site title (default derived from the directory name)")
	cmd.Flags().StringVar(&data.Organization, "org", "", "organization name")
	cmd.Flags().StringVar(&data.URL, "url", "https://example.com", "production URL")
	return cmd
}

var titleCaser = cases.Title(language.English)

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "play-ink" -> "Play Ink", "course" -> "Course"
func toTitle(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "-", " "))
}
