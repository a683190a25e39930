package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/content"
)

var projectTag string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the project gallery",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, c, err := scene.Load(flags)
		if err != nil {
			return err
		}
		printProjects(cmd.OutOrStdout(), c.Projects.WithTag(projectTag))
		return nil
	},
}

func init() {
	projectsCmd.Flags().StringVar(&projectTag, "tag", "", "only list projects with this tag")
	rootCmd.AddCommand(projectsCmd)
}

func printProjects(w io.Writer, ps content.Projects) {
	if len(ps) == 0 {
		fmt.Fprintln(w, "No projects found")
		return
	}
	for _, p := range ps {
		fmt.Fprintf(w, "%s", p.Title)
		if p.Subtitle != "" {
			fmt.Fprintf(w, " - %s", p.Subtitle)
		}
		fmt.Fprintln(w)
		if p.Description != "" {
			fmt.Fprintf(w, "  %s\n", p.Description)
		}
		if len(p.Tags) > 0 {
			fmt.Fprintf(w, "  Tags: %s\n", strings.Join(p.Tags, ", "))
		}
		if p.URL != "" {
			fmt.Fprintf(w, "  %s\n", p.URL)
		}
	}
}
