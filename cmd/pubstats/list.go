// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubstats/internal/portfolio"
	"github.com/pdiddy/pubstats/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Page through a publication list",
	Long: `List prints one of the publication lists the site shows: all,
primary, student, significant, other or featured. Lists are ordered as in
the publications file and revealed a page at a time, the way the site's
"load more" button does.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("category", string(portfolio.ListAll), "list to show: "+listNames())
	listCmd.Flags().Int("page-size", 10, "publications per page")
	listCmd.Flags().Int("pages", 1, "number of pages to reveal (0 for all)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("category")
	list, err := portfolio.ParseList(name)
	if err != nil {
		return err
	}
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		return fmt.Errorf("--page-size must be positive")
	}
	pages, _ := cmd.Flags().GetInt("pages")

	s := newSession()
	if err := s.Load(cmd.Context()); err != nil {
		return err
	}

	shown := 0
	for page := 0; pages <= 0 || page < pages; page++ {
		items, more := s.NextPage(list, pageSize)
		for _, p := range items {
			shown++
			printPublication(os.Stdout, shown, p)
		}
		if !more {
			break
		}
	}

	fmt.Printf("\n%d of %d %s publications\n", shown, len(s.Items(list)), list)
	return nil
}

func printPublication(w io.Writer, n int, p types.Publication) {
	authors := strings.Join(p.Authors, ", ")
	if len(p.Authors) > 3 {
		authors = strings.Join(p.Authors[:3], ", ") + " et al."
	}
	fmt.Fprintf(w, "%3d. %s (%s)\n", n, p.Title, p.YearKey())
	fmt.Fprintf(w, "     %s", authors)
	if p.Journal != "" {
		fmt.Fprintf(w, " | %s", p.Journal)
	}
	fmt.Fprintf(w, " | %d citations\n", p.Citations)
}

func listNames() string {
	names := make([]string, len(portfolio.Lists))
	for i, l := range portfolio.Lists {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
