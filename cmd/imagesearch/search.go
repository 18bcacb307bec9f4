package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
	"github.com/alexisbeaulieu97/imagesearch/internal/search"
	searcherrors "github.com/alexisbeaulieu97/imagesearch/pkg/errors"
)

type searchOptions struct {
	page       int
	jsonOutput bool
	yamlOutput bool
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a single search and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, flags, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page number to fetch")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Output results as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

func runSearch(cmd *cobra.Command, flags *rootFlags, opts *searchOptions, rawQuery string) error {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return newCommandError("search", "empty query", errors.New("query must not be blank"), "Pass at least one non-space character.")
	}
	if opts.page < 1 {
		return newCommandError("search", fmt.Sprintf("page %d", opts.page), errors.New("page must be 1 or greater"), "Use --page 1 for the first page.")
	}

	app, err := newAppContext(flags, logTarget{writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	rs, err := app.Client.FetchImages(cmd.Context(), query, opts.page)
	if err != nil {
		app.Logger.Error(err, "search failed", logger.Fields{"query": query, "page": opts.page})
		return newCommandError("search", fmt.Sprintf("query %q page %d", query, opts.page), errors.New(searcherrors.FetchFailedMessage), "Check the backend with 'imagesearch health'.")
	}
	if rs.Items == nil {
		rs.Items = []search.ResultItem{}
	}

	switch {
	case opts.jsonOutput:
		return renderSearchJSON(cmd, rs)
	case opts.yamlOutput:
		return renderSearchYAML(cmd, rs)
	}

	if rs.Empty() {
		fmt.Fprintf(cmd.OutOrStdout(), "No images found for %q\n", query)
		return nil
	}

	return renderSearchTable(cmd, rs)
}

func renderSearchTable(cmd *cobra.Command, rs search.ResultSet) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "#\tID\tSCORE\tURL")
	for i, item := range rs.Items {
		fmt.Fprintf(writer, "%d\t%d\t%.2f\t%s\n", i+1, item.ImageID, item.Score, item.ImageURL)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d, %d results for %q\n", rs.Page, rs.Len(), rs.Query)
	return nil
}

type searchPayload struct {
	Query   string              `json:"query" yaml:"query"`
	Page    int                 `json:"page" yaml:"page"`
	Count   int                 `json:"count" yaml:"count"`
	Results []search.ResultItem `json:"results" yaml:"results"`
}

func newSearchPayload(rs search.ResultSet) searchPayload {
	return searchPayload{Query: rs.Query, Page: rs.Page, Count: rs.Len(), Results: rs.Items}
}

func renderSearchJSON(cmd *cobra.Command, rs search.ResultSet) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(newSearchPayload(rs))
}

func renderSearchYAML(cmd *cobra.Command, rs search.ResultSet) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(newSearchPayload(rs)); err != nil {
		return err
	}
	return encoder.Close()
}
