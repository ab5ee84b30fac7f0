package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shelfbrowse/shelfbrowse/internal/browse"
	"github.com/shelfbrowse/shelfbrowse/internal/catalog"
)

type listOptions struct {
	jsonOutput bool
	title      string
	author     string
	genre      string
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog books without the interactive browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.title, "title", "", "Keep books whose title contains this text")
	cmd.Flags().StringVar(&opts.author, "author", "", "Keep books by this author ID")
	cmd.Flags().StringVar(&opts.genre, "genre", "", "Keep books tagged with this genre ID")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	cat, err := catalog.ParseCatalog(rootFlags.catalog)
	if err != nil {
		return err
	}

	criteria := browse.Criteria{
		Title:  opts.title,
		Author: opts.author,
		Genre:  opts.genre,
	}

	var books []catalog.Book
	for _, b := range cat.Books {
		if criteria.Match(b) {
			books = append(books, b)
		}
	}

	if len(books) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No books match the given filters.")
		return nil
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, cat, books)
	}

	return renderListTable(cmd, cat, books)
}

func renderListTable(cmd *cobra.Command, cat *catalog.Catalog, books []catalog.Book) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTITLE\tAUTHOR\tYEAR\tGENRES")

	for _, b := range books {
		genres := make([]string, len(b.Genres))
		for i, id := range b.Genres {
			genres[i] = cat.GenreName(id)
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			b.ID,
			b.Title,
			valueOrFallback(cat.AuthorName(b.Author), "(unknown)"),
			b.Published.Year(),
			strings.Join(genres, ", "),
		)
	}

	return writer.Flush()
}

type listJSONBook struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Genres    []string `json:"genres"`
	Published string   `json:"published"`
	Image     string   `json:"image,omitempty"`
}

type listJSONPayload struct {
	Catalog string         `json:"catalog"`
	Count   int            `json:"count"`
	Books   []listJSONBook `json:"books"`
}

func renderListJSON(cmd *cobra.Command, cat *catalog.Catalog, books []catalog.Book) error {
	payload := listJSONPayload{
		Catalog: cat.Name,
		Count:   len(books),
		Books:   make([]listJSONBook, len(books)),
	}

	for i, b := range books {
		genres := make([]string, len(b.Genres))
		for j, id := range b.Genres {
			genres[j] = cat.GenreName(id)
		}

		payload.Books[i] = listJSONBook{
			ID:        b.ID,
			Title:     b.Title,
			Author:    cat.AuthorName(b.Author),
			Genres:    genres,
			Published: b.Published.Format("2006-01-02"),
			Image:     b.Image,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
