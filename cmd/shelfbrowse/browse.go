package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shelfbrowse/shelfbrowse/internal/catalog"
	"github.com/shelfbrowse/shelfbrowse/internal/logger"
	"github.com/shelfbrowse/shelfbrowse/internal/tui"
)

type browseOptions struct {
	CatalogPath string
	Theme       string
	LogPath     string
	Verbose     bool
}

var browseCmdRunner = runBrowse

func newBrowseCmd(root *rootFlags) *cobra.Command {
	opts := browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive catalog browser",
		Long:  `Launch the interactive TUI to page through the catalog, filter by title, author or genre, and read book details.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CatalogPath = root.catalog
			opts.Verbose = root.verbose
			return browseCmdRunner(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Initial theme, day or night (defaults to the terminal preference)")
	cmd.Flags().StringVar(&opts.LogPath, "log-file", "", "Append session logs to this file")

	return cmd
}

func runBrowse(opts browseOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse needs an interactive terminal; try 'shelfbrowse list' instead")
	}

	cat, err := catalog.ParseCatalog(opts.CatalogPath)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout for the whole session, so logs
	// only go anywhere when a side file is requested.
	var log *logger.Logger
	if opts.LogPath != "" {
		level := "info"
		if opts.Verbose {
			level = "debug"
		}

		fileLog, closer, err := logger.NewFile(opts.LogPath, logger.Options{Level: level})
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer closer.Close()
		log = fileLog
	}

	themeName := opts.Theme
	if themeName == "" {
		themeName = tui.DefaultThemeName()
	}

	log.WithFields(map[string]any{
		"catalog": opts.CatalogPath,
		"books":   len(cat.Books),
		"theme":   themeName,
	}).Info("catalog loaded")

	m := tui.NewModel(cat, log, themeName)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "browser session failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	log.Info("browser closed")

	return nil
}
