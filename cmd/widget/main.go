package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cyboglabs/cybot/pkg/config"
	"github.com/cyboglabs/cybot/pkg/faq"
	"github.com/cyboglabs/cybot/pkg/locale"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/svc"
	"github.com/cyboglabs/cybot/pkg/widget"
)

func loadFAQ(path string) (faq.Dataset, error) {
	if path == "" {
		return faq.NewStaticDataset(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dataset, err := faq.LoadDataset(f)
	if err != nil {
		return nil, err
	}
	return dataset, nil
}

func run(cfg *config.Config) error {
	// The terminal belongs to the UI, so logs only go to the file
	log := logger.NewFileLogger(cfg.Widget.LogFilePath)
	defer log.Sync()

	dataset, err := loadFAQ(cfg.Widget.FAQPath)
	if err != nil {
		return errors.Wrap(err, "load FAQ dataset")
	}

	w := widget.New(widget.Config{
		Chat:      svc.NewHTTPChatClient(cfg.Widget.BackendURL, cfg.Widget.RequestTimeout, log),
		Contact:   svc.NewHTTPContactClient(cfg.Widget.BackendURL, cfg.Widget.RequestTimeout, log),
		FAQ:       dataset,
		Logger:    log,
		Localizer: locale.LoadLocalizer(cfg.App.Language),
	})
	defer w.Unmount()

	log.Info("widget", "starting", map[string]interface{}{"backend_url": cfg.Widget.BackendURL})
	p := tea.NewProgram(newModel(context.Background(), w), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	cfg := config.Load()

	var rootCmd = &cobra.Command{
		Use:   "cybot",
		Short: "Terminal client for the CYBOGLABS assistant",
		Long: `Chat with CYBOT, browse the FAQ and send the contact form
from the terminal, against the same backend the website widget uses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	rootCmd.Flags().StringVar(&cfg.Widget.BackendURL, "backend-url", cfg.Widget.BackendURL, "Base URL of the CYBOT backend")
	rootCmd.Flags().StringVar(&cfg.App.Language, "lang", cfg.App.Language, "Language for widget text")
	rootCmd.Flags().StringVar(&cfg.Widget.FAQPath, "faq", cfg.Widget.FAQPath, "Path to a FAQ dataset JSON file")
	rootCmd.Flags().DurationVar(&cfg.Widget.RequestTimeout, "timeout", cfg.Widget.RequestTimeout, "Timeout for backend requests")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
