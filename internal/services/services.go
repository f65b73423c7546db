package services

import (
	"fmt"

	"go.uber.org/zap"

	"lbe/internal/config"
	"lbe/internal/content"
	"lbe/internal/handlers/contact"
)

// Services are the long-lived collaborators shared by the handlers.
type Services struct {
	Content   *content.Source
	Variant   string
	Submitter contact.Submitter
}

func New(cfg config.Config, log *zap.Logger) (*Services, error) {
	lib, err := LoadLibrary(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	if _, err := lib.Get(cfg.Variant); err != nil {
		return nil, err
	}
	log.Info("content loaded",
		zap.String("variant", cfg.Variant),
		zap.Strings("variants", lib.Names()),
		zap.Bool("from_disk", cfg.ContentDir != ""),
	)

	return &Services{
		Content:   content.NewSource(lib, log),
		Variant:   cfg.Variant,
		Submitter: contact.NopSubmitter{},
	}, nil
}

// LoadLibrary reads variants from dir, or the built-in set when dir is empty.
func LoadLibrary(dir string) (*content.Library, error) {
	if dir == "" {
		lib, err := content.Embedded()
		if err != nil {
			return nil, fmt.Errorf("loading built-in content: %w", err)
		}
		return lib, nil
	}
	lib, err := content.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", dir, err)
	}
	return lib, nil
}

// Page returns the configured variant from the current library.
func (s *Services) Page() (*content.Page, error) {
	return s.Content.Library().Get(s.Variant)
}
