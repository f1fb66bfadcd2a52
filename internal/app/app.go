// Package app wires configuration into a ready set of services. Both the
// HTTP server and the newsctl command build on it.
package app

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/infosecwire/newsroom-api/internal/assistant"
	"github.com/infosecwire/newsroom-api/internal/auth"
	"github.com/infosecwire/newsroom-api/internal/config"
	"github.com/infosecwire/newsroom-api/internal/feed"
	"github.com/infosecwire/newsroom-api/internal/kvstore"
	"github.com/infosecwire/newsroom-api/internal/media"
	"github.com/infosecwire/newsroom-api/internal/repository"
	"github.com/infosecwire/newsroom-api/internal/service"
)

// Build opens the configured store and assembles every service. The
// returned closer releases the store connection.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*service.Services, io.Closer, error) {
	store, closer, err := kvstore.Open(ctx, cfg.Store, log)
	if err != nil {
		return nil, nil, err
	}

	repos := repository.New(store)
	rss := feed.NewGenerator(feed.Channel{
		Title:       cfg.Feed.Title,
		Description: cfg.Feed.Description,
		BaseURL:     cfg.Feed.BaseURL,
	})

	services := service.NewServices(repos, rss, log)
	if p, ok := store.(kvstore.Pinger); ok {
		services.Health = p
	}
	services.Auth = auth.NewService(repos, cfg.Auth.StubDelay, log)
	services.Assistant = newAssistant(ctx, cfg.Assistant, log)

	uploader, err := newUploader(ctx, cfg.Media, log)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	services.Media = media.NewService(uploader, cfg.Media.MaxUploadSize)

	return services, closer, nil
}

// newAssistant leaves the assistant disabled when no key is configured or
// the client cannot be created
func newAssistant(ctx context.Context, cfg config.AssistantConfig, log zerolog.Logger) *assistant.Assistant {
	gemini, err := assistant.NewGemini(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Warn().Err(err).Msg("Drafting assistant disabled")
		return assistant.New(nil, log)
	}
	log.Info().Str("model", cfg.Model).Msg("Drafting assistant enabled")
	return assistant.New(gemini, log)
}

func newUploader(ctx context.Context, cfg config.MediaConfig, log zerolog.Logger) (media.Uploader, error) {
	if cfg.Bucket == "" {
		log.Info().Msg("Media uploads stored inline as data URLs")
		return media.DataURL{}, nil
	}
	s3, err := media.NewS3(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("bucket", cfg.Bucket).Msg("Media uploads stored in S3")
	return s3, nil
}
