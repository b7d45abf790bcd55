package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"tscatalog/internal/config"
	"tscatalog/internal/ports/input"
	"tscatalog/internal/ports/output"
)

// Discord invalidates an interaction that is not answered within three seconds.
const interactionTimeout = 3 * time.Second

// Bot is the Discord adapter.
type Bot struct {
	// ctx is the lifetime of Start; interactions derive from it.
	ctx     context.Context
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	t       output.T
	logger  *slog.Logger
}

// NewBot creates a Bot around the catalog use case.
func NewBot(cfg *config.Config, catalog input.CatalogUseCase, t output.T, logger *slog.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		ctx:     context.Background(),
		session: s,
		config:  cfg,
		handler: NewHandler(catalog, t, cfg.DefaultLocale, cfg.PersistenceEnabled(), logger),
		t:       t,
		logger:  logger.With("module", "bot"),
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := b.interactionContext()
	defer cancel()
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handler.HandleCommand(ctx, s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handler.HandleAutocomplete(ctx, s, i)
	}
}

func (b *Bot) interactionContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(b.ctx, interactionTimeout)
}

// Start runs the bot until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx = ctx
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	// An empty guild id registers global commands.
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, Commands(b.t)); err != nil {
		b.logger.Warn("failed to register commands", slog.Any("error", err))
	}

	if b.config.ReportsEnabled() {
		go b.handler.RunScheduledReports(ctx, b.session, b.config.ReportChannelID, b.config.ReportInterval)
		b.logger.Info("coverage reports scheduled",
			slog.String("channel", b.config.ReportChannelID),
			slog.Duration("interval", b.config.ReportInterval))
	}

	b.logger.Info("bot online, press CTRL+C to quit")
	<-ctx.Done()
	return nil
}
