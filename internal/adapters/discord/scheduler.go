package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "tscatalog/pkg/discord"
)

// embedSender is the part of *discordgo.Session the report needs.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// RunScheduledReports snapshots coverage at every interval slot and posts a
// summary to channelID until ctx is done.
func (h *Handler) RunScheduledReports(ctx context.Context, s embedSender, channelID string, interval time.Duration) {
	for {
		next := pkgdiscord.NextReport(h.now(), interval)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		h.postReport(ctx, s, channelID)
	}
}

func (h *Handler) postReport(ctx context.Context, s embedSender, channelID string) {
	reports, err := h.catalog.SnapshotCoverage(ctx)
	if err != nil {
		// The reports are still worth posting when only persistence failed.
		h.logger.Warn("coverage snapshot failed", "error", err)
	}
	if len(reports) == 0 {
		return
	}
	embed := pkgdiscord.BuildReportEmbed(h.t, h.defaultLocale, reports, h.now())
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		h.logger.Error("failed to post coverage report", "channel", channelID, "error", err)
		return
	}
	h.logger.Info("coverage report posted", "channel", channelID, "locales", len(reports))
}
