package telegram

import (
	"context"
	"strings"

	"github.com/sandevgo/veractbot/pkg/conv"
	"github.com/sandevgo/veractbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

// Telegram rejects messages over 4096 characters; stay a bit under so the
// HTML tags added during conversion never push a chunk over the edge.
const telegramChunkLimit = 4000

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// sendReply renders an assistant response (markdown) to Telegram HTML and
// delivers it. Long product and sales listings get split across messages.
func (s *sender) sendReply(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))

	for i, chunk := range splitAtNewlines(html, telegramChunkLimit) {
		if _, err := s.bot.Send(to, chunk, tele.ModeHTML); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("chunk_len", len(chunk)).Msg("telegram send failed")
			return err
		}
	}
	return nil
}

// splitAtNewlines cuts text into pieces no longer than maxLen, preferring a
// newline boundary so formatted lists survive the split intact.
func splitAtNewlines(text string, maxLen int) []string {
	var chunks []string
	for len(text) > maxLen {
		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" || len(chunks) == 0 {
		chunks = append(chunks, text)
	}
	return chunks
}
