package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-indeed-automation/internal/models"
)

// TelegramReporter pushes run summaries to a chat. Optional: the scraper
// runs fine without a configured bot.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML"
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendSummary(params models.SearchParams, s models.RunSummary) error {
	text := fmt.Sprintf(
		"✅ <b>Scrape finished</b>: %s @ %s (%s)\n"+
			"📄 Pages: %d, cards: %d\n"+
			"💾 Inserted: %d, duplicates: %d\n"+
			"🔁 Repeated links: %d, unparseable dates: %d\n"+
			"⚠️ Persist errors: %d",
		params.Designation, params.Location, params.Locale,
		s.PagesFetched, s.CardsSeen,
		s.Inserted, s.SkippedDuplicates,
		s.DuplicatesSkipped, s.DatesUnparseable,
		s.PersistErrors,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	return t.SendMessage(fmt.Sprintf("⚠️ <b>Scraper Error</b>:\n%v", errReq))
}
