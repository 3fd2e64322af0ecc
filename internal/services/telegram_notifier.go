package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"autorevenda/internal/models"
	"autorevenda/internal/pdf"
)

// TelegramNotifier pushes deal events to the sales team chat. A nil
// notifier or an empty token disables it without touching callers.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier returns nil when token is empty so the wiring
// can pass it straight into services that accept a Notifier.
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	if token == "" || chatID == 0 {
		log.Printf("[tg] disabled: token or chat_id empty")
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[tg] disabled: bot init failed: %v", err)
		return nil
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (t *TelegramNotifier) send(text string) {
	if t == nil || t.bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send] failed: %v", err)
	}
}

func (t *TelegramNotifier) ProposalApproved(p *models.Proposal) {
	if t == nil {
		return
	}
	t.send(fmt.Sprintf("✅ Proposta <b>%s</b> aprovada\nValor: %s",
		p.ProposalNumber, pdf.FormatBRL(p.VehicleValue)))
}

func (t *TelegramNotifier) SaleClosed(s *models.Sale) {
	if t == nil {
		return
	}
	t.send(fmt.Sprintf("🚗 Venda fechada!\nTotal: %s\nComissão: %s",
		pdf.FormatBRL(s.TotalValue), pdf.FormatBRL(s.CommissionValue)))
}
