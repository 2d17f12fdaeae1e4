package notification

import (
	"context"
	"fmt"

	"github.com/dapperDewan/Hoop-Hub-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPurchaseCompleted(ctx context.Context, owner *domain.Owner, resource *domain.Resource, alloc *domain.Allocation) {
	text := fmt.Sprintf(
		"*Покупка завершена!*\n\n"+"%s: %s\n"+"Закреплён за вами до (время указано в UTC): %s\n"+"Списано: %d",
		kindLabel(resource.Kind), resource.Name,
		alloc.EndDate.Format("02.01.2006 15:04"),
		alloc.PricePaid,
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, owner *domain.Owner, resource *domain.Resource, alloc *domain.Allocation) {
	text := fmt.Sprintf(
		"*Бронирование подтверждено!*\n\n"+"%s: %s\n"+"Закреплён за вами до (время указано в UTC): %s",
		kindLabel(resource.Kind), resource.Name,
		alloc.EndDate.Format("02.01.2006 15:04"),
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, owner *domain.Owner, resource *domain.Resource) {
	text := fmt.Sprintf(
		"*Бронирование отклонено*\n\n"+"%s: %s\n"+"Бюджет не списан.",
		kindLabel(resource.Kind), resource.Name,
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func kindLabel(kind domain.ResourceKind) string {
	if kind == domain.KindCoach {
		return "Тренер"
	}
	return "Игрок"
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
