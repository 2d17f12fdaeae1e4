package domain

import "time"

// Owner is a team owner. Budget is mutated only through the budget authority
// (guarded single-statement updates in the owner repository).
type Owner struct {
	ID             string    `json:"id"`
	DisplayName    string    `json:"display_name"`
	Budget         int64     `json:"budget"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateOwnerInput struct {
	DisplayName    string
	InitialBudget  int64
	TelegramChatID *int64
}
