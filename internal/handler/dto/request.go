package dto

type CreateResourceRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=player coach"`
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
}

type CreateOwnerRequest struct {
	DisplayName    string `json:"display_name" binding:"required"`
	InitialBudget  int64  `json:"initial_budget" binding:"min=0"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type PurchaseRequest struct {
	OwnerID   string `json:"owner_id" binding:"required,uuid"`
	StartDate string `json:"start_date"`
}

type BookingRequest struct {
	OwnerID   string `json:"owner_id" binding:"required,uuid"`
	StartDate string `json:"start_date"`
}

type ReplaceRosterRequest struct {
	ResourceIDs []string `json:"resource_ids" binding:"required,dive,uuid"`
}

type CreditBudgetRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
