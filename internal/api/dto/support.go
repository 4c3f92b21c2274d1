package dto

import "time"

type StartConversationResponse struct {
	ID        string    `json:"id"`
	Greeting  string    `json:"greeting"`
	CreatedAt time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	Message string `json:"message" binding:"required" validate:"required,max=4000"`
}

func (r *SendMessageRequest) Validate() error {
	return validate(r)
}

type SendMessageResponse struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
}
