package http

import "axle-assist/internal/model"

// aiRequest is the POST /api/ai body. History is optional and client-held;
// lang defaults to English.
type aiRequest struct {
	Text    string                   `json:"text"`
	History []model.ConversationTurn `json:"history"`
	Lang    model.Lang               `json:"lang"`
}

// errorResponse is the uniform error body for the chat endpoints.
type errorResponse struct {
	Error string `json:"error"`
}
