package model

// Role is a conversation participant.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one prior chat message. A bounded window of recent
// turns rides along with each request; nothing is stored server-side.
type ConversationTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Lang selects the reply language for a chat turn.
type Lang string

const (
	LangEnglish Lang = "en"
	LangHindi   Lang = "hi"
)

// Normalize coerces unknown language codes to English.
func (l Lang) Normalize() Lang {
	if l == LangHindi {
		return LangHindi
	}
	return LangEnglish
}
