package model

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// SenderAI is the history sender value that maps to RoleAssistant.
	SenderAI = "ai"
)

// ChatMessage is the normalized, role-tagged message sent to the completion service.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
