package model

type ChatResponse struct {
	Success bool       `json:"success"`
	Data    *ReplyData `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
	Path    string     `json:"path,omitempty"`
}

type ReplyData struct {
	Response string `json:"response"`
}

type InfoResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
}

func Reply(text string) ChatResponse {
	return ChatResponse{Success: true, Data: &ReplyData{Response: text}}
}

func Failure(message string) ChatResponse {
	return ChatResponse{Success: false, Error: message}
}
