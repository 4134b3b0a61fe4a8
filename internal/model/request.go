package model

import (
	"bytes"
	"encoding/json"
)

type ChatRequest struct {
	UserMessage   string  `json:"user_message"`
	CompanionName string  `json:"companion_name"`
	History       History `json:"history,omitempty"`
}

// HistoryEntry is one caller-supplied prior turn. Sender "ai" marks the companion.
type HistoryEntry struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// History decodes leniently: anything other than a JSON array is an empty
// history, and malformed entries become zero-value entries so that they still
// count toward truncation.
type History []HistoryEntry

// DecodeChatRequest parses a raw request body. An empty body is an empty
// request; only syntactically invalid JSON is an error.
func DecodeChatRequest(body []byte) (ChatRequest, error) {
	var req ChatRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}
	if !json.Valid(body) {
		return req, ErrInvalidPayload
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, ErrInvalidPayload
	}
	return req, nil
}

// Validate rejects requests without a user message or companion name.
func (r ChatRequest) Validate() error {
	if r.UserMessage == "" || r.CompanionName == "" {
		return ErrMissingFields
	}
	return nil
}

// UnmarshalJSON accepts any JSON value. Fields of the wrong type and non-object
// bodies decode as absent, which Validate then reports.
func (r *ChatRequest) UnmarshalJSON(data []byte) error {
	*r = ChatRequest{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// array, string or number body
		return nil
	}

	r.UserMessage = stringField(fields, "user_message")
	r.CompanionName = stringField(fields, "companion_name")
	if raw, ok := fields["history"]; ok {
		return r.History.UnmarshalJSON(raw)
	}
	return nil
}

func (h *History) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// not a sequence: treat as no history
		*h = nil
		return nil
	}

	entries := make(History, len(raw))
	for i, item := range raw {
		if err := entries[i].UnmarshalJSON(item); err != nil {
			return err
		}
	}
	*h = entries
	return nil
}

func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	*e = HistoryEntry{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	e.Sender = stringField(fields, "sender")
	e.Content = stringField(fields, "content")
	return nil
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// IsAI reports whether the entry was produced by the companion.
func (e HistoryEntry) IsAI() bool {
	return e.Sender == SenderAI
}
