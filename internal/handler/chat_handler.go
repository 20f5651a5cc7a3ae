package handler

import (
	"net/http"

	"github.com/tempdev/site/internal/service"
)

// ChatHandler serves the scripted vehicle assistant.
type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	OK    bool   `json:"ok"`
	Reply string `json:"reply"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	reply, err := h.chatService.Reply(req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{OK: true, Reply: reply})
}
