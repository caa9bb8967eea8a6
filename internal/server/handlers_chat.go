package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"polychat/internal/chat"
	"polychat/internal/chat/model"
	"polychat/pkg/errors"
)

func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	entries, err := s.chats.ListConversations(r.Context(), me.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetOrCreateConversation(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		OtherUsername string `json:"other_username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.OtherUsername == "" {
		writeError(w, errors.InvalidArg("other_username is required"))
		return
	}

	view, err := s.chats.GetOrCreateConversation(r.Context(), me.ID, body.OtherUsername)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := s.chats.GetConversation(r.Context(), me.ID, chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	lang, err := s.chats.GetParticipantLanguage(r.Context(), me.ID, chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"language": lang})
}

func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Language model.Language `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	if err := s.chats.SetParticipantLanguage(r.Context(), me.ID, chi.URLParam(r, "username"), body.Language); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	convID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.InvalidArg("invalid conversation id"))
		return
	}

	var body struct {
		Text       string         `json:"text"`
		SourceLang model.Language `json:"source_lang"`
		ImageURL   string         `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.InvalidArg("invalid request body"))
		return
	}
	if body.SourceLang == "" {
		body.SourceLang = model.LanguageEnglish
	}

	msg, err := s.chats.SendMessage(r.Context(), chat.SendMessageCommand{
		AuthorID:       me.ID,
		ConversationID: convID,
		Text:           body.Text,
		SourceLang:     body.SourceLang,
		ImageURL:       body.ImageURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if langs, err := s.chats.ParticipantLanguages(r.Context(), convID); err == nil {
		s.broadcastMessage(convID, *msg, langs)
	}
	s.notifyInbox(r, convID)

	writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleMarkSeen(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	convID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.InvalidArg("invalid conversation id"))
		return
	}

	updated, err := s.chats.MarkSeen(r.Context(), convID, me.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	if updated > 0 {
		s.broadcastConversation(convID, wsEvent{Type: "seen", Payload: map[string]any{
			"conversation_id": convID,
			"viewer_id":       me.ID,
		}})
		s.notifyInbox(r, convID)
	}

	writeJSON(w, http.StatusOK, map[string]any{"updated": updated})
}

func (s *Server) handleLastMessage(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	convID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.InvalidArg("invalid conversation id"))
		return
	}

	msg, err := s.chats.LastMessage(r.Context(), convID, me.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	count, err := s.chats.UnreadCount(r.Context(), me.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unread": count})
}
