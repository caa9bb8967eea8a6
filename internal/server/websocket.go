package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"polychat/internal/chat"
	"polychat/internal/chat/model"
)

// wsEvent is the envelope pushed on both change feeds.
type wsEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type wsClient struct {
	userID uuid.UUID
	// convID is uuid.Nil for inbox subscribers.
	convID uuid.UUID
	send   chan []byte
}

// handleWebsocket subscribes the caller to a change feed: with
// ?conversation_id= it streams that conversation's deltas (participants
// only), without it it streams the caller's inbox updates.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	convID := uuid.Nil
	if raw := r.URL.Query().Get("conversation_id"); raw != "" {
		convID, err = uuid.Parse(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		langs, err := s.chats.ParticipantLanguages(r.Context(), convID)
		if err != nil {
			writeError(w, err)
			return
		}
		if _, ok := langs[me.ID]; !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	c := &wsClient{
		userID: me.ID,
		convID: convID,
		send:   make(chan []byte, 16),
	}
	s.register(c)
	_ = s.users.MarkOnline(r.Context(), me.ID)

	go func() {
		defer conn.Close()
		for msg := range c.send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()

	// Read loop only to detect the close.
	conn.SetReadLimit(64 * 1024)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.unregister(c)
	// A second tab may still hold a socket; only the last close transitions.
	if !s.hasConnections(me.ID) {
		_ = s.users.MarkOffline(r.Context(), me.ID)
	}
	conn.Close()
}

func (s *Server) register(c *wsClient) {
	if c.convID != uuid.Nil {
		s.hubMu.Lock()
		defer s.hubMu.Unlock()
		hub := s.convHubs[c.convID]
		if hub == nil {
			hub = make(map[*wsClient]struct{})
			s.convHubs[c.convID] = hub
		}
		hub[c] = struct{}{}
		return
	}

	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	hub := s.inboxHubs[c.userID]
	if hub == nil {
		hub = make(map[*wsClient]struct{})
		s.inboxHubs[c.userID] = hub
	}
	hub[c] = struct{}{}
}

// unregister closes the send channel only when the client is still in the
// hub; slow clients are already closed and removed by the broadcast path.
func (s *Server) unregister(c *wsClient) {
	if c.convID != uuid.Nil {
		s.hubMu.Lock()
		defer s.hubMu.Unlock()
		if hub, ok := s.convHubs[c.convID]; ok {
			if _, in := hub[c]; in {
				delete(hub, c)
				close(c.send)
			}
			if len(hub) == 0 {
				delete(s.convHubs, c.convID)
			}
		}
		return
	}

	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	if hub, ok := s.inboxHubs[c.userID]; ok {
		if _, in := hub[c]; in {
			delete(hub, c)
			close(c.send)
		}
		if len(hub) == 0 {
			delete(s.inboxHubs, c.userID)
		}
	}
}

// hasConnections reports whether the user still holds any live socket in
// either hub.
func (s *Server) hasConnections(userID uuid.UUID) bool {
	s.hubMu.Lock()
	for _, hub := range s.convHubs {
		for c := range hub {
			if c.userID == userID {
				s.hubMu.Unlock()
				return true
			}
		}
	}
	s.hubMu.Unlock()

	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	for _, hub := range s.inboxHubs {
		for c := range hub {
			if c.userID == userID {
				return true
			}
		}
	}
	return false
}

func (s *Server) broadcastConversation(convID uuid.UUID, ev wsEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	s.hubMu.Lock()
	defer s.hubMu.Unlock()
	for c := range s.convHubs[convID] {
		select {
		case c.send <- payload:
		default:
			// Slow client: drop it rather than stall the fanout.
			close(c.send)
			delete(s.convHubs[convID], c)
		}
	}
}

func (s *Server) broadcastInbox(userID uuid.UUID, ev wsEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	for c := range s.inboxHubs[userID] {
		select {
		case c.send <- payload:
		default:
			close(c.send)
			delete(s.inboxHubs[userID], c)
		}
	}
}

// broadcastMessage fans a message delta to the conversation's subscribers,
// re-rendering the text slot for each subscriber's language so a French
// reader never receives the author's English rendering.
func (s *Server) broadcastMessage(convID uuid.UUID, msg chat.MessageDTO, langs map[uuid.UUID]model.Language) {
	s.hubMu.Lock()
	defer s.hubMu.Unlock()
	for c := range s.convHubs[convID] {
		payload, err := json.Marshal(wsEvent{Type: "message", Payload: renderFor(msg, langs[c.userID])})
		if err != nil {
			return
		}
		select {
		case c.send <- payload:
		default:
			close(c.send)
			delete(s.convHubs[convID], c)
		}
	}
}

// renderFor selects the text slot matching the subscriber's language.
func renderFor(msg chat.MessageDTO, lang model.Language) chat.MessageDTO {
	if lang == model.LanguageFrench {
		msg.Text = msg.FrenchText
	} else {
		msg.Text = msg.EnglishText
	}
	return msg
}

// notifyInbox fans an inbox-changed hint out to both participants; clients
// re-pull their conversation list and unread count on receipt.
func (s *Server) notifyInbox(r *http.Request, convID uuid.UUID) {
	langs, err := s.chats.ParticipantLanguages(r.Context(), convID)
	if err != nil {
		return
	}
	for id := range langs {
		s.broadcastInbox(id, wsEvent{Type: "inbox", Payload: map[string]any{
			"conversation_id": convID,
		}})
	}
}
