package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"polychat/internal/user"
	"polychat/pkg/errors"
)

func (s *Server) handleStoreUser(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r)
	if !ok {
		writeError(w, errors.ErrMissingIdentity)
		return
	}

	// Clients may override the avatar mirrored from the provider.
	var body struct {
		ProfileImageURL string `json:"profile_image_url"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.ProfileImageURL != "" {
		ident.ProfileImageURL = body.ProfileImageURL
	}

	dto, err := s.users.UpsertFromIdentity(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	dto, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.InvalidArg("invalid user id"))
		return
	}
	dto, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleUserByUsername(w http.ResponseWriter, r *http.Request) {
	dto, err := s.users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	results, err := s.users.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleUpdateAbout(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		About string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	if err := s.users.UpdateAbout(r.Context(), me.ID, body.About); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		NotificationsEnabled *bool `json:"notifications_enabled"`
		DarkMode             *bool `json:"dark_mode"`
		ShowOnlineStatus     *bool `json:"show_online_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	dto, err := s.users.UpdatePreferences(r.Context(), me.ID, user.PreferencesUpdate{
		NotificationsEnabled: body.NotificationsEnabled,
		DarkMode:             body.DarkMode,
		ShowOnlineStatus:     body.ShowOnlineStatus,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.users.Delete(r.Context(), me.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handlePresence(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.InvalidArg("invalid user id"))
		return
	}
	dto, err := s.users.Status(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// handlePresenceSignal collapses every client offline trigger (unload,
// hidden tab, network loss) into one transition, plus online and heartbeat.
func (s *Server) handlePresenceSignal(w http.ResponseWriter, r *http.Request) {
	me, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	switch body.State {
	case "online":
		err = s.users.MarkOnline(r.Context(), me.ID)
	case "offline":
		err = s.users.MarkOffline(r.Context(), me.ID)
	case "heartbeat":
		err = s.users.Heartbeat(r.Context(), me.ID)
	default:
		writeError(w, errors.InvalidArg("state must be online, offline or heartbeat"))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
