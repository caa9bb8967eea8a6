package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"polychat/config"
	"polychat/internal/chat"
	"polychat/internal/user"
	"polychat/pkg/logger"
)

type Server struct {
	cfg    *config.Config
	logger *logger.Logger
	users  user.UserUsecase
	chats  chat.ChatUsecase

	upgrader websocket.Upgrader

	hubMu    sync.Mutex
	convHubs map[uuid.UUID]map[*wsClient]struct{}

	inboxMu   sync.Mutex
	inboxHubs map[uuid.UUID]map[*wsClient]struct{}
}

func NewServer(cfg *config.Config, log *logger.Logger, users user.UserUsecase, chats chat.ChatUsecase) *Server {
	return &Server{
		cfg:    cfg,
		logger: log,
		users:  users,
		chats:  chats,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		convHubs:  make(map[uuid.UUID]map[*wsClient]struct{}),
		inboxHubs: make(map[uuid.UUID]map[*wsClient]struct{}),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.RequireIdentity)

		// Users
		r.Post("/api/users/store", s.handleStoreUser)
		r.Get("/api/users/me", s.handleCurrentUser)
		r.Get("/api/users/search", s.handleSearchUsers)
		r.Get("/api/users/username/{username}", s.handleUserByUsername)
		r.Get("/api/users/{id}", s.handleUserByID)
		r.Get("/api/users/{id}/presence", s.handlePresence)
		r.Patch("/api/users/me/about", s.handleUpdateAbout)
		r.Patch("/api/users/me/preferences", s.handleUpdatePreferences)
		r.Delete("/api/users/me", s.handleDeleteUser)

		// Presence signals
		r.Post("/api/presence", s.handlePresenceSignal)

		// Conversations & messages
		r.Get("/api/conversations", s.handleListConversations)
		r.Post("/api/conversations", s.handleGetOrCreateConversation)
		r.Get("/api/conversations/with/{username}", s.handleGetConversation)
		r.Get("/api/conversations/with/{username}/language", s.handleGetLanguage)
		r.Put("/api/conversations/with/{username}/language", s.handleSetLanguage)
		r.Post("/api/conversations/{id}/messages", s.handleSendMessage)
		r.Post("/api/conversations/{id}/seen", s.handleMarkSeen)
		r.Get("/api/conversations/{id}/messages/last", s.handleLastMessage)
		r.Get("/api/messages/unread-count", s.handleUnreadCount)

		// Change feeds
		r.Get("/ws", s.handleWebsocket)
	})

	return r
}

func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
