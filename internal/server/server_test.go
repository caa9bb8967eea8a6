package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polychat/config"
	"polychat/internal/chat"
	chatMocks "polychat/internal/chat/mocks"
	"polychat/internal/chat/model"
	"polychat/internal/user"
	userMocks "polychat/internal/user/mocks"
	"polychat/pkg/errors"
	"polychat/pkg/logger"
)

const testSecret = "test-secret"

type serverFixture struct {
	srv   *Server
	users *userMocks.MockUserUsecase
	chats *chatMocks.MockChatUsecase
}

func newServerFixture(t *testing.T) serverFixture {
	ctrl := gomock.NewController(t)
	users := userMocks.NewMockUserUsecase(ctrl)
	chats := chatMocks.NewMockChatUsecase(ctrl)

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.JWT.Secret = testSecret
	log, _ := logger.NewLogger(cfg)

	return serverFixture{
		srv:   NewServer(cfg, log, users, chats),
		users: users,
		chats: chats,
	}
}

func signedToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      subject,
		"name":     "Alice Doe",
		"nickname": "alice",
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func Test_RequireIdentity(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		f := newServerFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newServerFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with the wrong secret", func(t *testing.T) {
		f := newServerFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", "tok|alice"))
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token resolves the current user", func(t *testing.T) {
		f := newServerFixture(t)
		aliceID := uuid.New()

		f.users.EXPECT().GetCurrentUser(gomock.Any(), "tok|alice").
			Return(&user.UserDTO{ID: aliceID, Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "tok|alice"))
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var dto user.UserDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, "alice", dto.Username)
	})

	t.Run("query token accepted for header-less clients", func(t *testing.T) {
		f := newServerFixture(t)
		aliceID := uuid.New()

		f.users.EXPECT().GetCurrentUser(gomock.Any(), "tok|alice").
			Return(&user.UserDTO{ID: aliceID, Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me?token="+signedToken(t, testSecret, "tok|alice"), nil)
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func Test_StatusFor(t *testing.T) {
	cases := []struct {
		code errors.Code
		want int
	}{
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeUnauthenticated, http.StatusUnauthorized},
		{errors.CodePermissionDenied, http.StatusForbidden},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeFailedPrecondition, http.StatusConflict},
		{errors.CodeDeadlineExceeded, http.StatusGatewayTimeout},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.code), "code %s", tc.code)
	}
}

func Test_ErrorResponses(t *testing.T) {
	t.Run("unknown user maps to 404 with the error body", func(t *testing.T) {
		f := newServerFixture(t)

		f.users.EXPECT().GetByUsername(gomock.Any(), "ghost").
			Return(nil, errors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/users/username/ghost", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "tok|alice"))
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, errors.CodeNotFound, body.Code)
	})

	t.Run("malformed conversation id maps to 400", func(t *testing.T) {
		f := newServerFixture(t)
		aliceID := uuid.New()

		f.users.EXPECT().GetCurrentUser(gomock.Any(), "tok|alice").
			Return(&user.UserDTO{ID: aliceID, Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/conversations/not-a-uuid/messages",
			strings.NewReader(`{"text":"hi"}`))
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "tok|alice"))
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-participant send maps to 403", func(t *testing.T) {
		f := newServerFixture(t)
		aliceID := uuid.New()
		convID := uuid.New()

		f.users.EXPECT().GetCurrentUser(gomock.Any(), "tok|alice").
			Return(&user.UserDTO{ID: aliceID, Username: "alice"}, nil)
		f.chats.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			Return(nil, errors.ErrNotParticipant)

		req := httptest.NewRequest(http.MethodPost, "/api/conversations/"+convID.String()+"/messages",
			strings.NewReader(`{"text":"hi"}`))
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "tok|alice"))
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func Test_WebsocketAuthorization(t *testing.T) {
	t.Run("non-participant is refused before the upgrade", func(t *testing.T) {
		f := newServerFixture(t)
		aliceID := uuid.New()
		convID := uuid.New()

		f.users.EXPECT().GetCurrentUser(gomock.Any(), "tok|alice").
			Return(&user.UserDTO{ID: aliceID, Username: "alice"}, nil)
		f.chats.EXPECT().ParticipantLanguages(gomock.Any(), convID).
			Return(map[uuid.UUID]model.Language{
				uuid.New(): model.LanguageEnglish,
				uuid.New(): model.LanguageFrench,
			}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/ws?conversation_id="+convID.String()+"&token="+signedToken(t, testSecret, "tok|alice"), nil)
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown conversation maps to 404", func(t *testing.T) {
		f := newServerFixture(t)
		aliceID := uuid.New()
		convID := uuid.New()

		f.users.EXPECT().GetCurrentUser(gomock.Any(), "tok|alice").
			Return(&user.UserDTO{ID: aliceID, Username: "alice"}, nil)
		f.chats.EXPECT().ParticipantLanguages(gomock.Any(), convID).
			Return(nil, errors.ErrConversationNotFound)

		req := httptest.NewRequest(http.MethodGet,
			"/ws?conversation_id="+convID.String()+"&token="+signedToken(t, testSecret, "tok|alice"), nil)
		rec := httptest.NewRecorder()
		f.srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_MessageBroadcastRendering(t *testing.T) {
	f := newServerFixture(t)
	aliceID := uuid.New()
	bobID := uuid.New()
	convID := uuid.New()

	aliceClient := &wsClient{userID: aliceID, convID: convID, send: make(chan []byte, 1)}
	bobClient := &wsClient{userID: bobID, convID: convID, send: make(chan []byte, 1)}
	f.srv.register(aliceClient)
	f.srv.register(bobClient)

	msg := chat.MessageDTO{
		ID:             uuid.New(),
		ConversationID: convID,
		AuthorID:       aliceID,
		EnglishText:    "Hello",
		FrenchText:     "Bonjour",
	}
	f.srv.broadcastMessage(convID, msg, map[uuid.UUID]model.Language{
		aliceID: model.LanguageEnglish,
		bobID:   model.LanguageFrench,
	})

	var ev struct {
		Type    string          `json:"type"`
		Payload chat.MessageDTO `json:"payload"`
	}

	// Each subscriber receives the slot matching their own language.
	require.NoError(t, json.Unmarshal(<-aliceClient.send, &ev))
	assert.Equal(t, "message", ev.Type)
	assert.Equal(t, "Hello", ev.Payload.Text)

	require.NoError(t, json.Unmarshal(<-bobClient.send, &ev))
	assert.Equal(t, "Bonjour", ev.Payload.Text)
}

func Test_HasConnections(t *testing.T) {
	f := newServerFixture(t)
	aliceID := uuid.New()
	convID := uuid.New()

	tab1 := &wsClient{userID: aliceID, convID: convID, send: make(chan []byte, 1)}
	tab2 := &wsClient{userID: aliceID, convID: uuid.Nil, send: make(chan []byte, 1)}
	f.srv.register(tab1)
	f.srv.register(tab2)

	require.True(t, f.srv.hasConnections(aliceID))

	// Closing one tab must not read as fully disconnected.
	f.srv.unregister(tab1)
	assert.True(t, f.srv.hasConnections(aliceID))

	f.srv.unregister(tab2)
	assert.False(t, f.srv.hasConnections(aliceID))
}
