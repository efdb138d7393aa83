package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Wannasingh/wannasingh-blog/config"
	"github.com/Wannasingh/wannasingh-blog/internal/api/handler"
	"github.com/Wannasingh/wannasingh-blog/internal/auth"
	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
	"github.com/Wannasingh/wannasingh-blog/internal/service"
	"github.com/Wannasingh/wannasingh-blog/pkg/database"
)

type testServer struct {
	router   http.Handler
	db       *gorm.DB
	authSvc  service.AuthService
	notifier *service.Notifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.Server.Mode = "test"

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	jwtMgr := auth.NewManager("test-secret", time.Hour)

	notifier := service.NewNotifier(notifRepo, 64)
	stop := notifier.Start(1)
	t.Cleanup(func() { _ = stop(context.Background()) })

	authSvc := service.NewAuthService(userRepo, jwtMgr)
	h := handler.New(
		authSvc,
		service.NewPostService(postRepo),
		service.NewCategoryService(repository.NewCategoryRepository(db)),
		service.NewCommentService(repository.NewCommentRepository(db), postRepo, notifier),
		service.NewLikeService(repository.NewLikeRepository(db), postRepo, notifier),
		service.NewProfileService(userRepo),
		service.NewMessageService(repository.NewMessageRepository(db), userRepo, nil),
		service.NewNotificationService(notifRepo, postRepo, nil),
		service.NewMemoryTypingStore(),
	)

	return &testServer{
		router:   NewRouter(cfg, h, jwtMgr, userRepo),
		db:       db,
		authSvc:  authSvc,
		notifier: notifier,
	}
}

// do performs a request and decodes the response envelope.
func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env.Data
}

// signup registers a user and returns (id, token); role is applied directly.
func (ts *testServer) signup(t *testing.T, username, role string) (string, string) {
	t.Helper()
	code, data := ts.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    username + "@example.com",
		"password": "password-123",
		"username": username,
		"name":     username,
	})
	require.Equal(t, http.StatusCreated, code)
	var u struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &u))

	if role != model.RoleUser {
		require.NoError(t, ts.db.Model(&model.User{}).Where("id = ?", u.ID).Update("role", role).Error)
	}

	code, data = ts.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    username + "@example.com",
		"password": "password-123",
	})
	require.Equal(t, http.StatusOK, code)
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(data, &tok))
	return u.ID, tok.AccessToken
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	code, _ := ts.do(t, http.MethodGet, "/messages/conversations", "", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = ts.do(t, http.MethodGet, "/messages/conversations", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestMessagingFlow(t *testing.T) {
	ts := newTestServer(t)
	aliceID, aliceTok := ts.signup(t, "alice", model.RoleUser)
	bobID, bobTok := ts.signup(t, "bob", model.RoleUser)

	// validation: empty body after trimming
	code, _ := ts.do(t, http.MethodPost, "/messages", aliceTok, map[string]string{
		"receiverId": bobID, "message": "   ",
	})
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = ts.do(t, http.MethodPost, "/messages", aliceTok, map[string]string{
		"receiverId": bobID, "message": "hello",
	})
	require.Equal(t, http.StatusCreated, code)

	// bob's badge shows one unread before the fetch
	code, data := ts.do(t, http.MethodGet, "/messages/unread/count", bobTok, nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"count": 1}`, string(data))

	// bob's conversation list shows alice with one unread
	code, data = ts.do(t, http.MethodGet, "/messages/conversations", bobTok, nil)
	require.Equal(t, http.StatusOK, code)
	var convs []struct {
		User        struct{ ID string `json:"id"` } `json:"user"`
		LastMessage string                          `json:"lastMessage"`
		UnreadCount int                             `json:"unreadCount"`
	}
	require.NoError(t, json.Unmarshal(data, &convs))
	require.Len(t, convs, 1)
	require.Equal(t, aliceID, convs[0].User.ID)
	require.Equal(t, "hello", convs[0].LastMessage)
	require.Equal(t, 1, convs[0].UnreadCount)

	// fetching the thread marks it read
	code, data = ts.do(t, http.MethodGet, "/messages/"+aliceID, bobTok, nil)
	require.Equal(t, http.StatusOK, code)
	var msgs []model.Message
	require.NoError(t, json.Unmarshal(data, &msgs))
	require.Len(t, msgs, 1)
	require.True(t, msgs[0].IsRead)

	code, data = ts.do(t, http.MethodGet, "/messages/unread/count", bobTok, nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"count": 0}`, string(data))
}

func TestTypingEndpoints(t *testing.T) {
	ts := newTestServer(t)
	aliceID, aliceTok := ts.signup(t, "alice", model.RoleUser)
	bobID, bobTok := ts.signup(t, "bob", model.RoleUser)

	code, _ := ts.do(t, http.MethodPost, "/messages/typing", aliceTok, map[string]string{
		"receiverId": bobID,
	})
	require.Equal(t, http.StatusOK, code)

	// bob sees alice typing; alice does not see bob typing
	code, data := ts.do(t, http.MethodGet, "/messages/typing/"+aliceID, bobTok, nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"isTyping": true}`, string(data))

	code, data = ts.do(t, http.MethodGet, "/messages/typing/"+bobID, aliceTok, nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"isTyping": false}`, string(data))
}

func TestNotificationEndpoints(t *testing.T) {
	ts := newTestServer(t)
	_, adminTok := ts.signup(t, "admin", model.RoleAdmin)
	_, readerTok := ts.signup(t, "reader", model.RoleUser)

	// non-admin is rejected
	code, _ := ts.do(t, http.MethodGet, "/notifications", readerTok, nil)
	require.Equal(t, http.StatusForbidden, code)

	// admin with no posts gets an empty feed and a zero badge, never an error
	code, data := ts.do(t, http.MethodGet, "/notifications", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `[]`, string(data))
	code, data = ts.do(t, http.MethodGet, "/notifications/unread-count", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"count": 0}`, string(data))

	// seed a category + post, comment on it as reader
	code, data = ts.do(t, http.MethodPost, "/categories", adminTok, map[string]string{"name": "general"})
	require.Equal(t, http.StatusCreated, code)
	var cat struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(data, &cat))

	code, data = ts.do(t, http.MethodPost, "/posts", adminTok, map[string]interface{}{
		"title": "First Post", "category_id": cat.ID, "content": "hello world", "status_id": model.StatusPublished,
	})
	require.Equal(t, http.StatusCreated, code)
	var post struct {
		ID string `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(data, &post))

	code, _ = ts.do(t, http.MethodPost, "/posts/"+post.ID+"/comments", readerTok, map[string]string{
		"comment": "nice post",
	})
	require.Equal(t, http.StatusCreated, code)

	// the async notifier lands the row; poll the feed until it shows
	var rows []repository.NotificationRow
	require.Eventually(t, func() bool {
		code, data = ts.do(t, http.MethodGet, "/notifications", adminTok, nil)
		if code != http.StatusOK {
			return false
		}
		rows = nil
		if err := json.Unmarshal(data, &rows); err != nil {
			return false
		}
		return len(rows) == 1
	}, 2*time.Second, 20*time.Millisecond)
	require.Equal(t, "comment", rows[0].Type)
	require.Equal(t, "reader", rows[0].UserName)
	require.Equal(t, "First Post", rows[0].ArticleTitle)
	require.False(t, rows[0].IsRead)

	code, _ = ts.do(t, http.MethodPut, fmt.Sprintf("/notifications/%d/read", rows[0].ID), adminTok, nil)
	require.Equal(t, http.StatusOK, code)

	code, data = ts.do(t, http.MethodGet, "/notifications/unread-count", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"count": 0}`, string(data))

	// read-all on an already-clean feed is still a success
	code, _ = ts.do(t, http.MethodPut, "/notifications/read-all", adminTok, nil)
	require.Equal(t, http.StatusOK, code)
}

func TestAdminOnlyPostRoutes(t *testing.T) {
	ts := newTestServer(t)
	_, readerTok := ts.signup(t, "reader", model.RoleUser)

	code, _ := ts.do(t, http.MethodPost, "/posts", readerTok, map[string]interface{}{
		"title": "Nope", "category_id": 1, "content": "x", "status_id": model.StatusDraft,
	})
	require.Equal(t, http.StatusForbidden, code)

	code, _ = ts.do(t, http.MethodGet, "/posts/admin", readerTok, nil)
	require.Equal(t, http.StatusForbidden, code)
}
