package config_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chat-backend/config"
	"chat-backend/config/common"
	"chat-backend/config/logger"
	"chat-backend/entity"
	"chat-backend/middleware"
	"chat-backend/security"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_NAME", "chat-backend-test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	conn, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	conn.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, config.Migrate(db))

	cfg := common.NewViper()
	app := config.NewFiber(cfg)
	log := logrus.New()
	log.SetOutput(io.Discard)
	appLog := logger.NewNopLogger()
	jwt := security.NewJWT(cfg)

	config.App(&config.AppConfig{
		App:        app,
		Validate:   config.NewValidator(),
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   &config.DBConfig{DB: db, AppLogger: appLog},
		JWT:        jwt,
		Middleware: middleware.NewMiddleware(cfg, jwt, log),
	})
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp, _ := doJSON(t, app, fiber.MethodPost, "/auth/register/", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/auth/login/", "", fiber.Map{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func createRoom(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/chatrooms/", "", fiber.Map{
		"name":          name,
		"is_group_chat": true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var room struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &room))
	return room.ID
}

func createMessage(t *testing.T, app *fiber.App, token string, roomID uint, content string) uint {
	t.Helper()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/messages/", token, fiber.Map{
		"room":    roomID,
		"content": content,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var message struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &message))
	return message.ID
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestCreateChatRoom(t *testing.T) {
	app, db := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/chatrooms/", "", fiber.Map{
		"name":          "Room 1",
		"is_group_chat": true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Room 1", body["name"])
	assert.Equal(t, true, body["is_group_chat"])
	assert.Equal(t, []interface{}{}, body["users"])

	assert.Equal(t, int64(1), count(t, db, &entity.ChatRoom{}))

	resp, raw = doJSON(t, app, fiber.MethodGet, "/chatrooms/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var page struct {
		Count   int64                    `json:"count"`
		Results []map[string]interface{} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(raw, &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Room 1", page.Results[0]["name"])
}

func TestCreateChatRoomValidation(t *testing.T) {
	app, db := newTestApp(t)

	cases := []struct {
		name    string
		body    fiber.Map
		field   string
		message string
	}{
		{"empty name", fiber.Map{"name": "", "is_group_chat": true}, "name", "This field may not be blank."},
		{"missing name", fiber.Map{"is_group_chat": true}, "name", "This field is required."},
		{"missing is_group_chat", fiber.Map{"name": "Missing flag"}, "is_group_chat", "This field is required."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := doJSON(t, app, fiber.MethodPost, "/chatrooms/", "", tc.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var fields map[string][]string
			require.NoError(t, json.Unmarshal(raw, &fields))
			assert.Equal(t, []string{tc.message}, fields[tc.field])
		})
	}

	assert.Equal(t, int64(0), count(t, db, &entity.ChatRoom{}))
}

func TestListChatRoomsPagination(t *testing.T) {
	app, _ := newTestApp(t)

	const total = 25
	for i := 1; i <= total; i++ {
		createRoom(t, app, fmt.Sprintf("Room %d", i))
	}

	var got int
	for page := 1; page <= 3; page++ {
		resp, raw := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/chatrooms/?page=%d&page_size=10", page), "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var envelope struct {
			Count    int64                    `json:"count"`
			Next     *string                  `json:"next"`
			Previous *string                  `json:"previous"`
			Results  []map[string]interface{} `json:"results"`
		}
		require.NoError(t, json.Unmarshal(raw, &envelope))
		assert.Equal(t, int64(total), envelope.Count)
		assert.LessOrEqual(t, len(envelope.Results), 10)
		got += len(envelope.Results)

		if page < 3 {
			require.NotNil(t, envelope.Next)
			assert.Contains(t, *envelope.Next, fmt.Sprintf("page=%d", page+1))
		} else {
			assert.Nil(t, envelope.Next)
		}
		if page > 1 {
			require.NotNil(t, envelope.Previous)
		} else {
			assert.Nil(t, envelope.Previous)
		}
	}
	assert.Equal(t, total, got)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/chatrooms/?page=4&page_size=10", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "Invalid page.")
}

func TestChatRoomDefaultPageSize(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 1; i <= 12; i++ {
		createRoom(t, app, fmt.Sprintf("Room %d", i))
	}

	resp, raw := doJSON(t, app, fiber.MethodGet, "/chatrooms/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Count   int64                    `json:"count"`
		Next    *string                  `json:"next"`
		Results []map[string]interface{} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, int64(12), envelope.Count)
	assert.Len(t, envelope.Results, 10)
	assert.NotNil(t, envelope.Next)
}

func TestChatRoomRetrieveNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/chatrooms/99/", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "Not found.")
}

func TestChatRoomUpdate(t *testing.T) {
	app, _ := newTestApp(t)
	roomID := createRoom(t, app, "Before")

	// PATCH with blank name must not touch the record
	resp, _ := doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/chatrooms/%d/", roomID), "", fiber.Map{"name": ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, raw := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/chatrooms/%d/", roomID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"name":"Before"`)

	// PATCH rename
	resp, raw = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/chatrooms/%d/", roomID), "", fiber.Map{"name": "After"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"name":"After"`)

	// PUT requires every writable field
	resp, raw = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/chatrooms/%d/", roomID), "", fiber.Map{"name": "Full"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "is_group_chat")

	resp, raw = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/chatrooms/%d/", roomID), "", fiber.Map{"name": "Full", "is_group_chat": false})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"is_group_chat":false`)

	resp, _ = doJSON(t, app, fiber.MethodPut, "/chatrooms/99/", "", fiber.Map{"name": "X", "is_group_chat": false})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestChatRoomDelete(t *testing.T) {
	app, db := newTestApp(t)
	roomID := createRoom(t, app, "Doomed")

	resp, raw := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/chatrooms/%d/", roomID), "", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, raw)
	assert.Equal(t, int64(0), count(t, db, &entity.ChatRoom{}))

	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/chatrooms/%d/", roomID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMessageCreateInvalidRoom(t *testing.T) {
	app, db := newTestApp(t)
	token := registerAndLogin(t, app, "alice")

	resp, raw := doJSON(t, app, fiber.MethodPost, "/messages/", token, fiber.Map{
		"room":    1,
		"content": "hi",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "room")
	assert.Equal(t, int64(0), count(t, db, &entity.Message{}))
}

func TestMessageCreateBlankContent(t *testing.T) {
	app, db := newTestApp(t)
	token := registerAndLogin(t, app, "alice")
	roomID := createRoom(t, app, "Room 1")

	resp, raw := doJSON(t, app, fiber.MethodPost, "/messages/", token, fiber.Map{
		"room":    roomID,
		"content": "",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, []string{"This field may not be blank."}, fields["content"])
	assert.Equal(t, int64(0), count(t, db, &entity.Message{}))
}

func TestMessageCreateRequiresPrincipal(t *testing.T) {
	app, _ := newTestApp(t)
	roomID := createRoom(t, app, "Room 1")

	resp, raw := doJSON(t, app, fiber.MethodPost, "/messages/", "", fiber.Map{
		"room":    roomID,
		"content": "hi",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "sender")
}

func TestMessageLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "alice")
	roomID := createRoom(t, app, "Room 1")

	messageID := createMessage(t, app, token, roomID, "hello")

	resp, raw := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/messages/%d/", messageID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var message map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &message))
	assert.Equal(t, "hello", message["content"])
	assert.Nil(t, message["edited_timestamp"])
	sender, ok := message["sender"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", sender["username"])

	// edit stamps edited_timestamp, creation timestamp stays
	resp, raw = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/messages/%d/", messageID), "", fiber.Map{"content": "edited"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &message))
	assert.Equal(t, "edited", message["content"])
	assert.NotNil(t, message["edited_timestamp"])

	resp, raw = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/messages/%d/", messageID), "", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, raw)
}

func TestReactionsAndRepliesBareArray(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "alice")
	roomID := createRoom(t, app, "Room 1")
	messageID := createMessage(t, app, token, roomID, "root")

	resp, raw := doJSON(t, app, fiber.MethodPost, "/reactions/", token, fiber.Map{
		"message": messageID,
		"emoji":   "👍",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw = doJSON(t, app, fiber.MethodGet, "/reactions/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var reactions []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &reactions))
	require.Len(t, reactions, 1)
	assert.Equal(t, "👍", reactions[0]["emoji"])
	user, ok := reactions[0]["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])

	resp, _ = doJSON(t, app, fiber.MethodPost, "/replies/", token, fiber.Map{
		"message":  messageID,
		"reply_to": messageID,
		"content":  "a reply",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw = doJSON(t, app, fiber.MethodGet, "/replies/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var replies []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &replies))
	require.Len(t, replies, 1)
	assert.Equal(t, "a reply", replies[0]["content"])
}

func TestReactionEmojiLengthCountsCharacters(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "alice")
	roomID := createRoom(t, app, "Room 1")
	messageID := createMessage(t, app, token, roomID, "root")

	// 20 characters but 80 bytes; create and update must agree on it
	emoji := strings.Repeat("👍", 20)
	resp, raw := doJSON(t, app, fiber.MethodPost, "/reactions/", token, fiber.Map{
		"message": messageID,
		"emoji":   emoji,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var reaction struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &reaction))

	resp, raw = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/reactions/%d/", reaction.ID), "", fiber.Map{"emoji": emoji})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), emoji)

	resp, raw = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/reactions/%d/", reaction.ID), "", fiber.Map{"emoji": strings.Repeat("👍", 51)})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "no more than 50 characters")
}

func TestChatRoomMultibyteNameUpdate(t *testing.T) {
	app, _ := newTestApp(t)
	roomID := createRoom(t, app, "Room 1")

	// 200 characters, 400 bytes; within the 255-character limit
	name := strings.Repeat("ñ", 200)
	resp, raw := doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/chatrooms/%d/", roomID), "", fiber.Map{"name": name})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), name)
}

func TestReplyInvalidReplyTo(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "alice")
	roomID := createRoom(t, app, "Room 1")
	messageID := createMessage(t, app, token, roomID, "root")

	resp, raw := doJSON(t, app, fiber.MethodPost, "/replies/", token, fiber.Map{
		"message":  messageID,
		"reply_to": 999,
		"content":  "dangling",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "reply_to")
}

func TestChatRoomDeleteCascades(t *testing.T) {
	app, db := newTestApp(t)
	token := registerAndLogin(t, app, "alice")
	roomID := createRoom(t, app, "Room 1")
	keptRoomID := createRoom(t, app, "Room 2")

	messageID := createMessage(t, app, token, roomID, "doomed")
	keptMessageID := createMessage(t, app, token, keptRoomID, "kept")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/reactions/", token, fiber.Map{"message": messageID, "emoji": "🔥"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, fiber.MethodPost, "/replies/", token, fiber.Map{"message": messageID, "reply_to": messageID, "content": "thread"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, fiber.MethodPost, "/reactions/", token, fiber.Map{"message": keptMessageID, "emoji": "✨"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/chatrooms/%d/", roomID), "", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Equal(t, int64(1), count(t, db, &entity.ChatRoom{}))
	assert.Equal(t, int64(1), count(t, db, &entity.Message{}))
	assert.Equal(t, int64(1), count(t, db, &entity.Reaction{}))
	assert.Equal(t, int64(0), count(t, db, &entity.Reply{}))
}

func TestMessageDeleteCascadesToReplies(t *testing.T) {
	app, db := newTestApp(t)
	token := registerAndLogin(t, app, "alice")
	roomID := createRoom(t, app, "Room 1")

	rootID := createMessage(t, app, token, roomID, "root")
	targetID := createMessage(t, app, token, roomID, "target")

	// reply hangs off both messages; deleting either one removes it
	resp, _ := doJSON(t, app, fiber.MethodPost, "/replies/", token, fiber.Map{"message": rootID, "reply_to": targetID, "content": "hi"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/messages/%d/", targetID), "", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Equal(t, int64(1), count(t, db, &entity.Message{}))
	assert.Equal(t, int64(0), count(t, db, &entity.Reply{}))
}

func TestRegisterProvisionsProfile(t *testing.T) {
	app, db := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/auth/register/", "", fiber.Map{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var account struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &account))

	var profiles []entity.Profile
	require.NoError(t, db.Where("user_id = ?", account.ID).Find(&profiles).Error)
	require.Len(t, profiles, 1)
	assert.False(t, profiles[0].OnlineStatus)
	assert.Empty(t, profiles[0].Bio)
}

func TestAccountSaveKeepsExistingProfile(t *testing.T) {
	app, db := newTestApp(t)
	token := registerAndLogin(t, app, "carol")

	var profile entity.Profile
	require.NoError(t, db.Take(&profile).Error)
	profile.Bio = "hand-written bio"
	require.NoError(t, db.Save(&profile).Error)

	resp, _ := doJSON(t, app, fiber.MethodPut, "/auth/me/", token, fiber.Map{"email": "carol@new.example.com"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var after entity.Profile
	require.NoError(t, db.Where("user_id = ?", profile.UserID).Take(&after).Error)
	assert.Equal(t, "hand-written bio", after.Bio)
	assert.Equal(t, int64(1), count(t, db, &entity.Profile{}))

	// a save with the profile gone recreates it with defaults
	require.NoError(t, db.Delete(&after).Error)
	resp, _ = doJSON(t, app, fiber.MethodPut, "/auth/me/", token, fiber.Map{"email": "carol@newer.example.com"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var recreated entity.Profile
	require.NoError(t, db.Where("user_id = ?", profile.UserID).Take(&recreated).Error)
	assert.Empty(t, recreated.Bio)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	registerAndLogin(t, app, "dave")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/auth/login/", "", fiber.Map{
		"username": "dave",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app, db := newTestApp(t)
	registerAndLogin(t, app, "erin")

	resp, raw := doJSON(t, app, fiber.MethodPost, "/auth/register/", "", fiber.Map{
		"username": "erin",
		"email":    "erin2@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "username")
	assert.Equal(t, int64(1), count(t, db, &entity.User{}))
}
