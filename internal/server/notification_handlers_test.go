package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationResponse struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"user_id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	IsRead        bool   `json:"is_read"`
	RelatedPostID *uint  `json:"related_post_id"`
	RelatedUserID *uint  `json:"related_user_id"`
}

func listNotifications(t *testing.T, app *fiber.App, auth string) []notificationResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodGet, "/notifications/", auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []notificationResponse
	decodeBody(t, resp, &out)
	return out
}

func TestNotificationsFromActivity(t *testing.T) {
	srv, app := newTestServer(t)
	alice := createUser(t, srv, "alice", "user")
	bob := createUser(t, srv, "bob", "user")
	aliceAuth := authHeader(t, srv, alice)
	bobAuth := authHeader(t, srv, bob)

	postID := createPostViaAPI(t, app, aliceAuth, "Notify me")

	resp := doJSON(t, app, fiber.MethodPost, "/users/alice/follow", bobAuth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/posts/%d/like", postID), bobAuth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), bobAuth, map[string]any{
		"content": "nice",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	notifications := listNotifications(t, app, aliceAuth)
	require.Len(t, notifications, 3)

	byType := map[string]notificationResponse{}
	for _, n := range notifications {
		byType[n.Type] = n
	}
	require.Contains(t, byType, "follow")
	require.Contains(t, byType, "like")
	require.Contains(t, byType, "comment")

	assert.Equal(t, "New follower", byType["follow"].Title)
	assert.Equal(t, "bob started following you", byType["follow"].Message)
	require.NotNil(t, byType["follow"].RelatedUserID)
	assert.Equal(t, bob.ID, *byType["follow"].RelatedUserID)

	assert.Equal(t, `bob liked your post "Notify me"`, byType["like"].Message)
	require.NotNil(t, byType["like"].RelatedPostID)
	assert.Equal(t, postID, *byType["like"].RelatedPostID)

	assert.Equal(t, `bob commented on your post "Notify me"`, byType["comment"].Message)

	// Bob acted, bob gets nothing.
	assert.Empty(t, listNotifications(t, app, bobAuth))
}

func TestSelfActivityDoesNotNotify(t *testing.T) {
	srv, app := newTestServer(t)
	alice := createUser(t, srv, "alice", "user")
	auth := authHeader(t, srv, alice)

	postID := createPostViaAPI(t, app, auth, "Solo")
	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/posts/%d/like", postID), auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), auth, map[string]any{
		"content": "talking to myself",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Empty(t, listNotifications(t, app, auth))
}

func TestMarkNotificationRead(t *testing.T) {
	srv, app := newTestServer(t)
	alice := createUser(t, srv, "alice", "user")
	bob := createUser(t, srv, "bob", "user")
	aliceAuth := authHeader(t, srv, alice)

	resp := doJSON(t, app, fiber.MethodPost, "/users/alice/follow", authHeader(t, srv, bob), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	notifications := listNotifications(t, app, aliceAuth)
	require.Len(t, notifications, 1)
	require.False(t, notifications[0].IsRead)

	readPath := fmt.Sprintf("/notifications/%d/read", notifications[0].ID)
	resp = doJSON(t, app, fiber.MethodPut, readPath, aliceAuth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var marked notificationResponse
	decodeBody(t, resp, &marked)
	assert.True(t, marked.IsRead)

	// Idempotent for the owner, invisible to everyone else.
	resp = doJSON(t, app, fiber.MethodPut, readPath, aliceAuth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, fiber.MethodPut, readPath, authHeader(t, srv, bob), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
