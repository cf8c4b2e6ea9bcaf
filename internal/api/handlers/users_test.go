package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/dreed/habit-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_ListStripsCredentials(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	testutil.NewUserBuilder().Build(t, ts.DB.DB)

	resp := testutil.DoRequest(t, ts, http.MethodGet, "/users", token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	require.Len(t, raw, 2)
	for _, entry := range raw {
		assert.NotContains(t, entry, "password")
		assert.NotContains(t, entry, "password_hash")
	}
}

func TestUserHandler_GetOwnershipCheck(t *testing.T) {
	ts := testutil.NewTestServer(t)

	alice, aliceToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	bob, _ := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	// Own profile resolves
	resp := testutil.DoRequest(t, ts, http.MethodGet, fmt.Sprintf("/users/%d", alice.ID), aliceToken, nil)
	var user testutil.UserPayload
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertJSONResponse(t, resp, &user)
	resp.Body.Close()
	assert.Equal(t, alice.ID, user.ID)

	// Someone else's profile is an explicit 403; the row provably exists
	resp = testutil.DoRequest(t, ts, http.MethodGet, fmt.Sprintf("/users/%d", bob.ID), aliceToken, nil)
	testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "access denied")
	resp.Body.Close()

	// An absent id is a 404
	resp = testutil.DoRequest(t, ts, http.MethodGet, "/users/999999", aliceToken, nil)
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "user not found")
	resp.Body.Close()
}

func TestUserHandler_PartialUpdate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	alice, token := testutil.NewUserBuilder().
		WithName("Alice").
		BuildAndAuthenticate(t, ts)

	path := fmt.Sprintf("/users/%d", alice.ID)

	resp := testutil.DoRequest(t, ts, http.MethodPut, path, token, map[string]any{
		"level": 3,
	})
	var updated testutil.UserPayload
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertJSONResponse(t, resp, &updated)
	resp.Body.Close()

	assert.Equal(t, 3, updated.Level)
	assert.Equal(t, "Alice", updated.Name, "omitted fields must keep their values")
	assert.Equal(t, alice.Email, updated.Email)

	// Invalid email on update is rejected
	resp = testutil.DoRequest(t, ts, http.MethodPut, path, token, map[string]string{
		"email": "nope",
	})
	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "invalid email")
	resp.Body.Close()
}

func TestUserHandler_UpdateOtherUserForbidden(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, aliceToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	bob, _ := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := testutil.DoRequest(t, ts, http.MethodPut,
		fmt.Sprintf("/users/%d", bob.ID), aliceToken, map[string]string{"name": "Hijacked"})
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	resp.Body.Close()

	resp = testutil.DoRequest(t, ts, http.MethodDelete,
		fmt.Sprintf("/users/%d", bob.ID), aliceToken, nil)
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	resp.Body.Close()
}

func TestUserHandler_DeleteCascades(t *testing.T) {
	ts := testutil.NewTestServer(t)

	alice, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	testutil.NewHabitBuilder().WithOwner(alice).Build(t, ts.DB.DB)
	testutil.NewTodoBuilder().WithOwner(alice).Build(t, ts.DB.DB)

	resp := testutil.DoRequest(t, ts, http.MethodDelete,
		fmt.Sprintf("/users/%d", alice.ID), token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	var habitCount, todoCount int64
	require.NoError(t, ts.DB.DB.Table("habits").Where("user_id = ?", alice.ID).Count(&habitCount).Error)
	require.NoError(t, ts.DB.DB.Table("todos").Where("user_id = ?", alice.ID).Count(&todoCount).Error)
	assert.Zero(t, habitCount, "habits must cascade on user delete")
	assert.Zero(t, todoCount, "todos must cascade on user delete")
}
