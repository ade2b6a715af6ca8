package server

import (
	"fmt"
	"net/http"
	"testing"

	"redsocial/internal/models"

	"github.com/stretchr/testify/require"
)

func TestFollowSelfRejected(t *testing.T) {
	_, app := newTestServer(t)
	idA, tokenA := registerAndLogin(t, app, "selfie", "selfie@x.com")

	status, body := jsonRequest(t, app, http.MethodPost, "/api/follow/follow", tokenA, map[string]uint{
		"followed_user": idA,
	})
	require.Equal(t, http.StatusBadRequest, status, "body: %v", body)
}

func TestFollowMissingTarget(t *testing.T) {
	_, app := newTestServer(t)
	_, tokenA := registerAndLogin(t, app, "alone", "alone@x.com")

	status, body := jsonRequest(t, app, http.MethodPost, "/api/follow/follow", tokenA, map[string]uint{
		"followed_user": 9999,
	})
	require.Equal(t, http.StatusNotFound, status, "body: %v", body)
}

func TestFollowDuplicateLeavesSingleEdge(t *testing.T) {
	s, app := newTestServer(t)
	_, tokenA := registerAndLogin(t, app, "dupa", "dupa@x.com")
	idB, _ := registerAndLogin(t, app, "dupb", "dupb@x.com")

	status, _ := jsonRequest(t, app, http.MethodPost, "/api/follow/follow", tokenA, map[string]uint{
		"followed_user": idB,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := jsonRequest(t, app, http.MethodPost, "/api/follow/follow", tokenA, map[string]uint{
		"followed_user": idB,
	})
	require.Equal(t, http.StatusConflict, status, "body: %v", body)

	var count int64
	require.NoError(t, s.db.Model(&models.Follow{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUnfollowWithoutEdge(t *testing.T) {
	_, app := newTestServer(t)
	_, tokenA := registerAndLogin(t, app, "nfa", "nfa@x.com")
	idB, _ := registerAndLogin(t, app, "nfb", "nfb@x.com")

	status, body := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/follow/unfollow/%d", idB), tokenA, nil)
	require.Equal(t, http.StatusNotFound, status, "body: %v", body)
}

func TestUnfollowRemovesOnlyThatEdge(t *testing.T) {
	s, app := newTestServer(t)
	_, tokenA := registerAndLogin(t, app, "edga", "edga@x.com")
	idB, _ := registerAndLogin(t, app, "edgb", "edgb@x.com")
	idC, _ := registerAndLogin(t, app, "edgc", "edgc@x.com")

	for _, id := range []uint{idB, idC} {
		status, _ := jsonRequest(t, app, http.MethodPost, "/api/follow/follow", tokenA, map[string]uint{
			"followed_user": id,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, _ := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/follow/unfollow/%d", idB), tokenA, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := jsonRequest(t, app, http.MethodGet, "/api/follow/following", tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []uint{idC}, followIDs(t, body))

	var count int64
	require.NoError(t, s.db.Model(&models.Follow{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestFollowersOfAnotherUser(t *testing.T) {
	_, app := newTestServer(t)
	idA, tokenA := registerAndLogin(t, app, "fola", "fola@x.com")
	idB, tokenB := registerAndLogin(t, app, "folb", "folb@x.com")

	status, _ := jsonRequest(t, app, http.MethodPost, "/api/follow/follow", tokenA, map[string]uint{
		"followed_user": idB,
	})
	require.Equal(t, http.StatusCreated, status)

	// B queries their own followers list and finds A.
	status, body := jsonRequest(t, app, http.MethodGet, "/api/follow/followers", tokenB, nil)
	require.Equal(t, http.StatusOK, status)
	raw := body["follows"].([]any)
	require.Len(t, raw, 1)
	edge := raw[0].(map[string]any)
	require.EqualValues(t, idA, edge["following_user"].(float64))

	// A queries B's followers list explicitly by id and sees the same edge.
	status, body = jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/follow/followers/%d", idB), tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["follows"].([]any), 1)
}

func TestFollowingListPagination(t *testing.T) {
	_, app := newTestServer(t)
	idA, tokenA := registerAndLogin(t, app, "pga", "pga@x.com")

	var targets []uint
	for i := 0; i < 7; i++ {
		id, _ := registerAndLogin(t, app, fmt.Sprintf("pgt%d", i), fmt.Sprintf("pgt%d@x.com", i))
		targets = append(targets, id)
	}
	for _, id := range targets {
		status, _ := jsonRequest(t, app, http.MethodPost, "/api/follow/follow", tokenA, map[string]uint{
			"followed_user": id,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	// Default page size is 5: 7 edges make 2 pages.
	status, body := jsonRequest(t, app, http.MethodGet, "/api/follow/following", tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body["follows"].([]any), 5)
	require.EqualValues(t, 7, body["total"].(float64))
	require.EqualValues(t, 2, body["pages"].(float64))

	// Page beyond the last: empty list, totals intact. The id is explicit
	// here because a single numeric segment binds to :id, not :page.
	status, body = jsonRequest(t, app, http.MethodGet,
		fmt.Sprintf("/api/follow/following/%d/9", idA), tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, body["follows"].([]any))
	require.EqualValues(t, 7, body["total"].(float64))
	require.EqualValues(t, 2, body["pages"].(float64))

	// An invalid explicit id is a validation error.
	status, _ = jsonRequest(t, app, http.MethodGet, "/api/follow/following/0/1", tokenA, nil)
	require.Equal(t, http.StatusBadRequest, status)
}
