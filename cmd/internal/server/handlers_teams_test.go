package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/estimator-go/cmd/internal/api_models"
	"github.com/zhukovvlad/estimator-go/cmd/internal/testutil"
)

func TestSearchTeamsHandler(t *testing.T) {
	env := newTestEnv(t, testServerConfig())
	env.store.SeedTeam("Core Platform", testutil.TestPasscodeHash)
	env.store.SeedTeam("Mobile", testutil.TestPasscodeHash)

	t.Run("public and case insensitive", func(t *testing.T) {
		w := env.http.MakeGetRequest(t, "/api/v1/teams/search?q=CORE", nil)

		var found []api_models.TeamResponse
		testutil.AssertResponse(t, w, http.StatusOK, &found)
		require.Len(t, found, 2)
		assert.Equal(t, "Core Platform", found[0].Name)
		assert.Equal(t, "core", found[1].Name)
	})

	t.Run("limit", func(t *testing.T) {
		w := env.http.MakeGetRequest(t, "/api/v1/teams/search?q=co&limit=1", nil)

		var found []api_models.TeamResponse
		testutil.AssertResponse(t, w, http.StatusOK, &found)
		assert.Len(t, found, 1)
	})

	t.Run("no match is an empty array", func(t *testing.T) {
		w := env.http.MakeGetRequest(t, "/api/v1/teams/search?q=zzz", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("short query", func(t *testing.T) {
		w := env.http.MakeGetRequest(t, "/api/v1/teams/search?q=c", nil)
		testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "at least 2 characters")
	})

	t.Run("bad limit", func(t *testing.T) {
		w := env.http.MakeGetRequest(t, "/api/v1/teams/search?q=core&limit=-1", nil)
		testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid limit")
	})
}
