//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/2beens/fitconnect/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.redisDataCleanup(ctx))

	cases := map[string]struct {
		credentials        auth.Credentials
		expectedStatusCode int
		expectedBody       string
	}{
		"bad password": {
			credentials:        auth.Credentials{Username: testMemberUsername, Password: "bad-password"},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, wrong credentials",
		},
		"bad username": {
			credentials:        auth.Credentials{Username: "bad-username", Password: testPassword},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, wrong credentials",
		},
		"empty password": {
			credentials:        auth.Credentials{Username: testMemberUsername},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "error, password empty",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			resp := s.doRequest(ctx, t, "POST", "/a/login", "", tc.credentials)
			defer resp.Body.Close()
			require.Equal(t, tc.expectedStatusCode, resp.StatusCode)

			respBytes, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedBody, strings.TrimSpace(string(respBytes)))
		})
	}

	t.Run("good creds, then logout", func(t *testing.T) {
		token := s.doLogin(ctx, t, testMemberUsername)

		resp := s.doRequest(ctx, t, "GET", fmt.Sprintf("/members/%d/reports", s.memberID), token, nil)
		resp.Body.Close()
		assert.NotEqual(t, http.StatusUnauthorized, resp.StatusCode)

		resp = s.doRequest(ctx, t, "GET", "/a/logout", token, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// session is gone
		resp = s.doRequest(ctx, t, "GET", fmt.Sprintf("/members/%d/reports", s.memberID), token, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rate limiting", func(t *testing.T) {
		// config allows 10 login attempts per minute, the 11th gets a 429
		require.NoError(t, s.redisDataCleanup(ctx))

		for i := 1; i <= 15; i++ {
			resp := s.doRequest(ctx, t, "POST", "/a/login", "", auth.Credentials{
				Username: "test-user",
				Password: "test-pass",
			})

			if i <= 10 {
				require.Equal(t, http.StatusBadRequest, resp.StatusCode, "iteration: %d", i)
			} else {
				require.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "iteration: %d", i)
			}

			assert.NoError(t, resp.Body.Close())
		}

		require.NoError(t, s.redisDataCleanup(ctx))
	})
}
