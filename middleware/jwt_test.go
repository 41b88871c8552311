package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/pokedex/apperror"
)

var testKey = []byte("test-signing-key")

func newContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

// runAuthenticate pushes c through the Authenticate middleware with a
// no-op next and reports whether next was reached.
func runAuthenticate(t *testing.T, c echo.Context) bool {
	t.Helper()

	called := false
	next := func(echo.Context) error {
		called = true
		return nil
	}
	require.NoError(t, Authenticate(testKey)(next)(c))
	return called
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	token, err := Issue("ash", testKey)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, ok := Verify(token, testKey)
	require.True(t, ok)
	assert.Equal(t, "ash", claims.Username)
}

func TestVerifyWrongKey(t *testing.T) {
	token, err := Issue("ash", testKey)
	require.NoError(t, err)

	_, ok := Verify(token, []byte("another-key"))
	assert.False(t, ok)
}

func TestVerifyMalformed(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, ok := Verify(token, testKey)
		assert.False(t, ok, "token %q should not verify", token)
	}
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	token, err := Issue("ash", testKey)
	require.NoError(t, err)

	c := newContext(t, "Bearer "+token)
	require.True(t, runAuthenticate(t, c))

	username, ok := Identity(c)
	require.True(t, ok)
	assert.Equal(t, "ash", username)
}

func TestAuthenticateBearerCaseInsensitive(t *testing.T) {
	token, err := Issue("ash", testKey)
	require.NoError(t, err)

	for _, prefix := range []string{"bearer ", "BEARER ", "bEaReR "} {
		c := newContext(t, prefix+token)
		require.True(t, runAuthenticate(t, c))

		username, ok := Identity(c)
		require.True(t, ok, "prefix %q", prefix)
		assert.Equal(t, "ash", username)
	}
}

func TestAuthenticateSoftFail(t *testing.T) {
	headers := map[string]string{
		"missing header":  "",
		"malformed token": "Bearer not.a.token",
		"wrong signature": "Bearer eyJhbGciOiJIUzI1NiJ9.eyJ1c2VybmFtZSI6ImFzaCJ9.bad",
		"no bearer":       "garbage",
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			c := newContext(t, header)
			assert.True(t, runAuthenticate(t, c), "request must continue unauthenticated")

			_, ok := Identity(c)
			assert.False(t, ok)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	next := func(echo.Context) error { return nil }

	t.Run("anonymous", func(t *testing.T) {
		c := newContext(t, "")
		err := RequireAuth(next)(c)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("authenticated", func(t *testing.T) {
		c := newContext(t, "")
		c.Set("username", "ash")
		assert.NoError(t, RequireAuth(next)(c))
	})
}

func TestRequireSameUser(t *testing.T) {
	next := func(echo.Context) error { return nil }

	newParamContext := func(identity, param string) echo.Context {
		c := newContext(t, "")
		if identity != "" {
			c.Set("username", identity)
		}
		c.SetParamNames("username")
		c.SetParamValues(param)
		return c
	}

	t.Run("match", func(t *testing.T) {
		c := newParamContext("alice", "alice")
		assert.NoError(t, RequireSameUser(next)(c))
	})

	t.Run("mismatch", func(t *testing.T) {
		c := newParamContext("bob", "alice")
		assert.ErrorIs(t, RequireSameUser(next)(c), apperror.ErrUnauthorized)
	})

	t.Run("anonymous", func(t *testing.T) {
		c := newParamContext("", "alice")
		assert.ErrorIs(t, RequireSameUser(next)(c), apperror.ErrUnauthorized)
	})
}
