package misc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/fitconnect/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testRequestRateLimiter struct {
	// key to limit map
	Limits map[string]int
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	res := &redis_rate.Result{}

	foundLimit, ok := l.Limits[key]
	if !ok || foundLimit == 0 {
		return res, nil
	}

	res.Allowed = l.Limits[key]
	l.Limits[key]--

	return res, nil
}

type loginHandlerFake struct {
	logins, logouts int
}

func (f *loginHandlerFake) HandleLogin(w http.ResponseWriter, _ *http.Request) {
	f.logins++
	w.WriteHeader(http.StatusOK)
}

func (f *loginHandlerFake) HandleLogout(w http.ResponseWriter, _ *http.Request) {
	f.logouts++
	w.WriteHeader(http.StatusOK)
}

func TestNewMiscHandler(t *testing.T) {
	mainRouter := mux.NewRouter()
	handler := NewHandler("dummy", &loginHandlerFake{})
	handler.SetupRoutes(mainRouter, &testRequestRateLimiter{}, metrics.NewTestManager(), 15)
	require.NotNil(t, handler)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
		"route-get":     {name: "root", path: "/", method: "GET"},
		"route-post":    {name: "root", path: "/", method: "POST"},
		"route-options": {name: "root", path: "/", method: "OPTIONS"},
		"version":       {name: "version", path: "/version", method: "GET"},
		"login":         {name: "login", path: "/a/login", method: "POST"},
		"logout":        {name: "logout", path: "/a/logout", method: "GET"},
		"logout-otions": {name: "logout", path: "/a/logout", method: "OPTIONS"},
	} {
		t.Run(caseName, func(t *testing.T) {
			req, err := http.NewRequest(route.method, route.path, nil)
			require.NoError(t, err)

			routeMatch := &mux.RouteMatch{}
			route := mainRouter.Get(route.name)
			require.NotNil(t, route)
			assert.True(t, route.Match(req, routeMatch), caseName)
		})
	}
}

func TestHandleRootAndVersion(t *testing.T) {
	r := mux.NewRouter()
	NewHandler("abc123", &loginHandlerFake{}).SetupRoutes(r, &testRequestRateLimiter{}, metrics.NewTestManager(), 15)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "I'm OK, thanks ;)", rr.Body.String())

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/version", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc123", rr.Body.String())

	r = mux.NewRouter()
	NewHandler("", &loginHandlerFake{}).SetupRoutes(r, &testRequestRateLimiter{}, metrics.NewTestManager(), 15)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/version", nil))
	assert.Equal(t, "unknown", rr.Body.String())
}

func TestLogin_RateLimited(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	reqRateLimiter := &testRequestRateLimiter{
		Limits: map[string]int{"login": 1},
	}
	login := &loginHandlerFake{}

	r := mux.NewRouter()
	NewHandler("dummy", login).SetupRoutes(r, reqRateLimiter, metricsManager, 15)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/a/login", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, login.logins)

	// next time fails
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/a/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "retry after"))
	assert.Equal(t, 1, login.logins)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
}
