package system

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"studio-admin/internal/common/events"
	"studio-admin/internal/config"
	"studio-admin/internal/metrics"
	"studio-admin/pkg/utils"

	_ "studio-admin/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingClient struct {
	mu       sync.Mutex
	messages [][]byte
	err      error
}

func (r *recordingClient) WriteMessage(messageType int, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, data)
	return nil
}

func (r *recordingClient) received() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.messages...)
}

// blockingClient never completes a write until released
type blockingClient struct {
	release chan struct{}
}

func (b *blockingClient) WriteMessage(messageType int, data []byte) error {
	<-b.release
	return errors.New("connection closed")
}

func TestHubBroadcastsChanges(t *testing.T) {
	m := metrics.NewMetrics()
	hub := NewHub(m, zap.NewNop())

	a, b := &recordingClient{}, &recordingClient{}
	hub.Register(a)
	hub.Register(b)
	hub.Register(a)
	assert.Equal(t, 2, hub.Count())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.WSConnectionsActive))

	AsNotifier(hub).Notify(context.Background(), events.Change{Collection: "members", Action: events.ActionCreated, ID: "m1", At: time.Now()})

	for _, c := range []*recordingClient{a, b} {
		require.Eventually(t, func() bool { return len(c.received()) == 1 }, time.Second, 5*time.Millisecond)
		var got events.Change
		require.NoError(t, json.Unmarshal(c.received()[0], &got))
		assert.Equal(t, "members", got.Collection)
		assert.Equal(t, events.ActionCreated, got.Action)
	}

	done := hub.Register(a)
	hub.Unregister(a)
	hub.Unregister(a)
	assert.Equal(t, 1, hub.Count())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSConnectionsActive))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("writer did not stop after unregister")
	}
}

func TestHubDropsFailingClients(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	good, broken := &recordingClient{}, &recordingClient{err: errors.New("broken pipe")}
	hub.Register(good)
	hub.Register(broken)

	hub.Notify(context.Background(), events.Change{Collection: "bugreports", Action: events.ActionResolved, ID: "r1"})

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return len(good.received()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestHubDoesNotWaitOnStalledClient(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	stalled := &blockingClient{release: make(chan struct{})}
	defer close(stalled.release)
	hub.Register(stalled)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		// one in flight plus a full queue, then one more to overflow it
		for i := 0; i < sendBuffer+2; i++ {
			hub.Notify(context.Background(), events.Change{Collection: "members", Action: events.ActionUpdated, ID: "m1"})
		}
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked behind a stalled client")
	}

	assert.Equal(t, 0, hub.Count(), "stalled client is dropped")

	good := &recordingClient{}
	hub.Register(good)
	hub.Notify(context.Background(), events.Change{Collection: "members", Action: events.ActionDeleted, ID: "m1"})
	require.Eventually(t, func() bool { return len(good.received()) == 1 }, time.Second, 5*time.Millisecond)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		db     string
	}{
		{name: "up", status: fiber.StatusOK, db: "up"},
		{name: "down", err: errors.New("no primary"), status: fiber.StatusServiceUnavailable, db: "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.NewMetrics()
			app := fiber.New()
			NewHealthApi(NewHealthController(fakePinger{err: tt.err}, NewHub(nil, zap.NewNop())), m).Setup(app)

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.db, body["database"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := fiber.New()
	NewHealthApi(NewHealthController(fakePinger{}, NewHub(nil, zap.NewNop())), metrics.NewMetrics()).Setup(app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestWebSocketRequiresUpgradeAndToken(t *testing.T) {
	utils.SetSecret("test-secret")
	cfg := &config.Config{}
	app := fiber.New()
	NewWebSocketApi(NewWebSocketController(NewHub(nil, zap.NewNop()), zap.NewNop()), cfg).Setup(app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)

	req := httptest.NewRequest(fiber.MethodGet, "/api/ws?token=garbage", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSession(t *testing.T) {
	utils.SetSecret("test-secret")
	app := fiber.New()
	NewSessionApi(&config.Config{}).Setup(app)

	token, err := utils.GenerateToken("u1", "root", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/api/session", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "root", body["username"])
	assert.Contains(t, body, "expires_at")

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/session", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSwaggerServesRegisteredDoc(t *testing.T) {
	app := fiber.New()
	NewSwaggerApi().Setup(app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/swagger/doc.json", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Contains(t, doc.Paths["/api/members/{id}/access"], "put")
	assert.Contains(t, doc.Paths["/api/bug-reports/{id}/resolve"], "put")
	assert.Contains(t, doc.Paths["/api/dashboard/stats"], "get")
}
