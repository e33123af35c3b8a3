package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"foodgram/internal/api"
	"foodgram/internal/api/handler/v1handler"
	mockrecipes "foodgram/internal/recipes/mock"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	gin.SetMode(gin.TestMode)
	m.Run()
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newTestServer(t *testing.T) (*httptest.Server, *mockrecipes.MockService) {
	t.Helper()

	svc := mockrecipes.NewMockService(gomock.NewController(t))
	srv, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Recipes: svc}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts, svc
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func TestNewServer_InvalidKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "garbage"},
	})
	require.Error(t, err)
}

func TestServer_Routes(t *testing.T) {
	ts, svc := newTestServer(t)

	svc.EXPECT().Tags(gomock.Any()).Return([]domain.Tag{{ID: 1, Name: "Lunch", Color: "#49B64E", Slug: "lunch"}}, nil)
	res := get(t, ts.URL+"/v1/tags")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	res = get(t, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))

	res = get(t, ts.URL+"/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = get(t, ts.URL+"/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = get(t, ts.URL+"/nope")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Contains(t, res.Header.Get("Content-Type"), "application/json")
}

func TestServer_Preflight(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/v1/recipes", nil) //nolint: noctx
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestServer_RecoversFromPanic(t *testing.T) {
	ts, svc := newTestServer(t)

	svc.EXPECT().Tags(gomock.Any()).DoAndReturn(func(any) ([]domain.Tag, error) {
		panic("boom")
	})

	res := get(t, ts.URL+"/v1/tags")
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestNewMeterProvider(t *testing.T) {
	mp, err := api.NewMeterProvider()
	require.NoError(t, err)
	require.NotNil(t, mp.Meter(api.ServiceName))
}
