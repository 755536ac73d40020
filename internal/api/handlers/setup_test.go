package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/catalyst/internal/api/handlers"
	"github.com/linskybing/catalyst/internal/api/middleware"
	"github.com/linskybing/catalyst/internal/api/routes"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/config"
	imock "github.com/linskybing/catalyst/internal/integrations/mock"
	"github.com/linskybing/catalyst/internal/realtime"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/internal/testutils"
	"github.com/linskybing/catalyst/pkg/utils"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router      *gin.Engine
	repos       *repository.Repos
	llm         *imock.MockLLM
	transcriber *imock.MockTranscriber
	exporter    *imock.MockPageExporter
	renderer    *imock.MockDocumentRenderer
}

// newTestEnv wires the full router over an in-memory SQLite store with the
// external clients mocked.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupSQLite(t)

	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(ctx context.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })

	ctrl := gomock.NewController(t)
	env := &testEnv{
		repos:       repository.NewRepositories(gdb),
		llm:         imock.NewMockLLM(ctrl),
		transcriber: imock.NewMockTranscriber(ctrl),
		exporter:    imock.NewMockPageExporter(ctrl),
		renderer:    imock.NewMockDocumentRenderer(ctrl),
	}
	svc := application.New(env.repos, application.Clients{
		LLM:         env.llm,
		Transcriber: env.transcriber,
		Exporter:    env.exporter,
		Renderer:    env.renderer,
	}, realtime.Discard)

	r := gin.New()
	r.Use(middleware.RequestMetaMiddleware())
	routes.RegisterRoutes(r, handlers.New(svc, env.repos, config.BackendSQLite), routes.Options{})
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) upload(t *testing.T, path, field, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename)}
		if contentType != "" {
			header["Content-Type"] = []string{contentType}
		}
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
