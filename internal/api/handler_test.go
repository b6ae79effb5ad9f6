package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jdbc-bridge/internal/config"
	"jdbc-bridge/internal/db"
	"jdbc-bridge/internal/db/repository"
	"jdbc-bridge/internal/domain"
	"jdbc-bridge/internal/service"
)

// newTestServer wires the full stack over a temp SQLite registry.
func newTestServer(t *testing.T, defaultSessionVars string) http.Handler {
	t.Helper()

	writeDB, readDB := db.OpenTestSQLite(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := repository.NewResourceRepo(writeDB, readDB)
	resources := service.NewResourceService(repo, logger)
	tables := service.NewTableService(service.TableServiceDeps{
		Registry:           resources,
		DefaultSessionVars: defaultSessionVars,
		Logger:             logger,
	})

	cfg := &config.Config{
		RateLimitRPS:       1000,
		RateLimitBurst:     1000,
		CORSAllowedOrigins: []string{"*"},
	}
	return NewRouter(cfg, NewHandler(resources, tables, logger))
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func validCreate(name string) domain.CreateResourceRequest {
	return domain.CreateResourceRequest{
		Name: name,
		Kind: "jdbc",
		Properties: map[string]string{
			domain.PropURI:         "jdbc:mysql://127.0.0.1:3306/db0",
			domain.PropDriverURL:   "http://x.com/mysql.jar",
			domain.PropDriverClass: "com.mysql.cj.jdbc.Driver",
			domain.PropChecksum:    "ck0",
			domain.PropUser:        "user0",
			domain.PropPassword:    "password0",
		},
	}
}

func TestAPI_ResourceLifecycle(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv, http.MethodPost, "/v1/resources", validCreate("jdbc0"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.Resource
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "jdbc0", created.Name)
	assert.NotZero(t, created.ID)

	rec = doJSON(t, srv, http.MethodGet, "/v1/resources/jdbc0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/v1/resources", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []domain.Resource
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Len(t, all, 1)

	rec = doJSON(t, srv, http.MethodDelete, "/v1/resources/jdbc0", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/v1/resources/jdbc0", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_CreateResourceConflict(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv, http.MethodPost, "/v1/resources", validCreate("jdbc0"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/v1/resources", validCreate("jdbc0"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAPI_CreateResourceMissingProperty(t *testing.T) {
	srv := newTestServer(t, "")

	req := validCreate("jdbc0")
	delete(req.Properties, domain.PropUser)

	rec := doJSON(t, srv, http.MethodPost, "/v1/resources", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp["message"], "user")
}

func TestAPI_CreateResourceInvalidBody(t *testing.T) {
	srv := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/resources", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_ListResourcesEmptyIsArray(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv, http.MethodGet, "/v1/resources", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestAPI_ResolveDescriptorInline(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv, http.MethodPost, "/v1/descriptors", domain.DescriptorRequest{
		TableName: "table0",
		Database:  "db0",
		Catalog:   "catalog0",
		Properties: map[string]string{
			domain.PropURI:         "jdbc:mysql://127.0.0.1:3306",
			domain.PropDriverURL:   "http://x.com/mysql.jar",
			domain.PropDriverClass: "com.mysql.cj.jdbc.Driver",
			domain.PropChecksum:    "ck0",
			domain.PropUser:        "user0",
			domain.PropPassword:    "password0",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var desc domain.ConnectionDescriptor
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&desc))
	assert.Equal(t, "jdbc:mysql://127.0.0.1:3306/db0", desc.JDBCURL)
	assert.Equal(t, "table0", desc.JDBCTable)
	assert.True(t, len(desc.DriverName) > len("jdbc_"))
}

func TestAPI_ResolveDescriptorViaResource(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv, http.MethodPost, "/v1/resources", validCreate("jdbc0"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/v1/descriptors", domain.DescriptorRequest{
		Properties: map[string]string{
			domain.PropResource: "jdbc0",
			domain.PropTable:    "table0",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var desc domain.ConnectionDescriptor
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&desc))
	assert.Equal(t, "jdbc0", desc.DriverName)
	assert.Equal(t, "jdbc:mysql://127.0.0.1:3306/db0", desc.JDBCURL)
}

func TestAPI_ResolveDescriptorUnknownResource(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv, http.MethodPost, "/v1/descriptors", domain.DescriptorRequest{
		Properties: map[string]string{
			domain.PropResource: "nope",
			domain.PropTable:    "table0",
		},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_ResolveDescriptorUnsupportedProtocol(t *testing.T) {
	srv := newTestServer(t, "sql_mode=ANSI_QUOTES")

	rec := doJSON(t, srv, http.MethodPost, "/v1/descriptors", domain.DescriptorRequest{
		TableName: "table0",
		Database:  "db0",
		Catalog:   "catalog0",
		Properties: map[string]string{
			domain.PropURI:         "jdbc:postgresql://127.0.0.1:5432/db0",
			domain.PropDriverURL:   "http://x.com/postgresql.jar",
			domain.PropDriverClass: "org.postgresql.Driver",
			domain.PropChecksum:    "ck0",
			domain.PropUser:        "user0",
			domain.PropPassword:    "password0",
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp["message"], "POSTGRESQL")
	assert.Contains(t, resp["message"], "MYSQL")
}

func TestAPI_RequestIDHeader(t *testing.T) {
	srv := newTestServer(t, "")

	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
