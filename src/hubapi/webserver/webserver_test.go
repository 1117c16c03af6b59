package webserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/promo-labs/web3-promo-hub/src/hubapi/config"
	"github.com/promo-labs/web3-promo-hub/src/shared/data"
	"github.com/promo-labs/web3-promo-hub/src/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := data.ConnectSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, data.Migrate(db))
	require.NoError(t, data.SeedWallets(db))

	return New(config.Config{}, db), db
}

func doGET(t *testing.T, g *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	g, _ := testServer(t)
	w := doGET(t, g, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListProjectsRanked(t *testing.T) {
	g, db := testServer(t)
	require.NoError(t, db.Create(&[]types.Project{
		{Name: "alpha", Votes: 1},
		{Name: "beta", Votes: 5},
	}).Error)

	w := doGET(t, g, "/v1/projects")
	require.Equal(t, http.StatusOK, w.Code)

	var projects []types.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "beta", projects[0].Name)
}

func TestListServicesActiveFilter(t *testing.T) {
	g, db := testServer(t)
	require.NoError(t, db.Create(&[]types.Service{
		{UserID: "u1", Category: "dev", Description: "audits"},
		{UserID: "u2", Category: "mod", Description: "moderation"},
	}).Error)
	require.NoError(t, db.Model(&types.Service{}).
		Where("category = ?", "mod").
		Update("active", false).Error)

	w := doGET(t, g, "/v1/services?active=1")
	require.Equal(t, http.StatusOK, w.Code)

	var list []types.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "dev", list[0].Category)

	w = doGET(t, g, "/v1/services")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestListWalletsSeeded(t *testing.T) {
	g, _ := testServer(t)
	w := doGET(t, g, "/v1/wallets")
	require.Equal(t, http.StatusOK, w.Code)

	var list []types.Wallet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
}
