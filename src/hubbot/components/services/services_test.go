package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/promo-labs/web3-promo-hub/src/shared/data"
	"github.com/promo-labs/web3-promo-hub/src/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := data.ConnectSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, data.Migrate(db))
	return db
}

func TestSubmitCreatesActiveRow(t *testing.T) {
	db := testDB(t)

	svc, err := Submit(db, "user-1", "dev", "build me a dapp")
	require.NoError(t, err)
	assert.Equal(t, "dev", svc.Category)
	assert.Equal(t, "build me a dapp", svc.Description)

	var rows []types.Service
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Active)
	assert.Equal(t, "user-1", rows[0].UserID)
}

func TestSubmitSanitizesDescription(t *testing.T) {
	db := testDB(t)

	svc, err := Submit(db, "user-1", "design", `logos <script>alert(1)</script> and banners`)
	require.NoError(t, err)
	assert.Equal(t, "logos  and banners", svc.Description)

	_, err = Submit(db, "user-1", "design", "<script>only markup</script>")
	assert.Error(t, err)
}

type fakeMessenger struct {
	sent   []string
	failOn string
}

func (f *fakeMessenger) DirectMessage(userID, content string) error {
	if userID == f.failOn {
		return fmt.Errorf("dm blocked")
	}
	f.sent = append(f.sent, userID)
	return nil
}

func TestNotifyAdminsContinuesPastFailures(t *testing.T) {
	m := &fakeMessenger{failOn: "admin-2"}
	NotifyAdmins(m, []string{"admin-1", "admin-2", "admin-3"}, types.Service{
		UserID:      "user-1",
		Category:    "dev",
		Description: "build me a dapp",
	})
	assert.Equal(t, []string{"admin-1", "admin-3"}, m.sent)
}

func TestFindActiveSkipsInactive(t *testing.T) {
	db := testDB(t)

	_, err := Submit(db, "user-1", "dev", "solidity audits")
	require.NoError(t, err)
	svc, err := Submit(db, "user-2", "mod", "24/7 moderation")
	require.NoError(t, err)

	require.NoError(t, db.Model(&types.Service{}).
		Where("id = ?", svc.ID).
		Update("active", false).Error)

	list, err := FindActive(db, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "dev", list[0].Category)
}

func TestLabelFallsBackToRawTag(t *testing.T) {
	assert.Equal(t, "💻 Web3 Development", Label("dev"))
	assert.Equal(t, CategoryCustom, Label(CategoryCustom))
	assert.True(t, ValidCategory("shilling"))
	assert.False(t, ValidCategory(CategoryCustom))
}
