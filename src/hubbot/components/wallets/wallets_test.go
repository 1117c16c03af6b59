package wallets

import (
	"path/filepath"
	"testing"

	"github.com/promo-labs/web3-promo-hub/src/shared/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := data.ConnectSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, data.Migrate(db))
	require.NoError(t, data.SeedWallets(db))
	return db
}

func TestSeededWallets(t *testing.T) {
	db := testDB(t)

	list, err := All(db)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byCoin := map[string]string{}
	for _, w := range list {
		byCoin[w.Coin] = w.Address
	}
	assert.Equal(t, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", byCoin["BTC"])
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", byCoin["ETH"])

	// Seeding again must not duplicate rows.
	require.NoError(t, data.SeedWallets(db))
	list, err = All(db)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestFormat(t *testing.T) {
	db := testDB(t)

	list, err := All(db)
	require.NoError(t, err)

	text := Format(list)
	assert.Contains(t, text, "BTC: `1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa`")
	assert.Contains(t, text, "ETH: `0x742d35Cc6634C0532925a3b844Bc454e4438f44e`")
}
