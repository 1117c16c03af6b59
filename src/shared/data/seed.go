package data

import (
	"github.com/promo-labs/web3-promo-hub/src/shared/types"
	"gorm.io/gorm"
)

var defaultWallets = []types.Wallet{
	{Coin: "BTC", Address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
	{Coin: "ETH", Address: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"},
}

// SeedWallets inserts the default wallet rows when the table is empty.
// Existing rows are never touched.
func SeedWallets(db *gorm.DB) error {
	var count int64
	if err := db.Model(&types.Wallet{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&defaultWallets).Error
}
