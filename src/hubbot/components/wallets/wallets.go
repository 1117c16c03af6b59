package wallets

import (
	"fmt"
	"strings"

	"github.com/promo-labs/web3-promo-hub/src/shared/types"
	"gorm.io/gorm"
)

// All returns every wallet row in insertion order.
func All(db *gorm.DB) ([]types.Wallet, error) {
	var list []types.Wallet
	err := db.Find(&list).Error
	return list, err
}

// Format renders coin/address pairs; addresses are wrapped in code spans
// so chat clients don't linkify or reflow them.
func Format(list []types.Wallet) string {
	var b strings.Builder
	b.WriteString("🔐 Verified Wallets:\n")
	for _, w := range list {
		fmt.Fprintf(&b, "\n%s: `%s`", w.Coin, w.Address)
	}
	return b.String()
}
