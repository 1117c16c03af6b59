package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/promo-labs/web3-promo-hub/src/shared/types"
	"gorm.io/gorm"
)

const maxNotifyChars = 1000

var sanitizer = bluemonday.StrictPolicy()

// Messenger sends a direct message to a user. Satisfied by the bot's
// Discord session wrapper.
type Messenger interface {
	DirectMessage(userID, content string) error
}

// Submit stores a service offering. The description is sanitized at this
// boundary; everything past here treats it as plain text.
func Submit(db *gorm.DB, userID, category, description string) (types.Service, error) {
	svc := types.Service{
		UserID:      userID,
		Category:    category,
		Description: strings.TrimSpace(sanitizer.Sanitize(description)),
	}
	if svc.Description == "" {
		return types.Service{}, fmt.Errorf("empty service description")
	}
	if err := db.Create(&svc).Error; err != nil {
		return types.Service{}, fmt.Errorf("insert service: %w", err)
	}
	return svc, nil
}

// NotifyAdmins DMs every configured admin about a new submission. Each
// failure is logged on its own and never aborts the remaining sends; the
// submission is already stored at this point.
func NotifyAdmins(m Messenger, adminIDs []string, svc types.Service) {
	content := FormatSubmission(svc)
	for _, adminID := range adminIDs {
		if err := m.DirectMessage(adminID, content); err != nil {
			log.Printf("services: failed to notify admin %s: %v", adminID, err)
		}
	}
}

// FormatSubmission renders the admin notification text, truncating long
// descriptions.
func FormatSubmission(svc types.Service) string {
	desc := svc.Description
	if len(desc) > maxNotifyChars {
		desc = desc[:maxNotifyChars]
	}
	return fmt.Sprintf(
		"🆕 New Service Submission:\n\nType: %s\nFrom: <@%s>\nDetails: %s",
		Label(svc.Category), svc.UserID, desc,
	)
}

// FindActive returns the latest n active service offerings.
func FindActive(db *gorm.DB, n int) ([]types.Service, error) {
	var list []types.Service
	err := db.Where("active = ?", true).
		Order("created_at DESC").
		Limit(n).
		Find(&list).Error
	return list, err
}

// FormatListing renders active services for the find-services view.
func FormatListing(list []types.Service) string {
	if len(list) == 0 {
		return "📭 No active services yet. Offer yours with /promote!"
	}

	var b strings.Builder
	b.WriteString("💼 Active Services:\n")
	for _, svc := range list {
		desc := svc.Description
		if len(desc) > 120 {
			desc = desc[:120] + "…"
		}
		fmt.Fprintf(&b, "\n%s — %s", Label(svc.Category), desc)
	}
	return b.String()
}
