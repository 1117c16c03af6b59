package voting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/promo-labs/web3-promo-hub/src/shared/types"
	"gorm.io/gorm"
)

// ErrAlreadyVoted reports a duplicate (user, project) vote attempt.
var ErrAlreadyVoted = errors.New("already voted for this project")

// Cast records a vote and bumps the project counter in one transaction.
// The composite primary key on votes is the only duplicate guard; when it
// fires the counter is left untouched.
func Cast(db *gorm.DB, userID string, projectID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		vote := types.Vote{UserID: userID, ProjectID: projectID}
		if err := tx.Create(&vote).Error; err != nil {
			if isDuplicate(err) {
				return ErrAlreadyVoted
			}
			return fmt.Errorf("insert vote: %w", err)
		}

		res := tx.Model(&types.Project{}).
			Where("id = ?", projectID).
			UpdateColumn("votes", gorm.Expr("votes + 1"))
		if res.Error != nil {
			return fmt.Errorf("increment votes: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("project %d not found", projectID)
		}
		return nil
	})
}

// Top returns up to n projects ordered by vote count.
func Top(db *gorm.DB, n int) ([]types.Project, error) {
	var projects []types.Project
	err := db.Order("votes DESC").Limit(n).Find(&projects).Error
	return projects, err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite predates gorm error translation in some versions
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
