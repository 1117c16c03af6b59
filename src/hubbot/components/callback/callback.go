// Package callback decodes button custom IDs into typed actions. Tags are
// parsed once at the boundary; anything unrecognized is an explicit error
// rather than a silent no-op.
package callback

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	KindCastVote Kind = iota
	KindPickCategory
	KindServiceMenu
	KindVoteMenu
	KindTrends
	KindWallets
	KindFindServices
)

// Action is the decoded form of a button custom ID. ProjectID is set only
// for KindCastVote, Category only for KindPickCategory.
type Action struct {
	Kind      Kind
	ProjectID uint64
	Category  string
}

const (
	votePrefix    = "vote_"
	servicePrefix = "service_"
)

// VoteID builds the custom ID for a cast-vote button.
func VoteID(projectID uint64) string {
	return votePrefix + strconv.FormatUint(projectID, 10)
}

// CategoryID builds the custom ID for a category-selection button.
func CategoryID(category string) string {
	return servicePrefix + category
}

// Parse decodes a button custom ID. Unknown tags return an error so the
// dispatcher can log and answer them instead of dropping them on the floor.
func Parse(customID string) (Action, error) {
	switch customID {
	case "service_menu":
		return Action{Kind: KindServiceMenu}, nil
	case "vote_menu":
		return Action{Kind: KindVoteMenu}, nil
	case "trends":
		return Action{Kind: KindTrends}, nil
	case "wallets":
		return Action{Kind: KindWallets}, nil
	case "find_services":
		return Action{Kind: KindFindServices}, nil
	}

	if rest, ok := strings.CutPrefix(customID, votePrefix); ok {
		id, err := strconv.ParseUint(rest, 10, 64)
		if err != nil || id == 0 {
			return Action{}, fmt.Errorf("callback: bad project id in %q", customID)
		}
		return Action{Kind: KindCastVote, ProjectID: id}, nil
	}

	if rest, ok := strings.CutPrefix(customID, servicePrefix); ok {
		if rest == "" {
			return Action{}, fmt.Errorf("callback: empty category in %q", customID)
		}
		return Action{Kind: KindPickCategory, Category: rest}, nil
	}

	return Action{}, fmt.Errorf("callback: unrecognized tag %q", customID)
}
