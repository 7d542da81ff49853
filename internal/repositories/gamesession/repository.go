// Package gamesession tracks which campaigns currently have a live session.
// The session hierarchy itself (acts, scheduling, attendance) is owned by
// the campaign subsystem; this repository only answers the question the
// modification gate asks: "is campaign X live right now, and under which
// session?"
package gamesession

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesessionmock github.com/ironvale/campaign-api/internal/repositories/gamesession Repository

import (
	"context"
)

// ActiveSession is the live-session marker for a campaign.
type ActiveSession struct {
	SessionID  string `json:"session_id"`
	CampaignID string `json:"campaign_id"`
	StartedAt  int64  `json:"started_at"`
}

// Repository defines the interface for active-session lookups.
type Repository interface {
	// SetActive marks a campaign as having a live session
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.Internal for storage failures
	SetActive(ctx context.Context, input SetActiveInput) (*SetActiveOutput, error)

	// GetActive returns the campaign's live session
	// Returns errors.NotFound if the campaign has no live session
	// Returns errors.Internal for storage failures
	GetActive(ctx context.Context, input GetActiveInput) (*GetActiveOutput, error)

	// ClearActive ends the campaign's live session; clearing a campaign
	// with no live session is a no-op
	ClearActive(ctx context.Context, input ClearActiveInput) (*ClearActiveOutput, error)
}

// SetActiveInput defines the input for marking a session live
type SetActiveInput struct {
	CampaignID string
	SessionID  string
}

// SetActiveOutput defines the output for marking a session live
type SetActiveOutput struct {
	Session *ActiveSession
}

// GetActiveInput defines the input for looking up the live session
type GetActiveInput struct {
	CampaignID string
}

// GetActiveOutput defines the output for looking up the live session
type GetActiveOutput struct {
	Session *ActiveSession
}

// ClearActiveInput defines the input for ending the live session
type ClearActiveInput struct {
	CampaignID string
}

// ClearActiveOutput defines the output for ending the live session
type ClearActiveOutput struct{}
