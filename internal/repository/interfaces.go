// Package repository contains data source interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// DirectoryInterface exposes the organization roster and team structure.
type DirectoryInterface interface {
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	GetTeamRelationships(ctx context.Context) ([]entities.Team, error)
}

// DreamInterface exposes per-user dream collections. Used when a user's
// DreamBook was not materialized with the roster.
type DreamInterface interface {
	GetUserDreams(ctx context.Context, userID string) ([]entities.Dream, error)
}

// MeetingInterface exposes team meeting attendance history.
type MeetingInterface interface {
	GetMeetingAttendanceHistory(ctx context.Context, teamID string) ([]entities.MeetingRecord, error)
}

// EngagementInterface exposes per-user weekly engagement history keyed by
// ISO week.
type EngagementInterface interface {
	GetWeeklyHistory(ctx context.Context, userID string) (map[string]entities.WeeklyHistoryEntry, error)
}
