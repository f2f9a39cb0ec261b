package domain

import (
	"context"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/repository"

	"github.com/stretchr/testify/mock"
)

type sourceMock struct{ mock.Mock }

var _ repository.DataSource = (*sourceMock)(nil)

func (m *sourceMock) OnStart(_ context.Context) error { return nil }
func (m *sourceMock) OnStop(_ context.Context) error  { return nil }

func (m *sourceMock) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *sourceMock) GetTeamRelationships(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *sourceMock) GetUserDreams(ctx context.Context, userID string) ([]entities.Dream, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Dream), args.Error(1)
}

func (m *sourceMock) GetMeetingAttendanceHistory(ctx context.Context, teamID string) ([]entities.MeetingRecord, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MeetingRecord), args.Error(1)
}

func (m *sourceMock) GetWeeklyHistory(ctx context.Context, userID string) (map[string]entities.WeeklyHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]entities.WeeklyHistoryEntry), args.Error(1)
}
