// Package memory implements the data source as a local in-process store.
// It backs local-only deployments and tests where no Postgres is reachable;
// the report engine cannot tell it apart from the production backend.
package memory

import (
	"context"
	"sync"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"

	"go.uber.org/zap"
)

// Store holds all collaborator data in guarded maps.
type Store struct {
	log *zap.SugaredLogger

	mu       sync.RWMutex
	users    []entities.User
	teams    []entities.Team
	dreams   map[string][]entities.Dream
	meetings map[string][]entities.MeetingRecord
	history  map[string]map[string]entities.WeeklyHistoryEntry
}

// New creates an empty in-memory store.
func New(log *zap.SugaredLogger) *Store {
	return &Store{
		log:      log.Named("repo.memory"),
		dreams:   make(map[string][]entities.Dream),
		meetings: make(map[string][]entities.MeetingRecord),
		history:  make(map[string]map[string]entities.WeeklyHistoryEntry),
	}
}

// OnStart logs readiness; there is nothing to connect to.
func (s *Store) OnStart(_ context.Context) error {
	s.log.Infow("memory store ready (local fallback)")
	return nil
}

// OnStop is a no-op.
func (s *Store) OnStop(_ context.Context) error { return nil }

// SeedUsers replaces the roster.
func (s *Store) SeedUsers(users []entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]entities.User(nil), users...)
}

// SeedTeams replaces the team relationships.
func (s *Store) SeedTeams(teams []entities.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = append([]entities.Team(nil), teams...)
}

// SeedDreams replaces one user's dream book.
func (s *Store) SeedDreams(userID string, dreams []entities.Dream) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dreams[userID] = append([]entities.Dream(nil), dreams...)
}

// SeedMeetings replaces one team's meeting history.
func (s *Store) SeedMeetings(teamID string, meetings []entities.MeetingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings[teamID] = append([]entities.MeetingRecord(nil), meetings...)
}

// SeedWeeklyHistory replaces one user's engagement history.
func (s *Store) SeedWeeklyHistory(userID string, history map[string]entities.WeeklyHistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]entities.WeeklyHistoryEntry, len(history))
	for k, v := range history {
		copied[k] = v
	}
	s.history[userID] = copied
}

// GetAllUsers returns the seeded roster in seed order.
func (s *Store) GetAllUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.User(nil), s.users...), nil
}

// GetTeamRelationships returns the seeded teams in seed order.
func (s *Store) GetTeamRelationships(_ context.Context) ([]entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Team(nil), s.teams...), nil
}

// GetUserDreams returns the user's seeded dream book, empty when unseeded.
func (s *Store) GetUserDreams(_ context.Context, userID string) ([]entities.Dream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Dream(nil), s.dreams[userID]...), nil
}

// GetMeetingAttendanceHistory returns the team's seeded meetings.
func (s *Store) GetMeetingAttendanceHistory(_ context.Context, teamID string) ([]entities.MeetingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.MeetingRecord(nil), s.meetings[teamID]...), nil
}

// GetWeeklyHistory returns the user's seeded engagement history.
func (s *Store) GetWeeklyHistory(_ context.Context, userID string) (map[string]entities.WeeklyHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make(map[string]entities.WeeklyHistoryEntry, len(s.history[userID]))
	for k, v := range s.history[userID] {
		copied[k] = v
	}
	return copied, nil
}
