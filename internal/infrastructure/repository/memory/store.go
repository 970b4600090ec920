// Package memory holds a map-backed implementation of the domain
// repositories for tests. One Store backs per-entity adapters for
// every repository interface and gives the same transactional surface
// as postgres, with rollback restoring the pre-transaction state.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/refstats/referee-stats/internal/domain/competition"
	"github.com/refstats/referee-stats/internal/domain/event"
	"github.com/refstats/referee-stats/internal/domain/match"
	"github.com/refstats/referee-stats/internal/domain/participant"
	"github.com/refstats/referee-stats/internal/domain/person"
	"github.com/refstats/referee-stats/internal/domain/referee"
	"github.com/refstats/referee-stats/internal/domain/result"
	"github.com/refstats/referee-stats/internal/domain/store"
	"github.com/refstats/referee-stats/internal/domain/team"
	"github.com/refstats/referee-stats/internal/domain/venue"
)

type assignmentKey struct {
	matchID   int64
	refereeID int64
	roleID    int64
}

type state struct {
	venues       map[int64]venue.Venue
	categories   map[int64]competition.Category
	competitions map[int64]competition.Competition
	clubs        map[int64]team.Club
	teams        map[int64]team.Team
	persons      map[string]person.Person
	referees     map[int64]referee.Referee
	roles        map[int64]referee.Role
	assignments  map[assignmentKey]referee.Assignment
	matches      map[string]match.Match
	matchTeams   map[int64]match.Team
	resultTypes  map[int64]result.Type
	results      map[int64]result.Result
	eventTypes   map[int64]event.Type
	events       map[int64]event.Event
	participants map[string]participant.Participant

	nextPersonID      int64
	nextMatchID       int64
	nextMatchTeamID   int64
	nextResultID      int64
	nextEventID       int64
	nextParticipantID int64
}

func newState() *state {
	return &state{
		venues:       map[int64]venue.Venue{},
		categories:   map[int64]competition.Category{},
		competitions: map[int64]competition.Competition{},
		clubs:        map[int64]team.Club{},
		teams:        map[int64]team.Team{},
		persons:      map[string]person.Person{},
		referees:     map[int64]referee.Referee{},
		roles:        map[int64]referee.Role{},
		assignments:  map[assignmentKey]referee.Assignment{},
		matches:      map[string]match.Match{},
		matchTeams:   map[int64]match.Team{},
		resultTypes:  map[int64]result.Type{},
		results:      map[int64]result.Result{},
		eventTypes:   map[int64]event.Type{},
		events:       map[int64]event.Event{},
		participants: map[string]participant.Participant{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.venues {
		c.venues[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.competitions {
		c.competitions[k] = v
	}
	for k, v := range s.clubs {
		c.clubs[k] = v
	}
	for k, v := range s.teams {
		c.teams[k] = v
	}
	for k, v := range s.persons {
		c.persons[k] = v
	}
	for k, v := range s.referees {
		c.referees[k] = v
	}
	for k, v := range s.roles {
		c.roles[k] = v
	}
	for k, v := range s.assignments {
		c.assignments[k] = v
	}
	for k, v := range s.matches {
		c.matches[k] = v
	}
	for k, v := range s.matchTeams {
		c.matchTeams[k] = v
	}
	for k, v := range s.resultTypes {
		c.resultTypes[k] = v
	}
	for k, v := range s.results {
		c.results[k] = v
	}
	for k, v := range s.eventTypes {
		c.eventTypes[k] = v
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	for k, v := range s.participants {
		c.participants[k] = v
	}
	c.nextPersonID = s.nextPersonID
	c.nextMatchID = s.nextMatchID
	c.nextMatchTeamID = s.nextMatchTeamID
	c.nextResultID = s.nextResultID
	c.nextEventID = s.nextEventID
	c.nextParticipantID = s.nextParticipantID
	return c
}

// Store is the map-backed fake. ForcedErr, when set, is returned by
// every repository operation; tests use it to simulate storage failure.
type Store struct {
	mu        sync.Mutex
	state     *state
	ForcedErr error
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) stores() store.Stores {
	return store.Stores{
		Venues:       venueRepo{s},
		Competitions: competitionRepo{s},
		Teams:        teamRepo{s},
		Persons:      personRepo{s},
		Referees:     refereeRepo{s},
		Matches:      matchRepo{s},
		Results:      resultRepo{s},
		Events:       eventRepo{s},
		Participants: participantRepo{s},
	}
}

// Stores exposes the repositories outside a transaction, mainly for
// test setup and assertions.
func (s *Store) Stores() store.Stores {
	return s.stores()
}

// Begin snapshots the current state. Commit keeps the changes made
// since; Rollback restores the snapshot.
func (s *Store) Begin(_ context.Context) (store.Tx, error) {
	s.mu.Lock()
	snapshot := s.state.clone()
	s.mu.Unlock()
	return &memTx{store: s, snapshot: snapshot}, nil
}

type memTx struct {
	store    *Store
	snapshot *state
	done     bool
}

func (t *memTx) Stores() store.Stores {
	return t.store.stores()
}

func (t *memTx) Commit() error {
	t.done = true
	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Lock()
	t.store.state = t.snapshot
	t.store.mu.Unlock()
	return nil
}

// Counts reports row counts per table for test assertions.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"venues":       len(s.state.venues),
		"categories":   len(s.state.categories),
		"competitions": len(s.state.competitions),
		"clubs":        len(s.state.clubs),
		"teams":        len(s.state.teams),
		"persons":      len(s.state.persons),
		"referees":     len(s.state.referees),
		"roles":        len(s.state.roles),
		"assignments":  len(s.state.assignments),
		"matches":      len(s.state.matches),
		"matchTeams":   len(s.state.matchTeams),
		"resultTypes":  len(s.state.resultTypes),
		"results":      len(s.state.results),
		"eventTypes":   len(s.state.eventTypes),
		"events":       len(s.state.events),
		"participants": len(s.state.participants),
	}
}

func (s *Store) VenueByID(id int64) (venue.Venue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state.venues[id]
	return v, ok
}

func (s *Store) CompetitionByID(id int64) (competition.Competition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.state.competitions[id]
	return c, ok
}

func (s *Store) TeamByID(id int64) (team.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.state.teams[id]
	return t, ok
}

func (s *Store) ClubByID(id int64) (team.Club, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.state.clubs[id]
	return c, ok
}

func (s *Store) PersonByFogisID(fogisID string) (person.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.persons[fogisID]
	return p, ok
}

func (s *Store) MatchByFogisID(fogisID string) (match.Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.state.matches[fogisID]
	return m, ok
}

func (s *Store) ParticipantByFogisID(fogisID string) (participant.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.participants[fogisID]
	return p, ok
}

func (s *Store) EventTypeByID(id int64) (event.Type, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.state.eventTypes[id]
	return t, ok
}

func (s *Store) AssignmentFor(matchID, refereeID, roleID int64) (referee.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.assignments[assignmentKey{matchID: matchID, refereeID: refereeID, roleID: roleID}]
	return a, ok
}

// MatchTeamsFor returns the match team rows of one match, home side
// first.
func (s *Store) MatchTeamsFor(matchID int64) []match.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []match.Team
	for _, mt := range s.state.matchTeams {
		if mt.MatchID == matchID {
			out = append(out, mt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsHomeTeam != out[j].IsHomeTeam {
			return out[i].IsHomeTeam
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Results returns all stored results in id order.
func (s *Store) Results() []result.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]result.Result, 0, len(s.state.results))
	for _, r := range s.state.results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Events returns all stored events in id order.
func (s *Store) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]event.Event, 0, len(s.state.events))
	for _, e := range s.state.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
