package memory

import (
	"context"

	"github.com/refstats/referee-stats/internal/domain/competition"
	"github.com/refstats/referee-stats/internal/domain/event"
	"github.com/refstats/referee-stats/internal/domain/match"
	"github.com/refstats/referee-stats/internal/domain/participant"
	"github.com/refstats/referee-stats/internal/domain/person"
	"github.com/refstats/referee-stats/internal/domain/referee"
	"github.com/refstats/referee-stats/internal/domain/result"
	"github.com/refstats/referee-stats/internal/domain/team"
	"github.com/refstats/referee-stats/internal/domain/venue"
)

type venueRepo struct{ s *Store }

func (r venueRepo) Upsert(_ context.Context, v venue.Venue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	r.s.state.venues[v.ID] = v
	return nil
}

type competitionRepo struct{ s *Store }

func (r competitionRepo) EnsureCategory(_ context.Context, c competition.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	if _, ok := r.s.state.categories[c.ID]; !ok {
		r.s.state.categories[c.ID] = c
	}
	return nil
}

func (r competitionRepo) Upsert(_ context.Context, c competition.Competition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	r.s.state.competitions[c.ID] = c
	return nil
}

type teamRepo struct{ s *Store }

func (r teamRepo) EnsureClub(_ context.Context, c team.Club) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	if _, ok := r.s.state.clubs[c.ID]; !ok {
		r.s.state.clubs[c.ID] = c
	}
	return nil
}

func (r teamRepo) Upsert(_ context.Context, t team.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	r.s.state.teams[t.ID] = t
	return nil
}

type personRepo struct{ s *Store }

func (r personRepo) Upsert(_ context.Context, p person.Person) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return 0, r.s.ForcedErr
	}
	if existing, ok := r.s.state.persons[p.FogisID]; ok {
		p.ID = existing.ID
		r.s.state.persons[p.FogisID] = p
		return p.ID, nil
	}
	r.s.state.nextPersonID++
	p.ID = r.s.state.nextPersonID
	r.s.state.persons[p.FogisID] = p
	return p.ID, nil
}

type refereeRepo struct{ s *Store }

func (r refereeRepo) EnsureRole(_ context.Context, role referee.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	if _, ok := r.s.state.roles[role.ID]; !ok {
		r.s.state.roles[role.ID] = role
	}
	return nil
}

func (r refereeRepo) Upsert(_ context.Context, ref referee.Referee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	r.s.state.referees[ref.ID] = ref
	return nil
}

func (r refereeRepo) UpsertAssignment(_ context.Context, a referee.Assignment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	key := assignmentKey{matchID: a.MatchID, refereeID: a.RefereeID, roleID: a.RoleID}
	if existing, ok := r.s.state.assignments[key]; ok {
		existing.StatusName = a.StatusName
		existing.FogisID = a.FogisID
		r.s.state.assignments[key] = existing
		return nil
	}
	a.ID = int64(len(r.s.state.assignments) + 1)
	r.s.state.assignments[key] = a
	return nil
}

type matchRepo struct{ s *Store }

func (r matchRepo) Upsert(_ context.Context, m match.Match) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return 0, r.s.ForcedErr
	}
	if existing, ok := r.s.state.matches[m.FogisID]; ok {
		m.ID = existing.ID
		r.s.state.matches[m.FogisID] = m
		return m.ID, nil
	}
	r.s.state.nextMatchID++
	m.ID = r.s.state.nextMatchID
	r.s.state.matches[m.FogisID] = m
	return m.ID, nil
}

func (r matchRepo) FindByFogisID(_ context.Context, fogisID string) (match.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return match.Match{}, r.s.ForcedErr
	}
	m, ok := r.s.state.matches[fogisID]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return m, nil
}

func (r matchRepo) UpsertTeam(_ context.Context, mt match.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	for id, existing := range r.s.state.matchTeams {
		if existing.MatchID == mt.MatchID && existing.TeamID == mt.TeamID {
			existing.IsHomeTeam = mt.IsHomeTeam
			r.s.state.matchTeams[id] = existing
			return nil
		}
	}
	r.s.state.nextMatchTeamID++
	mt.ID = r.s.state.nextMatchTeamID
	r.s.state.matchTeams[mt.ID] = mt
	return nil
}

func (r matchRepo) FindTeamByID(_ context.Context, id int64) (match.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return match.Team{}, r.s.ForcedErr
	}
	mt, ok := r.s.state.matchTeams[id]
	if !ok {
		return match.Team{}, match.ErrNotFound
	}
	return mt, nil
}

type resultRepo struct{ s *Store }

func (r resultRepo) EnsureType(_ context.Context, t result.Type) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	if _, ok := r.s.state.resultTypes[t.ID]; !ok {
		r.s.state.resultTypes[t.ID] = t
	}
	return nil
}

func (r resultRepo) Find(_ context.Context, fogisID string, matchID, typeID int64) (result.Result, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return result.Result{}, r.s.ForcedErr
	}
	if fogisID != "" {
		for _, res := range r.s.state.results {
			if res.FogisID == fogisID {
				return res, nil
			}
		}
	}
	for _, res := range r.s.state.results {
		if res.MatchID == matchID && res.TypeID == typeID {
			return res, nil
		}
	}
	return result.Result{}, result.ErrNotFound
}

func (r resultRepo) Create(_ context.Context, res result.Result) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	r.s.state.nextResultID++
	res.ID = r.s.state.nextResultID
	r.s.state.results[res.ID] = res
	return nil
}

func (r resultRepo) Update(_ context.Context, res result.Result) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	if _, ok := r.s.state.results[res.ID]; !ok {
		return result.ErrNotFound
	}
	r.s.state.results[res.ID] = res
	return nil
}

type eventRepo struct{ s *Store }

func (r eventRepo) EnsureType(_ context.Context, t event.Type) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	if _, ok := r.s.state.eventTypes[t.ID]; !ok {
		r.s.state.eventTypes[t.ID] = t
	}
	return nil
}

func (r eventRepo) FindByFogisID(_ context.Context, fogisID string) (event.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return event.Event{}, r.s.ForcedErr
	}
	for _, e := range r.s.state.events {
		if e.FogisID == fogisID {
			return e, nil
		}
	}
	return event.Event{}, event.ErrNotFound
}

func (r eventRepo) Create(_ context.Context, e event.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	r.s.state.nextEventID++
	e.ID = r.s.state.nextEventID
	r.s.state.events[e.ID] = e
	return nil
}

func (r eventRepo) Update(_ context.Context, e event.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return r.s.ForcedErr
	}
	if _, ok := r.s.state.events[e.ID]; !ok {
		return event.ErrNotFound
	}
	r.s.state.events[e.ID] = e
	return nil
}

type participantRepo struct{ s *Store }

func (r participantRepo) FindByFogisID(_ context.Context, fogisID string) (participant.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return participant.Participant{}, r.s.ForcedErr
	}
	p, ok := r.s.state.participants[fogisID]
	if !ok {
		return participant.Participant{}, participant.ErrNotFound
	}
	return p, nil
}

func (r participantRepo) Upsert(_ context.Context, p participant.Participant) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ForcedErr != nil {
		return 0, r.s.ForcedErr
	}
	if existing, ok := r.s.state.participants[p.FogisID]; ok {
		p.ID = existing.ID
		r.s.state.participants[p.FogisID] = p
		return p.ID, nil
	}
	r.s.state.nextParticipantID++
	p.ID = r.s.state.nextParticipantID
	r.s.state.participants[p.FogisID] = p
	return p.ID, nil
}
