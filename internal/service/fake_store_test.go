package service

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
)

type pairKey [2]string

type recordKey struct {
	domain  models.Domain
	ownerID string
	id      string
}

// fakeStore is an in-memory UserRepository, RemoteRecordRepository and
// Transactor. A failed transaction restores the state it started from.
type fakeStore struct {
	mu sync.Mutex

	users     map[string]models.User
	relations map[pairKey]models.Relationship
	groups    map[string]models.Group
	members   map[pairKey]models.GroupMember
	invites   map[pairKey]models.GroupInvite
	records   map[recordKey]models.RemoteRecord

	txCount int
}

func newFakeStore(users ...models.User) *fakeStore {
	s := &fakeStore{
		users:     make(map[string]models.User),
		relations: make(map[pairKey]models.Relationship),
		groups:    make(map[string]models.Group),
		members:   make(map[pairKey]models.GroupMember),
		invites:   make(map[pairKey]models.GroupInvite),
		records:   make(map[recordKey]models.RemoteRecord),
	}
	for _, u := range users {
		s.users[u.UserID] = u
	}
	return s
}

func (s *fakeStore) InTx(ctx context.Context, fn func(ctx context.Context, tx store.RelationTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txCount++
	relations, groups := maps.Clone(s.relations), maps.Clone(s.groups)
	members, invites, records := maps.Clone(s.members), maps.Clone(s.invites), maps.Clone(s.records)

	if err := fn(ctx, fakeTx{s}); err != nil {
		s.relations, s.groups = relations, groups
		s.members, s.invites, s.records = members, invites, records
		return err
	}
	return nil
}

// relation returns the stored side or nil, for assertions.
func (s *fakeStore) relation(subjectID, counterpartID string) *models.Relationship {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rel, ok := s.relations[pairKey{subjectID, counterpartID}]; ok {
		return &rel
	}
	return nil
}

func (s *fakeStore) record(domain models.Domain, ownerID, id string) (models.RemoteRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[recordKey{domain, ownerID, id}]
	return rec, ok
}

func (s *fakeStore) memberIDs(groupID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0)
	for k := range s.members {
		if k[0] == groupID {
			ids = append(ids, k[1])
		}
	}
	slices.Sort(ids)
	return ids
}

func (s *fakeStore) putRecord(rec models.RemoteRecord) models.RemoteRecord {
	key := recordKey{rec.Domain, rec.OwnerID, rec.ID}
	prev, ok := s.records[key]
	if ok {
		rec.Version = prev.Version + 1
		if rec.UpdatedAt.Before(prev.UpdatedAt) {
			rec.UpdatedAt = prev.UpdatedAt
		}
	} else {
		rec.Version = 1
	}
	s.records[key] = rec
	return rec
}

// ── UserRepository ───────────────────────────────────────────────────────────

func (s *fakeStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Login == user.Login {
			return models.User{}, store.ErrLoginAlreadyExists
		}
		if u.FriendCode == user.FriendCode {
			return models.User{}, store.ErrFriendCodeTaken
		}
	}
	s.users[user.UserID] = user
	return user, nil
}

func (s *fakeStore) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Login == login {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (s *fakeStore) FindUserByID(_ context.Context, userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		return u, nil
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (s *fakeStore) FindUserByFriendCode(_ context.Context, code string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.FriendCode, code) {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

// ── RemoteRecordRepository ───────────────────────────────────────────────────

func (s *fakeStore) Upsert(_ context.Context, rec models.RemoteRecord) (models.RemoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putRecord(rec), nil
}

func (s *fakeStore) ListChangedSince(_ context.Context, domain models.Domain, ownerID string, since *time.Time) ([]models.RemoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.RemoteRecord, 0)
	for k, rec := range s.records {
		if k.domain == domain && k.ownerID == ownerID && (since == nil || rec.UpdatedAt.After(*since)) {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b models.RemoteRecord) int { return a.UpdatedAt.Compare(b.UpdatedAt) })
	return out, nil
}

// ── RelationTx ───────────────────────────────────────────────────────────────

// fakeTx runs with fakeStore.mu already held by InTx.
type fakeTx struct {
	s *fakeStore
}

func (t fakeTx) GetUser(_ context.Context, userID string) (*models.User, error) {
	if u, ok := t.s.users[userID]; ok {
		return &u, nil
	}
	return nil, nil
}

func (t fakeTx) GetRelation(_ context.Context, subjectID, counterpartID string) (*models.Relationship, error) {
	if rel, ok := t.s.relations[pairKey{subjectID, counterpartID}]; ok {
		return &rel, nil
	}
	return nil, nil
}

func (t fakeTx) PutRelation(_ context.Context, rel models.Relationship) error {
	t.s.relations[pairKey{rel.SubjectID, rel.CounterpartID}] = rel
	return nil
}

func (t fakeTx) DeleteRelation(_ context.Context, subjectID, counterpartID string) error {
	delete(t.s.relations, pairKey{subjectID, counterpartID})
	return nil
}

func (t fakeTx) GetGroup(_ context.Context, groupID string) (*models.Group, error) {
	if g, ok := t.s.groups[groupID]; ok {
		return &g, nil
	}
	return nil, nil
}

func (t fakeTx) PutGroup(_ context.Context, group models.Group) error {
	t.s.groups[group.GroupID] = group
	return nil
}

func (t fakeTx) DeleteGroup(_ context.Context, groupID string) error {
	delete(t.s.groups, groupID)
	return nil
}

func (t fakeTx) ListGroupMembers(_ context.Context, groupID string) ([]models.GroupMember, error) {
	out := make([]models.GroupMember, 0)
	for k, m := range t.s.members {
		if k[0] == groupID {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b models.GroupMember) int {
		if c := a.JoinedAt.Compare(b.JoinedAt); c != 0 {
			return c
		}
		return strings.Compare(a.UserID, b.UserID)
	})
	return out, nil
}

func (t fakeTx) AddGroupMember(_ context.Context, member models.GroupMember) (bool, error) {
	key := pairKey{member.GroupID, member.UserID}
	if _, ok := t.s.members[key]; ok {
		return false, nil
	}
	t.s.members[key] = member
	return true, nil
}

func (t fakeTx) RemoveGroupMember(_ context.Context, groupID, userID string) error {
	delete(t.s.members, pairKey{groupID, userID})
	return nil
}

func (t fakeTx) GetGroupInvite(_ context.Context, groupID, inviteeID string) (*models.GroupInvite, error) {
	if inv, ok := t.s.invites[pairKey{groupID, inviteeID}]; ok {
		return &inv, nil
	}
	return nil, nil
}

func (t fakeTx) PutGroupInvite(_ context.Context, invite models.GroupInvite) error {
	t.s.invites[pairKey{invite.GroupID, invite.InviteeID}] = invite
	return nil
}

func (t fakeTx) DeleteGroupInvite(_ context.Context, groupID, inviteeID string) error {
	delete(t.s.invites, pairKey{groupID, inviteeID})
	return nil
}

func (t fakeTx) ListGroupInvites(_ context.Context, groupID string) ([]models.GroupInvite, error) {
	out := make([]models.GroupInvite, 0)
	for k, inv := range t.s.invites {
		if k[0] == groupID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (t fakeTx) PutRemoteRecord(_ context.Context, rec models.RemoteRecord) (models.RemoteRecord, error) {
	return t.s.putRecord(rec), nil
}
