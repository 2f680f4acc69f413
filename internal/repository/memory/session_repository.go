package memory

import (
	"time"

	"wa-bazaar-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionTTL is how long an idle conversation keeps its state. A user
// replying after this window starts over (drafts survive in the DB).
const SessionTTL = 30 * time.Minute

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(SessionTTL, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// GetOrCreate returns the live session for a user, creating a fresh idle
// one when none exists or the old one expired.
func (r *SessionRepository) GetOrCreate(userID string) *store.Session {
	if s, found := r.Get(userID); found {
		return s
	}
	s := store.NewSession(userID)
	r.Save(s)
	return s
}

// Save touches the TTL, so every inbound message extends the session.
func (r *SessionRepository) Save(session *store.Session) {
	session.UpdatedAt = time.Now()
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
