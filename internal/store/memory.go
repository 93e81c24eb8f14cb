package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	archivedomain "growth-archive-backend/internal/archive/domain"
	archiverepo "growth-archive-backend/internal/archive/repository"
	authdomain "growth-archive-backend/internal/auth/domain"
	authrepo "growth-archive-backend/internal/auth/repository"
	notifdomain "growth-archive-backend/internal/notification/domain"
	notifrepo "growth-archive-backend/internal/notification/repository"

	"github.com/google/uuid"
)

// MemoryManager keeps everything in process memory. It backs local runs
// without DATABASE_DSN and the service tests.
//
// Transactions are serialized and roll back by restoring a snapshot taken
// before fn runs. They do not nest. Writes made outside a transaction while
// one is in flight can be lost on rollback.
type MemoryManager struct {
	txMu sync.Mutex

	mu    sync.RWMutex
	seq   int64
	state memoryState
}

type memoryState struct {
	users         map[string]memRecord[authdomain.User]
	archives      map[string]memRecord[archivedomain.Archive]
	notifications map[string]memRecord[notifdomain.Notification]
	deviceTokens  map[string]memRecord[notifdomain.DeviceToken] // keyed by token
}

// memRecord remembers insertion order so that rows created in the same
// instant still list newest first.
type memRecord[T any] struct {
	v   T
	seq int64
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{state: memoryState{
		users:         map[string]memRecord[authdomain.User]{},
		archives:      map[string]memRecord[archivedomain.Archive]{},
		notifications: map[string]memRecord[notifdomain.Notification]{},
		deviceTokens:  map[string]memRecord[notifdomain.DeviceToken]{},
	}}
}

func (m *MemoryManager) Users() authrepo.UserRepository                 { return memUsers{m} }
func (m *MemoryManager) Archives() archiverepo.ArchiveRepository         { return memArchives{m} }
func (m *MemoryManager) Notifications() notifrepo.NotificationRepository { return memNotifications{m} }
func (m *MemoryManager) DeviceTokens() notifrepo.DeviceTokenRepository   { return memDeviceTokens{m} }

func (m *MemoryManager) Transaction(ctx context.Context, fn func(tx Manager) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	snapshot := m.state.clone()
	m.mu.RUnlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.state = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *MemoryManager) next() int64 {
	m.seq++
	return m.seq
}

func (s memoryState) clone() memoryState {
	return memoryState{
		users:         cloneMap(s.users),
		archives:      cloneMap(s.archives),
		notifications: cloneMap(s.notifications),
		deviceTokens:  cloneMap(s.deviceTokens),
	}
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// newestFirst sorts by creation time, then insertion order, descending.
func newestFirst[T any](records []memRecord[T], createdAt func(T) time.Time) []T {
	sort.Slice(records, func(i, j int) bool {
		ti, tj := createdAt(records[i].v), createdAt(records[j].v)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return records[i].seq > records[j].seq
	})
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = r.v
	}
	return out
}

func stringField(column string, v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case archivedomain.Status:
		return string(s), nil
	default:
		return "", fmt.Errorf("column %s: unsupported value %T", column, v)
	}
}

type memUsers struct{ m *MemoryManager }

func (r memUsers) Create(ctx context.Context, user *authdomain.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, rec := range r.m.state.users {
		if rec.v.Phone == user.Phone {
			return authrepo.ErrDuplicatePhone
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.m.state.users[user.ID] = memRecord[authdomain.User]{v: *user, seq: r.m.next()}
	return nil
}

func (r memUsers) FindByPhone(ctx context.Context, phone string) (*authdomain.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, rec := range r.m.state.users {
		if rec.v.Phone == phone {
			u := rec.v
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	rec, ok := r.m.state.users[id]
	if !ok {
		return nil, nil
	}
	u := rec.v
	return &u, nil
}

func (r memUsers) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	rec, ok := r.m.state.users[id]
	if !ok {
		return 0, nil
	}
	for column, value := range fields {
		s, err := stringField(column, value)
		if err != nil {
			return 0, err
		}
		switch column {
		case "name":
			rec.v.Name = s
		case "student_id":
			rec.v.StudentID = s
		case "avatar":
			rec.v.Avatar = s
		case "grade":
			rec.v.Grade = s
		case "major":
			rec.v.Major = s
		case "university":
			rec.v.University = s
		default:
			return 0, fmt.Errorf("profiles: unknown column %s", column)
		}
	}
	rec.v.UpdatedAt = time.Now()
	r.m.state.users[id] = rec
	return 1, nil
}

func (r memUsers) Delete(ctx context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	delete(r.m.state.users, id)
	return nil
}

type memArchives struct{ m *MemoryManager }

func (r memArchives) Create(ctx context.Context, archive *archivedomain.Archive) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if archive.ID == "" {
		archive.ID = uuid.New().String()
	}
	archive.CreatedAt = time.Now()
	archive.UpdatedAt = archive.CreatedAt
	r.m.state.archives[archive.ID] = memRecord[archivedomain.Archive]{v: *archive, seq: r.m.next()}
	return nil
}

func (r memArchives) FindByID(ctx context.Context, userID, id string) (*archivedomain.Archive, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	rec, ok := r.m.state.archives[id]
	if !ok || rec.v.UserID != userID {
		return nil, nil
	}
	a := rec.v
	return &a, nil
}

func (r memArchives) FindByUserID(ctx context.Context, userID, category string) ([]*archivedomain.Archive, error) {
	r.m.mu.RLock()
	var matched []memRecord[archivedomain.Archive]
	for _, rec := range r.m.state.archives {
		if rec.v.UserID == userID && (category == "" || rec.v.Category == category) {
			matched = append(matched, rec)
		}
	}
	r.m.mu.RUnlock()

	sorted := newestFirst(matched, func(a archivedomain.Archive) time.Time { return a.CreatedAt })
	out := make([]*archivedomain.Archive, len(sorted))
	for i := range sorted {
		out[i] = &sorted[i]
	}
	return out, nil
}

func (r memArchives) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	rec, ok := r.m.state.archives[id]
	if !ok || rec.v.UserID != userID {
		return 0, nil
	}
	for column, value := range fields {
		s, err := stringField(column, value)
		if err != nil {
			return 0, err
		}
		switch column {
		case "title":
			rec.v.Title = s
		case "category":
			rec.v.Category = s
		case "organization":
			rec.v.Organization = s
		case "date":
			rec.v.Date = s
		case "status":
			rec.v.Status = archivedomain.Status(s)
		case "image_url":
			rec.v.ImageURL = s
		case "description":
			rec.v.Description = s
		default:
			return 0, fmt.Errorf("archives: unknown column %s", column)
		}
	}
	rec.v.UpdatedAt = time.Now()
	r.m.state.archives[id] = rec
	return 1, nil
}

func (r memArchives) Delete(ctx context.Context, userID, id string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	rec, ok := r.m.state.archives[id]
	if !ok || rec.v.UserID != userID {
		return 0, nil
	}
	delete(r.m.state.archives, id)
	return 1, nil
}

func (r memArchives) DeleteByUserID(ctx context.Context, userID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for id, rec := range r.m.state.archives {
		if rec.v.UserID == userID {
			delete(r.m.state.archives, id)
		}
	}
	return nil
}

type memNotifications struct{ m *MemoryManager }

func (r memNotifications) Create(ctx context.Context, n *notifdomain.Notification) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.m.state.notifications[n.ID] = memRecord[notifdomain.Notification]{v: *n, seq: r.m.next()}
	return nil
}

func (r memNotifications) FindByUserID(ctx context.Context, userID string) ([]*notifdomain.Notification, error) {
	r.m.mu.RLock()
	var matched []memRecord[notifdomain.Notification]
	for _, rec := range r.m.state.notifications {
		if rec.v.UserID == userID {
			matched = append(matched, rec)
		}
	}
	r.m.mu.RUnlock()

	sorted := newestFirst(matched, func(n notifdomain.Notification) time.Time { return n.CreatedAt })
	out := make([]*notifdomain.Notification, len(sorted))
	for i := range sorted {
		out[i] = &sorted[i]
	}
	return out, nil
}

func (r memNotifications) MarkRead(ctx context.Context, userID, id string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	rec, ok := r.m.state.notifications[id]
	if !ok || rec.v.UserID != userID {
		return 0, nil
	}
	rec.v.Read = true
	r.m.state.notifications[id] = rec
	return 1, nil
}

func (r memNotifications) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	var n int64
	for id, rec := range r.m.state.notifications {
		if rec.v.UserID == userID {
			rec.v.Read = true
			r.m.state.notifications[id] = rec
			n++
		}
	}
	return n, nil
}

func (r memNotifications) DeleteByUserID(ctx context.Context, userID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for id, rec := range r.m.state.notifications {
		if rec.v.UserID == userID {
			delete(r.m.state.notifications, id)
		}
	}
	return nil
}

type memDeviceTokens struct{ m *MemoryManager }

func (r memDeviceTokens) Save(ctx context.Context, userID, token, deviceInfo string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	now := time.Now()
	if rec, ok := r.m.state.deviceTokens[token]; ok {
		rec.v.UserID = userID
		rec.v.DeviceInfo = deviceInfo
		rec.v.UpdatedAt = now
		r.m.state.deviceTokens[token] = rec
		return nil
	}
	r.m.state.deviceTokens[token] = memRecord[notifdomain.DeviceToken]{
		v: notifdomain.DeviceToken{
			ID:         uuid.New().String(),
			UserID:     userID,
			Token:      token,
			DeviceInfo: deviceInfo,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		seq: r.m.next(),
	}
	return nil
}

func (r memDeviceTokens) FindByUserID(ctx context.Context, userID string) ([]notifdomain.DeviceToken, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	var tokens []notifdomain.DeviceToken
	for _, rec := range r.m.state.deviceTokens {
		if rec.v.UserID == userID {
			tokens = append(tokens, rec.v)
		}
	}
	return tokens, nil
}

func (r memDeviceTokens) Delete(ctx context.Context, token string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	delete(r.m.state.deviceTokens, token)
	return nil
}

func (r memDeviceTokens) DeleteForUser(ctx context.Context, userID, token string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	rec, ok := r.m.state.deviceTokens[token]
	if !ok || rec.v.UserID != userID {
		return 0, nil
	}
	delete(r.m.state.deviceTokens, token)
	return 1, nil
}

func (r memDeviceTokens) DeleteByUserID(ctx context.Context, userID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for token, rec := range r.m.state.deviceTokens {
		if rec.v.UserID == userID {
			delete(r.m.state.deviceTokens, token)
		}
	}
	return nil
}
