package service

import (
	"context"
	"sync"

	"github.com/repairdesk/support-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User
	findErr   error
	lastPatch domain.UserPatch
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = cloneUser(u)
	}
	return r
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	r.lastPatch = p
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsBusiness != nil {
		u.IsBusiness = *p.IsBusiness
	}
	if p.BusinessName != nil {
		u.BusinessName = *p.BusinessName
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRequestRepo struct {
	reqs map[string]*domain.SupportRequest
}

func newStubRequestRepo(reqs ...*domain.SupportRequest) *stubRequestRepo {
	r := &stubRequestRepo{reqs: make(map[string]*domain.SupportRequest)}
	for _, req := range reqs {
		clone := *req
		r.reqs[req.ID] = &clone
	}
	return r
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.SupportRequest) error {
	clone := *req
	r.reqs[req.ID] = &clone
	return nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.SupportRequest, error) {
	req, ok := r.reqs[id]
	if !ok {
		return nil, domain.ErrSupportRequestNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *stubRequestRepo) List(_ context.Context) ([]*domain.SupportRequest, error) {
	out := make([]*domain.SupportRequest, 0, len(r.reqs))
	for _, req := range r.reqs {
		clone := *req
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRequestRepo) ListByUser(_ context.Context, userID string) ([]*domain.SupportRequest, error) {
	var out []*domain.SupportRequest
	for _, req := range r.reqs {
		if req.UserID == userID {
			clone := *req
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubRequestRepo) Update(_ context.Context, id string, p domain.SupportRequestPatch) (*domain.SupportRequest, error) {
	req, ok := r.reqs[id]
	if !ok {
		return nil, domain.ErrSupportRequestNotFound
	}
	if p.DeviceType != nil {
		req.DeviceType = *p.DeviceType
	}
	if p.ProblemDescription != nil {
		req.ProblemDescription = *p.ProblemDescription
	}
	if p.Quote != nil {
		req.Quote = p.Quote
	}
	if p.ScheduledDate != nil {
		req.ScheduledDate = p.ScheduledDate
	}
	if p.Status != nil {
		req.Status = *p.Status
	}
	clone := *req
	return &clone, nil
}

func (r *stubRequestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reqs[id]; !ok {
		return domain.ErrSupportRequestNotFound
	}
	delete(r.reqs, id)
	return nil
}

type stubJobRepo struct {
	jobs map[string]*domain.Job
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	clone := *j
	r.jobs[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		clone := *j
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, id string, p domain.JobPatch) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if p.Priority != nil {
		j.Priority = *p.Priority
	}
	if p.Technician != nil {
		j.Technician = *p.Technician
	}
	if p.CompletedAt != nil {
		j.CompletedAt = p.CompletedAt
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type stubAuditRepo struct {
	events []*domain.AuditEvent
}

func (r *stubAuditRepo) Insert(_ context.Context, e *domain.AuditEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *stubAuditRepo) ListByEntity(_ context.Context, entity, id string) ([]*domain.AuditEvent, error) {
	var out []*domain.AuditEvent
	for _, e := range r.events {
		if e.Entity == entity && e.EntityID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

// recorder captures audit events synchronously.
type recorder struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recorder) Record(e domain.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, len(r.events))
	for i, e := range r.events {
		out[i] = e.Action
	}
	return out
}

type stubSessionCache struct {
	sessions map[string]domain.Session
	getErr   error
	gets     int
	deleted  []string
}

func newStubSessionCache() *stubSessionCache {
	return &stubSessionCache{sessions: make(map[string]domain.Session)}
}

func (c *stubSessionCache) Get(_ context.Context, id string) (domain.Session, bool, error) {
	c.gets++
	if c.getErr != nil {
		return domain.Session{}, false, c.getErr
	}
	s, ok := c.sessions[id]
	return s, ok, nil
}

func (c *stubSessionCache) Set(_ context.Context, s domain.Session) error {
	c.sessions[s.UserID] = s
	return nil
}

func (c *stubSessionCache) Delete(_ context.Context, id string) error {
	delete(c.sessions, id)
	c.deleted = append(c.deleted, id)
	return nil
}

var (
	adminSession = domain.Session{UserID: "admin-1", Role: domain.RoleAdmin}
	userSession  = domain.Session{UserID: "user-1", Role: domain.RoleUser}
)
