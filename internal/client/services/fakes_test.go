package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrijs2005/codelog/internal/client/client"
	"github.com/dmitrijs2005/codelog/internal/client/models"
	"github.com/dmitrijs2005/codelog/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/codelog/internal/logging"
)

// ---- fake client ----

type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int
	errs  map[string]error

	session   models.Session
	newAccess string
	username  string
	streaks   models.StreakInfo
	created   models.Post
	pages     map[int][]models.Post
	comments  []models.Comment
	info      models.ProfileInfo
	myPosts   []models.Post

	lastLogin       [2]string
	lastRegister    [3]string
	lastRefresh     string
	lastPostID      string
	lastCommentBody string
	lastNewPost     models.NewPost
	lastUpdateInfo  [2]string
	lastPassword    [3]string
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}, errs: map[string]error{}, pages: map[int][]models.Post{}}
}

func (f *fakeClient) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.errs[name]
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) Login(_ context.Context, email, password string) (models.Session, error) {
	f.lastLogin = [2]string{email, password}
	if err := f.hit("Login"); err != nil {
		return models.Session{}, err
	}
	return f.session, nil
}

func (f *fakeClient) Register(_ context.Context, username, email, password string) error {
	f.lastRegister = [3]string{username, email, password}
	return f.hit("Register")
}

func (f *fakeClient) Logout(context.Context) error { return f.hit("Logout") }

func (f *fakeClient) Refresh(_ context.Context, refreshToken string) (string, error) {
	f.lastRefresh = refreshToken
	if err := f.hit("Refresh"); err != nil {
		return "", err
	}
	return f.newAccess, nil
}

func (f *fakeClient) WhoAmI(context.Context) (string, error) {
	if err := f.hit("WhoAmI"); err != nil {
		return "", err
	}
	return f.username, nil
}

func (f *fakeClient) Streaks(context.Context) (models.StreakInfo, error) {
	if err := f.hit("Streaks"); err != nil {
		return models.StreakInfo{}, err
	}
	return f.streaks, nil
}

func (f *fakeClient) CreatePost(_ context.Context, p models.NewPost) (models.Post, error) {
	f.lastNewPost = p
	if err := f.hit("CreatePost"); err != nil {
		return models.Post{}, err
	}
	return f.created, nil
}

func (f *fakeClient) Posts(_ context.Context, page int) ([]models.Post, error) {
	if err := f.hit(fmt.Sprintf("Posts:%d", page)); err != nil {
		return nil, err
	}
	if err := f.hit("Posts"); err != nil {
		return nil, err
	}
	return f.pages[page], nil
}

func (f *fakeClient) Like(_ context.Context, postID string) error {
	f.lastPostID = postID
	return f.hit("Like")
}

func (f *fakeClient) Unlike(_ context.Context, postID string) error {
	f.lastPostID = postID
	return f.hit("Unlike")
}

func (f *fakeClient) AddComment(_ context.Context, postID, body string) (models.Comment, error) {
	f.lastPostID, f.lastCommentBody = postID, body
	if err := f.hit("AddComment"); err != nil {
		return models.Comment{}, err
	}
	return models.Comment{ID: "c-new", Body: body}, nil
}

func (f *fakeClient) UpdateComment(_ context.Context, postID, _ string, body string) error {
	f.lastPostID, f.lastCommentBody = postID, body
	return f.hit("UpdateComment")
}

func (f *fakeClient) DeleteComment(_ context.Context, postID, _ string) error {
	f.lastPostID = postID
	return f.hit("DeleteComment")
}

func (f *fakeClient) PostComments(_ context.Context, postID string) ([]models.Comment, error) {
	f.lastPostID = postID
	if err := f.hit("PostComments"); err != nil {
		return nil, err
	}
	return f.comments, nil
}

func (f *fakeClient) ProfileInfo(context.Context) (models.ProfileInfo, error) {
	if err := f.hit("ProfileInfo"); err != nil {
		return models.ProfileInfo{}, err
	}
	return f.info, nil
}

func (f *fakeClient) MyPosts(context.Context) ([]models.Post, error) {
	if err := f.hit("MyPosts"); err != nil {
		return nil, err
	}
	return f.myPosts, nil
}

func (f *fakeClient) UpdateInfo(_ context.Context, email, username string) error {
	f.lastUpdateInfo = [2]string{email, username}
	return f.hit("UpdateInfo")
}

func (f *fakeClient) UpdatePassword(_ context.Context, oldPassword, newPassword, confirm string) error {
	f.lastPassword = [3]string{oldPassword, newPassword, confirm}
	return f.hit("UpdatePassword")
}

func (f *fakeClient) DeleteUser(context.Context) error { return f.hit("DeleteUser") }

// ---- in-memory token store ----

type memStore struct {
	mu       sync.Mutex
	values   map[tokens.Slot]string
	clearErr error
}

var _ TokenStore = (*memStore)(nil)

func newMemStore(access, refresh string) *memStore {
	s := &memStore{values: map[tokens.Slot]string{}}
	if access != "" {
		s.values[tokens.SlotAccess] = access
	}
	if refresh != "" {
		s.values[tokens.SlotRefresh] = refresh
	}
	return s
}

func (m *memStore) Get(_ context.Context, slot tokens.Slot) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[slot], nil
}

func (m *memStore) Set(_ context.Context, slot tokens.Slot, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[slot] = value
	return nil
}

func (m *memStore) Load(ctx context.Context) (models.Session, error) {
	a, _ := m.Get(ctx, tokens.SlotAccess)
	r, _ := m.Get(ctx, tokens.SlotRefresh)
	return models.Session{AccessToken: a, RefreshToken: r}, nil
}

func (m *memStore) Save(ctx context.Context, s models.Session) error {
	_ = m.Set(ctx, tokens.SlotAccess, s.AccessToken)
	return m.Set(ctx, tokens.SlotRefresh, s.RefreshToken)
}

func (m *memStore) ClearAll(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.values = map[tokens.Slot]string{}
	return nil
}

func (m *memStore) empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[tokens.SlotAccess] == "" && m.values[tokens.SlotRefresh] == ""
}

// ---- navigator & logger ----

type recNav struct {
	messages []string
}

func (n *recNav) ToLogin(message string) { n.messages = append(n.messages, message) }

func testLogger() (logging.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return logging.NewSlogLogger(slog.New(h)), buf
}

func unauthorized() error {
	return fmt.Errorf("%w: %w", client.ErrUnauthorized, &client.APIError{Status: 401, Message: "Token has expired"})
}

func logger() logging.Logger {
	l, _ := testLogger()
	return l
}
