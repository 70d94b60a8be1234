package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/codelog/internal/client/models"
)

// Doer sends one request. *HTTPClient implements it.
type Doer interface {
	Do(ctx context.Context, r Request) (*Response, error)
}

// API implements Client on top of a Doer and turns backend status codes
// into the package's error kinds.
type API struct {
	http Doer
}

var _ Client = (*API)(nil)

func NewAPI(d Doer) *API {
	return &API{http: d}
}

type errorBody struct {
	Error string `json:"error"`
	Msg   string `json:"msg"`
	TTL   *int   `json:"ttl"`
}

func (b errorBody) message() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Msg
}

// mapStatus converts a non-2xx response into an error; 2xx yields nil.
func mapStatus(resp *Response) error {
	if resp.Status >= 200 && resp.Status < 300 {
		return nil
	}

	var eb errorBody
	_ = json.Unmarshal(resp.Body, &eb)
	apiErr := &APIError{Status: resp.Status, Message: eb.message()}

	switch {
	case resp.Status == http.StatusUnauthorized, resp.Status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case resp.Status == http.StatusTooManyRequests, eb.TTL != nil:
		rl := &RateLimitError{Message: eb.message()}
		if eb.TTL != nil && *eb.TTL > 0 {
			rl.Wait = time.Duration(*eb.TTL) * time.Second
		}
		return rl
	default:
		return apiErr
	}
}

func (a *API) call(ctx context.Context, r Request, out any) error {
	resp, err := a.http.Do(ctx, r)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}

	if err := mapStatus(resp); err != nil {
		return err
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", r.Method, r.Path, err)
	}
	return nil
}

func (a *API) Login(ctx context.Context, email, password string) (models.Session, error) {
	var out struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	req := Request{
		Method: http.MethodPost,
		Path:   "/login",
		Body:   map[string]string{"email": email, "password": password},
	}
	if err := a.call(ctx, req, &out); err != nil {
		return models.Session{}, err
	}
	if out.AccessToken == "" {
		return models.Session{}, errors.New("login response carries no access token")
	}
	return models.Session{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

func (a *API) Register(ctx context.Context, username, email, password string) error {
	return a.call(ctx, Request{
		Method: http.MethodPost,
		Path:   "/register",
		Body:   map[string]string{"username": username, "email": email, "password": password},
	}, nil)
}

func (a *API) Logout(ctx context.Context) error {
	return a.call(ctx, Request{Method: http.MethodPost, Path: "/logout"}, nil)
}

// Refresh exchanges the refresh token for a new access token. The refresh
// token is sent as the bearer instead of the stored access token.
func (a *API) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out struct {
		NewAccessToken string `json:"new_access_token"`
	}
	req := Request{Method: http.MethodPost, Path: "/refresh", Bearer: refreshToken}
	if err := a.call(ctx, req, &out); err != nil {
		return "", err
	}
	if out.NewAccessToken == "" {
		return "", errors.New("refresh response carries no access token")
	}
	return out.NewAccessToken, nil
}

func (a *API) WhoAmI(ctx context.Context) (string, error) {
	var out struct {
		Username string `json:"username"`
	}
	if err := a.call(ctx, Request{Method: http.MethodGet, Path: "/"}, &out); err != nil {
		return "", err
	}
	return out.Username, nil
}

func (a *API) Streaks(ctx context.Context) (models.StreakInfo, error) {
	var out models.StreakInfo
	err := a.call(ctx, Request{Method: http.MethodGet, Path: "/me/streaks"}, &out)
	return out, err
}

// CreatePost publishes a journal entry. The backend refuses a second post
// inside the posting interval with a 400; that becomes a *RateLimitError.
// onePostPerDay is the text of the 400 /log answers inside the posting
// interval. Other 400s from /log are validation failures.
const onePostPerDay = "one post per day"

func (a *API) CreatePost(ctx context.Context, p models.NewPost) (models.Post, error) {
	var out models.Post
	err := a.call(ctx, Request{Method: http.MethodPost, Path: "/log", Body: p}, &out)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(apiErr.Message), onePostPerDay) {
		return models.Post{}, &RateLimitError{Message: apiErr.Message}
	}
	return out, err
}

// Posts fetches one page of the public feed. The backend answers an object
// instead of a list when the page is past the end; that is an empty page.
func (a *API) Posts(ctx context.Context, page int) ([]models.Post, error) {
	if page < 1 {
		page = 1
	}
	var raw json.RawMessage
	req := Request{
		Method: http.MethodGet,
		Path:   "/feed/get_posts",
		Query:  url.Values{"page": []string{strconv.Itoa(page)}},
	}
	if err := a.call(ctx, req, &raw); err != nil {
		return nil, err
	}

	posts := []models.Post{}
	if len(raw) == 0 || raw[0] != '[' {
		return posts, nil
	}
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (a *API) Like(ctx context.Context, postID string) error {
	return a.call(ctx, Request{
		Method: http.MethodPost,
		Path:   "/feed/like",
		Body:   map[string]string{"post_id": postID},
	}, nil)
}

func (a *API) Unlike(ctx context.Context, postID string) error {
	return a.call(ctx, Request{
		Method: http.MethodPost,
		Path:   "/feed/unlike",
		Body:   map[string]string{"post_id": postID},
	}, nil)
}

func (a *API) AddComment(ctx context.Context, postID, body string) (models.Comment, error) {
	var out struct {
		Data models.Comment `json:"data"`
	}
	err := a.call(ctx, Request{
		Method: http.MethodPost,
		Path:   "/feed/comment",
		Body:   map[string]string{"post_id": postID, "body": body},
	}, &out)
	return out.Data, err
}

func (a *API) UpdateComment(ctx context.Context, postID, commentID, body string) error {
	return a.call(ctx, Request{
		Method: http.MethodPut,
		Path:   "/feed/update_comment",
		Body:   map[string]string{"post_id": postID, "comment_id": commentID, "body": body},
	}, nil)
}

func (a *API) DeleteComment(ctx context.Context, postID, commentID string) error {
	return a.call(ctx, Request{
		Method: http.MethodDelete,
		Path:   "/feed/delete_comment",
		Body:   map[string]string{"post_id": postID, "comment_id": commentID},
	}, nil)
}

func (a *API) PostComments(ctx context.Context, postID string) ([]models.Comment, error) {
	var out struct {
		Data []models.Comment `json:"data"`
	}
	err := a.call(ctx, Request{
		Method: http.MethodPost,
		Path:   "/feed/post_comments",
		Body:   map[string]string{"post_id": postID},
	}, &out)
	return out.Data, err
}

func (a *API) ProfileInfo(ctx context.Context) (models.ProfileInfo, error) {
	var out models.ProfileInfo
	err := a.call(ctx, Request{Method: http.MethodGet, Path: "/me/get_infos"}, &out)
	return out, err
}

func (a *API) MyPosts(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	err := a.call(ctx, Request{Method: http.MethodGet, Path: "/me/posts"}, &out)
	return out, err
}

// UpdateInfo changes the email and/or username; empty values are not sent.
func (a *API) UpdateInfo(ctx context.Context, email, username string) error {
	body := map[string]string{}
	if email != "" {
		body["email"] = email
	}
	if username != "" {
		body["username"] = username
	}
	return a.call(ctx, Request{Method: http.MethodPut, Path: "/me/update_infos", Body: body}, nil)
}

func (a *API) UpdatePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	return a.call(ctx, Request{
		Method: http.MethodPut,
		Path:   "/me/update_password",
		Body: map[string]string{
			"old_password":     oldPassword,
			"new_password":     newPassword,
			"confirm_password": confirm,
		},
	}, nil)
}

func (a *API) DeleteUser(ctx context.Context) error {
	return a.call(ctx, Request{Method: http.MethodDelete, Path: "/me/delete_user"}, nil)
}
