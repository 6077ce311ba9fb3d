package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/dto"
	"postboard/internal/services"
	"postboard/internal/testutil"
)

const secret = "routes-test-secret"

type api struct {
	t     *testing.T
	app   *fiber.App
	auth  *services.AuthService
	media string
}

func newAPI(t *testing.T) *api {
	t.Helper()
	logger := testutil.Logger()
	d := services.Deps{
		Store:  testutil.NewStore(t),
		Events: &testutil.Recorder{},
		Logger: logger,
		Now:    testutil.NewClock().Now,
		Paging: services.Paging{Default: 20, Max: 100},
	}
	// Tokens are checked against the wall clock.
	authDeps := d
	authDeps.Now = nil
	auth := services.NewAuthService(authDeps, secret, time.Hour)

	media := t.TempDir()
	app := NewApp(logger)
	Setup(app, Deps{
		Posts:     services.NewPostService(d),
		Comments:  services.NewCommentService(d),
		Likes:     services.NewLikeService(d),
		Auth:      auth,
		JWTSecret: secret,
		MediaRoot: media,
		Timeout:   time.Second,
		Logger:    logger,
	})
	return &api{t: t, app: app, auth: auth, media: media}
}

func (a *api) token(userID string) string {
	a.t.Helper()
	tok, err := a.auth.IssueToken(userID)
	require.NoError(a.t, err)
	return tok.AccessToken
}

func (a *api) do(method, path, token string, body any) (int, []byte) {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return a.send(req)
}

func (a *api) send(req *http.Request) (int, []byte) {
	a.t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func (a *api) createPost(token string) dto.PostResponse {
	a.t.Helper()
	status, body := a.do(fiber.MethodPost, "/posts/", token, dto.CreatePostReq{Image: "posts/seed.png"})
	require.Equal(a.t, fiber.StatusCreated, status, string(body))
	return decode[dto.PostResponse](a.t, body)
}

func TestHealthAndAuthRequired(t *testing.T) {
	a := newAPI(t)

	status, body := a.do(fiber.MethodGet, "/healthz", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", string(body))

	status, body = a.do(fiber.MethodGet, "/posts/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	resp := decode[dto.ErrorResponse](t, body)
	assert.False(t, resp.Status)

	status, _ = a.do(fiber.MethodGet, "/posts/", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRegisterLoginFlow(t *testing.T) {
	a := newAPI(t)

	status, body := a.do(fiber.MethodPost, "/auth/register", "", dto.RegisterReq{Username: "alice", Password: "s3cret-pass"})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	status, _ = a.do(fiber.MethodPost, "/auth/register", "", dto.RegisterReq{Username: "alice", Password: "s3cret-pass"})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = a.do(fiber.MethodPost, "/auth/login", "", dto.LoginReq{Username: "alice", Password: "wrong-pass"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body = a.do(fiber.MethodPost, "/auth/login", "", dto.LoginReq{Username: "alice", Password: "s3cret-pass"})
	require.Equal(t, fiber.StatusOK, status)
	tok := decode[dto.TokenResponse](t, body)

	status, _ = a.do(fiber.MethodGet, "/posts/", tok.AccessToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestPostLifecycle(t *testing.T) {
	a := newAPI(t)
	owner, other := a.token(uuid.NewString()), a.token(uuid.NewString())
	p := a.createPost(owner)

	status, body := a.do(fiber.MethodGet, "/posts/"+p.ID+"/", other, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, p.ID, decode[dto.PostResponse](t, body).ID)

	// Trailing slash is optional.
	status, _ = a.do(fiber.MethodGet, "/posts/"+p.ID, other, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = a.do(fiber.MethodPut, "/posts/"+p.ID+"/", other, dto.UpdatePostReq{Image: "posts/x.png"})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, decode[dto.ErrorResponse](t, body).Status)

	status, body = a.do(fiber.MethodPut, "/posts/"+p.ID+"/", owner, dto.UpdatePostReq{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	verr := decode[map[string]any](t, body)
	assert.Contains(t, verr["error"], "image")

	status, body = a.do(fiber.MethodGet, "/posts/"+p.ID+"/", owner, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "posts/seed.png", decode[dto.PostResponse](t, body).Image)

	caption := "new caption"
	status, body = a.do(fiber.MethodPut, "/posts/"+p.ID+"/", owner, dto.UpdatePostReq{Image: "posts/new.png", Caption: &caption})
	require.Equal(t, fiber.StatusAccepted, status)
	ok := decode[dto.StatusResponse](t, body)
	assert.True(t, ok.Status)
	assert.Equal(t, "Successfully updated", ok.Message)

	status, body = a.do(fiber.MethodPut, "/posts/"+uuid.NewString()+"/", owner, dto.UpdatePostReq{Image: "posts/new.png"})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, decode[dto.ErrorResponse](t, body).Status)

	status, body = a.do(fiber.MethodGet, "/posts/", other, nil)
	require.Equal(t, fiber.StatusOK, status)
	page := decode[dto.Page[dto.PostResponse]](t, body)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "posts/new.png", page.Items[0].Image)

	status, _ = a.do(fiber.MethodDelete, "/posts/"+p.ID+"/", other, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = a.do(fiber.MethodDelete, "/posts/"+p.ID+"/", owner, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = a.do(fiber.MethodGet, "/posts/"+p.ID+"/", owner, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestPostLikeToggle(t *testing.T) {
	a := newAPI(t)
	tok := a.token(uuid.NewString())
	p := a.createPost(tok)

	status, body := a.do(fiber.MethodPost, "/posts/"+p.ID+"/like/", tok, nil)
	require.Equal(t, fiber.StatusOK, status)
	res := decode[dto.LikeResponse](t, body)
	assert.True(t, res.Liked)
	assert.Equal(t, "Successfully liked", res.Message)
	assert.EqualValues(t, 1, res.LikesCount)

	status, body = a.do(fiber.MethodPost, "/posts/"+p.ID+"/like/", tok, nil)
	require.Equal(t, fiber.StatusOK, status)
	res = decode[dto.LikeResponse](t, body)
	assert.False(t, res.Liked)
	assert.Equal(t, "Successfully unliked", res.Message)
	assert.EqualValues(t, 0, res.LikesCount)

	status, body = a.do(fiber.MethodPost, "/posts/"+uuid.NewString()+"/like/", tok, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, decode[dto.ErrorResponse](t, body).Status)
}

func TestCommentThreadEndpoints(t *testing.T) {
	a := newAPI(t)
	alice, bob := a.token(uuid.NewString()), a.token(uuid.NewString())
	p := a.createPost(alice)
	other := a.createPost(alice)

	status, body := a.do(fiber.MethodPost, "/posts/"+p.ID+"/comments/", bob, dto.CreateCommentReq{Comment: "first"})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	top := decode[dto.CommentResponse](t, body)
	assert.Nil(t, top.Parent)

	status, body = a.do(fiber.MethodPost, "/posts/"+p.ID+"/comments/", alice, dto.CreateCommentReq{Comment: "reply", Parent: &top.ID})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	reply := decode[dto.CommentResponse](t, body)
	require.NotNil(t, reply.Parent)
	assert.Equal(t, top.ID, *reply.Parent)

	status, _ = a.do(fiber.MethodPost, "/posts/"+other.ID+"/comments/", alice, dto.CreateCommentReq{Comment: "wrong post", Parent: &top.ID})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = a.do(fiber.MethodPost, "/posts/"+p.ID+"/comments/", alice, dto.CreateCommentReq{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = a.do(fiber.MethodPost, "/posts/"+uuid.NewString()+"/comments/", alice, dto.CreateCommentReq{Comment: "x"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = a.do(fiber.MethodGet, "/posts/"+p.ID+"/comments/", alice, nil)
	require.Equal(t, fiber.StatusOK, status)
	flat := decode[dto.Page[dto.CommentResponse]](t, body)
	require.Len(t, flat.Items, 2)
	assert.Equal(t, top.ID, flat.Items[0].ID)

	status, body = a.do(fiber.MethodGet, "/posts/"+p.ID+"/comments/?tree=true", alice, nil)
	require.Equal(t, fiber.StatusOK, status)
	tree := decode[dto.CommentTreeResp](t, body)
	require.Len(t, tree.Comments, 1)
	require.Len(t, tree.Comments[0].Replies, 1)
	assert.Equal(t, reply.ID, tree.Comments[0].Replies[0].ID)

	status, body = a.do(fiber.MethodGet, "/comments/"+top.ID+"/replies/", bob, nil)
	require.Equal(t, fiber.StatusOK, status)
	replies := decode[[]dto.CommentResponse](t, body)
	require.Len(t, replies, 1)

	status, body = a.do(fiber.MethodPost, "/comments/"+reply.ID+"/like/", bob, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, decode[dto.LikeResponse](t, body).Liked)
	status, body = a.do(fiber.MethodPost, "/comments/"+reply.ID+"/like/", bob, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Successfully unliked from comment", decode[dto.LikeResponse](t, body).Message)

	status, _ = a.do(fiber.MethodDelete, "/comments/"+top.ID+"/", alice, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = a.do(fiber.MethodDelete, "/comments/"+top.ID+"/", bob, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = a.do(fiber.MethodGet, "/comments/"+reply.ID+"/replies/", bob, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func (a *api) multipart(method, path, token string, fields map[string]string) (int, []byte) {
	a.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", "cat.png")
	require.NoError(a.t, err)
	_, err = fw.Write([]byte("\x89PNG fake"))
	require.NoError(a.t, err)
	for k, v := range fields {
		require.NoError(a.t, w.WriteField(k, v))
	}
	require.NoError(a.t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return a.send(req)
}

func (a *api) storedImages() []os.DirEntry {
	a.t.Helper()
	entries, err := os.ReadDir(filepath.Join(a.media, "posts"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(a.t, err)
	return entries
}

func TestCreatePostMultipart(t *testing.T) {
	a := newAPI(t)
	tok := a.token(uuid.NewString())

	status, body := a.multipart(fiber.MethodPost, "/posts/", tok, map[string]string{"caption": "a cat"})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	p := decode[dto.PostResponse](t, body)
	require.NotNil(t, p.Caption)
	assert.Equal(t, "a cat", *p.Caption)
	assert.Equal(t, ".png", filepath.Ext(p.Image))
	_, err := os.Stat(filepath.Join(a.media, filepath.FromSlash(p.Image)))
	assert.NoError(t, err)
}

func TestUpdatePostUploadRequiresOwner(t *testing.T) {
	a := newAPI(t)
	owner, other := a.token(uuid.NewString()), a.token(uuid.NewString())
	p := a.createPost(owner)

	status, _ := a.multipart(fiber.MethodPut, "/posts/"+p.ID+"/", other, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Empty(t, a.storedImages())

	status, _ = a.multipart(fiber.MethodPut, "/posts/"+uuid.NewString()+"/", owner, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Empty(t, a.storedImages())

	// A rejected payload does not leave the upload behind.
	long := strings.Repeat("x", 2201)
	status, _ = a.multipart(fiber.MethodPut, "/posts/"+p.ID+"/", owner, map[string]string{"caption": long})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, a.storedImages())

	status, _ = a.multipart(fiber.MethodPut, "/posts/"+p.ID+"/", owner, map[string]string{"caption": "mine"})
	assert.Equal(t, fiber.StatusAccepted, status)
	assert.Len(t, a.storedImages(), 1)
}

func TestCreateCommentEmptyParent(t *testing.T) {
	a := newAPI(t)
	tok := a.token(uuid.NewString())
	p := a.createPost(tok)

	status, body := a.do(fiber.MethodPost, "/posts/"+p.ID+"/comments/", tok, map[string]any{"comment": "hi", "parent": ""})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	raw := decode[map[string]any](t, body)
	assert.Contains(t, raw, "parent")
	assert.Nil(t, raw["parent"])
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	a := newAPI(t)

	status, body := a.do(fiber.MethodGet, "/nope", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, decode[dto.ErrorResponse](t, body).Status)

	status, _ = a.do(fiber.MethodGet, "/comments/"+uuid.NewString()+"/replies/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
