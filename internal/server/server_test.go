package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoHn11117/resume-scorer/internal/engine"
	"github.com/JoHn11117/resume-scorer/internal/store"
)

const testResume = `Jane Doe
jane.doe@example.com | 555-867-5309 | Portland, OR

SUMMARY
Backend engineer with six years building Go services for high-traffic platforms.

EXPERIENCE
Senior Software Engineer at Streamline
Jan 2021 - Present
- Led migration of the billing platform to Kubernetes, cutting deploy time 70%
- Built REST APIs in Go handling 2,000 requests per second

Software Engineer at DataWorks
Jun 2018 - Dec 2020
- Developed ETL pipelines in Go processing 40 million records nightly
- Reduced query latency 35% by tuning PostgreSQL indexes and caching

EDUCATION
BS Computer Science, State University, 2018

SKILLS
Go, PostgreSQL, Redis, Kubernetes, Docker, AWS
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	eng, err := engine.New(engine.DefaultOptions())
	require.NoError(t, err)

	srv, err := New(Config{Addr: ":0"}, eng)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func uploadResume(t *testing.T, srv *Server, filename string, contents []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/score", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestScoreUpload(t *testing.T) {
	srv := newTestServer(t)
	rec := uploadResume(t, srv, "resume.txt", []byte(testResume), map[string]string{
		"level": "senior",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "quality_coach", string(resp.Result.Mode))
	assert.Greater(t, resp.Result.OverallScore, 0)
	assert.Equal(t, "jane.doe@example.com", resp.Facts.Contact.Email)
}

func TestScoreWithJobDescription(t *testing.T) {
	srv := newTestServer(t)
	rec := uploadResume(t, srv, "resume.txt", []byte(testResume), map[string]string{
		"job_description": "Required: Go, Kubernetes. Nice to have: Terraform.",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ats_simulation", string(resp.Result.Mode))
}

func TestScoreMissingFile(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("level", "mid"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/score", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreUnreadableUpload(t *testing.T) {
	srv := newTestServer(t)
	rec := uploadResume(t, srv, "resume.pdf", []byte("not actually a pdf"), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestScoreUnknownRole(t *testing.T) {
	srv := newTestServer(t)
	rec := uploadResume(t, srv, "resume.txt", []byte(testResume), map[string]string{
		"role": "wizard",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/sessions", createSessionRequest{Text: testResume})
	require.Equal(t, http.StatusCreated, rec.Code)

	var session store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	rec = doJSON(t, srv, http.MethodGet, "/sessions/"+session.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, "/sessions/"+session.ID.String()+"/paragraphs",
		replaceParagraphsRequest{Start: 0, End: 1, Paragraphs: []string{"Janet Doe"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Janet Doe", updated.Paragraphs[0])

	rec = doJSON(t, srv, http.MethodDelete, "/sessions/"+session.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/sessions/"+session.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRescoreSession(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/sessions", createSessionRequest{Text: testResume})
	require.Equal(t, http.StatusCreated, rec.Code)
	var session store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	rec = doJSON(t, srv, http.MethodPost, "/sessions/"+session.ID.String()+"/rescore",
		rescoreRequest{Level: "senior"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "quality_coach", string(resp.Result.Mode))
	assert.Greater(t, resp.Result.OverallScore, 0)
}

func TestRescoreInvalidMode(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/sessions", createSessionRequest{Text: testResume})
	require.Equal(t, http.StatusCreated, rec.Code)
	var session store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	rec = doJSON(t, srv, http.MethodPost, "/sessions/"+session.ID.String()+"/rescore",
		rescoreRequest{Mode: "psychic"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLockConflict(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/sessions", createSessionRequest{Text: "text"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var session store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	lockPath := "/sessions/" + session.ID.String() + "/lock"

	rec = doJSON(t, srv, http.MethodPost, lockPath, lockRequest{Owner: "tab-1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, lockPath, lockRequest{Owner: "tab-2"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "tab-1")

	rec = doJSON(t, srv, http.MethodDelete, lockPath, lockRequest{Owner: "tab-1"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, lockPath, lockRequest{Owner: "tab-2"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInvalidSessionID(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReplaceRangeOutOfBounds(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/sessions", createSessionRequest{Text: "only one line"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var session store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	rec = doJSON(t, srv, http.MethodPut, "/sessions/"+session.ID.String()+"/paragraphs",
		replaceParagraphsRequest{Start: 0, End: 9, Paragraphs: []string{"x"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitHeadersAndRejection(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	eng, err := engine.New(engine.DefaultOptions())
	require.NoError(t, err)
	srv, err := New(Config{Addr: ":0"}, eng)
	require.NoError(t, err)

	var lastCode int
	for i := 0; i < 15; i++ {
		req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(fmt.Sprintf(`{"text":"resume %d"}`, i)))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "9.9.9.9:1234"
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		lastCode = rec.Code
		if rec.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
			return
		}
	}
	t.Fatalf("expected a 429 within burst exhaustion, last code %d", lastCode)
}
