package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/api/respond"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/auth"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/config"
)

// newTestServer starts the full handler chain with TEAM_ID_251=1251,
// AGENT_ID=bond and AGENT_CODEWORD=swordfish. logs receives the service log.
func newTestServer(t *testing.T, mode string, logs io.Writer) *httptest.Server {
	t.Helper()
	creds := auth.NewCredentials(map[string]string{"251": "1251"}, "bond", "swordfish")
	d := Deps{
		Authenticator: creds,
		Configured:    creds.Len() > 0,
		UnmatchedMode: mode,
	}
	if logs == nil {
		logs = io.Discard
	}
	srv := httptest.NewServer(NewHandler(d, zerolog.New(logs)))
	t.Cleanup(srv.Close)
	return srv
}

// noRedirect keeps 3xx responses visible to the test.
var noRedirect = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
}

func makeRequest(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := noRedirect.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func parseResult(t *testing.T, resp *http.Response) respond.Result {
	t.Helper()
	var out respond.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLogin_WorkedExample(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedRedirect, nil)

	cases := []struct {
		name string
		body string
		code int
		ok   bool
		msg  string
	}{
		{"suffix with team codeword", `{"identifier":"251","codeword":"1251"}`, 200, true, auth.MsgAuthenticated},
		{"value with fallback", `{"identifier":"1251","codeword":"swordfish"}`, 200, true, auth.MsgAuthenticated},
		{"suffix rejects fallback", `{"identifier":"251","codeword":"SWORDFISH"}`, 401, false, auth.MsgDenied},
		{"value with itself", `{"identifier":"1251","codeword":"1251"}`, 200, true, auth.MsgAuthenticated},
		{"agent id upper fallback", `{"identifier":"bond","codeword":"SWORDFISH"}`, 200, true, auth.MsgAuthenticated},
		{"unknown identifier", `{"identifier":"999","codeword":"swordfish"}`, 401, false, auth.MsgDenied},
		{"missing codeword", `{"identifier":"251"}`, 400, false, auth.MsgRequired},
		{"missing identifier", `{"codeword":"1251"}`, 400, false, auth.MsgRequired},
		{"blank identifier", `{"identifier":"  ","codeword":"1251"}`, 400, false, auth.MsgRequired},
		{"empty object", `{}`, 400, false, auth.MsgRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := makeRequest(t, srv, http.MethodPost, "/login", tc.body)
			assert.Equal(t, tc.code, resp.StatusCode)
			assert.Equal(t, respond.Result{Success: tc.ok, Message: tc.msg}, parseResult(t, resp))
		})
	}
}

func TestLogin_FieldNameVariants(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedRedirect, nil)

	cases := []struct {
		name string
		body string
		code int
	}{
		{"teamId/codeword", `{"teamId":"251","codeword":"1251"}`, 200},
		{"agentId/password", `{"agentId":"bond","password":"swordfish"}`, 200},
		{"numeric teamId", `{"teamId":251,"codeword":"1251"}`, 200},
		{"teamId wins over agentId", `{"teamId":"999","agentId":"bond","password":"swordfish"}`, 401},
		{"empty teamId still wins", `{"teamId":"","agentId":"bond","password":"swordfish"}`, 400},
		{"null teamId falls through", `{"teamId":null,"agentId":"bond","password":"swordfish"}`, 200},
		{"codeword wins over password", `{"teamId":"251","codeword":"nope","password":"1251"}`, 401},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := makeRequest(t, srv, http.MethodPost, "/login", tc.body)
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedRedirect, nil)

	for _, body := range []string{`{"teamId":`, `[1,2]`, `{"teamId":true,"codeword":"x"}`} {
		resp := makeRequest(t, srv, http.MethodPost, "/login", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, MsgMalformed, parseResult(t, resp).Message, body)
	}
}

func TestLogin_EmptyBodyIsValidationError(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedRedirect, nil)

	resp := makeRequest(t, srv, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, auth.MsgRequired, parseResult(t, resp).Message)
}

func TestLogin_DoesNotLogCredentials(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestServer(t, config.UnmatchedRedirect, &logs)

	makeRequest(t, srv, http.MethodPost, "/login", `{"teamId":"251","codeword":"1251"}`)
	makeRequest(t, srv, http.MethodPost, "/login", `{"teamId":"251","codeword":"hunter2"}`)

	out := logs.String()
	assert.Contains(t, out, "login attempt")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, `"1251"`)
	assert.NotContains(t, out, `"251"`)
}

func TestPages(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedRedirect, nil)

	resp := makeRequest(t, srv, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `id="login-form"`)

	resp = makeRequest(t, srv, http.MethodGet, "/index", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Access Granted")
}

func TestUnmatched_Redirect(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedRedirect, nil)

	for _, path := range []string{"/nowhere", "/login", "/static/", "/static/missing.js"} {
		resp := makeRequest(t, srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/", resp.Header.Get("Location"), path)
	}

	resp := makeRequest(t, srv, http.MethodPost, "/nowhere", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnmatched_LoginMode(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedLogin, nil)

	resp := makeRequest(t, srv, http.MethodGet, "/somewhere/else", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `id="login-form"`)
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedRedirect, nil)

	resp := makeRequest(t, srv, http.MethodGet, "/static/js/login.js", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "/login")

	resp = makeRequest(t, srv, http.MethodGet, "/static/css/gate.css", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
}

func TestStaticAssets_CustomFS(t *testing.T) {
	d := Deps{
		Authenticator: auth.NewCredentials(nil, "", ""),
		UnmatchedMode: config.UnmatchedRedirect,
		Assets:        fstest.MapFS{"js/extra.js": {Data: []byte("console.log(1)")}},
	}
	srv := httptest.NewServer(NewHandler(d, zerolog.Nop()))
	defer srv.Close()

	resp := makeRequest(t, srv, http.MethodGet, "/static/js/extra.js", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = makeRequest(t, srv, http.MethodGet, "/static/js/login.js", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, config.UnmatchedRedirect, nil)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/login", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := noRedirect.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	req, err = http.NewRequest(http.MethodPost, srv.URL+"/login", strings.NewReader(`{"teamId":"251","codeword":"1251"}`))
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	resp2, err := noRedirect.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, "*", resp2.Header.Get("Access-Control-Allow-Origin"))
}

func TestDepsFromConfig(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.Teams = map[string]string{"1": "101"}
	cfg.StaticDir = t.TempDir()
	cfg.UnmatchedMode = config.UnmatchedLogin

	d := DepsFromConfig(cfg, cfg.Credentials())
	assert.True(t, d.Configured)
	assert.Equal(t, config.UnmatchedLogin, d.UnmatchedMode)
	assert.NotNil(t, d.Assets)
	assert.Equal(t, []string{"*"}, d.AllowedOrigins)
}
