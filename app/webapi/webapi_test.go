package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/msg-guard/app/webapi/mocks"
	"github.com/umputun/msg-guard/lib/filter"
	"github.com/umputun/msg-guard/lib/guard"
	"github.com/umputun/msg-guard/lib/spamcheck"
)

func TestServer_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewServer(Config{ListenAddr: "127.0.0.1:18876", Version: "dev", Detector: &mocks.DetectorMock{},
		SpamFilter: &mocks.SpamFilterMock{}})
	done := make(chan struct{})
	go func() {
		err := srv.Run(ctx)
		assert.NoError(t, err)
		close(done)
	}()
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get("http://127.0.0.1:18876/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	assert.Contains(t, resp.Header.Get("App-Name"), "msg-guard")
	assert.Contains(t, resp.Header.Get("App-Version"), "dev")

	cancel()
	<-done
}

func TestServer_RunAuth(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mockDetector := &mocks.DetectorMock{
		EvaluateFunc: func(msg spamcheck.Message) spamcheck.Result { return spamcheck.Result{} },
	}

	srv := NewServer(Config{ListenAddr: "127.0.0.1:18877", Version: "dev", Detector: mockDetector,
		SpamFilter: &mocks.SpamFilterMock{}, AuthPasswd: "test", RateLimit: 100})
	done := make(chan struct{})
	go func() {
		err := srv.Run(ctx)
		assert.NoError(t, err)
		close(done)
	}()
	time.Sleep(100 * time.Millisecond)

	checkReq := func(t *testing.T, user, passwd string) *http.Response {
		req, err := http.NewRequest("POST", "http://127.0.0.1:18877/check",
			strings.NewReader(`{"sender":"12025550123","body":"hello"}`))
		require.NoError(t, err)
		if user != "" {
			req.SetBasicAuth(user, passwd)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("ping", func(t *testing.T) {
		resp, err := http.Get("http://127.0.0.1:18877/ping")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode) // no auth on ping
	})

	t.Run("check unauthorized, no basic auth", func(t *testing.T) {
		resp := checkReq(t, "", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("check authorized", func(t *testing.T) {
		resp := checkReq(t, "msg-guard", "test")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("check forbidden, wrong basic auth", func(t *testing.T) {
		resp := checkReq(t, "msg-guard", "bad")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	assert.Len(t, mockDetector.EvaluateCalls(), 1)
	cancel()
	<-done
}

func TestServer_checkHandler(t *testing.T) {
	mockDetector := &mocks.DetectorMock{
		EvaluateFunc: func(msg spamcheck.Message) spamcheck.Result {
			if strings.Contains(msg.Body, "bank") {
				return spamcheck.Result{
					{Rule: "bank-name", Description: "Message mentions a bank", Match: "chase"},
					{Rule: "phishing-phrase", Description: "Message contains a phishing phrase", Match: "verify"},
				}
			}
			return spamcheck.Result{}
		},
	}
	srv := NewServer(Config{Detector: mockDetector, SpamFilter: &mocks.SpamFilterMock{}, RateLimit: 100})
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	t.Run("spam", func(t *testing.T) {
		mockDetector.ResetCalls()
		resp, err := http.Post(ts.URL+"/check", "application/json",
			bytes.NewBufferString(`{"sender":"12025550123","body":"your bank account"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var res struct {
			Spam     bool               `json:"spam"`
			Verdict  string             `json:"verdict"`
			Findings []spamcheck.Finding `json:"findings"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.True(t, res.Spam)
		assert.Equal(t, "This message is blocked by Message Guard.", res.Verdict)
		require.Len(t, res.Findings, 2)
		assert.Equal(t, "bank-name", res.Findings[0].Rule)
		assert.Equal(t, "chase", res.Findings[0].Match)

		require.Len(t, mockDetector.EvaluateCalls(), 1)
		assert.Equal(t, spamcheck.Message{Sender: "12025550123", Body: "your bank account"}, mockDetector.EvaluateCalls()[0].Msg)
	})

	t.Run("ham", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/check", "application/json", bytes.NewBufferString(`{"sender":"54321","body":"hi"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"spam":false,"verdict":"This message is not blocked by Message Guard.","findings":[]}`, string(body))
	})

	t.Run("missing field", func(t *testing.T) {
		mockDetector.ResetCalls()
		for _, req := range []string{`{"sender":"54321"}`, `{"body":"hi"}`, `{}`} {
			resp, err := http.Post(ts.URL+"/check", "application/json", bytes.NewBufferString(req))
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, req)
			assert.Contains(t, string(body), "sender and body are required")
		}
		assert.Empty(t, mockDetector.EvaluateCalls(), "incomplete message is not classified")
	})

	t.Run("bad request", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/check", "application/json", bytes.NewBufferString(`{bad json`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_filterHandler(t *testing.T) {
	mockFilter := &mocks.SpamFilterMock{
		HandleFunc: func(q filter.Query) filter.Action {
			if q.Sender != nil && *q.Sender == "spammer@example.com" {
				return filter.ActionJunk
			}
			return filter.ActionNone
		},
	}
	srv := NewServer(Config{Detector: &mocks.DetectorMock{}, SpamFilter: mockFilter, RateLimit: 100})
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	tests := []struct {
		name     string
		req      string
		status   int
		expected string
	}{
		{"junk", `{"sender":"spammer@example.com","body":"hi"}`, http.StatusOK, `{"action":"junk"}`},
		{"none", `{"sender":"54321","body":"hi"}`, http.StatusOK, `{"action":"none"}`},
		{"absent body", `{"sender":"spammer@example.com"}`, http.StatusOK, `{"action":"junk"}`},
		{"bad json", `{bad`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/filter", "application/json", bytes.NewBufferString(tt.req))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.expected == "" {
				return
			}
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(body))
		})
	}

	// the absent body goes to the filter as is, the decision is on the filter side
	calls := mockFilter.HandleCalls()
	require.Len(t, calls, 3)
	assert.Nil(t, calls[2].Q.Body)
}

func TestServer_rulesHandler(t *testing.T) {
	engine := guard.MustNew(guard.Config{})
	srv := NewServer(Config{Detector: engine, SpamFilter: filter.New(engine), RateLimit: 100})
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/rules")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Rules []guard.RuleInfo `json:"rules"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Rules, 5)
	assert.Equal(t, guard.RuleEmailSender, res.Rules[0].Name)
	assert.Equal(t, guard.RulePhishingPhrase, res.Rules[4].Name)
}

func TestServer_WithEngine(t *testing.T) {
	engine := guard.MustNew(guard.Config{})
	srv := NewServer(Config{Detector: engine, SpamFilter: filter.New(engine), RateLimit: 100})
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/check", "application/json",
		bytes.NewBufferString(`{"sender":"12025550123","body":"Please verify your Bank of America account now"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"spam":true,"verdict":"This message is blocked by Message Guard.","findings":[
		{"rule":"bank-name","description":"Message mentions a bank and was not sent using an SMS shortcode","match":"bank of america"}]}`,
		string(body))

	resp2, err := http.Post(ts.URL+"/filter", "application/json", bytes.NewBufferString(`{"body":"Bank of America"}`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	body, err = io.ReadAll(resp2.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"none"}`, string(body))
}

func TestServer_RateLimit(t *testing.T) {
	srv := NewServer(Config{Detector: &mocks.DetectorMock{
		RulesFunc: func() []guard.RuleInfo { return nil },
	}, SpamFilter: &mocks.SpamFilterMock{}, RateLimit: 1})
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	limited := 0
	for range 5 {
		resp, err := http.Get(ts.URL + "/rules")
		require.NoError(t, err)
		if resp.StatusCode == http.StatusTooManyRequests {
			limited++
		}
		resp.Body.Close()
	}
	assert.Positive(t, limited)
}
