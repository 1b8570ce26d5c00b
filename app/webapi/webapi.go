// Package webapi provides a web API message classification service.
package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/msg-guard/lib/filter"
	"github.com/umputun/msg-guard/lib/guard"
	"github.com/umputun/msg-guard/lib/spamcheck"
)

//go:generate moq --out mocks/detector.go --pkg mocks --with-resets --skip-ensure . Detector
//go:generate moq --out mocks/spam_filter.go --pkg mocks --with-resets --skip-ensure . SpamFilter

// Server is a web API server.
type Server struct {
	Config
}

// Config defines server parameters
type Config struct {
	Version    string     // version to show in /ping
	ListenAddr string     // listen address
	Detector   Detector   // message classifier, full mode
	SpamFilter SpamFilter // inline filter hook
	AuthPasswd string     // basic auth password for user "msg-guard"
	RateLimit  float64    // max requests per second per client, 10 if not set
	Dbg        bool       // debug mode
}

// Detector is a message classifier interface.
type Detector interface {
	Evaluate(msg spamcheck.Message) spamcheck.Result
	Rules() []guard.RuleInfo
}

// SpamFilter is an inline filter interface.
type SpamFilter interface {
	Handle(q filter.Query) filter.Action
}

const authUser = "msg-guard"

// NewServer creates a new web API server.
func NewServer(config Config) *Server {
	return &Server{Config: config}
}

// Run starts server and accepts requests checking messages.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.ListenAddr, Handler: s.routes(), ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second, IdleTimeout: 30 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

func (s *Server) routes() http.Handler {
	rate := s.RateLimit
	if rate <= 0 {
		rate = 10
	}
	lmt := tollbooth.NewLimiter(rate, nil)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})

	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.AppInfo("msg-guard", "umputun", s.Version), rest.Ping)
	router.Use(tollbooth.HTTPMiddleware(lmt))
	router.Use(rest.SizeLimit(64 * 1024)) // 64K max request size, sms bodies are tiny

	api := router.Group()
	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for webapi server")
		api.Use(rest.BasicAuthWithUserPasswd(authUser, s.AuthPasswd))
	} else {
		log.Printf("[WARN] basic auth disabled, access to webapi is not protected")
	}

	api.HandleFunc("POST /check", s.checkHandler)   // classify a message, all rules
	api.HandleFunc("POST /filter", s.filterHandler) // inline filter hook, first rule only
	api.HandleFunc("GET /rules", s.rulesHandler)    // list rules in evaluation order
	return router
}

// checkHandler handles POST /check request.
// It gets sender and body from request and returns verdict and findings. Both fields are required.
func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	req := filter.Query{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		log.Printf("[WARN] can't decode request: %v", err)
		return
	}

	msg, ok := req.Message()
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "sender and body are required"})
		return
	}

	res := s.Detector.Evaluate(msg)
	if s.Dbg {
		log.Printf("[DEBUG] check %s: %s", msg.String(), res.String())
	}
	rest.RenderJSON(w, rest.JSON{"spam": res.Spam(), "verdict": res.Verdict(), "findings": res})
}

// filterHandler handles POST /filter request. Incomplete queries are not classified and get "none".
func (s *Server) filterHandler(w http.ResponseWriter, r *http.Request) {
	req := filter.Query{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		log.Printf("[WARN] can't decode request: %v", err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"action": s.SpamFilter.Handle(req)})
}

// rulesHandler handles GET /rules request
func (s *Server) rulesHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, rest.JSON{"rules": s.Detector.Rules()})
}
