package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"learningassistant"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

//go:embed templates/*.html static/*
var assets embed.FS

const (
	sessionName  = "learning-session"
	sessionIDKey = "id"
)

// newSessionStore builds the cookie store holding the page id. The cookie
// lives as long as the browser session; idle pages are swept server-side.
func newSessionStore(cfg learningassistant.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.SessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

type Server struct {
	pages      *learningassistant.PageRegistry
	dispatcher learningassistant.Dispatcher
	store      sessions.Store
	templates  map[string]*template.Template
	log        *zap.SugaredLogger
}

func NewServer(pages *learningassistant.PageRegistry, dispatcher learningassistant.Dispatcher, store sessions.Store) (*Server, error) {
	templates := make(map[string]*template.Template)
	templateFiles := []struct {
		name string
		file string
	}{
		{"home", "templates/home.html"},
	}
	for _, tmpl := range templateFiles {
		t, err := template.New(tmpl.name).ParseFS(assets, "templates/base.html", tmpl.file)
		if err != nil {
			return nil, err
		}
		templates[tmpl.name] = t
	}

	return &Server{
		pages:      pages,
		dispatcher: dispatcher,
		store:      store,
		templates:  templates,
		log:        learningassistant.Logger(),
	}, nil
}

// Routes wires the handlers
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	static, _ := fs.Sub(assets, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/", s.handleHome)
	r.Post("/mode", s.handleMode)
	r.Post("/submit", s.handleSubmit)
	r.Post("/quiz/{index}/select", s.handleSelect)
	r.Post("/quiz/{index}/toggle", s.handleToggle)
	return r
}

// sessionID returns the page id stored in the browser session, minting one
// on first visit
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		// an undecodable cookie still yields a usable new session
		s.log.Warnw("session decode failed", "error", err)
	}
	if id, ok := session.Values[sessionIDKey].(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	session.Values[sessionIDKey] = id
	if err := session.Save(r, w); err != nil {
		s.log.Errorw("session save failed", "error", err)
	}
	return id
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	page := s.pages.Snapshot(id)

	err := s.templates["home"].ExecuteTemplate(w, "base.html", map[string]interface{}{
		"Mode":            string(page.Mode),
		"URLDraft":        page.URLDraft,
		"TranscriptDraft": page.TranscriptDraft,
		"TitleDraft":      page.TitleDraft,
		"Loading":         page.Loading,
		"Error":           page.Error,
		"Result":          learningassistant.RenderResult(page.Result, page.Quiz),
	})
	if err != nil {
		s.log.Errorw("template error in home", "error", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	mode, ok := learningassistant.ParseMode(r.FormValue("mode"))
	if !ok {
		http.Error(w, "Unknown mode", http.StatusBadRequest)
		return
	}

	id := s.sessionID(w, r)
	s.pages.Update(id, func(p *learningassistant.Page) {
		p.SetMode(mode)
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	mode, ok := learningassistant.ParseMode(r.FormValue("mode"))
	if !ok {
		http.Error(w, "Unknown mode", http.StatusBadRequest)
		return
	}

	id := s.sessionID(w, r)

	var (
		sub learningassistant.Submission
		err error
	)
	s.pages.Update(id, func(p *learningassistant.Page) {
		if p.Loading {
			err = learningassistant.ErrBusy
			return
		}
		// the posted form decides the mode; another tab may have switched it
		p.SetMode(mode)
		if mode == learningassistant.ModeURL {
			p.URLDraft = r.FormValue("youtube_url")
		} else {
			p.TitleDraft = r.FormValue("title")
			p.TranscriptDraft = r.FormValue("transcript")
		}
		sub, err = p.Begin()
	})
	if err != nil {
		if errors.Is(err, learningassistant.ErrBusy) {
			s.log.Infow("submission refused while loading", "session_id", id)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	derr := s.dispatch(r.Context(), id, sub)
	if derr != nil {
		s.log.Warnw("submission failed", "session_id", id, "mode", sub.Kind,
			"kind", learningassistant.KindOf(derr), "error", derr)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// dispatch sends sub and settles the page for id on every exit path. A
// panicking dispatcher settles the page with an error before the panic
// continues to the recoverer.
func (s *Server) dispatch(ctx context.Context, id string, sub learningassistant.Submission) (derr error) {
	var result *learningassistant.LearningResult
	defer func() {
		rec := recover()
		if rec != nil {
			derr = fmt.Errorf("unexpected failure while processing submission: %v", rec)
		}
		s.pages.Update(id, func(p *learningassistant.Page) {
			p.Settle(result, derr)
		})
		if rec != nil {
			panic(rec)
		}
	}()

	// The request runs to settlement even if the browser goes away
	result, derr = s.dispatcher.Dispatch(context.WithoutCancel(ctx), sub)
	return derr
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	index, ok := questionIndex(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	option := r.FormValue("option")

	id := s.sessionID(w, r)
	s.pages.Update(id, func(p *learningassistant.Page) {
		if hasQuestion(p, index) {
			p.SelectOption(index, option)
		}
	})
	http.Redirect(w, r, "/#q"+strconv.Itoa(index), http.StatusSeeOther)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	index, ok := questionIndex(w, r)
	if !ok {
		return
	}

	id := s.sessionID(w, r)
	s.pages.Update(id, func(p *learningassistant.Page) {
		if hasQuestion(p, index) {
			p.ToggleAnswer(index)
		}
	})
	http.Redirect(w, r, "/#q"+strconv.Itoa(index), http.StatusSeeOther)
}

func questionIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		http.Error(w, "Invalid question index", http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

// hasQuestion reports whether index addresses a question of the current
// result. Clicks against a result that has since been replaced are dropped.
func hasQuestion(p *learningassistant.Page, index int) bool {
	return p.Result != nil && index < len(p.Result.QuizQuestions)
}
