package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

//go:embed assets
var assets embed.FS

const sessionName = "perceptron"

var funcMap = template.FuncMap{
	"mul": func(a, b float64) float64 { return a * b },
}

// Template and main menu definition
type Templates struct {
	*template.Template
	Menu     []Link
	Options  []Link
	Heading  template.HTML
	Toplevel bool
	Flashes  []string
	store    sessions.Store
}

type Link struct {
	Url      string
	Name     string
	Selected bool
	Submit   bool
}

// Load and parse the embedded templates and initialise main menu
func NewTemplates() (*Templates, error) {
	var err error
	t := &Templates{Menu: []Link{}, Options: []Link{}}
	t.Template, err = template.New("").Funcs(funcMap).ParseFS(assets, "assets/*.html")
	if err != nil {
		return nil, err
	}
	t.store = sessions.NewCookieStore(securecookie.GenerateRandomKey(32))
	t.AddMenuItem(Link{Name: "train", Url: "/train/"})
	t.AddMenuItem(Link{Name: "test", Url: "/test/"})
	t.AddMenuItem(Link{Name: "data", Url: "/data/"})
	t.AddMenuItem(Link{Name: "config", Url: "/config"})
	return t, err
}

// Handler for the static files
func StaticFiles() http.Handler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		log.Fatal(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func (t *Templates) Clone() *Templates {
	return &Templates{
		Template: t.Template,
		Menu:     append([]Link{}, t.Menu...),
		Options:  append([]Link{}, t.Options...),
		store:    t.store,
	}
}

func (t *Templates) Select(url string) *Templates {
	for i, key := range t.Menu {
		t.Menu[i].Selected = strings.HasPrefix(key.Url, url)
	}
	return t
}

func (t *Templates) AddMenuItem(l Link) *Templates {
	t.Menu = append(t.Menu, l)
	return t
}

func (t *Templates) AddOption(l Link) *Templates {
	t.Options = append(t.Options, l)
	return t
}

func (t *Templates) SelectOptions(names []string) *Templates {
	for i, key := range t.Options {
		t.Options[i].Selected = false
		for _, name := range names {
			if key.Name == name {
				t.Options[i].Selected = true
			}
		}
	}
	return t
}

// Save a message to be shown on the next page rendered for this session
func (t *Templates) Flash(w http.ResponseWriter, r *http.Request, format string, args ...interface{}) {
	session, err := t.store.Get(r, sessionName)
	if err != nil {
		log.Println("flash: session error", err)
	}
	session.AddFlash(fmt.Sprintf(format, args...))
	if err = session.Save(r, w); err != nil {
		log.Println("flash: error saving session", err)
	}
}

// Execute named template, loading any flash messages from the session first
func (t *Templates) Exec(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	t.Flashes = nil
	if session, err := t.store.Get(r, sessionName); err == nil {
		if flashes := session.Flashes(); len(flashes) > 0 {
			for _, f := range flashes {
				t.Flashes = append(t.Flashes, fmt.Sprint(f))
			}
			if err = session.Save(r, w); err != nil {
				log.Println("exec: error saving session", err)
			}
		}
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logError(w, err)
	}
}

func logError(w http.ResponseWriter, err error) {
	log.Println(err)
	http.Error(w, fmt.Sprint(err), http.StatusInternalServerError)
}
