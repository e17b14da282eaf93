package web

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/jnb666/perceptron/nnet"
)

// Config has the training configuration for the named model
type Config struct {
	nnet.Config
	Model string
}

// Load config for model from file, or save a new default config if there is none.
func NewConfig(model string) (*Config, error) {
	c := &Config{Model: model}
	var err error
	c.Config, err = nnet.LoadConfig(model + ".conf")
	if os.IsNotExist(err) {
		log.Printf("no config for %s - using defaults", model)
		c.Config = nnet.DefaultConfig()
		err = c.SaveDefault(model)
	}
	return c, err
}

type ConfigPage struct {
	*Templates
	Fields []Field
	net    *Network
	sync.Mutex
}

type Field struct {
	Name  string
	Value string
	Error string
}

// Base data for handler functions to view and update the network config
func NewConfigPage(t *Templates, net *Network) *ConfigPage {
	p := &ConfigPage{net: net}
	p.Templates = t.Select("/config")
	p.AddOption(Link{Name: "save", Url: "/config/save", Submit: true})
	p.AddOption(Link{Name: "reset", Url: "/config/reset"})
	p.Fields = getFields(net.Conf.Config)
	return p
}

// Handler function for the config template
func (p *ConfigPage) Base() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Lock()
		defer p.Unlock()
		p.Heading = p.heading()
		p.Exec(w, r, "config", p)
	}
}

// Handler function for the config form save action
func (p *ConfigPage) Save() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Lock()
		defer p.Unlock()
		r.ParseForm()
		haveErrors := false
		conf := p.currentConfig()
		for i, fld := range p.Fields {
			val := r.Form.Get(fld.Name)
			var err error
			p.Fields[i].Value = val
			conf, err = conf.SetString(fld.Name, val)
			p.Fields[i].Error = ""
			if err != nil {
				p.Fields[i].Error = "invalid syntax"
				haveErrors = true
			}
		}
		if haveErrors {
			http.Redirect(w, r, "/config", http.StatusFound)
			return
		}
		if err := p.net.SetConfig(conf); err != nil {
			log.Println("config save:", err)
			errs := nnet.FieldErrors(err)
			for i, fld := range p.Fields {
				p.Fields[i].Error = errs[fld.Name]
			}
			if len(errs) == 0 {
				p.Flash(w, r, "%s", err)
			}
			http.Redirect(w, r, "/config", http.StatusFound)
			return
		}
		if err := conf.Save(p.net.Conf.Model + ".conf"); err != nil {
			logError(w, err)
			return
		}
		p.Fields = getFields(conf)
		p.Flash(w, r, "config saved - generated %d new points", conf.Points)
		http.Redirect(w, r, "/config", http.StatusFound)
	}
}

// Handler function for the config form reset action
func (p *ConfigPage) Reset() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.Lock()
		defer p.Unlock()
		model := p.net.Conf.Model
		conf, err := nnet.LoadConfig(model + ".default")
		if err != nil {
			logError(w, err)
			return
		}
		if err = p.net.SetConfig(conf); err != nil {
			logError(w, err)
			return
		}
		if err = conf.Save(model + ".conf"); err != nil {
			logError(w, err)
			return
		}
		p.Fields = getFields(conf)
		http.Redirect(w, r, "/config", http.StatusFound)
	}
}

func (p *ConfigPage) currentConfig() nnet.Config {
	p.net.Lock()
	defer p.net.Unlock()
	return p.net.Conf.Config
}

func (p *ConfigPage) heading() template.HTML {
	return template.HTML(template.HTMLEscapeString(p.net.Conf.Model) + ": config")
}

func getFields(conf nnet.Config) []Field {
	var flds []Field
	for _, key := range conf.Fields() {
		flds = append(flds, Field{Name: key, Value: fmt.Sprint(conf.Get(key))})
	}
	return flds
}
