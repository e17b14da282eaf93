package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
)

type ViewPage struct {
	*Templates
	net *Network
}

// Base data for handler functions to test the network on points entered by the user
func NewViewPage(t *Templates, net *Network) *ViewPage {
	p := &ViewPage{net: net, Templates: t}
	p.Select("/test")
	p.AddOption(Link{Name: "clear", Url: "/test/clear"})
	return p
}

// Handler function for the main test page
func (p *ViewPage) Base() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		p.Heading = p.net.heading()
		p.Toplevel = true
		p.Exec(w, r, "view", p)
	}
}

// Handler function to add a new test point from the form values x and y
func (p *ViewPage) Add() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		x, errX := strconv.ParseFloat(strings.TrimSpace(r.FormValue("x")), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(r.FormValue("y")), 64)
		if err := errors.Join(errX, errY); err != nil {
			http.Error(w, "invalid point: "+err.Error(), http.StatusBadRequest)
			return
		}
		pt, err := p.net.AddTestPoint(x, y)
		switch {
		case errors.Is(err, ErrNotTrained):
			p.Flash(w, r, "train the network for at least one round before testing")
		case err != nil:
			logError(w, err)
			return
		case pt.Correct():
			p.Flash(w, r, "(%.2f, %.2f) predicted %s - correct", x, y, label(pt.Predict))
		default:
			p.Flash(w, r, "(%.2f, %.2f) predicted %s - wrong, should be %s", x, y, label(pt.Predict), label(pt.Class))
		}
		http.Redirect(w, r, "/test/", http.StatusFound)
	}
}

// Handler function to remove all test points
func (p *ViewPage) Clear() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		p.net.Points = nil
		p.net.Unlock()
		http.Redirect(w, r, "/test/", http.StatusFound)
	}
}

func (p *ViewPage) Points() []TestPoint {
	return p.net.TestPoints()
}

func (p *ViewPage) Trained() bool {
	return p.net.Round > 0
}

func (p *ViewPage) BoundaryPlot(width, height int) template.HTML {
	return writePlot(boundaryPlot(p.net.Network, p.net.Data, p.net.TestPoints()), width, height)
}

func label(class int) string {
	if class == 1 {
		return "inside"
	}
	return "outside"
}
