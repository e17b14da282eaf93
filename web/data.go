package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jnb666/perceptron/nnet"
)

type DataPage struct {
	*Templates
	Page     int
	Errors   bool
	PageSize int
	Total    int
	Pages    int
	net      *Network
}

// Training point with the current network output for the data table
type DataRow struct {
	Index int
	nnet.LabeledPoint
	Predict     int
	Activations [4]int
}

func (r DataRow) Correct() bool { return r.Predict == r.Class }

// Base data for handler functions to list the training points
func NewDataPage(t *Templates, net *Network, pageSize int) *DataPage {
	p := &DataPage{net: net, Templates: t, Page: 1, PageSize: pageSize}
	for _, name := range []string{"all", "errors", "prev", "next"} {
		p.AddOption(Link{Name: name, Url: "/data/" + name})
	}
	return p
}

// Handler function for the main data page
func (p *DataPage) Base() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		p.Select("/data")
		if p.Errors {
			p.SelectOptions([]string{"errors"})
		} else {
			p.SelectOptions([]string{"all"})
		}
		p.Total, p.Pages = p.pageCount()
		if p.Page > p.Pages || p.Page < 1 {
			p.Page = 1
		}
		p.Heading = p.net.heading()
		p.Toplevel = true
		p.Exec(w, r, "data", p)
	}
}

// Set option from top menu
func (p *DataPage) Setopt() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		p.Total, p.Pages = p.pageCount()
		switch mux.Vars(r)["opt"] {
		case "all":
			p.Errors = false
			p.Page = 1
		case "errors":
			p.Errors = true
			p.Page = 1
		case "prev":
			p.Page = mod(p.Page-1, 1, p.Pages)
		case "next":
			p.Page = mod(p.Page+1, 1, p.Pages)
		}
		http.Redirect(w, r, "/data/", http.StatusFound)
	}
}

// Rows for the current page
func (p *DataPage) Rows() []DataRow {
	start := (p.Page - 1) * p.PageSize
	rows := []DataRow{}
	for _, row := range p.filtered() {
		if len(rows) >= p.PageSize {
			break
		}
		if start > 0 {
			start--
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (p *DataPage) filtered() []DataRow {
	var rows []DataRow
	for i, pt := range p.net.Data.Points {
		row := DataRow{Index: i + 1, LabeledPoint: pt, Predict: p.net.Predict(pt.X, pt.Y)}
		for j, node := range p.net.Nodes {
			row.Activations[j] = node.Activation
		}
		if !p.Errors || !row.Correct() {
			rows = append(rows, row)
		}
	}
	return rows
}

func (p *DataPage) pageCount() (total, pages int) {
	total = len(p.filtered())
	pages = total / p.PageSize
	if total%p.PageSize != 0 || pages == 0 {
		pages++
	}
	return total, pages
}

func mod(i, min, max int) int {
	if i < min {
		i = max
	}
	if i > max {
		i = min
	}
	return i
}
