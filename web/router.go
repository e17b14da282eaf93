package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

const dataPageSize = 50

// Setup the routes for each of the pages
func NewRouter(t *Templates, net *Network) *mux.Router {
	trainPage := NewTrainPage(t.Clone(), net)
	viewPage := NewViewPage(t.Clone(), net)
	dataPage := NewDataPage(t.Clone(), net, dataPageSize)
	configPage := NewConfigPage(t.Clone(), net)

	r := mux.NewRouter()
	r.Handle("/", http.RedirectHandler("/train/", http.StatusFound))
	r.PathPrefix("/static/").Handler(StaticFiles())

	r.Handle("/train", http.RedirectHandler("/train/", http.StatusFound))
	r.HandleFunc("/train/", trainPage.Base())
	r.HandleFunc("/train/{cmd:(?:start|stop|reset|newdata)}", trainPage.Base())
	r.HandleFunc("/stats", trainPage.Stats())
	r.HandleFunc("/ws", trainPage.Websocket())

	r.HandleFunc("/test/", viewPage.Base())
	r.HandleFunc("/test/add", viewPage.Add()).Methods("POST")
	r.HandleFunc("/test/clear", viewPage.Clear())

	r.HandleFunc("/data/", dataPage.Base())
	r.HandleFunc("/data/{opt:(?:all|errors|prev|next)}", dataPage.Setopt())

	r.HandleFunc("/config", configPage.Base())
	r.HandleFunc("/config/save", configPage.Save()).Methods("POST")
	r.HandleFunc("/config/reset", configPage.Reset())
	return r
}
