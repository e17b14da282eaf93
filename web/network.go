// Package web has a web based interface for network training and visualisation.
package web

import (
	"encoding/gob"
	"errors"
	"fmt"
	"html/template"
	"log"
	"math/rand"
	"os"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jnb666/perceptron/nnet"
	"github.com/jnb666/perceptron/stats"
)

// Error returned when testing a point before the network has been trained.
var ErrNotTrained = errors.New("network has not been trained")

// Network and associated training data and configuration. All fields are protected by the mutex,
// the training goroutine holds it for the duration of each round.
type Network struct {
	*nnet.Network
	Conf    *Config
	Data    *nnet.Dataset
	Points  []TestPoint
	History []HistoryData
	test    *nnet.TestBase
	rng     *rand.Rand
	conn    *websocket.Conn
	running bool
	stop    bool
	wg      sync.WaitGroup
	sync.Mutex
}

// Record of a completed training run, saved to file. Weights are not stored.
type HistoryData struct {
	ID    string
	Time  time.Time
	Conf  nnet.Config
	Stats nnet.Stats
}

// Rounds and final accuracy over all the history records
type HistorySummary struct {
	Rounds    stats.Summary
	Accuracy  stats.Summary
	Converged int
}

func summariseHistory(hist []HistoryData) *HistorySummary {
	s := &HistorySummary{}
	for _, h := range hist {
		s.Rounds.Add(float64(h.Stats.Round))
		s.Accuracy.Add(h.Stats.Accuracy * 100)
		if h.Stats.Converged() {
			s.Converged++
		}
	}
	return s
}

// Point entered by the user to test the network
type TestPoint struct {
	nnet.Point
	Predict int
	Class   int
}

func (p TestPoint) Correct() bool { return p.Predict == p.Class }

// Create a new network and load or generate the training data.
func NewNetwork(conf *Config) (*Network, error) {
	n := &Network{Network: nnet.New(), Conf: conf}
	if err := n.Init(); err != nil {
		return nil, err
	}
	var err error
	if n.History, err = LoadHistory(conf.Model); err != nil {
		log.Println("no history loaded:", err)
	}
	return n, nil
}

// Initialise the dataset and reset the network weights
func (n *Network) Init() error {
	return n.apply(n.Conf.Config)
}

// Load or generate the dataset for conf, then switch to it and reset the network.
// On error the current config and data are left unchanged.
func (n *Network) apply(conf nnet.Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	log.Printf("init network: model=%s points=%d %s\n", n.Conf.Model, conf.Points, conf.Square())
	rng := nnet.SetSeed(conf.RandSeed)
	var data *nnet.Dataset
	if conf.DataSet != "" && nnet.FileExists(conf.DataSet+"_train.dat") {
		var err error
		if data, err = nnet.LoadDataFile(conf.DataSet + "_train"); err != nil {
			return err
		}
		data.Relabel(conf.Square())
	} else {
		data = nnet.Generate(conf.Points, conf.Square(), rng)
	}
	n.Conf.Config = conf
	n.rng = rng
	n.Data = data
	n.test = nnet.NewTestBase(conf, data)
	n.Network.Reset()
	n.Points = nil
	return nil
}

// Start training in the background, one round every Interval milliseconds.
func (n *Network) Train() {
	if n.running {
		log.Println("skip start - already running")
		return
	}
	if last := n.test.Last(); last.Converged() && last.Round == n.Round {
		log.Println("skip start - already converged")
		return
	}
	if limit := n.Conf.MaxRound; limit > 0 && n.Round >= limit {
		log.Printf("skip start - reached max round %d\n", limit)
		return
	}
	interval := time.Duration(n.Conf.Interval) * time.Millisecond
	if interval <= 0 {
		interval = time.Millisecond
	}
	log.Printf("train %s: round=%d interval=%s\n", n.Conf.Model, n.Round, interval)
	n.running = true
	n.stop = false
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		start := time.Now()
		for range ticker.C {
			if quit := n.nextRound(start); quit {
				break
			}
		}
		log.Println("train: end round", n.round())
	}()
}

// Run one training round and notify the client, returns true when training should end.
func (n *Network) nextRound(start time.Time) bool {
	n.Lock()
	if n.stop {
		n.running = false
		n.stop = false
		n.Unlock()
		return true
	}
	s := nnet.Stats{Errors: n.TrainRound(n.Data.Points, n.Data.Bounds(), n.Conf.Eta)}
	s.Round = n.Round
	s.Elapsed = time.Since(start)
	done := n.test.Test(n.Network, s)
	s = n.test.Last()
	if n.Conf.DebugLevel >= 1 {
		log.Println(n.Network)
	}
	conn := n.conn
	if done {
		n.running = false
		n.addHistory(s)
	}
	n.Unlock()
	if conn != nil {
		msg := fmt.Sprintf("%d:%d", s.Round, s.Errors)
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			log.Println("nextRound: error writing to websocket", err)
		}
	}
	return done
}

func (n *Network) round() int {
	n.Lock()
	defer n.Unlock()
	return n.Round
}

func (n *Network) addHistory(s nnet.Stats) {
	if s.Converged() {
		log.Printf("converged after %d rounds\n", s.Round)
	} else {
		log.Printf("stopped after %d rounds\n", s.Round)
	}
	n.History = append(n.History, HistoryData{
		ID:    uuid.NewString(),
		Time:  time.Now(),
		Conf:  n.Conf.Config,
		Stats: s,
	})
	if err := SaveHistory(n.Conf.Model, n.History); err != nil {
		log.Println("error saving history:", err)
	}
}

// Signal the training goroutine to stop and wait for it to exit.
// Must be called without holding the lock.
func (n *Network) Stop() {
	n.Lock()
	if n.running {
		n.stop = true
	}
	n.Unlock()
	n.wg.Wait()
}

// Stop training and reset the weights and round counter.
func (n *Network) Reset() {
	n.Stop()
	n.Lock()
	defer n.Unlock()
	n.Network.Reset()
	n.test.Reset()
}

// Stop training, generate a new set of points and reset the network.
func (n *Network) NewData() {
	n.Stop()
	n.Lock()
	defer n.Unlock()
	n.Data = nnet.Generate(n.Conf.Points, n.Conf.Square(), n.rng)
	n.test = nnet.NewTestBase(n.Conf.Config, n.Data)
	n.Network.Reset()
}

// Stop training and apply new config settings.
func (n *Network) SetConfig(conf nnet.Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	n.Stop()
	n.Lock()
	defer n.Unlock()
	return n.apply(conf)
}

// Test a point entered by the user, returns ErrNotTrained until at least one round has completed.
func (n *Network) AddTestPoint(x, y float64) (TestPoint, error) {
	n.Lock()
	defer n.Unlock()
	if n.Round == 0 {
		return TestPoint{}, ErrNotTrained
	}
	p := TestPoint{Point: nnet.Point{X: x, Y: y}}
	n.Points = append(n.Points, p)
	return n.evaluate(p), nil
}

// Current prediction and ground truth for each of the test points.
func (n *Network) TestPoints() []TestPoint {
	res := make([]TestPoint, len(n.Points))
	for i, p := range n.Points {
		res[i] = n.evaluate(p)
	}
	return res
}

func (n *Network) evaluate(p TestPoint) TestPoint {
	p.Predict = n.Predict(p.X, p.Y)
	p.Class = nnet.Classify(p.Point, n.Data.Bounds())
	return p
}

func (n *Network) Running() bool {
	n.Lock()
	defer n.Unlock()
	return n.running
}

// Latest training stats, zero if no rounds run.
func (n *Network) Last() nnet.Stats {
	return n.test.Last()
}

func (n *Network) heading() template.HTML {
	s := fmt.Sprintf(`%s: round <span id="round">%d</span>`, n.Conf.Model, n.Round)
	if n.Conf.MaxRound > 0 {
		s += fmt.Sprintf(" of %d", n.Conf.MaxRound)
	}
	return template.HTML(s)
}

// Encode history in gob format and save to file under nnet.DataDir
func SaveHistory(model string, hist []HistoryData) error {
	filePath := path.Join(nnet.DataDir, model+".hist")
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(hist)
}

// Read back gob encoded history file
func LoadHistory(model string) ([]HistoryData, error) {
	hist := []HistoryData{}
	f, err := os.Open(path.Join(nnet.DataDir, model+".hist"))
	if err != nil {
		return hist, err
	}
	defer f.Close()
	log.Println("loading history from", model+".hist")
	if err = gob.NewDecoder(f).Decode(&hist); err != nil {
		return []HistoryData{}, fmt.Errorf("error decoding %s.hist: %w", model, err)
	}
	return hist, nil
}
