package nnet

import (
	"fmt"
	"time"
)

// Training statistics for one round
type Stats struct {
	Round    int
	Errors   int
	Correct  int
	Accuracy float64
	Elapsed  time.Duration
}

var StatsHeaders = []string{"errors", "correct", "accuracy"}

func (s Stats) Format() []string {
	return []string{
		fmt.Sprintf("%4d", s.Errors),
		fmt.Sprintf("%4d", s.Correct),
		fmt.Sprintf("%6.2f%%", s.Accuracy*100),
	}
}

// Converged is true if there were no errors during the round.
func (s Stats) Converged() bool {
	return s.Round > 0 && s.Errors == 0
}

// Tester interface to evaluate the performance after each round, Test method returns true if training should stop.
type Tester interface {
	Test(net *Network, s Stats) bool
}

// Tester which evaluates the accuracy on the dataset and records the stats.
type TestBase struct {
	Data     *Dataset
	Stats    []Stats
	MaxRound int
}

// Create a new base class which implements the Tester interface.
func NewTestBase(conf Config, data *Dataset) *TestBase {
	return &TestBase{Data: data, Stats: []Stats{}, MaxRound: conf.MaxRound}
}

// Reset stats prior to new run
func (t *TestBase) Reset() {
	t.Stats = t.Stats[:0]
}

// Most recent stats entry, or zero value if none recorded.
func (t *TestBase) Last() Stats {
	if len(t.Stats) == 0 {
		return Stats{}
	}
	return t.Stats[len(t.Stats)-1]
}

// Test performance of the network, called on completion of each round.
// Stops if the round had no errors or if the MaxRound limit is reached.
func (t *TestBase) Test(net *Network, s Stats) bool {
	s.Correct, s.Accuracy = net.Accuracy(t.Data.Points)
	t.Stats = append(t.Stats, s)
	return s.Errors == 0 || (t.MaxRound > 0 && s.Round >= t.MaxRound)
}

type testLogger struct {
	*TestBase
	logEvery int
}

// Create a new tester which logs stats to stdout.
func NewTestLogger(conf Config, data *Dataset) Tester {
	return testLogger{TestBase: NewTestBase(conf, data), logEvery: conf.LogEvery}
}

func (t testLogger) Test(net *Network, s Stats) bool {
	done := t.TestBase.Test(net, s)
	s = t.Last()
	if done || t.logEvery == 0 || s.Round%t.logEvery == 0 {
		msg := fmt.Sprintf("round %4d:", s.Round)
		for i, val := range s.Format() {
			msg += fmt.Sprintf("  %s =%s", StatsHeaders[i], val)
		}
		fmt.Println(msg)
	}
	if done {
		if s.Errors == 0 {
			fmt.Printf("converged after %d rounds\n", s.Round)
		} else {
			fmt.Printf("stopped after %d rounds without converging\n", s.Round)
		}
		fmt.Printf("run time: %s\n", s.Elapsed.Round(time.Microsecond))
	}
	return done
}

// Train the network on the dataset until the tester signals completion.
// Returns the stats from the final round.
func Train(net *Network, data *Dataset, conf Config, test Tester) Stats {
	b := data.Bounds()
	start := time.Now()
	var s Stats
	for done := false; !done; {
		s = Stats{Errors: net.TrainRound(data.Points, b, conf.Eta)}
		s.Round = net.Round
		s.Elapsed = time.Since(start)
		if conf.DebugLevel >= 1 {
			net.PrintWeights()
		}
		done = test.Test(net, s)
	}
	s.Correct, s.Accuracy = net.Accuracy(data.Points)
	return s
}
