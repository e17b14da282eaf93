// Package tune runs hyperparameter sweeps by training many independent networks in parallel.
package tune

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jnb666/perceptron/nnet"
	"github.com/jnb666/perceptron/stats"
	"github.com/sourcegraph/conc/pool"
)

// Param is a config field name with the list of values to try.
type Param struct {
	Name   string
	Values []string
}

// Parse a parameter from name and comma separated list of values.
func NewParam(name, values string) Param {
	p := Param{Name: name}
	for _, v := range strings.Split(values, ",") {
		if v = strings.TrimSpace(v); v != "" {
			p.Values = append(p.Values, v)
		}
	}
	return p
}

// Outcome of one training run
type Result struct {
	ID        string
	Run       int
	Conf      nnet.Config
	Final     nnet.Stats
	Converged bool
}

func (r Result) String() string {
	status := "converged"
	if !r.Converged {
		status = "stopped"
	}
	return fmt.Sprintf("run %3d eta=%-6g points=%-4d %s at round %4d accuracy=%6.2f%%",
		r.Run, r.Conf.Eta, r.Conf.Points, status, r.Final.Round, r.Final.Accuracy*100)
}

// Get config per run: every combination of the parameter values repeated TrainRuns times.
func RunConfig(conf nnet.Config, params []Param) ([]nnet.Config, error) {
	var err error
	for _, p := range params {
		if len(p.Values) == 0 {
			return nil, fmt.Errorf("no values for parameter %s", p.Name)
		}
		if conf, err = conf.SetString(p.Name, p.Values[0]); err != nil {
			return nil, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
	}
	list, err := permute(conf, params, len(params)-1, []nnet.Config{conf})
	if err != nil {
		return nil, err
	}
	runs := conf.TrainRuns
	if runs < 1 {
		runs = 1
	}
	res := []nnet.Config{}
	for run := 0; run < runs; run++ {
		res = append(res, list...)
	}
	return res, nil
}

func permute(conf nnet.Config, params []Param, n int, list []nnet.Config) ([]nnet.Config, error) {
	if n < 0 {
		return list, nil
	}
	var err error
	for i, val := range params[n].Values {
		if i > 0 {
			if conf, err = conf.SetString(params[n].Name, val); err != nil {
				return nil, fmt.Errorf("parameter %s: %w", params[n].Name, err)
			}
			list = append(list, conf)
		}
		if list, err = permute(conf, params, n-1, list); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Run trains a network for each config using up to workers goroutines, or one per CPU if
// workers <= 0. Each run has it's own network and dataset. Results are in the same order
// as the configs.
func Run(ctx context.Context, confs []nnet.Config, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	for i, conf := range confs {
		if err := conf.Validate(); err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
	}
	results := make([]Result, len(confs))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
	for i, conf := range confs {
		i, conf := i, conf
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = train(ctx, i, conf)
			if conf.DebugLevel >= 1 {
				log.Println(results[i])
			}
			return ctx.Err()
		})
	}
	err := p.Wait()
	return results, err
}

func train(ctx context.Context, run int, conf nnet.Config) Result {
	seed := conf.RandSeed
	if seed > 0 {
		seed += int64(run)
	}
	data := nnet.Generate(conf.Points, conf.Square(), nnet.SetSeed(seed))
	net := nnet.New()
	final := nnet.Train(net, data, conf, ctxTester{ctx: ctx, TestBase: nnet.NewTestBase(conf, data)})
	return Result{
		ID:        uuid.NewString(),
		Run:       run,
		Conf:      conf,
		Final:     final,
		Converged: final.Converged(),
	}
}

// tester which also stops when the context is cancelled
type ctxTester struct {
	ctx context.Context
	*nnet.TestBase
}

func (t ctxTester) Test(net *nnet.Network, s nnet.Stats) bool {
	return t.TestBase.Test(net, s) || t.ctx.Err() != nil
}

// Group of results with the same value for one config field.
type Group struct {
	Value     string
	Rounds    stats.Summary
	Accuracy  stats.Summary
	Converged int
	Total     int
}

// Summarise groups results by the value of the given config field.
func Summarise(results []Result, key string) []Group {
	groups := map[string]*Group{}
	for _, r := range results {
		val := fmt.Sprint(r.Conf.Get(key))
		g, ok := groups[val]
		if !ok {
			g = &Group{Value: val}
			groups[val] = g
		}
		g.Total++
		g.Accuracy.Add(r.Final.Accuracy * 100)
		if r.Converged {
			g.Converged++
			g.Rounds.Add(float64(r.Final.Round))
		}
	}
	list := make([]Group, 0, len(groups))
	for _, g := range groups {
		list = append(list, *g)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Value < list[j].Value })
	return list
}

func (g Group) String() string {
	return fmt.Sprintf("%-8s converged %d/%d  rounds %s  accuracy %s%%",
		g.Value, g.Converged, g.Total, g.Rounds.String(), g.Accuracy.String())
}
