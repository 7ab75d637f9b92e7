package stats

import (
	"slices"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	minLatencyUs = 1
	maxLatencyUs = 60_000_000
	sigFigs      = 3
)

type series struct {
	total     int64
	errors    int64
	timeouts  int64
	histogram *hdrhistogram.Histogram
}

func newSeries() *series {
	return &series{
		// Histogram: 1us to 60s range, 3 significant digits
		histogram: hdrhistogram.New(minLatencyUs, maxLatencyUs, sigFigs),
	}
}

func (s *series) record(d time.Duration) {
	s.total++
	latencyUs := d.Microseconds()
	if latencyUs < minLatencyUs {
		latencyUs = minLatencyUs
	}
	if latencyUs > maxLatencyUs {
		latencyUs = maxLatencyUs
	}
	_ = s.histogram.RecordValue(latencyUs)
}

func (s *series) fail(timeout bool) {
	s.total++
	s.errors++
	if timeout {
		s.timeouts++
	}
}

func (s *series) summary(name string) Summary {
	sum := Summary{
		Name:     name,
		Total:    s.total,
		Errors:   s.errors,
		Timeouts: s.timeouts,
	}
	if s.histogram.TotalCount() == 0 {
		return sum
	}
	us := func(v int64) time.Duration { return time.Duration(v) * time.Microsecond }
	sum.Min = us(s.histogram.Min())
	sum.Max = us(s.histogram.Max())
	sum.Mean = time.Duration(s.histogram.Mean() * float64(time.Microsecond))
	sum.P50 = us(s.histogram.ValueAtQuantile(50))
	sum.P95 = us(s.histogram.ValueAtQuantile(95))
	sum.P99 = us(s.histogram.ValueAtQuantile(99))
	return sum
}

// Recorder accumulates latencies. It is used from the dispatch goroutine only.
type Recorder struct {
	overall  *series
	byMethod map[string]*series
}

func NewRecorder() *Recorder {
	return &Recorder{
		overall:  newSeries(),
		byMethod: make(map[string]*series),
	}
}

func (r *Recorder) method(name string) *series {
	name = strings.ToUpper(name)
	s, ok := r.byMethod[name]
	if !ok {
		s = newSeries()
		r.byMethod[name] = s
	}
	return s
}

// Record adds the latency of a request that produced a response.
func (r *Recorder) Record(method string, d time.Duration) {
	r.overall.record(d)
	r.method(method).record(d)
}

// RecordError counts a request that produced no response.
func (r *Recorder) RecordError(method string, timeout bool) {
	r.overall.fail(timeout)
	r.method(method).fail(timeout)
}

func (r *Recorder) Reset() {
	r.overall = newSeries()
	clear(r.byMethod)
}

// Summary holds the figures for one series. Latency fields are zero when
// no request in the series produced a response.
type Summary struct {
	Name     string
	Total    int64
	Errors   int64
	Timeouts int64
	Min      time.Duration
	Mean     time.Duration
	P50      time.Duration
	P95      time.Duration
	P99      time.Duration
	Max      time.Duration
}

type Report struct {
	Overall  Summary
	ByMethod []Summary
}

// Report summarizes everything recorded so far, methods in sorted order.
func (r *Recorder) Report() Report {
	rep := Report{Overall: r.overall.summary("ALL")}

	methods := make([]string, 0, len(r.byMethod))
	for m := range r.byMethod {
		methods = append(methods, m)
	}
	slices.Sort(methods)

	for _, m := range methods {
		rep.ByMethod = append(rep.ByMethod, r.byMethod[m].summary(m))
	}
	return rep
}
