// Package wordstats tracks how a sequence of simple8b words uses the
// selector table.
package wordstats

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/grafana/simple8b/pkg/simple8b"
)

const (
	wordsMetric  = "simple8b_words_total"
	valuesMetric = "simple8b_values_total"
	errorsMetric = "simple8b_encode_errors_total"

	selectorLabel = "selector"
)

// A Collector counts words and values per selector.
type Collector struct {
	words        *prometheus.CounterVec
	values       *prometheus.CounterVec
	encodeErrors prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with r.
func NewCollector(r prometheus.Registerer) *Collector {
	c := &Collector{
		words: promauto.With(r).NewCounterVec(prometheus.CounterOpts{
			Name: wordsMetric,
			Help: "Total number of simple8b words by selector.",
		}, []string{selectorLabel}),
		values: promauto.With(r).NewCounterVec(prometheus.CounterOpts{
			Name: valuesMetric,
			Help: "Total number of values held in simple8b words by selector.",
		}, []string{selectorLabel}),
		encodeErrors: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: errorsMetric,
			Help: "Total number of values simple8b could not encode.",
		}),
	}

	// Export every selector, including unused ones.
	for _, sel := range simple8b.Selectors() {
		label := selectorLabelValue(sel.Index)
		c.words.WithLabelValues(label)
		c.values.WithLabelValues(label)
	}
	return c
}

// ObserveWord records one encoded word.
func (c *Collector) ObserveWord(word uint64) {
	sel := simple8b.SelectorOf(word)
	label := selectorLabelValue(sel.Index)
	c.words.WithLabelValues(label).Inc()
	c.values.WithLabelValues(label).Add(float64(sel.N))
}

// ObserveError records a failed Encode call.
func (c *Collector) ObserveError() {
	c.encodeErrors.Inc()
}

func selectorLabelValue(index uint8) string {
	return strconv.Itoa(int(index))
}

// SelectorUsage is how often a single selector was used.
type SelectorUsage struct {
	Selector simple8b.Selector
	Words    uint64
	Values   uint64
}

// Summary aggregates the counters of a Collector.
type Summary struct {
	Selectors    [simple8b.SelectorCount]SelectorUsage
	Words        uint64
	Values       uint64
	EncodeErrors uint64
}

// EncodedBytes is the size of the words when serialised.
func (s Summary) EncodedBytes() uint64 {
	return s.Words * 8
}

// BitsPerValue is the average number of encoded bits spent on each value.
func (s Summary) BitsPerValue() float64 {
	if s.Values == 0 {
		return 0
	}
	return float64(s.Words*64) / float64(s.Values)
}

// Gather reads the metrics registered by a Collector back from g.
func Gather(g prometheus.Gatherer) (Summary, error) {
	var s Summary
	for i, sel := range simple8b.Selectors() {
		s.Selectors[i].Selector = sel
	}

	families, err := g.Gather()
	if err != nil {
		return s, err
	}

	for _, mf := range families {
		switch mf.GetName() {
		case wordsMetric:
			forEachSelector(mf, func(i int, v uint64) {
				s.Selectors[i].Words = v
				s.Words += v
			})
		case valuesMetric:
			forEachSelector(mf, func(i int, v uint64) {
				s.Selectors[i].Values = v
				s.Values += v
			})
		case errorsMetric:
			for _, m := range mf.GetMetric() {
				s.EncodeErrors += uint64(m.GetCounter().GetValue())
			}
		}
	}
	return s, nil
}

func forEachSelector(mf *dto.MetricFamily, fn func(index int, v uint64)) {
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() != selectorLabel {
				continue
			}
			index, err := strconv.Atoi(lp.GetValue())
			if err != nil || index < 0 || index >= simple8b.SelectorCount {
				continue
			}
			fn(index, uint64(m.GetCounter().GetValue()))
		}
	}
}
