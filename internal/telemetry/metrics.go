// SPDX-License-Identifier: MIT

// Package telemetry counts what a dynconn.Graph does: operations by kind,
// cut outcomes, edge promotions and replacement searches per level. Metrics
// live on a private prometheus registry so several runs in one process never
// collide; Snapshot flattens a Gather into name{labels} -> value.
package telemetry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/connectivity/dynconn"
	"github.com/katalvlaran/connectivity/workload"
)

const namespace = "dynconn"

// Metrics is safe for concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	ops        *prometheus.CounterVec
	cuts       *prometheus.CounterVec
	promotions *prometheus.CounterVec
	searches   *prometheus.CounterVec
	levels     prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops_total",
			Help:      "Replayed operations by kind.",
		}, []string{"kind"}),
		cuts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cuts_total",
			Help:      "Cut outcomes.",
		}, []string{"result"}),
		promotions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotions_total",
			Help:      "Edges moved up one level, by target level and edge class.",
		}, []string{"level", "edge"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replacement_searches_total",
			Help:      "Per-level replacement searches, by level and outcome.",
		}, []string{"level", "outcome"}),
		levels: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "levels",
			Help:      "Number of levels in use.",
		}),
	}
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Hooks returns dynconn hooks feeding m.
func (m *Metrics) Hooks() dynconn.Hooks {
	return dynconn.Hooks{
		OnLevelCreated: func(level int) {
			m.levels.Set(float64(level + 1))
		},
		OnPromote: func(level int, tree bool) {
			edge := "surplus"
			if tree {
				edge = "tree"
			}
			m.promotions.WithLabelValues(strconv.Itoa(level), edge).Inc()
		},
		OnReplace: func(level int, found bool) {
			outcome := "empty"
			if found {
				outcome = "found"
			}
			m.searches.WithLabelValues(strconv.Itoa(level), outcome).Inc()
		},
	}
}

// Observe counts one replayed result. It has the workload.Observer shape.
func (m *Metrics) Observe(_ int, r workload.Result) {
	m.ops.WithLabelValues(r.Op.Kind.String()).Inc()
	if r.Op.Kind == workload.Cut {
		m.cuts.WithLabelValues(r.Cut.String()).Inc()
	}
}

// Sample is one flattened metric value.
type Sample struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// Snapshot gathers every counter and gauge, sorted by name.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var v float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				v = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				v = metric.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, Sample{Name: sampleName(mf.GetName(), metric.GetLabel()), Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// Total sums every sample of the family name regardless of labels.
func Total(samples []Sample, name string) float64 {
	var sum float64
	for _, s := range samples {
		if s.Name == name || strings.HasPrefix(s.Name, name+"{") {
			sum += s.Value
		}
	}

	return sum
}

func sampleName(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, len(labels))
	for i, lp := range labels {
		parts[i] = fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}

	return name + "{" + strings.Join(parts, ",") + "}"
}
