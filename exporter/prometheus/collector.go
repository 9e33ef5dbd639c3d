// Copyright (c) 2024 Alexey Mayshev. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maypok86/chunkcache"
)

// StatsProvider provides chunk cache statistics and occupancy.
type StatsProvider interface {
	Stats() chunkcache.Stats
	Len() int
	Candidates() int
}

// Collector collects statistics from a chunk cache and exposes them to Prometheus.
type Collector struct {
	provider       StatsProvider
	hitsDesc       *prometheus.Desc
	missesDesc     *prometheus.Desc
	loadsDesc      *prometheus.Desc
	unloadsDesc    *prometheus.Desc
	evictionsDesc  *prometheus.Desc
	chunksDesc     *prometheus.Desc
	candidatesDesc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given cache statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - hits
// - misses
// - loads
// - unloads
// - evictions
// - chunks
// - candidates
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, nil)
	}

	return &Collector{
		provider:       provider,
		hitsDesc:       desc("hits", "Number of provide calls that found a stored chunk."),
		missesDesc:     desc("misses", "Number of provide calls answered with the placeholder chunk."),
		loadsDesc:      desc("loads", "Number of loaded chunks."),
		unloadsDesc:    desc("unloads", "Number of unload requests."),
		evictionsDesc:  desc("evictions", "Number of evicted chunks."),
		chunksDesc:     desc("chunks", "Number of chunks in the primary store."),
		candidatesDesc: desc("candidates", "Number of eviction candidates."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.hitsDesc
	descs <- c.missesDesc
	descs <- c.loadsDesc
	descs <- c.unloadsDesc
	descs <- c.evictionsDesc
	descs <- c.chunksDesc
	descs <- c.candidatesDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	stats := c.provider.Stats()
	metrics <- prometheus.MustNewConstMetric(
		c.hitsDesc, prometheus.CounterValue, float64(stats.Hits()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.missesDesc, prometheus.CounterValue, float64(stats.Misses()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.loadsDesc, prometheus.CounterValue, float64(stats.Loads()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.unloadsDesc, prometheus.CounterValue, float64(stats.Unloads()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.evictionsDesc, prometheus.CounterValue, float64(stats.Evictions()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.chunksDesc, prometheus.GaugeValue, float64(c.provider.Len()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.candidatesDesc, prometheus.GaugeValue, float64(c.provider.Candidates()),
	)
}
