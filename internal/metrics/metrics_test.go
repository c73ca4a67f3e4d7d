package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Record(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ScriptGenerated("channel", "Casual")
	m.ScriptGenerated("channel", "Casual")
	m.GenerationFailed(StageLLM)
	m.ChannelLookup("not_found")
	m.ObserveLLM(1500 * time.Millisecond)

	if got := testutil.ToFloat64(m.ScriptsGenerated.WithLabelValues("channel", "Casual")); got != 2 {
		t.Errorf("scripts generated = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.GenerationFailures.WithLabelValues(StageLLM)); got != 1 {
		t.Errorf("llm failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ChannelLookups.WithLabelValues("not_found")); got != 1 {
		t.Errorf("not_found lookups = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.LLMLatency); got != 1 {
		t.Errorf("llm latency series = %d, want 1", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ScriptGenerated("manual", "Informative")
	m.GenerationFailed(StageHistory)
	m.ChannelLookup("found")
	m.ObserveLLM(time.Second)
	RegisterPool(prometheus.NewRegistry(), nil)
}
