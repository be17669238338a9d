package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakePoolStats struct {
	total, idle, acquired int32
}

func (s fakePoolStats) TotalConns() int32    { return s.total }
func (s fakePoolStats) IdleConns() int32     { return s.idle }
func (s fakePoolStats) AcquiredConns() int32 { return s.acquired }

type fakeProvider struct {
	stats fakePoolStats
}

func (p *fakeProvider) Stat() PoolStats { return p.stats }

func TestMailDispatchCounter(t *testing.T) {
	before := testutil.ToFloat64(MailDispatchTotal.WithLabelValues("comment_notification", "error"))

	MailDispatchTotal.WithLabelValues("comment_notification", "error").Inc()

	after := testutil.ToFloat64(MailDispatchTotal.WithLabelValues("comment_notification", "error"))
	assert.Equal(t, before+1, after)
}

func TestLikeTogglesCounter(t *testing.T) {
	before := testutil.ToFloat64(LikeTogglesTotal.WithLabelValues("liked"))

	LikeTogglesTotal.WithLabelValues("liked").Inc()
	LikeTogglesTotal.WithLabelValues("unliked").Inc()

	after := testutil.ToFloat64(LikeTogglesTotal.WithLabelValues("liked"))
	assert.Equal(t, before+1, after)
}

func TestPoolStatsCollector(t *testing.T) {
	provider := &fakeProvider{stats: fakePoolStats{total: 10, idle: 7, acquired: 3}}
	collector := NewPoolStatsCollectorWithProvider(provider)

	collector.Start(10 * time.Millisecond)
	defer collector.Stop()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")) == 10 &&
			testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")) == 7 &&
			testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("acquired")) == 3
	}, time.Second, 10*time.Millisecond)
}
