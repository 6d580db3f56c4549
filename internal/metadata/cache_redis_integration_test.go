//go:build integration

package metadata_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"rollcall/internal/metadata"
	"rollcall/internal/platform/metrics"
	"rollcall/pkg/platform/sentinel"
	"rollcall/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis   *containers.RedisContainer
	backing *metadata.MemoryRegistry
	metrics *metrics.Metrics
	cache   *metadata.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.backing = metadata.NewMemoryRegistry(&metadata.Metadata{
		Abbreviation: "ca",
		Name:         "California",
		Terms:        []metadata.Term{{Name: "20112012", Sessions: []string{"20112012"}}},
		SessionDetails: map[string]metadata.SessionDetail{
			"20112012": {DisplayName: "2011-2012 Regular Session"},
		},
	})
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.cache = metadata.NewRedisCache(s.backing, s.redis.Client, time.Minute, s.metrics)
}

func (s *RedisCacheSuite) TestMissThenHit() {
	ctx := context.Background()

	first, err := s.cache.Get(ctx, "ca")
	s.Require().NoError(err)
	s.Equal("California", first.Name)

	// Replace the backing copy; a hit must still return the cached one.
	s.backing.Put(&metadata.Metadata{Abbreviation: "ca", Name: "Changed"})

	second, err := s.cache.Get(ctx, "ca")
	s.Require().NoError(err)
	s.Equal("California", second.Name)
	s.Equal(first.SessionDetails, second.SessionDetails)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.MetadataCache.WithLabelValues("miss")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.MetadataCache.WithLabelValues("hit")))
}

func (s *RedisCacheSuite) TestInvalidate() {
	ctx := context.Background()

	_, err := s.cache.Get(ctx, "ca")
	s.Require().NoError(err)
	s.backing.Put(&metadata.Metadata{Abbreviation: "ca", Name: "Changed"})
	s.Require().NoError(s.cache.Invalidate(ctx, "ca"))

	m, err := s.cache.Get(ctx, "ca")
	s.Require().NoError(err)
	s.Equal("Changed", m.Name)
}

func (s *RedisCacheSuite) TestUnknownJurisdictionIsNotCached() {
	ctx := context.Background()

	_, err := s.cache.Get(ctx, "zz")
	s.ErrorIs(err, sentinel.ErrNotFound)

	n, err := s.redis.Client.Exists(ctx, "rollcall:metadata:zz").Result()
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *RedisCacheSuite) TestTTLEviction() {
	ctx := context.Background()
	short := metadata.NewRedisCache(s.backing, s.redis.Client, 50*time.Millisecond, nil)

	_, err := short.Get(ctx, "ca")
	s.Require().NoError(err)
	s.backing.Put(&metadata.Metadata{Abbreviation: "ca", Name: "Changed"})

	time.Sleep(120 * time.Millisecond)

	m, err := short.Get(ctx, "ca")
	s.Require().NoError(err)
	s.Equal("Changed", m.Name)
}
