package roles

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"rollcall/internal/legislators/models"
	"rollcall/internal/platform/metrics"
	"rollcall/pkg/platform/sentinel"
)

type ResolverSuite struct {
	suite.Suite
	bills *fakeBills
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.bills = &fakeBills{docs: map[string]*models.Bill{
		"CAB00001": {ID: "CAB00001", BillID: "SB 1", State: "ca", Term: "20112014"},
		"CAB00002": {ID: "CAB00002", BillID: "AB 7", State: "ca", Term: "20092010"},
	}}
}

// formerMember served two consecutive stints in the upper chamber during the
// 20112014 term and one lower chamber stint without dates.
func formerMember() *models.Legislator {
	return &models.Legislator{
		ID:       "CAL000042",
		State:    "ca",
		FullName: "Grace Hopper",
		OldRoles: map[string][]models.Role{
			"20112014": {
				{Term: "20112014", Chamber: "upper", Type: "member", District: "3",
					StartDate: day("2011-01-01"), EndDate: day("2012-12-31")},
				{Term: "20112014", Chamber: "lower", Type: "member", District: "9"},
				{Term: "20112014", Chamber: "upper", Type: "member", District: "4",
					StartDate: day("2013-01-01"), EndDate: day("2014-12-31")},
			},
			"20092010": {
				{Term: "20092010", Chamber: "lower", Type: "member", District: "12"},
			},
		},
	}
}

func (s *ResolverSuite) TestActiveLegislatorUsesOwnRecord() {
	leg := &models.Legislator{
		ID: "CAL000001", State: "ca", Active: true,
		Chamber: "lower", Party: "Republican", District: "80",
		Roles: []models.Role{{Term: "20132014", Chamber: "lower", Type: "member"}},
	}

	s.Run("regardless of the vote's term or chamber", func() {
		res, err := Resolve(leg, "19992000", "upper", time.Time{})
		s.Require().NoError(err)
		s.Equal(OutcomeActive, res.Outcome)
		s.Require().NotNil(res.Role)
		s.Equal("lower", res.Role.Chamber)
		s.Equal("80", res.Role.District)
		s.Equal("Republican", res.Role.Party)
	})

	s.Run("without looking up the bill", func() {
		l := New(leg, testIndex(), nil, s.bills)
		res, err := l.VoteRole(context.Background(), &models.Vote{ID: "v1", BillID: "missing", Chamber: "upper"})
		s.Require().NoError(err)
		s.Equal(OutcomeActive, res.Outcome)
		s.Equal("20132014", res.Term)
		s.Zero(s.bills.calls.Load())
	})
}

func (s *ResolverSuite) TestSingleCandidateSkipsDateCheck() {
	leg := formerMember()

	res, err := Resolve(leg, "20112014", "lower", *day("1990-01-01"))
	s.Require().NoError(err)
	s.Equal(OutcomeSingleCandidate, res.Outcome)
	s.Equal(1, res.Candidates)
	s.Require().NotNil(res.Role)
	s.Equal("9", res.Role.District)
}

func (s *ResolverSuite) TestDateRangeContainment() {
	leg := formerMember()

	s.Run("vote inside the second stint resolves to it", func() {
		res, err := Resolve(leg, "20112014", "upper", *day("2013-06-01"))
		s.Require().NoError(err)
		s.Equal(OutcomeDateRange, res.Outcome)
		s.Equal(2, res.Candidates)
		s.Require().NotNil(res.Role)
		s.Equal("4", res.Role.District)
	})

	s.Run("vote inside the first stint resolves to it", func() {
		res, err := Resolve(leg, "20112014", "upper", *day("2012-03-15"))
		s.Require().NoError(err)
		s.Require().NotNil(res.Role)
		s.Equal("3", res.Role.District)
	})

	s.Run("vote on a boundary date is undetermined", func() {
		res, err := Resolve(leg, "20112014", "upper", *day("2013-01-01"))
		s.Require().NoError(err)
		s.Equal(OutcomeUndetermined, res.Outcome)
		s.False(res.Found())
		s.Equal(2, res.Candidates)
	})

	s.Run("vote outside every stint is undetermined", func() {
		res, err := Resolve(leg, "20112014", "upper", *day("2016-01-01"))
		s.Require().NoError(err)
		s.False(res.Found())
	})
}

func (s *ResolverSuite) TestNoChamberMatchIsUndetermined() {
	leg := formerMember()

	res, err := Resolve(leg, "20092010", "upper", *day("2010-01-01"))
	s.Require().NoError(err)
	s.Equal(OutcomeUndetermined, res.Outcome)
	s.Zero(res.Candidates)
	s.Nil(res.Role)
}

func (s *ResolverSuite) TestRolesWithoutDatesAreSkippedInScan() {
	leg := &models.Legislator{
		ID: "CAL000043",
		OldRoles: map[string][]models.Role{
			"20112014": {
				{Term: "20112014", Chamber: "upper", Type: "member", District: "1", StartDate: day("2011-01-01")},
				{Term: "20112014", Chamber: "upper", Type: "member", District: "2",
					StartDate: day("2011-01-01"), EndDate: day("2014-12-31")},
			},
		},
	}

	res, err := Resolve(leg, "20112014", "upper", *day("2012-01-01"))
	s.Require().NoError(err)
	s.Require().NotNil(res.Role)
	s.Equal("2", res.Role.District)
}

func (s *ResolverSuite) TestOverlappingRangesReturnFirstMatch() {
	leg := &models.Legislator{
		ID: "CAL000044",
		OldRoles: map[string][]models.Role{
			"20112014": {
				{Term: "20112014", Chamber: "upper", Type: "member", District: "first",
					StartDate: day("2011-01-01"), EndDate: day("2014-12-31")},
				{Term: "20112014", Chamber: "upper", Type: "member", District: "second",
					StartDate: day("2012-01-01"), EndDate: day("2013-12-31")},
			},
		},
	}

	res, err := Resolve(leg, "20112014", "upper", *day("2012-06-01"))
	s.Require().NoError(err)
	s.Require().NotNil(res.Role)
	s.Equal("first", res.Role.District)
}

func (s *ResolverSuite) TestMissingTermData() {
	leg := formerMember()

	_, err := Resolve(leg, "20152016", "upper", *day("2015-06-01"))
	s.Require().Error(err)
	s.ErrorIs(err, models.ErrMissingTermData)

	l := New(leg, testIndex(), nil, &fakeBills{docs: map[string]*models.Bill{
		"CAB00009": {ID: "CAB00009", Term: "20152016"},
	}})
	_, err = l.VoteRole(context.Background(), &models.Vote{ID: "v9", BillID: "CAB00009", Chamber: "upper"})
	s.ErrorIs(err, models.ErrMissingTermData)
}

func (s *ResolverSuite) TestEmptyTermBucketIsNotMissing() {
	leg := &models.Legislator{ID: "CAL000045", OldRoles: map[string][]models.Role{"20112014": {}}}

	res, err := Resolve(leg, "20112014", "upper", *day("2012-01-01"))
	s.Require().NoError(err)
	s.Equal(OutcomeUndetermined, res.Outcome)
}

func (s *ResolverSuite) TestVoteRoleUsesBillTerm() {
	l := New(formerMember(), testIndex(), nil, s.bills)

	res, err := l.VoteRole(context.Background(), &models.Vote{
		ID: "CAV00001", BillID: "CAB00001", Chamber: "upper", Date: *day("2013-06-01"),
	})
	s.Require().NoError(err)
	s.Equal("20112014", res.Term)
	s.Require().NotNil(res.Role)
	s.Equal("4", res.Role.District)
}

func (s *ResolverSuite) TestVoteRoleTimesBillLookup() {
	m := metrics.New(prometheus.NewRegistry())
	l := New(formerMember(), testIndex(), nil, s.bills, WithMetrics(m))

	_, err := l.VoteRole(context.Background(), &models.Vote{
		ID: "CAV00004", BillID: "CAB00001", Chamber: "upper", Date: *day("2013-06-01"),
	})
	s.Require().NoError(err)
	s.Equal(1, testutil.CollectAndCount(m.LookupLatency))

	active := New(&models.Legislator{ID: "CAL000001", Active: true}, testIndex(), nil, s.bills, WithMetrics(m))
	_, err = active.VoteRole(context.Background(), &models.Vote{ID: "CAV00005", BillID: "CAB00001"})
	s.Require().NoError(err)
	s.Equal(1, testutil.CollectAndCount(m.LookupLatency), "active legislators skip the bill lookup")
}

func (s *ResolverSuite) TestVoteRoleMemoizedPerVote() {
	l := New(formerMember(), testIndex(), nil, s.bills)
	ctx := context.Background()
	vote := &models.Vote{ID: "CAV00002", BillID: "CAB00002", Chamber: "lower", Date: *day("2010-02-01")}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := l.VoteRole(ctx, vote)
			s.NoError(err)
			s.Equal(OutcomeSingleCandidate, res.Outcome)
		}()
	}
	wg.Wait()

	_, err := l.VoteRole(ctx, vote)
	s.Require().NoError(err)
	s.Equal(int32(1), s.bills.calls.Load())

	other := &models.Vote{ID: "CAV00003", BillID: "CAB00001", Chamber: "upper", Date: *day("2012-01-01")}
	_, err = l.VoteRole(ctx, other)
	s.Require().NoError(err)
	s.Equal(int32(2), s.bills.calls.Load())
}

func (s *ResolverSuite) TestVoteRoleErrors() {
	l := New(formerMember(), testIndex(), nil, s.bills)
	ctx := context.Background()

	s.Run("nil vote", func() {
		_, err := l.VoteRole(ctx, nil)
		s.ErrorIs(err, errVoteRequired)
	})

	s.Run("unknown bill is not memoized", func() {
		vote := &models.Vote{ID: "CAV00004", BillID: "CAB99999", Chamber: "upper"}
		_, err := l.VoteRole(ctx, vote)
		s.ErrorIs(err, sentinel.ErrNotFound)

		s.bills.docs["CAB99999"] = &models.Bill{ID: "CAB99999", Term: "20092010"}
		res, err := l.VoteRole(ctx, vote)
		s.Require().NoError(err)
		s.Equal(OutcomeUndetermined, res.Outcome)
	})

	s.Run("no bill lookup configured", func() {
		bare := New(formerMember(), testIndex(), nil, nil)
		_, err := bare.VoteRole(ctx, &models.Vote{ID: "CAV00005", BillID: "CAB00001"})
		s.Error(err)
	})
}
