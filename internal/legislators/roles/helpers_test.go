package roles

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"rollcall/internal/legislators/models"
	"rollcall/internal/metadata"
	"rollcall/pkg/platform/sentinel"
)

func day(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func testIndex() *metadata.Index {
	return metadata.NewIndex(&metadata.Metadata{
		Abbreviation: "ca",
		Chambers: map[string]metadata.Chamber{
			"upper": {Name: "Senate", Title: "Senator"},
			"lower": {Name: "Assembly", Title: "Assemblymember"},
		},
		Terms: []metadata.Term{
			{Name: "20092010", Sessions: []string{"20092010"}},
			{Name: "20112012", Sessions: []string{"20112012", "20112012 Special Session 1"}},
			{Name: "20132014", Sessions: []string{"20132014"}},
		},
		SessionDetails: map[string]metadata.SessionDetail{
			"20092010":                   {DisplayName: "2009-2010 Regular Session"},
			"20112012":                   {DisplayName: "2011-2012 Regular Session"},
			"20112012 Special Session 1": {DisplayName: "2011-2012 First Extraordinary Session"},
			"20132014":                   {DisplayName: "2013-2014 Regular Session"},
		},
	})
}

type fakeCommittees struct {
	mu    sync.Mutex
	calls atomic.Int32
	docs  map[string]*models.Committee
	err   error
	delay time.Duration
}

func (f *fakeCommittees) FindByIDs(_ context.Context, ids []string) ([]*models.Committee, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Committee
	for _, id := range ids {
		if c, ok := f.docs[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeBills struct {
	calls atomic.Int32
	docs  map[string]*models.Bill
}

func (f *fakeBills) FindByID(_ context.Context, id string) (*models.Bill, error) {
	f.calls.Add(1)
	b, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("bill %s: %w", id, sentinel.ErrNotFound)
	}
	return b, nil
}
