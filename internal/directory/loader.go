package directory

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"hiredesk/internal/entity"
	"hiredesk/internal/logging"
)

// Loader deduplicates concurrent list fetches: the palette and the search
// step can both ask for the candidate list at the same moment, and only one
// query should hit the database.
type Loader struct {
	store *Store
	group singleflight.Group
}

// NewLoader wraps a store.
func NewLoader(store *Store) *Loader {
	return &Loader{store: store}
}

// Candidates returns the candidate list, collapsing concurrent callers onto
// a single query.
func (l *Loader) Candidates(ctx context.Context) ([]entity.Candidate, error) {
	v, err, shared := l.group.Do("candidates", func() (interface{}, error) {
		return l.store.ListCandidates(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logging.Directory("candidate list fetch shared across concurrent callers")
	}
	return v.([]entity.Candidate), nil
}

// Companies returns the company list, collapsing concurrent callers onto a
// single query.
func (l *Loader) Companies(ctx context.Context) ([]entity.Company, error) {
	v, err, shared := l.group.Do("companies", func() (interface{}, error) {
		return l.store.ListCompanies(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logging.Directory("company list fetch shared across concurrent callers")
	}
	return v.([]entity.Company), nil
}

// WarmUp loads both lists in parallel, surfacing the first error.
// Called once at boot so the first palette open is instant.
func (l *Loader) WarmUp(ctx context.Context) error {
	timer := logging.StartTimer(logging.CategoryDirectory, "Loader.WarmUp")
	defer timer.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := l.Candidates(gctx)
		return err
	})
	g.Go(func() error {
		_, err := l.Companies(gctx)
		return err
	})
	return g.Wait()
}
