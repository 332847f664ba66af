package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
)

// NewListRepository returns an append-only in-memory collection of E.
//
// Other than MemoryRepository it has no notion of an id: entities are queried
// with predicates and the absence of a match is a normal outcome, not an
// error. Use it when the stored type has no natural primary key, or when the
// caller wants to search by arbitrary fields.
func NewListRepository[E any](opts ...Option) *ListRepository[E] {
	repo := &ListRepository[E]{
		Mutex: &sync.Mutex{},
		Data:  []E{},
		repoConfig: repoConfig{
			idFieldName: "",
			store:       noopStore{},
			filename:    defaultFileName(new(E)),
		},
	}

	for _, opt := range opts {
		opt(&repo.repoConfig)
	}

	err := repo.store.Load(repo.filename, &repo.Data)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		panic("could not load data for list repository from store: " + err.Error())
	}

	return repo
}

// ListRepository implements an ordered collection in a generic way.
type ListRepository[E any] struct {
	// Mutex is embedded, so that repositories who extend ListRepository can
	// lock the same mutex as other methods.
	*sync.Mutex

	// Data is the repository's collection in insertion order. It is exposed in
	// case you're extending the repository. PREVENT using and accessing Data
	// directly, go through the repository methods.
	Data []E

	repoConfig
}

// Add appends the entity to the end of the collection. Duplicates are allowed.
func (repo *ListRepository[E]) Add(_ context.Context, entity E) error {
	repo.Lock()
	defer repo.Unlock()

	repo.Data = append(repo.Data, entity)

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data = repo.Data[:len(repo.Data)-1]

		return fmt.Errorf("could not save: %w", err)
	}

	return nil
}

// AddAll appends all entities, keeping their given order.
func (repo *ListRepository[E]) AddAll(ctx context.Context, entities []E) error {
	for _, e := range entities {
		if err := repo.Add(ctx, e); err != nil {
			return err
		}
	}

	return nil
}

// All returns every stored entity in insertion order.
func (repo *ListRepository[E]) All(_ context.Context) ([]E, error) {
	repo.Lock()
	defer repo.Unlock()

	return slices.Clone(repo.Data), nil
}

// FindFirst returns the first entity satisfying match.
// The second return value reports whether a match was found; no match is a
// normal outcome and not an error.
func (repo *ListRepository[E]) FindFirst(_ context.Context, match func(E) bool) (E, bool) { //nolint:ireturn // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	for _, e := range repo.Data {
		if match(e) {
			return e, true
		}
	}

	return *new(E), false
}

// RemoveFirst removes the first entity satisfying match and reports whether a
// match was found. It never fails on a missing match.
func (repo *ListRepository[E]) RemoveFirst(_ context.Context, match func(E) bool) (bool, error) {
	repo.Lock()
	defer repo.Unlock()

	for i, e := range repo.Data {
		if !match(e) {
			continue
		}

		old := slices.Clone(repo.Data)
		repo.Data = slices.Delete(repo.Data, i, i+1)

		err := repo.store.Store(repo.filename, repo.Data)
		if err != nil {
			repo.Data = old

			return false, fmt.Errorf("could not save: %w", err)
		}

		return true, nil
	}

	return false, nil
}

func (repo *ListRepository[E]) Count(_ context.Context) (int, error) {
	repo.Lock()
	defer repo.Unlock()

	return len(repo.Data), nil
}

// Length is an alias for Count.
func (repo *ListRepository[E]) Length(ctx context.Context) (int, error) {
	return repo.Count(ctx)
}

func (repo *ListRepository[E]) IsEmpty(ctx context.Context) (bool, error) {
	c, err := repo.Count(ctx)

	return c == 0, err
}

// Clear removes all entities.
func (repo *ListRepository[E]) Clear(_ context.Context) error {
	repo.Lock()
	defer repo.Unlock()

	old := repo.Data
	repo.Data = []E{}

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data = old

		return fmt.Errorf("could not save: %w", err)
	}

	return nil
}
