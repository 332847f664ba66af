package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository returns an implementation of Repository for the given
// entity E, keyed by a unique id. It is expected that E has a field called
// `ID`, that is used as the primary key and can be overwritten by WithIDField.
//
// Adding an entity whose id is already present fails with ErrAlreadyExists and
// leaves the stored entity untouched. Lookups and deletes of an absent id fail
// with ErrNotFound. All returns the entities in insertion order, so repeated
// runs produce the same report.
//
// If your repository needs additional methods, you can embed this repo into
// your own implementation to extend it to your use case. See the examples in
// the test files and StockRepository.
func NewMemoryRepository[E any, ID id](opts ...Option) *MemoryRepository[E, ID] {
	repo := &MemoryRepository[E, ID]{
		Mutex:        &sync.Mutex{},
		Data:         make(map[ID]E),
		order:        []ID{},
		currentIntID: *new(ID),
		repoConfig: repoConfig{
			idFieldName: "ID",
			store:       noopStore{},
			filename:    defaultFileName(new(E)),
		},
	}

	for _, opt := range opts {
		opt(&repo.repoConfig)
	}

	err := repo.store.Load(repo.filename, &repo.Data)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		panic("could not load data for memory repository from store: " + err.Error())
	}

	// a store only persists the collection, not the order the ids arrived in.
	// Sort, so that All stays deterministic after a reload.
	for id := range repo.Data {
		repo.order = append(repo.order, id)
	}

	slices.Sort(repo.order)

	return repo
}

// MemoryRepository implements Repository in a generic way.
// Use it to speed up your unit testing or to back small demo applications.
type MemoryRepository[E any, ID id] struct {
	// Mutex is embedded, so that repositories who extend MemoryRepository can
	// lock the same mutex as other methods.
	*sync.Mutex

	// Data is the repository's collection. It is exposed in case you're
	// extending the repository. PREVENT using and accessing Data directly,
	// go through the repository methods. If you write to Data, USE the Mutex
	// to lock first and keep the insertion order in sync via Add or Save.
	Data map[ID]E

	// order keeps the ids in insertion order, so that All is deterministic.
	order []ID

	currentIntID ID

	repoConfig
}

const panicIDNotSupported = "type of ID is not supported: "

func defaultFileName(entity any) string {
	return reflect.TypeOf(entity).Elem().Name() + ".json"
}

func (repo *MemoryRepository[E, ID]) getID(t any) ID { //nolint:ireturn // fp, as it is not recognised even with "generic" setting
	val := reflect.ValueOf(t)

	idField := val.FieldByName(repo.idFieldName)
	if reflect.DeepEqual(idField, reflect.Value{}) { //nolint:govet // is a fp, see: https://github.com/golang/go/issues/43993
		panic("entity does not have the field with name: " + repo.idFieldName)
	}

	var id ID

	switch idField.Kind() {
	case reflect.String:
		reflect.ValueOf(&id).Elem().SetString(idField.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		reflect.ValueOf(&id).Elem().SetInt(idField.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		reflect.ValueOf(&id).Elem().SetUint(idField.Uint())
	default:
		panic(panicIDNotSupported + idField.Kind().String())
	}

	return id
}

// NextID returns a new ID. It can be of the underlying type of string or integer.
func (repo *MemoryRepository[E, ID]) NextID(_ context.Context) (ID, error) { //nolint:ireturn // fp, as it is not recognised even with "generic" setting
	var id ID

	switch reflect.TypeOf(id).Kind() {
	case reflect.String:
		reflect.ValueOf(&id).Elem().SetString(uuid.New().String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		repo.Mutex.Lock()
		defer repo.Mutex.Unlock()

		// increment the ID: the value is stored in the repo, but it cannot be
		// accessed because the generic does not know which type it is, so that
		// is why reflection is used.
		newID := reflect.ValueOf(&repo.currentIntID).Elem().Int() + 1
		reflect.ValueOf(&repo.currentIntID).Elem().SetInt(newID)

		reflect.ValueOf(&id).Elem().SetInt(newID)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		repo.Mutex.Lock()
		defer repo.Mutex.Unlock()

		newID := reflect.ValueOf(&repo.currentIntID).Elem().Uint() + 1
		reflect.ValueOf(&repo.currentIntID).Elem().SetUint(newID)

		reflect.ValueOf(&id).Elem().SetUint(newID)
	default:
		panic(panicIDNotSupported + reflect.TypeOf(id).Kind().String())
	}

	return id, nil
}

// Create stores the given entity. It fails with ErrAlreadyExists if an entity
// with the same id is already present; the stored entity is never mutated in
// that case.
func (repo *MemoryRepository[E, ID]) Create(_ context.Context, entity E) error {
	repo.Lock()
	defer repo.Unlock()

	id := repo.getID(entity)
	if id == *new(ID) {
		return fmt.Errorf("missing ID: %w", ErrSaveFailed)
	}

	if _, found := repo.Data[id]; found {
		return fmt.Errorf("%w: id %v", ErrAlreadyExists, id)
	}

	repo.Data[id] = entity
	repo.order = append(repo.order, id)

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		delete(repo.Data, id)
		repo.order = repo.order[:len(repo.order)-1]

		return fmt.Errorf("could not save: %w", err)
	}

	return nil
}

// Add is an alias for Create.
func (repo *MemoryRepository[E, ID]) Add(ctx context.Context, entity E) error {
	return repo.Create(ctx, entity)
}

func (repo *MemoryRepository[E, ID]) Read(ctx context.Context, id ID) (E, error) { //nolint:ireturn // valid use of generics
	return repo.FindByID(ctx, id)
}

func (repo *MemoryRepository[E, ID]) FindByID(_ context.Context, id ID) (E, error) { //nolint:ireturn // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	if e, ok := repo.Data[id]; ok {
		return e, nil
	}

	return *new(E), fmt.Errorf("%w: id %v", ErrNotFound, id)
}

// Update replaces an already stored entity.
func (repo *MemoryRepository[E, ID]) Update(_ context.Context, entity E) error {
	repo.Lock()
	defer repo.Unlock()

	id := repo.getID(entity)
	if id == *new(ID) {
		return fmt.Errorf("missing ID: %w", ErrSaveFailed)
	}

	if _, found := repo.Data[id]; !found {
		return fmt.Errorf("entity does not exist yet: %w", ErrSaveFailed)
	}

	oldEntity := repo.Data[id]
	repo.Data[id] = entity

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data[id] = oldEntity
		return fmt.Errorf("could not save: %w", err)
	}

	return nil
}

// Save stores the entity no matter if it is already present or not.
func (repo *MemoryRepository[E, ID]) Save(_ context.Context, entity E) error {
	repo.Lock()
	defer repo.Unlock()

	id := repo.getID(entity)
	if id == *new(ID) {
		return fmt.Errorf("missing ID: %w", ErrSaveFailed)
	}

	oldEntity, existed := repo.Data[id]

	repo.Data[id] = entity
	if !existed {
		repo.order = append(repo.order, id)
	}

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		if existed {
			repo.Data[id] = oldEntity
		} else {
			delete(repo.Data, id)
			repo.order = repo.order[:len(repo.order)-1]
		}

		return fmt.Errorf("could not save: %w", err)
	}

	return nil
}

// All returns every stored entity in insertion order.
func (repo *MemoryRepository[E, ID]) All(_ context.Context) ([]E, error) {
	repo.Lock()
	defer repo.Unlock()

	result := make([]E, 0, len(repo.order))

	for _, id := range repo.order {
		result = append(result, repo.Data[id])
	}

	return result, nil
}

func (repo *MemoryRepository[E, ID]) Exists(_ context.Context, id ID) (bool, error) {
	repo.Lock()
	defer repo.Unlock()

	_, ok := repo.Data[id]

	return ok, nil
}

// Contains is an alias for Exists.
func (repo *MemoryRepository[E, ID]) Contains(ctx context.Context, id ID) (bool, error) {
	return repo.Exists(ctx, id)
}

func (repo *MemoryRepository[E, ID]) Count(_ context.Context) (int, error) {
	repo.Lock()
	defer repo.Unlock()

	return len(repo.Data), nil
}

// Length is an alias for Count.
func (repo *MemoryRepository[E, ID]) Length(ctx context.Context) (int, error) {
	return repo.Count(ctx)
}

func (repo *MemoryRepository[E, ID]) IsEmpty(ctx context.Context) (bool, error) {
	c, err := repo.Count(ctx)

	return c == 0, err
}

// DeleteByID removes the entity with the given id.
// It fails with ErrNotFound if no such entity is stored.
func (repo *MemoryRepository[E, ID]) DeleteByID(_ context.Context, id ID) error {
	repo.Lock()
	defer repo.Unlock()

	oldEntity, found := repo.Data[id]
	if !found {
		return fmt.Errorf("%w: id %v", ErrNotFound, id)
	}

	pos := slices.Index(repo.order, id)

	delete(repo.Data, id)
	repo.order = slices.Delete(repo.order, pos, pos+1)

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data[id] = oldEntity
		repo.order = slices.Insert(repo.order, pos, id)

		return fmt.Errorf("could not save: %w", err)
	}

	return nil
}

func (repo *MemoryRepository[E, ID]) DeleteAll(_ context.Context) error {
	repo.Lock()
	defer repo.Unlock()

	oldData := make(map[ID]E, len(repo.Data))
	for k, v := range repo.Data {
		oldData[k] = v
	}

	oldOrder := slices.Clone(repo.order)

	clear(repo.Data)
	repo.order = []ID{}

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data = oldData
		repo.order = oldOrder

		return fmt.Errorf("could not save: %w", err)
	}

	return nil
}

// Clear is an alias for DeleteAll.
func (repo *MemoryRepository[E, ID]) Clear(ctx context.Context) error {
	return repo.DeleteAll(ctx)
}
