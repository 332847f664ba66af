package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("exists already")
	ErrSaveFailed      = errors.New("save failed")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Repository is a general purpose interface documenting which methods are
// available by the generic MemoryRepository.
// ID is the primary key and needs to be of one of the underlying types.
// If your repository needs additional methods, you can extend your own
// repository easily to tune it to your use case. See the examples in the test
// files.
type Repository[E any, ID id] interface {
	NextID(ctx context.Context) (ID, error)

	Add(ctx context.Context, entity E) error
	Create(ctx context.Context, entity E) error
	Read(ctx context.Context, id ID) (E, error)
	FindByID(ctx context.Context, id ID) (E, error)
	Update(ctx context.Context, entity E) error
	Save(ctx context.Context, entity E) error

	All(ctx context.Context) ([]E, error)
	Exists(ctx context.Context, id ID) (bool, error)
	Contains(ctx context.Context, id ID) (bool, error)

	Count(ctx context.Context) (int, error)
	Length(ctx context.Context) (int, error)
	IsEmpty(ctx context.Context) (bool, error)

	DeleteByID(ctx context.Context, id ID) error
	DeleteAll(ctx context.Context) error
	Clear(ctx context.Context) error
}

// id are the types allowed as a primary key used in the generic Repository.
type id interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Quantified is implemented by entities that track a stock quantity,
// so that a StockRepository can read and write the quantity without knowing
// the concrete entity type.
// WithStockQuantity returns a copy of the entity with the quantity replaced,
// keeping the entity itself a plain value.
type Quantified[E any] interface {
	StockQuantity() int
	WithStockQuantity(quantity int) E
}

// Option takes in a repository configuration to set optional properties.
type Option func(*repoConfig)

type repoConfig struct {
	idFieldName string
	store       Store
	filename    string
}

// WithIDField sets the name of the field that is used as an id or primary key.
// If not set, it is assumed that the entity struct has a field with the name "ID".
func WithIDField(idFieldName string) Option {
	return func(config *repoConfig) {
		config.idFieldName = idFieldName
	}
}

// WithStore sets a Store used to persist the repository between runs.
//
// There are no transactions or any consistency guarantees at all! For example,
// if a store fails, the collection is still changed in memory of the repository.
func WithStore(store Store) Option {
	return func(config *repoConfig) {
		config.store = store
	}
}

// WithStoreFilename overwrites the file name a Store should use to persist
// this repository.
func WithStoreFilename(name string) Option {
	return func(config *repoConfig) {
		config.filename = name
	}
}
