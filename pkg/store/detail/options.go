package detail

import (
	"slices"

	"github.com/blockgraph/blockgraph.go/pkg/logger"
	"github.com/blockgraph/blockgraph.go/pkg/models"
)

const (
	DefaultName = "Untitled"
	DeletedName = "Deleted"
)

type options struct {
	defaultName string
	deletedName string
	defaultKeys []string
	logger      logger.Logger
}

func defaultOptions() options {
	return options{
		defaultName: DefaultName,
		deletedName: DeletedName,
		defaultKeys: slices.Clone(models.DefaultRelationKeys),
		logger:      logger.Discard(),
	}
}

type Option func(o *options)

// WithDefaultName sets the name given to objects that have none.
func WithDefaultName(name string) Option {
	return func(o *options) {
		o.defaultName = name
	}
}

// WithDeletedName sets the name shown for objects flagged isDeleted.
func WithDeletedName(name string) Option {
	return func(o *options) {
		o.deletedName = name
	}
}

// WithDefaultKeys replaces the keys merged into every filtered Get.
func WithDefaultKeys(keys []string) Option {
	return func(o *options) {
		o.defaultKeys = slices.Clone(keys)
	}
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
