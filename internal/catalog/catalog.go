package catalog

import (
	"context"
	"fmt"
	"foodgram/internal/config"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"io"
	"os"

	"go.uber.org/zap"
)

// Options configure catalog imports.
type Options struct {
	// BatchSize is the number of rows written per insert statement.
	BatchSize int
	// MaxAttempts is the number of times River retries a failed import job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BatchSize:   cfg.Worker.BatchSize,
		MaxAttempts: 3,
	}
}

// Result summarizes an import.
type Result struct {
	// Ingredients and Tags count newly inserted rows.
	Ingredients int64
	Tags        int64
	// Duplicates counts rows that already existed.
	Duplicates int64
	// Skipped counts rows rejected by normalization.
	Skipped int64
}

type importer struct {
	options Options
	storage storage.Storage
}

// New creates an Importer writing to storage.
func New(storage storage.Storage, options Options) Importer {
	if options.BatchSize <= 0 {
		options.BatchSize = 500
	}

	return &importer{
		options: options,
		storage: storage,
	}
}

func (i *importer) Enqueue(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, serrors.With(serrors.ErrBadRequest, "catalog path is required")
	}

	added, err := i.storage.AddJob(ctx, JobArgs{Path: path, maxAttempts: i.options.MaxAttempts}, nil)
	if err != nil {
		return false, fmt.Errorf("could not enqueue catalog import: %w", err)
	}

	return added, nil
}

func (i *importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, serrors.Wrap(serrors.ErrNotFound, err, "could not open catalog file")
	}
	defer func() { _ = f.Close() }()

	return i.Import(ctx, f)
}

// Import writes the whole document in one transaction, so a malformed file
// leaves the catalog untouched.
func (i *importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	var res Result

	err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res = Result{}
		b := &batcher{ctx: ctx, tx: tx, size: i.options.BatchSize, res: &res}

		if err := decode(r, handler{ingredient: b.addIngredient, tag: b.addTag}); err != nil {
			if b.storeErr != nil {
				return b.storeErr
			}

			return serrors.Wrap(serrors.ErrBadRequest, err, "malformed catalog")
		}

		return b.flush()
	})
	if err != nil {
		return Result{}, fmt.Errorf("could not import catalog: %w", err)
	}

	logger.Info(ctx, "catalog imported",
		zap.Int64("ingredients", res.Ingredients),
		zap.Int64("tags", res.Tags),
		zap.Int64("duplicates", res.Duplicates),
		zap.Int64("skipped", res.Skipped))

	return res, nil
}

// batcher buffers normalized rows and writes them in batches.
type batcher struct {
	ctx         context.Context //nolint: containedctx
	tx          storage.AllStorage
	size        int
	res         *Result
	ingredients []domain.Ingredient
	tags        []domain.Tag
	// storeErr is the first write failure, kept apart from decoding errors
	storeErr error
}

func (b *batcher) addIngredient(raw domain.Ingredient) error {
	ingredient, err := NormalizeIngredient(raw)
	if err != nil {
		b.res.Skipped++
		logger.Warn(b.ctx, "skipping ingredient", zap.String("name", raw.Name), zap.Error(err))

		return nil
	}

	b.ingredients = append(b.ingredients, ingredient)
	if len(b.ingredients) >= b.size {
		return b.flushIngredients()
	}

	return nil
}

func (b *batcher) addTag(raw domain.Tag) error {
	tag, err := NormalizeTag(raw)
	if err != nil {
		b.res.Skipped++
		logger.Warn(b.ctx, "skipping tag", zap.String("slug", raw.Slug), zap.Error(err))

		return nil
	}

	b.tags = append(b.tags, tag)
	if len(b.tags) >= b.size {
		return b.flushTags()
	}

	return nil
}

func (b *batcher) flushIngredients() error {
	if len(b.ingredients) == 0 {
		return nil
	}

	n, err := b.tx.StoreIngredients(b.ctx, b.ingredients...)
	if err != nil {
		b.storeErr = fmt.Errorf("could not store ingredients: %w", err)

		return b.storeErr
	}
	b.res.Ingredients += n
	b.res.Duplicates += int64(len(b.ingredients)) - n
	b.ingredients = nil

	return nil
}

func (b *batcher) flushTags() error {
	if len(b.tags) == 0 {
		return nil
	}

	n, err := b.tx.StoreTags(b.ctx, b.tags...)
	if err != nil {
		b.storeErr = fmt.Errorf("could not store tags: %w", err)

		return b.storeErr
	}
	b.res.Tags += n
	b.res.Duplicates += int64(len(b.tags)) - n
	b.tags = nil

	return nil
}

func (b *batcher) flush() error {
	if err := b.flushIngredients(); err != nil {
		return err
	}

	return b.flushTags()
}
