package artworks

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
	"unicode/utf8"

	"artwork-app/internal/domain/artworks"
	"artwork-app/internal/domain/shared"
	"artwork-app/internal/metapi"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// maxFieldLen matches the varchar(255) columns of the artworks table.
	maxFieldLen = 255

	// minBackfillBatch amortizes external calls: a pagination shortfall
	// always requests at least this many records.
	minBackfillBatch = 100

	backfillTimeout = 5 * time.Minute
)

// Fetcher is the port to the external artwork source.
type Fetcher interface {
	FetchRandomArtworks(ctx context.Context, count int) ([]metapi.ObjectRecord, error)
}

// Service orchestrates sampling, persistence and on-demand backfill.
// It holds no state of its own; all durable state lives in the database.
type Service struct {
	db      *gorm.DB
	fetcher Fetcher
	logger  *zap.Logger
}

func NewService(db *gorm.DB, fetcher Fetcher, logger *zap.Logger) *Service {
	return &Service{db: db, fetcher: fetcher, logger: logger}
}

// Page is the pagination envelope returned to clients.
type Page struct {
	Artworks    []artworks.Artwork `json:"artworks"`
	Total       int64              `json:"total"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
}

// truncate cuts value to at most maxFieldLen bytes, backing up so a
// multi-byte rune is never split.
func truncate(value string) string {
	if len(value) <= maxFieldLen {
		return value
	}
	cut := maxFieldLen
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}

// FetchAndSave pulls count random records from the external source and
// persists each valid one, returning the saved rows in fetch order. Rows
// already committed before a failure stay committed; there is no batch
// transaction.
func (s *Service) FetchAndSave(ctx context.Context, count int) ([]artworks.Artwork, error) {
	records, err := s.fetcher.FetchRandomArtworks(ctx, count)
	if err != nil {
		s.logger.Error("fetching artworks from external API", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Server error while fetching and saving artworks")
	}

	saved := make([]artworks.Artwork, 0, len(records))
	for _, record := range records {
		artwork := artworks.Artwork{
			Title:    truncate(record.Title),
			Artist:   truncate(record.ArtistDisplayName),
			Period:   truncate(record.ObjectDate),
			Medium:   truncate(record.Medium),
			Location: truncate(record.Repository),
			ImageURL: truncate(record.PrimaryImage),
			MetURL:   truncate(record.ObjectURL),
		}
		if err := s.db.WithContext(ctx).Create(&artwork).Error; err != nil {
			s.logger.Error("saving fetched artwork",
				zap.Int("object_id", record.ObjectID), zap.Error(err))
			return nil, shared.NewDomainError(shared.CodeInternal, "Server error while fetching and saving artworks")
		}
		saved = append(saved, artwork)
	}

	return saved, nil
}

// Paginated reads one window of stored artworks, most recent first. When the
// window comes back short it kicks off a detached backfill and still returns
// the short page: the caller sees the rows that exist right now, and the new
// ones become visible on a later request.
func (s *Service) Paginated(ctx context.Context, page, pageSize int) (*Page, error) {
	offset := (page - 1) * pageSize

	items := make([]artworks.Artwork, 0, pageSize)
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&items).Error; err != nil {
		s.logger.Error("reading artwork page", zap.Int("page", page), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Server error while fetching artworks")
	}

	total, err := s.Count(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) < pageSize {
		s.backfill(pageSize - len(items))
	}

	return &Page{
		Artworks:    items,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		CurrentPage: page,
	}, nil
}

// backfill tops up the local store in the background. Errors are logged and
// dropped; nothing here touches the response of the request that noticed the
// shortfall. Two concurrent shortfalls may both trigger a fetch — duplicate
// rows are tolerated.
func (s *Service) backfill(missing int) {
	count := missing
	if count < minBackfillBatch {
		count = minBackfillBatch
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), backfillTimeout)
		defer cancel()

		if _, err := s.FetchAndSave(ctx, count); err != nil {
			s.logger.Warn("backfill fetch failed",
				zap.Int("requested", count), zap.Error(err))
		}
	}()
}

// ByID looks up a single stored artwork.
func (s *Service) ByID(ctx context.Context, id uint) (*artworks.Artwork, error) {
	var artwork artworks.Artwork
	err := s.db.WithContext(ctx).First(&artwork, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Artwork not found")
	}
	if err != nil {
		s.logger.Error("fetching artwork by id", zap.Uint("id", id), zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Server error while fetching artwork")
	}
	return &artwork, nil
}

// Count returns the total number of stored artworks.
func (s *Service) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&artworks.Artwork{}).Count(&total).Error; err != nil {
		s.logger.Error("counting artworks", zap.Error(err))
		return 0, shared.NewDomainError(shared.CodeInternal, "Server error while retrieving artwork count")
	}
	return total, nil
}

// Random returns one uniformly random stored artwork.
func (s *Service) Random(ctx context.Context) (*artworks.Artwork, error) {
	total, err := s.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, shared.NewDomainError(shared.CodeNotFound, "No artworks available")
	}

	var artwork artworks.Artwork
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(rand.Intn(int(total))).
		Limit(1).
		Find(&artwork).Error; err != nil {
		s.logger.Error("fetching random artwork", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Server error while fetching random artwork")
	}
	return &artwork, nil
}
