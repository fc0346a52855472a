package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/ports"
)

// CatalogService implements CRUD over books. There is no stock or versioning
// logic; concurrent updates are last-writer-wins.
type CatalogService struct {
	repo   ports.BookRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.BookRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// Save creates a new book. Callers must not pre-assign an identity.
func (s *CatalogService) Save(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if book.ID != "" {
		return nil, domain.ErrIDAssigned
	}

	book.ID = uuid.NewString()
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.logger.Info().Str("book_id", book.ID).Str("title", book.Title).Msg("book created")
	return book, nil
}

// Update overwrites an existing book. A candidate without an identity is
// redirected to Save.
func (s *CatalogService) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if book.ID == "" {
		return s.Save(ctx, book)
	}

	if err := s.repo.Replace(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *CatalogService) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) FindAll(ctx context.Context) ([]*domain.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) DeleteByID(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("book_id", id).Msg("book deleted")
	return nil
}
