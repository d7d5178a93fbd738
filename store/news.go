package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/padraicbc/gridapi/models"
)

// ListNews returns articles ordered newest first. A limit of 0 means no cap.
// The id tiebreak keeps same-timestamp articles in a stable order.
func (s *Store) ListNews(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	var articles []models.NewsArticle
	q := s.db.NewSelect().
		Model(&articles).
		OrderExpr("created_at DESC").
		OrderExpr("id DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetNews returns one article or ErrNotFound.
func (s *Store) GetNews(ctx context.Context, id int64) (*models.NewsArticle, error) {
	article := &models.NewsArticle{}
	err := s.db.NewSelect().Model(article).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

// CreateNews inserts an article and returns its id. The created timestamp
// is set by the database.
func (s *Store) CreateNews(ctx context.Context, title, content, imageURL string) (int64, error) {
	if err := validateNews(title, content); err != nil {
		return 0, err
	}

	article := &models.NewsArticle{
		Title:    strings.TrimSpace(title),
		Content:  content,
		ImageURL: imageURL,
	}
	if _, err := s.db.NewInsert().Model(article).Exec(ctx); err != nil {
		return 0, err
	}
	return article.ID, nil
}

// UpdateNews overwrites an article's editable fields in place.
func (s *Store) UpdateNews(ctx context.Context, id int64, title, content, imageURL string) error {
	if err := validateNews(title, content); err != nil {
		return err
	}

	res, err := s.db.NewUpdate().
		Model((*models.NewsArticle)(nil)).
		Set("title = ?", strings.TrimSpace(title)).
		Set("content = ?", content).
		Set("image_url = ?", imageURL).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeleteNews removes an article by id.
func (s *Store) DeleteNews(ctx context.Context, id int64) error {
	res, err := s.db.NewDelete().
		Model((*models.NewsArticle)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func validateNews(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title"}
	}
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content"}
	}
	return nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
