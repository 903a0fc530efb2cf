package app

import (
	"context"
	"fmt"
	"strings"

	"tripmate/internal/domain"
)

type BlogService struct {
	blogs domain.BlogRepository
}

func NewBlogService(b domain.BlogRepository) *BlogService {
	return &BlogService{blogs: b}
}

type BlogInput struct {
	Title      string
	Content    string
	CoverImage *string
}

func (in *BlogInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("title and content are required: %w", domain.ErrValidation)
	}
	return nil
}

func (s *BlogService) Create(ctx context.Context, authorID int64, in BlogInput) (domain.Blog, error) {
	if err := in.validate(); err != nil {
		return domain.Blog{}, err
	}
	b := domain.Blog{AuthorID: authorID, Title: strings.TrimSpace(in.Title), Content: in.Content, CoverImage: in.CoverImage}
	if err := s.blogs.CreateBlog(ctx, &b); err != nil {
		return domain.Blog{}, err
	}
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, actor domain.Actor, id int64, in BlogInput) (domain.Blog, error) {
	b, err := s.blogs.GetBlog(ctx, id)
	if err != nil {
		return domain.Blog{}, err
	}
	if b.AuthorID != actor.ID && !actor.IsAdmin() {
		return domain.Blog{}, fmt.Errorf("not the author of blog %d: %w", id, domain.ErrForbidden)
	}
	if err := in.validate(); err != nil {
		return domain.Blog{}, err
	}
	b.Title = strings.TrimSpace(in.Title)
	b.Content = in.Content
	b.CoverImage = in.CoverImage
	if err := s.blogs.UpdateBlog(ctx, &b); err != nil {
		return domain.Blog{}, err
	}
	return b, nil
}

func (s *BlogService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	b, err := s.blogs.GetBlog(ctx, id)
	if err != nil {
		return err
	}
	if b.AuthorID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("not the author of blog %d: %w", id, domain.ErrForbidden)
	}
	return s.blogs.DeleteBlog(ctx, id)
}

func (s *BlogService) Get(ctx context.Context, id int64) (domain.Blog, error) {
	return s.blogs.GetBlog(ctx, id)
}

func (s *BlogService) List(ctx context.Context, limit int) ([]domain.Blog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.blogs.ListBlogs(ctx, limit)
}
