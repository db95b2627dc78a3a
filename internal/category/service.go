package category

import (
	"context"
	"strings"
)

type Service interface {
	List(ctx context.Context) ([]*Category, error)
	Add(ctx context.Context, name string) (*Category, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.GetCategories(ctx)
}

func (s *service) Add(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return s.repo.AddCategory(ctx, name)
}

func (s *service) Rename(ctx context.Context, id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	return s.repo.RenameCategory(ctx, id, name)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteCategory(ctx, id)
}
