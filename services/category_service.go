package services

import (
	"context"

	"github.com/athh15/vef2-hop1/models"
	"github.com/athh15/vef2-hop1/repository"
)

type CategoryResult struct {
	Status Status
	Errors []models.FieldError
	Item   *models.Category
}

type CategoryAPI interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, in CategoryInput) (CategoryResult, error)
	Update(ctx context.Context, id int, in CategoryInput) (CategoryResult, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type CategoryService struct {
	repo repository.CategoryRepo
}

func NewCategoryService(repo repository.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (CategoryResult, error) {
	if errs := ValidateCategory(in, false); len(errs) > 0 {
		return CategoryResult{Status: StatusInvalid, Errors: errs}, nil
	}

	category := models.Category{Title: sanitize(*in.Title)}
	if err := s.repo.Insert(ctx, &category); err != nil {
		return CategoryResult{}, err
	}

	return CategoryResult{Status: StatusOK, Item: &category}, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, in CategoryInput) (CategoryResult, error) {
	if errs := ValidateCategory(in, true); len(errs) > 0 {
		return CategoryResult{Status: StatusInvalid, Errors: errs}, nil
	}

	updates := map[string]interface{}{}
	if !isEmptyString(in.Title) {
		updates["title"] = sanitize(*in.Title)
	}
	if len(updates) == 0 {
		// nothing to patch, report the current row
		item, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return CategoryResult{}, err
		}
		if item == nil {
			return CategoryResult{Status: StatusNotFound}, nil
		}
		return CategoryResult{Status: StatusOK, Item: item}, nil
	}

	rows, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return CategoryResult{}, err
	}
	if rows == 0 {
		return CategoryResult{Status: StatusNotFound}, nil
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CategoryResult{}, err
	}
	return CategoryResult{Status: StatusOK, Item: item}, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) (bool, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}
