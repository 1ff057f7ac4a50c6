package catalog

import (
	"context"
	"strings"
)

type Service struct {
	drugs Repository
}

func NewService(drugs Repository) *Service {
	return &Service{drugs: drugs}
}

func (s *Service) List(ctx context.Context) ([]*Drug, error) {
	return s.drugs.List(ctx)
}

// FindByCategory returns drugs whose category matches the query in either
// direction: the stored category contains the query, or the query contains
// the stored category. 感冒药 therefore matches both "感冒" and "感冒药品".
// Catalog order is preserved.
func (s *Service) FindByCategory(ctx context.Context, category string) ([]*Drug, error) {
	all, err := s.drugs.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return nil, nil
	}

	var matched []*Drug
	for _, d := range all {
		if d.Category == "" {
			continue
		}
		if strings.Contains(d.Category, category) || strings.Contains(category, d.Category) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (s *Service) Create(ctx context.Context, d *Drug) error {
	return s.drugs.Create(ctx, d)
}
