package allergy

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
)

type (
	AllergyService interface {
		GetAllergies(ctx context.Context) ([]*entities.Allergy, error)
		GetAllergyDetail(ctx context.Context, allergyID uint) (*entities.Allergy, error)
		SearchAllergies(ctx context.Context, req domain.SearchAllergiesRequest) ([]*entities.Allergy, error)
	}

	allergyService struct {
		allergyRepository AllergyRepository
	}
)

func NewAllergyService(allergyRepository AllergyRepository) AllergyService {
	return &allergyService{allergyRepository: allergyRepository}
}

func (s *allergyService) GetAllergies(ctx context.Context) ([]*entities.Allergy, error) {
	return s.allergyRepository.GetAllergies(ctx)
}

func (s *allergyService) GetAllergyDetail(ctx context.Context, allergyID uint) (*entities.Allergy, error) {
	allergy, err := s.allergyRepository.GetAllergyByID(ctx, allergyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAllergyNotFound
		}
		return nil, err
	}
	return allergy, nil
}

func (s *allergyService) SearchAllergies(ctx context.Context, req domain.SearchAllergiesRequest) ([]*entities.Allergy, error) {
	return s.allergyRepository.SearchAllergies(ctx, req.Query)
}
