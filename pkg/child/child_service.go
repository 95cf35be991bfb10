package child

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
	"nutriby-backend/internal/utils/storage"
	"nutriby-backend/pkg/budget"
	"nutriby-backend/pkg/nutrition"
)

type (
	// ChildService orchestrates the profile lifecycle. Creating a child, or
	// updating its measurements or income, re-derives the nutritional status
	// and budget and appends one growth-history snapshot.
	ChildService interface {
		CreateChild(ctx context.Context, req domain.CreateChildRequest, userID string, at time.Time) (*entities.Child, error)
		UpdateChild(ctx context.Context, childID uint, req domain.UpdateChildRequest, userID string, at time.Time) (*entities.Child, error)
		GetChildren(ctx context.Context, userID string) ([]*entities.Child, error)
		GetChildDetail(ctx context.Context, childID uint, userID string) (*entities.Child, error)
		UploadChildPhoto(ctx context.Context, req domain.UploadChildPhotoRequest, userID string) (string, error)
	}

	childService struct {
		childRepository ChildRepository
		statusService   nutrition.StatusService
		budgetService   budget.BudgetService
		s3              storage.AwsS3
	}
)

func NewChildService(childRepository ChildRepository, statusService nutrition.StatusService, budgetService budget.BudgetService, s3 storage.AwsS3) ChildService {
	return &childService{
		childRepository: childRepository,
		statusService:   statusService,
		budgetService:   budgetService,
		s3:              s3,
	}
}

func (s *childService) CreateChild(ctx context.Context, req domain.CreateChildRequest, userID string, at time.Time) (*entities.Child, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	// An unparseable birth date is not an error: the age stays unknown and
	// the age-keyed metrics degrade to insufficient data.
	birthDate, _ := time.Parse("2006-01-02", req.BirthDate)

	child := &entities.Child{
		UserID:              userUUID,
		Name:                req.Name,
		BirthDate:           birthDate,
		Gender:              req.Gender,
		CurrentWeight:       req.CurrentWeight,
		CurrentHeight:       req.CurrentHeight,
		ParentMonthlyIncome: req.ParentMonthlyIncome,
	}

	if err := s.childRepository.CreateChild(ctx, child); err != nil {
		return nil, err
	}
	if len(req.AllergyIDs) > 0 {
		if err := s.childRepository.ReplaceAllergies(ctx, child, req.AllergyIDs); err != nil {
			return nil, err
		}
	}
	if len(req.FavoriteIDs) > 0 {
		if err := s.childRepository.ReplaceFavorites(ctx, child, req.FavoriteIDs); err != nil {
			return nil, err
		}
	}

	// Reload with allergies and favorites so the derivation sees them.
	child, err = s.childRepository.GetChildByID(ctx, child.ID)
	if err != nil {
		return nil, err
	}
	if err := s.deriveAndSnapshot(ctx, child, at); err != nil {
		return nil, err
	}

	return s.childRepository.GetChildByID(ctx, child.ID)
}

func (s *childService) UpdateChild(ctx context.Context, childID uint, req domain.UpdateChildRequest, userID string, at time.Time) (*entities.Child, error) {
	child, err := s.ownedChild(ctx, childID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		child.Name = *req.Name
	}
	if req.BirthDate != nil {
		birthDate, _ := time.Parse("2006-01-02", *req.BirthDate)
		child.BirthDate = birthDate
	}
	if req.Gender != nil {
		child.Gender = *req.Gender
	}

	measurementsTouched := false
	if req.CurrentWeight != nil {
		child.CurrentWeight = *req.CurrentWeight
		measurementsTouched = true
	}
	if req.CurrentHeight != nil {
		child.CurrentHeight = *req.CurrentHeight
		measurementsTouched = true
	}
	if req.ParentMonthlyIncome != nil {
		child.ParentMonthlyIncome = *req.ParentMonthlyIncome
		measurementsTouched = true
	}

	if req.AllergyIDs != nil {
		if err := s.childRepository.ReplaceAllergies(ctx, child, *req.AllergyIDs); err != nil {
			return nil, err
		}
	}
	if req.FavoriteIDs != nil {
		if err := s.childRepository.ReplaceFavorites(ctx, child, *req.FavoriteIDs); err != nil {
			return nil, err
		}
	}

	if measurementsTouched {
		// Re-read so the derivation sees the freshly synced associations.
		fresh, err := s.childRepository.GetChildByID(ctx, child.ID)
		if err != nil {
			return nil, err
		}
		fresh.Name = child.Name
		fresh.BirthDate = child.BirthDate
		fresh.Gender = child.Gender
		fresh.CurrentWeight = child.CurrentWeight
		fresh.CurrentHeight = child.CurrentHeight
		fresh.ParentMonthlyIncome = child.ParentMonthlyIncome
		if err := s.deriveAndSnapshot(ctx, fresh, at); err != nil {
			return nil, err
		}
	} else if err := s.childRepository.UpdateChild(ctx, child); err != nil {
		return nil, err
	}

	return s.childRepository.GetChildByID(ctx, child.ID)
}

func (s *childService) GetChildren(ctx context.Context, userID string) ([]*entities.Child, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.childRepository.GetChildrenByUser(ctx, userUUID)
}

func (s *childService) GetChildDetail(ctx context.Context, childID uint, userID string) (*entities.Child, error) {
	return s.ownedChild(ctx, childID, userID)
}

func (s *childService) UploadChildPhoto(ctx context.Context, req domain.UploadChildPhotoRequest, userID string) (string, error) {
	child, err := s.ownedChild(ctx, req.ChildID, userID)
	if err != nil {
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, req.Image, "children")
	if err != nil {
		return "", err
	}

	child.ImageURL = url
	if err := s.childRepository.UpdateChild(ctx, child); err != nil {
		return "", err
	}
	return url, nil
}

// deriveAndSnapshot runs the full re-derivation: status from measurements,
// budget from the eligible recipe pool, then a single history snapshot, all
// written back in one transaction.
func (s *childService) deriveAndSnapshot(ctx context.Context, child *entities.Child, at time.Time) error {
	assessment := s.statusService.Calculate(ctx, child, at)
	child.NutritionalStatusHFA = assessment.StatusHFA
	child.NutritionalStatusWFA = assessment.StatusWFA
	child.NutritionalStatusWFH = assessment.StatusWFH
	child.NutritionalStatusNotes = assessment.Notes

	budgetRange := s.budgetService.Recommend(ctx, child, at)
	child.BudgetMin = &budgetRange.Min
	child.BudgetMax = &budgetRange.Max

	history := &entities.ChildGrowthHistory{
		RecordDate:                 at,
		Weight:                     child.CurrentWeight,
		Height:                     child.CurrentHeight,
		NutritionalStatusHFA:       assessment.StatusHFA,
		ZScoreHFA:                  assessment.ZScoreHFA,
		ZScoreWFA:                  assessment.ZScoreWFA,
		ZScoreWFH:                  assessment.ZScoreWFH,
		RecommendedBudgetAtTheTime: child.BudgetMax,
	}

	return s.childRepository.UpdateChildWithHistory(ctx, child, history)
}

func (s *childService) ownedChild(ctx context.Context, childID uint, userID string) (*entities.Child, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	child, err := s.childRepository.GetChildByID(ctx, childID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChildNotFound
		}
		return nil, err
	}
	if child.UserID != userUUID {
		return nil, domain.ErrUserNotAllowed
	}
	return child, nil
}
