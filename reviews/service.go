package reviews

import (
	"context"
	"errors"
	"strings"

	"storefront-api/models"
	"storefront-api/remote"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrMissingComment = errors.New("please enter your review comment")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrMissingVendor  = errors.New("vendor is required")
)

// DefaultUserName signs reviews submitted without a name.
const DefaultUserName = "Guest"

// Backend is the review side of the data service.
type Backend interface {
	GetVendorReviews(ctx context.Context, vendorID string) (remote.ReviewsResponse, error)
	SubmitReview(ctx context.Context, review models.Review) (remote.ReviewResponse, error)
}

// Summary is a vendor's reviews, newest first, with their average rating.
type Summary struct {
	VendorID string          `json:"vendor_id"`
	Reviews  []models.Review `json:"reviews"`
	Count    int             `json:"count"`
	Average  decimal.Decimal `json:"average_rating"`
}

type Service struct {
	backend  Backend
	validate *validator.Validate
	log      *zap.Logger
}

func NewService(backend Backend, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		backend:  backend,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// List loads a vendor's reviews.
func (s *Service) List(ctx context.Context, vendorID string) (Summary, error) {
	resp, err := s.backend.GetVendorReviews(ctx, vendorID)
	if err := remote.Check("getVendorReviews", resp.Success, resp.Error, err); err != nil {
		return Summary{}, err
	}
	reviews := resp.Reviews
	if reviews == nil {
		reviews = []models.Review{}
	}
	return Summary{
		VendorID: vendorID,
		Reviews:  reviews,
		Count:    len(reviews),
		Average:  Average(reviews),
	}, nil
}

// Submit validates and stores a review. Nothing reaches the backend when
// the comment is blank or the rating is outside 1..5.
func (s *Service) Submit(ctx context.Context, review models.Review) (models.Review, error) {
	review.VendorID = strings.TrimSpace(review.VendorID)
	review.Comment = strings.TrimSpace(review.Comment)
	review.UserName = strings.TrimSpace(review.UserName)
	if review.UserName == "" {
		review.UserName = DefaultUserName
	}
	if err := s.check(review); err != nil {
		return models.Review{}, err
	}

	resp, err := s.backend.SubmitReview(ctx, review)
	if err := remote.Check("submitReview", resp.Success, resp.Error, err); err != nil {
		s.log.Warn("review not stored", zap.String("vendor_id", review.VendorID), zap.Error(err))
		return models.Review{}, err
	}
	s.log.Info("review submitted", zap.String("vendor_id", review.VendorID), zap.Int("rating", review.Rating))
	return resp.Review, nil
}

func (s *Service) check(review models.Review) error {
	err := s.validate.Struct(review)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	switch verrs[0].Field() {
	case "VendorID":
		return ErrMissingVendor
	case "Rating":
		return ErrInvalidRating
	}
	return ErrMissingComment
}

// Average is the mean rating rounded to one decimal; zero without reviews.
func Average(reviews []models.Review) decimal.Decimal {
	if len(reviews) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(reviews)))).Round(1)
}
