package reviews

import (
	"context"
	"errors"
	"github.com/ariefcatur/go-storefront/internal/kv"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"sync"
	"time"
)

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Submission is what a reviewer sends. The store accepts it as-is; callers
// run Validate first.
type Submission struct {
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Comment  string `json:"comment" validate:"required,notblank"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyComment  = errors.New("please enter a comment")

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
				return true
			}
		}
		return false
	})
	return v
}

// Validate reports the first problem with the submission.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Rating" {
		return ErrInvalidRating
	}
	return ErrEmptyComment
}

type Store struct {
	mu      sync.Mutex
	backend kv.Backend
	reviews []Review
	now     func() time.Time
}

func New(ctx context.Context, b kv.Backend) (*Store, error) {
	list, err := kv.Load(ctx, b, kv.KeyReviews, []Review{})
	if err != nil {
		return nil, err
	}
	return &Store{backend: b, reviews: list, now: time.Now}, nil
}

func (s *Store) commit(ctx context.Context, next []Review) error {
	if err := kv.Save(ctx, s.backend, kv.KeyReviews, next); err != nil {
		return err
	}
	s.reviews = next
	return nil
}

// AddReview appends a review for productID with a fresh id and timestamp.
func (s *Store) AddReview(ctx context.Context, productID string, sub Submission) (Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		Rating:    sub.Rating,
		Comment:   sub.Comment,
		UserID:    sub.UserID,
		UserName:  sub.UserName,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	next := make([]Review, len(s.reviews), len(s.reviews)+1)
	copy(next, s.reviews)
	if err := s.commit(ctx, append(next, r)); err != nil {
		return Review{}, err
	}
	return r, nil
}

func (s *Store) ReviewsByProduct(productID string) []Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byProduct(productID)
}

func (s *Store) byProduct(productID string) []Review {
	out := []Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// AverageRating is the mean rating with one decimal place, or "0" when the
// product has no reviews.
func (s *Store) AverageRating(productID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byProduct(productID)
	if len(list) == 0 {
		return "0"
	}
	var sum int64
	for _, r := range list {
		sum += int64(r.Rating)
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(list)))).StringFixed(1)
}

func (s *Store) DeleteReview(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.ID != id {
			next = append(next, r)
		}
	}
	return s.commit(ctx, next)
}

func (s *Store) Reviews() []Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}
