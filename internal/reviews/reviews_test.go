package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-storefront/internal/kv"
)

func newStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	m := kv.NewMemory()
	s, err := New(context.Background(), m)
	require.NoError(t, err)
	return s, m
}

func TestAverageRating(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	assert.Equal(t, "0", s.AverageRating("p1"))

	for _, r := range []int{5, 3, 4} {
		_, err := s.AddReview(ctx, "p1", Submission{Rating: r, Comment: "ok"})
		require.NoError(t, err)
	}
	_, err := s.AddReview(ctx, "p2", Submission{Rating: 1, Comment: "meh"})
	require.NoError(t, err)

	assert.Equal(t, "4.0", s.AverageRating("p1"))
	assert.Equal(t, "1.0", s.AverageRating("p2"))
}

func TestAverageRatingRoundsHalfUp(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	for _, r := range []int{5, 4, 4, 4} {
		_, err := s.AddReview(ctx, "p", Submission{Rating: r, Comment: "x"})
		require.NoError(t, err)
	}
	assert.Equal(t, "4.3", s.AverageRating("p"))
}

func TestAddReviewAssignsIDAndTimestamp(t *testing.T) {
	s, _ := newStore(t)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	r, err := s.AddReview(context.Background(), "p1", Submission{Rating: 4, Comment: "nice", UserID: "u1", UserName: "Alice Doe"})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "p1", r.ProductID)
	assert.Equal(t, fixed, r.CreatedAt)
	assert.Equal(t, "Alice Doe", r.UserName)
}

func TestStoreDoesNotValidate(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.AddReview(context.Background(), "p1", Submission{Rating: 9})
	require.NoError(t, err)
	assert.Len(t, s.ReviewsByProduct("p1"), 1)
}

func TestDeleteAndReload(t *testing.T) {
	s, m := newStore(t)
	ctx := context.Background()
	a, err := s.AddReview(ctx, "p1", Submission{Rating: 5, Comment: "a"})
	require.NoError(t, err)
	_, err = s.AddReview(ctx, "p1", Submission{Rating: 2, Comment: "b"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteReview(ctx, a.ID))
	assert.Len(t, s.ReviewsByProduct("p1"), 1)

	reloaded, err := New(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, s.Reviews(), reloaded.Reviews())
	assert.Empty(t, reloaded.ReviewsByProduct("unknown"))
}

func TestSubmissionValidate(t *testing.T) {
	assert.NoError(t, Submission{Rating: 5, Comment: "great"}.Validate())
	assert.ErrorIs(t, Submission{Rating: 0, Comment: "x"}.Validate(), ErrInvalidRating)
	assert.ErrorIs(t, Submission{Rating: 6, Comment: "x"}.Validate(), ErrInvalidRating)
	assert.ErrorIs(t, Submission{Rating: 3, Comment: "   "}.Validate(), ErrEmptyComment)
}
