package matching

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/drinkwithme-lk/server/internal/entity"
	matchRepo "github.com/drinkwithme-lk/server/internal/repository/match"
	profileRepo "github.com/drinkwithme-lk/server/internal/repository/profile"
	selectionRepo "github.com/drinkwithme-lk/server/internal/repository/selection"
	swipeRepo "github.com/drinkwithme-lk/server/internal/repository/swipe"
	"gorm.io/gorm"
)

// ErrNoSelections is the precondition-not-met outcome: the user cannot be
// given candidates before picking any restaurants. Callers redirect to the
// selection flow instead of treating it as a failure.
var ErrNoSelections = errors.New("user has no restaurant selections")

var ErrInvalidSwipe = errors.New("invalid swipe")

// raced is returned from inside the swipe transaction when a concurrent call
// won a unique-index race; the loser re-reads committed state after rollback.
var (
	errSwipeRaceLost = errors.New("swipe already recorded concurrently")
	errMatchRaceLost = errors.New("match already created concurrently")
)

// TxRunner is satisfied by *gorm.DB.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type IMatchingUseCase interface {
	// PotentialMatches computes the candidate pool for the user: everyone
	// sharing at least one selected restaurant who the user has not swiped
	// on yet, ordered by overlap count descending then user id.
	PotentialMatches(ctx context.Context, userID uint) ([]entity.Candidate, error)

	// Swipe records the decision and, on a reciprocated right swipe with a
	// surviving restaurant overlap, creates the match exactly once.
	Swipe(ctx context.Context, swiperID, swipedID uint, direction entity.Direction) (entity.SwipeOutcome, uint, error)

	// ResetLeftSwipes lets the user re-encounter previously rejected
	// candidates. Returns the number of swipes removed.
	ResetLeftSwipes(ctx context.Context, userID uint) (int64, error)

	Matches(ctx context.Context, userID uint) ([]entity.Match, error)

	Selections(ctx context.Context, userID uint) ([]uint, error)
	ReplaceSelections(ctx context.Context, userID uint, restaurantIDs []uint) error
}

type matchingUseCase struct {
	tx         TxRunner
	selections selectionRepo.ISelectionRepo
	swipes     swipeRepo.ISwipeRepo
	matches    matchRepo.IMatchRepo
	profiles   profileRepo.IProfileRepo
}

func New(
	tx TxRunner,
	selections selectionRepo.ISelectionRepo,
	swipes swipeRepo.ISwipeRepo,
	matches matchRepo.IMatchRepo,
	profiles profileRepo.IProfileRepo,
) IMatchingUseCase {
	return &matchingUseCase{
		tx:         tx,
		selections: selections,
		swipes:     swipes,
		matches:    matches,
		profiles:   profiles,
	}
}

func (m *matchingUseCase) PotentialMatches(ctx context.Context, userID uint) ([]entity.Candidate, error) {
	mine, err := m.selections.GetSelections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get own selections: %w", err)
	}
	if len(mine) == 0 {
		return nil, ErrNoSelections
	}

	overlapping, err := m.selections.GetUsersByRestaurants(ctx, mine, userID)
	if err != nil {
		return nil, fmt.Errorf("get overlapping selections: %w", err)
	}
	if len(overlapping) == 0 {
		return []entity.Candidate{}, nil
	}

	// Shared restaurants per overlap user; every row already intersects the
	// requester's set by construction of the query.
	sharedByUser := make(map[uint][]uint)
	for _, sel := range overlapping {
		sharedByUser[sel.UserID] = append(sharedByUser[sel.UserID], sel.RestaurantID)
	}

	seen, err := m.swipes.GetSwipedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get swiped ids: %w", err)
	}
	for _, id := range seen {
		delete(sharedByUser, id)
	}
	if len(sharedByUser) == 0 {
		return []entity.Candidate{}, nil
	}

	eligible := make([]uint, 0, len(sharedByUser))
	for id := range sharedByUser {
		eligible = append(eligible, id)
	}

	profiles, err := m.profiles.GetByUserIDs(ctx, eligible)
	if err != nil {
		return nil, fmt.Errorf("get candidate profiles: %w", err)
	}

	candidates := make([]entity.Candidate, 0, len(profiles))
	for _, profile := range profiles {
		shared := sharedByUser[profile.UserID]
		sort.Slice(shared, func(i, j int) bool { return shared[i] < shared[j] })
		candidates = append(candidates, entity.Candidate{
			Profile:             profile,
			SharedRestaurantIDs: shared,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].SharedRestaurantIDs) != len(candidates[j].SharedRestaurantIDs) {
			return len(candidates[i].SharedRestaurantIDs) > len(candidates[j].SharedRestaurantIDs)
		}
		return candidates[i].Profile.UserID < candidates[j].Profile.UserID
	})

	return candidates, nil
}

func (m *matchingUseCase) Swipe(ctx context.Context, swiperID, swipedID uint, direction entity.Direction) (entity.SwipeOutcome, uint, error) {
	if swiperID == 0 || swipedID == 0 || swiperID == swipedID || !direction.Valid() {
		return 0, 0, ErrInvalidSwipe
	}

	// Duplicate submissions are a benign no-op, not an update.
	existing, err := m.swipes.Get(ctx, swiperID, swipedID)
	if err != nil {
		return 0, 0, fmt.Errorf("check existing swipe: %w", err)
	}
	if existing != nil {
		return entity.OutcomeAlreadySwiped, 0, nil
	}

	var (
		outcome = entity.OutcomeNoMatch
		matchID uint
	)

	err = m.tx.Transaction(func(tx *gorm.DB) error {
		swipes := m.swipes.WithTx(tx)
		selections := m.selections.WithTx(tx)
		matches := m.matches.WithTx(tx)

		if err := swipes.Create(ctx, swiperID, swipedID, direction); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errSwipeRaceLost
			}
			return fmt.Errorf("create swipe: %w", err)
		}

		if direction == entity.DirectionLeft {
			return nil
		}

		reciprocal, err := swipes.Get(ctx, swipedID, swiperID)
		if err != nil {
			return fmt.Errorf("check reciprocal swipe: %w", err)
		}
		if reciprocal == nil || reciprocal.Direction != entity.DirectionRight {
			return nil
		}

		// Fresh reads: either user may have changed selections since the
		// reciprocal swipe, and a stale overlap must not produce a match.
		mine, err := selections.GetSelections(ctx, swiperID)
		if err != nil {
			return fmt.Errorf("get swiper selections: %w", err)
		}
		theirs, err := selections.GetSelections(ctx, swipedID)
		if err != nil {
			return fmt.Errorf("get swiped selections: %w", err)
		}
		shared := intersect(mine, theirs)
		if len(shared) == 0 {
			return nil
		}

		existingMatch, err := matches.FindByPair(ctx, swiperID, swipedID)
		if err != nil {
			return fmt.Errorf("find existing match: %w", err)
		}
		if existingMatch != nil {
			outcome = entity.OutcomeMatchExists
			matchID = existingMatch.ID
			return nil
		}

		match := entity.NewMatch(swiperID, swipedID, shared[0])
		if err := matches.Create(ctx, match); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errMatchRaceLost
			}
			return fmt.Errorf("create match: %w", err)
		}

		outcome = entity.OutcomeMatched
		matchID = match.ID
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, errSwipeRaceLost):
		return entity.OutcomeAlreadySwiped, 0, nil
	case errors.Is(err, errMatchRaceLost):
		// The other direction of the pair committed first; surface its row.
		winner, findErr := m.matches.FindByPair(ctx, swiperID, swipedID)
		if findErr != nil {
			return 0, 0, fmt.Errorf("find match after race: %w", findErr)
		}
		if winner == nil {
			return 0, 0, fmt.Errorf("match vanished after duplicate-key race")
		}
		return entity.OutcomeMatchExists, winner.ID, nil
	default:
		return 0, 0, err
	}

	m.swipes.CacheSwiped(swiperID, swipedID)

	return outcome, matchID, nil
}

func (m *matchingUseCase) ResetLeftSwipes(ctx context.Context, userID uint) (int64, error) {
	return m.swipes.DeleteLeftSwipes(ctx, userID)
}

func (m *matchingUseCase) Matches(ctx context.Context, userID uint) ([]entity.Match, error) {
	return m.matches.ListForUser(ctx, userID)
}

func (m *matchingUseCase) Selections(ctx context.Context, userID uint) ([]uint, error) {
	return m.selections.GetSelections(ctx, userID)
}

func (m *matchingUseCase) ReplaceSelections(ctx context.Context, userID uint, restaurantIDs []uint) error {
	return m.selections.ReplaceSelections(ctx, userID, restaurantIDs)
}

// intersect returns the ids present in both sorted slices, in ascending
// order, so the first element is the deterministic shared-restaurant pick.
func intersect(a, b []uint) []uint {
	var out []uint
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
