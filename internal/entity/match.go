package entity

import "time"

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

func (d Direction) Valid() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Swipe is a one-way decision by the swiper about the swiped user. The
// composite primary key makes re-swiping the same target impossible at the
// data layer; the engine treats a duplicate as a no-op.
type Swipe struct {
	SwiperID  uint      `gorm:"primaryKey;column:swiper_id" json:"swiper_id"`
	SwipedID  uint      `gorm:"primaryKey;column:swiped_id" json:"swiped_id"`
	Direction Direction `gorm:"not null;column:direction" json:"direction"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

const MatchStatusAccepted = "accepted"

// Match records mutual interest between two users. User1ID always holds the
// smaller id so the unique index on (user1_id, user2_id) covers both swipe
// directions of the same pair.
type Match struct {
	ID                 uint      `gorm:"primaryKey;column:id" json:"id"`
	User1ID            uint      `gorm:"not null;column:user1_id;uniqueIndex:idx_match_pair" json:"user1_id"`
	User2ID            uint      `gorm:"not null;column:user2_id;uniqueIndex:idx_match_pair" json:"user2_id"`
	SharedRestaurantID *uint     `gorm:"column:shared_restaurant_id" json:"shared_restaurant_id"`
	Status             string    `gorm:"not null;default:accepted;column:status" json:"status"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Match) TableName() string {
	return "matches"
}

// NewMatch normalizes the pair ordering before the row is inserted.
func NewMatch(userA, userB, sharedRestaurantID uint) *Match {
	if userB < userA {
		userA, userB = userB, userA
	}
	shared := sharedRestaurantID
	return &Match{
		User1ID:            userA,
		User2ID:            userB,
		SharedRestaurantID: &shared,
		Status:             MatchStatusAccepted,
	}
}

// Other returns the match member that is not the given user.
func (m *Match) Other(userID uint) uint {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// Involves reports whether the user is one of the two match members.
func (m *Match) Involves(userID uint) bool {
	return m.User1ID == userID || m.User2ID == userID
}

type SwipeOutcome uint

const (
	OutcomeNoMatch SwipeOutcome = iota + 1
	OutcomeMatched
	OutcomeMatchExists   // mutual interest already materialized earlier
	OutcomeAlreadySwiped // duplicate submission, nothing recorded
)

func (o SwipeOutcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "NoMatch"
	case OutcomeMatched:
		return "Matched"
	case OutcomeMatchExists:
		return "MatchExists"
	case OutcomeAlreadySwiped:
		return "AlreadySwiped"
	default:
		return "Unknown"
	}
}

// Candidate is a swipeable profile annotated with the restaurants it shares
// with the requesting user. Derived per request, never persisted.
type Candidate struct {
	Profile             Profile `json:"profile"`
	SharedRestaurantIDs []uint  `json:"shared_restaurant_ids"`
}
