package swipeRepo

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/drinkwithme-lk/server/internal/entity"
	"github.com/go-redis/redis"
	"gorm.io/gorm"
)

const seenSetTTL = 24 * time.Hour

type ISwipeRepo interface {
	// Get returns the swipe for the ordered (swiper, swiped) pair, or nil
	// when the swiper has not decided on that user yet.
	Get(ctx context.Context, swiperID, swipedID uint) (*entity.Swipe, error)

	// Create inserts the swipe row. The composite primary key surfaces a
	// duplicate submission as gorm.ErrDuplicatedKey.
	Create(ctx context.Context, swiperID, swipedID uint, direction entity.Direction) error

	// GetSwipedIDs returns every user id the swiper has already decided on,
	// in either direction. Backed by a redis set; falls through to postgres
	// when the cache is cold or unavailable.
	GetSwipedIDs(ctx context.Context, swiperID uint) ([]uint, error)

	// DeleteLeftSwipes removes the user's left swipes so rejected candidates
	// re-enter the pool, and drops the cached seen set.
	DeleteLeftSwipes(ctx context.Context, swiperID uint) (int64, error)

	// CacheSwiped records a freshly committed swipe in the seen set.
	CacheSwiped(swiperID, swipedID uint)

	WithTx(tx *gorm.DB) ISwipeRepo
}

type SwipeRepo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) ISwipeRepo {
	return &SwipeRepo{db: db, rdb: rdb}
}

func (r *SwipeRepo) WithTx(tx *gorm.DB) ISwipeRepo {
	if tx == nil {
		return r
	}
	return &SwipeRepo{db: tx, rdb: r.rdb}
}

func (r *SwipeRepo) Get(ctx context.Context, swiperID, swipedID uint) (*entity.Swipe, error) {
	var swipe entity.Swipe
	result := r.db.WithContext(ctx).
		Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
		First(&swipe)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &swipe, nil
}

func (r *SwipeRepo) Create(ctx context.Context, swiperID, swipedID uint, direction entity.Direction) error {
	return r.db.WithContext(ctx).Create(&entity.Swipe{
		SwiperID:  swiperID,
		SwipedID:  swipedID,
		Direction: direction,
	}).Error
}

func (r *SwipeRepo) GetSwipedIDs(ctx context.Context, swiperID uint) ([]uint, error) {
	key := seenSetKey(swiperID)

	if r.rdb != nil {
		exists, err := r.rdb.Exists(key).Result()
		if err == nil && exists > 0 {
			var cached []uint
			if err := r.rdb.SMembers(key).ScanSlice(&cached); err == nil {
				return cached, nil
			}
			log.Println("error reading seen set from redis, falling back to postgres")
		}
	}

	var ids []uint
	result := r.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("swiper_id = ?", swiperID).
		Pluck("swiped_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	if r.rdb != nil && len(ids) > 0 {
		for _, id := range ids {
			r.rdb.SAdd(key, id)
		}
		r.rdb.Expire(key, seenSetTTL)
	}

	return ids, nil
}

func (r *SwipeRepo) DeleteLeftSwipes(ctx context.Context, swiperID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("swiper_id = ? AND direction = ?", swiperID, entity.DirectionLeft).
		Delete(&entity.Swipe{})
	if result.Error != nil {
		return 0, result.Error
	}

	if r.rdb != nil {
		if err := r.rdb.Del(seenSetKey(swiperID)).Err(); err != nil {
			log.Println("error invalidating seen set in redis:", err)
		}
	}

	return result.RowsAffected, nil
}

func (r *SwipeRepo) CacheSwiped(swiperID, swipedID uint) {
	if r.rdb == nil {
		return
	}
	key := seenSetKey(swiperID)
	exists, err := r.rdb.Exists(key).Result()
	if err != nil || exists == 0 {
		// Cold set; the next pool computation repopulates it whole.
		return
	}
	if err := r.rdb.SAdd(key, swipedID).Err(); err != nil {
		log.Println("error appending to seen set in redis:", err)
		// The set is now missing a swipe; drop it so the next pool read
		// rebuilds it from postgres instead of serving a stale candidate.
		if err := r.rdb.Del(key).Err(); err != nil {
			log.Println("error invalidating seen set in redis:", err)
		}
	}
}

func seenSetKey(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10) + ":swipes:seen"
}
