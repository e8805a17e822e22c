package swipeRepo

import (
	"context"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"gotest.tools/assert"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestGetSwipedIDsServedFromWarmCache(t *testing.T) {
	rdb := newTestRedis(t)
	// A nil gorm handle proves postgres is never touched on a warm set.
	repo := &SwipeRepo{db: nil, rdb: rdb}

	key := seenSetKey(7)
	rdb.SAdd(key, 2, 5, 3)

	ids, err := repo.GetSwipedIDs(context.Background(), 7)

	assert.NilError(t, err)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.DeepEqual(t, ids, []uint{2, 3, 5})
}

func TestCacheSwipedAppendsToWarmSetOnly(t *testing.T) {
	rdb := newTestRedis(t)
	repo := &SwipeRepo{db: nil, rdb: rdb}

	// Cold set stays cold; the next full pool read repopulates it.
	repo.CacheSwiped(7, 9)
	exists, err := rdb.Exists(seenSetKey(7)).Result()
	assert.NilError(t, err)
	assert.Equal(t, exists, int64(0))

	rdb.SAdd(seenSetKey(7), 2)
	repo.CacheSwiped(7, 9)

	members, err := rdb.SMembers(seenSetKey(7)).Result()
	assert.NilError(t, err)
	sort.Strings(members)
	assert.DeepEqual(t, members, []string{"2", "9"})
}

func TestCacheSwipedDropsSetWhenAppendFails(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	repo := &SwipeRepo{db: nil, rdb: rdb}

	// A string value under the set key makes SAdd fail with WRONGTYPE,
	// standing in for any partial-write failure on a warm set.
	key := seenSetKey(7)
	if err := srv.Set(key, "corrupt"); err != nil {
		t.Fatalf("Failed to seed key: %v", err)
	}

	repo.CacheSwiped(7, 9)

	exists, err := rdb.Exists(key).Result()
	assert.NilError(t, err)
	assert.Equal(t, exists, int64(0))
}

func TestCacheSwipedWithoutRedisIsNoOp(t *testing.T) {
	repo := &SwipeRepo{db: nil, rdb: nil}
	repo.CacheSwiped(1, 2) // must not panic
}

func TestSeenSetKey(t *testing.T) {
	assert.Equal(t, seenSetKey(42), "user:42:swipes:seen")
}
