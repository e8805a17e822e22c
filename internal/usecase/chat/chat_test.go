package chatUseCase

import (
	"context"
	"errors"
	"testing"

	"github.com/drinkwithme-lk/server/internal/entity"
	matchRepo "github.com/drinkwithme-lk/server/internal/repository/match"
	"gorm.io/gorm"
	"gotest.tools/assert"
)

type chatRepoStub struct {
	messages  []entity.Message
	seenCalls [][2]uint
}

func (s *chatRepoStub) GetMessages(_ context.Context, matchID uint) ([]entity.Message, error) {
	var out []entity.Message
	for _, msg := range s.messages {
		if msg.MatchID == matchID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (s *chatRepoStub) CreateMessage(_ context.Context, message *entity.Message) error {
	message.ID = uint(len(s.messages) + 1)
	s.messages = append(s.messages, *message)
	return nil
}

func (s *chatRepoStub) MarkSeen(_ context.Context, matchID, userID uint) error {
	s.seenCalls = append(s.seenCalls, [2]uint{matchID, userID})
	return nil
}

type matchGetterStub struct {
	match *entity.Match
}

func (s *matchGetterStub) GetByID(context.Context, uint) (*entity.Match, error) {
	return s.match, nil
}

func (s *matchGetterStub) FindByPair(context.Context, uint, uint) (*entity.Match, error) {
	return nil, nil
}

func (s *matchGetterStub) Create(context.Context, *entity.Match) error { return nil }

func (s *matchGetterStub) ListForUser(context.Context, uint) ([]entity.Match, error) {
	return nil, nil
}

func (s *matchGetterStub) WithTx(*gorm.DB) matchRepo.IMatchRepo { return s }

func testMatch() *entity.Match {
	match := entity.NewMatch(1, 2, 5)
	match.ID = 3
	return match
}

func TestSendMessageRequiresMembership(t *testing.T) {
	chats := &chatRepoStub{}
	uc := New(chats, &matchGetterStub{match: testMatch()})

	_, err := uc.SendMessage(context.Background(), 9, 3, "hi")

	assert.Assert(t, errors.Is(err, ErrNotMember))
	assert.Equal(t, len(chats.messages), 0)
}

func TestSendMessageToMissingMatch(t *testing.T) {
	uc := New(&chatRepoStub{}, &matchGetterStub{match: nil})

	_, err := uc.SendMessage(context.Background(), 1, 404, "hi")

	assert.Assert(t, errors.Is(err, ErrMatchNotFound))
}

func TestSendAndReadMessages(t *testing.T) {
	chats := &chatRepoStub{}
	uc := New(chats, &matchGetterStub{match: testMatch()})

	sent, err := uc.SendMessage(context.Background(), 1, 3, "see you at the bar")
	assert.NilError(t, err)
	assert.Equal(t, sent.SenderID, uint(1))
	assert.Equal(t, sent.MatchID, uint(3))

	messages, err := uc.Messages(context.Background(), 2, 3)
	assert.NilError(t, err)
	assert.Equal(t, len(messages), 1)
	assert.Equal(t, messages[0].Content, "see you at the bar")
}

func TestMarkSeenGatedByMembership(t *testing.T) {
	chats := &chatRepoStub{}
	uc := New(chats, &matchGetterStub{match: testMatch()})

	err := uc.MarkSeen(context.Background(), 9, 3)
	assert.Assert(t, errors.Is(err, ErrNotMember))

	assert.NilError(t, uc.MarkSeen(context.Background(), 2, 3))
	assert.Equal(t, len(chats.seenCalls), 1)
	assert.Equal(t, chats.seenCalls[0], [2]uint{3, 2})
}
