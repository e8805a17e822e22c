package chatUseCase

import (
	"context"
	"errors"

	"github.com/drinkwithme-lk/server/internal/entity"
	chatRepo "github.com/drinkwithme-lk/server/internal/repository/chat"
	matchRepo "github.com/drinkwithme-lk/server/internal/repository/match"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrNotMember     = errors.New("user is not part of this match")
)

type IChatUseCase interface {
	Messages(ctx context.Context, userID, matchID uint) ([]entity.Message, error)
	SendMessage(ctx context.Context, userID, matchID uint, content string) (*entity.Message, error)
	MarkSeen(ctx context.Context, userID, matchID uint) error
}

type chatUseCase struct {
	chats   chatRepo.IChatRepo
	matches matchRepo.IMatchRepo
}

func New(chats chatRepo.IChatRepo, matches matchRepo.IMatchRepo) IChatUseCase {
	return &chatUseCase{
		chats:   chats,
		matches: matches,
	}
}

func (u *chatUseCase) Messages(ctx context.Context, userID, matchID uint) ([]entity.Message, error) {
	if err := u.requireMember(ctx, userID, matchID); err != nil {
		return nil, err
	}
	return u.chats.GetMessages(ctx, matchID)
}

func (u *chatUseCase) SendMessage(ctx context.Context, userID, matchID uint, content string) (*entity.Message, error) {
	if err := u.requireMember(ctx, userID, matchID); err != nil {
		return nil, err
	}

	message := &entity.Message{
		MatchID:  matchID,
		SenderID: userID,
		Content:  content,
	}
	if err := u.chats.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (u *chatUseCase) MarkSeen(ctx context.Context, userID, matchID uint) error {
	if err := u.requireMember(ctx, userID, matchID); err != nil {
		return err
	}
	return u.chats.MarkSeen(ctx, matchID, userID)
}

func (u *chatUseCase) requireMember(ctx context.Context, userID, matchID uint) error {
	match, err := u.matches.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match == nil {
		return ErrMatchNotFound
	}
	if !match.Involves(userID) {
		return ErrNotMember
	}
	return nil
}
