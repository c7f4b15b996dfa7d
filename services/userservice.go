package services

import (
	"context"

	"taskboard/dto"
	"taskboard/store"
)

// UserService serves the read side of a user's workload: the analytics
// counter block the aggregator maintains.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

func (s *UserService) Analytics(ctx context.Context, userID string) (*dto.UserAnalyticsResponse, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	return &dto.UserAnalyticsResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Analytics: u.Analytics,
	}, nil
}
