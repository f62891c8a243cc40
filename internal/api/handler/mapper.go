package handler

import "github.com/townsquare/community/internal/core/domain"

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toPostResponse(p *domain.Post) postResponse {
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}
	return postResponse{
		ID: p.ID,
		Author: authorResponse{
			ID:    p.Author.ID,
			Name:  p.Author.Name,
			Email: p.Author.Email,
		},
		Content:   p.Content,
		Likes:     likes,
		LikeCount: p.LikeCount,
		CreatedAt: p.CreatedAt,
	}
}

func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
