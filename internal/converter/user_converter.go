package converter

import (
	"github.com/rivergarden/training-backend/internal/delivery/dto"
	"github.com/rivergarden/training-backend/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		Branch:    user.Branch,
		Avatar:    user.Avatar,
		ManagerID: user.ManagerID,
		JoinDate:  user.JoinDate,
		LastLogin: user.LastLogin,
	}
}

func UserToTeamMember(user *entity.User) dto.TeamMemberResponse {
	return dto.TeamMemberResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role.String(),
		Branch:   user.Branch,
		Avatar:   user.Avatar,
		JoinDate: user.JoinDate,
	}
}

func UsersToTeamMembers(users []entity.User) []dto.TeamMemberResponse {
	members := make([]dto.TeamMemberResponse, len(users))
	for i, user := range users {
		members[i] = UserToTeamMember(&user)
	}
	return members
}
