package dto

// CreateTeamRequest is the admin team creation payload.
type CreateTeamRequest struct {
	Name         string  `json:"name"           binding:"required,max=200"`
	Description  *string `json:"description"`
	LeaderUserID *string `json:"leader_user_id" binding:"omitempty,uuid"`
}

// UpdateTeamRequest is the admin team update payload.
type UpdateTeamRequest struct {
	Name         *string `json:"name"           binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	LeaderUserID *string `json:"leader_user_id" binding:"omitempty,uuid"`
}
