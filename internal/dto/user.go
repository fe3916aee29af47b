package dto

// CreateUserRequest is the admin user creation payload.
type CreateUserRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	Password    string `json:"password"     binding:"required,min=8"`
	NamaLengkap string `json:"nama_lengkap" binding:"required,max=200"`
	Role        string `json:"role"         binding:"required,oneof=admin ketua_tim pegawai"`
}

// UpdateUserRequest is the admin user update payload.
type UpdateUserRequest struct {
	NamaLengkap *string `json:"nama_lengkap" binding:"omitempty,max=200"`
	Role        *string `json:"role"         binding:"omitempty,oneof=admin ketua_tim pegawai"`
	IsActive    *bool   `json:"is_active"`
	Password    *string `json:"password"     binding:"omitempty,min=8"`
}

// ListUsersRequest filters the admin user listing.
type ListUsersRequest struct {
	PaginationRequest
	Role string `form:"role" binding:"omitempty,oneof=admin ketua_tim pegawai"`
}
