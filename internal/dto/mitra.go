package dto

// CreateMitraRequest is the admin mitra creation payload.
type CreateMitraRequest struct {
	NamaMitra string  `json:"nama_mitra" binding:"required,max=200"`
	Jenis     string  `json:"jenis"      binding:"required,oneof=perusahaan individu"`
	Kontak    *string `json:"kontak"     binding:"omitempty,max=100"`
	Alamat    *string `json:"alamat"`
	Deskripsi *string `json:"deskripsi"`
}

// UpdateMitraRequest is the admin mitra update payload.
type UpdateMitraRequest struct {
	NamaMitra *string `json:"nama_mitra" binding:"omitempty,max=200"`
	Jenis     *string `json:"jenis"      binding:"omitempty,oneof=perusahaan individu"`
	Kontak    *string `json:"kontak"     binding:"omitempty,max=100"`
	Alamat    *string `json:"alamat"`
	Deskripsi *string `json:"deskripsi"`
	IsActive  *bool   `json:"is_active"`
}

// ListMitraRequest filters the mitra listing.
type ListMitraRequest struct {
	PaginationRequest
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
}

// CreateMitraReviewRequest is the pegawai review payload.
type CreateMitraReviewRequest struct {
	ProjectID string  `json:"project_id" binding:"required,uuid"`
	Rating    int     `json:"rating"     binding:"required,min=1,max=5"`
	Komentar  *string `json:"komentar"`
}

// MitraMonthlyTotalResponse reports a mitra's committed honor for one
// month against the monthly cap.
type MitraMonthlyTotalResponse struct {
	MitraID   string `json:"mitra_id"`
	Bulan     int    `json:"bulan"`
	Tahun     int    `json:"tahun"`
	Total     int64  `json:"total"`
	Limit     int64  `json:"limit"`
	Remaining int64  `json:"remaining"`
}
