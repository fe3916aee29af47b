package dto

// PaginationRequest is the shared query-string paging contract.
type PaginationRequest struct {
	Page     int `form:"page,default=1"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// Offset converts the page number to a row offset.
func (p *PaginationRequest) Offset() int {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	return (p.Page - 1) * p.PageSize
}

// MonthRequest selects one calendar month.
type MonthRequest struct {
	Bulan int `form:"bulan" binding:"required,min=1,max=12"`
	Tahun int `form:"tahun" binding:"required,min=2000,max=2100"`
}
