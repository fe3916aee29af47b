package dto

// UpdateSettingsRequest adjusts the runtime financial rules.
type UpdateSettingsRequest struct {
	TransportDailyRate *int64 `json:"transport_daily_rate" binding:"omitempty,min=1"`
	MitraMonthlyLimit  *int64 `json:"mitra_monthly_limit"  binding:"omitempty,min=1"`
}

// ListNotificationsRequest filters the notification listing.
type ListNotificationsRequest struct {
	PaginationRequest
	UnreadOnly bool `form:"unread_only"`
}
