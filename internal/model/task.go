package model

// Task is a unit of work within a project, assigned to exactly one
// pegawai or one mitra (never both). TransportDays is the quota of
// reimbursable transport days materialized as allocation rows at
// creation time; HonorAmount applies to mitra assignments only.
type Task struct {
	ID              string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID       string   `gorm:"type:uuid;not null"                             json:"project_id"`
	AssigneeUserID  *string  `gorm:"type:uuid"                                      json:"assignee_user_id,omitempty"`
	AssigneeMitraID *string  `gorm:"type:uuid"                                      json:"assignee_mitra_id,omitempty"`
	DeskripsiTugas  string   `gorm:"type:text;not null"                             json:"deskripsi_tugas"`
	StartDate       DateOnly `gorm:"type:date;not null"                             json:"start_date"`
	EndDate         DateOnly `gorm:"type:date;not null"                             json:"end_date"`
	Status          string   `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"` // pending | in_progress | completed
	TransportDays   int      `gorm:"not null;default:0"                             json:"transport_days"`
	HonorAmount     *int64   `json:"honor_amount,omitempty"`
	ResponsePegawai *string  `gorm:"type:text"                                      json:"response_pegawai,omitempty"`
	BaseModel

	Project       *Project `gorm:"foreignKey:ProjectID;references:ID"      json:"project,omitempty"`
	AssigneeUser  *User    `gorm:"foreignKey:AssigneeUserID;references:ID" json:"assignee_user,omitempty"`
	AssigneeMitra *Mitra   `gorm:"foreignKey:AssigneeMitraID;references:ID" json:"assignee_mitra,omitempty"`
}

// TableName sets the table name.
func (Task) TableName() string { return "tasks" }

// IsMitraTask reports whether the task is assigned to a mitra.
func (t *Task) IsMitraTask() bool {
	return t.AssigneeMitraID != nil
}
