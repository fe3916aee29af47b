package model

import "time"

// Project maps to the projects table. A project is owned by its ketua
// tim; tasks, assignments and members hang off it.
type Project struct {
	ID           string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NamaProject  string   `gorm:"type:varchar(255);not null"                     json:"nama_project"`
	Deskripsi    string   `gorm:"type:text;not null"                             json:"deskripsi"`
	TanggalMulai DateOnly `gorm:"type:date;not null"                             json:"tanggal_mulai"`
	Deadline     DateOnly `gorm:"type:date;not null"                             json:"deadline"`
	KetuaTimID   string   `gorm:"type:uuid;not null"                             json:"ketua_tim_id"`
	TeamID       *string  `gorm:"type:uuid"                                      json:"team_id,omitempty"`
	Status       string   `gorm:"type:varchar(20);not null;default:'upcoming'"   json:"status"` // upcoming | active | completed
	BaseModel

	KetuaTim    *User               `gorm:"foreignKey:KetuaTimID;references:ID" json:"ketua_tim,omitempty"`
	Assignments []ProjectAssignment `gorm:"foreignKey:ProjectID"                json:"assignments,omitempty"`
	Members     []ProjectMember     `gorm:"foreignKey:ProjectID"                json:"members,omitempty"`
}

// TableName sets the table name.
func (Project) TableName() string { return "projects" }

// ProjectAssignment records that a pegawai or mitra participates in a
// project with a transport budget or honor fee.
type ProjectAssignment struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID     string    `gorm:"type:uuid;not null"                             json:"project_id"`
	AssigneeType  string    `gorm:"type:varchar(10);not null"                      json:"assignee_type"` // pegawai | mitra
	AssigneeID    string    `gorm:"type:uuid;not null"                             json:"assignee_id"`
	UangTransport *int64    `json:"uang_transport,omitempty"`
	Honor         *int64    `json:"honor,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (ProjectAssignment) TableName() string { return "project_assignments" }

// ProjectMember links a pegawai to a project for visibility purposes.
type ProjectMember struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID string    `gorm:"type:uuid;not null"                             json:"project_id"`
	UserID    string    `gorm:"type:uuid;not null"                             json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null;default:'member'"     json:"role"` // member | observer
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

// TableName sets the table name.
func (ProjectMember) TableName() string { return "project_members" }
