package model

// Team maps to the teams table.
type Team struct {
	ID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Description  *string `gorm:"type:text"                                      json:"description,omitempty"`
	LeaderUserID *string `gorm:"type:uuid"                                      json:"leader_user_id,omitempty"`
	CreatedBy    string  `gorm:"type:uuid;not null"                             json:"created_by"`
	BaseModel

	Leader *User `gorm:"foreignKey:LeaderUserID;references:ID" json:"leader,omitempty"`
}

// TableName sets the table name.
func (Team) TableName() string { return "teams" }
