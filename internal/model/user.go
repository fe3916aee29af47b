package model

// User maps to the users table.
type User struct {
	ID           string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	NamaLengkap  string `gorm:"type:varchar(100);not null"                     json:"nama_lengkap"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'pegawai'"    json:"role"` // admin | ketua_tim | pegawai
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
