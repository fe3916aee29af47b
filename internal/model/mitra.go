package model

import "time"

// Mitra is an external partner (company or individual) that can be
// assigned tasks for a flat honor fee, subject to the monthly cap.
type Mitra struct {
	ID            string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NamaMitra     string  `gorm:"type:varchar(200);not null"                     json:"nama_mitra"`
	Jenis         string  `gorm:"type:varchar(20);not null"                      json:"jenis"` // perusahaan | individu
	Kontak        *string `gorm:"type:varchar(100)"                              json:"kontak,omitempty"`
	Alamat        *string `gorm:"type:text"                                      json:"alamat,omitempty"`
	Deskripsi     *string `gorm:"type:text"                                      json:"deskripsi,omitempty"`
	RatingAverage float64 `gorm:"type:numeric(3,2);not null;default:0"           json:"rating_average"`
	IsActive      bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (Mitra) TableName() string { return "mitra" }

// MitraReview is a rating a pegawai gives a mitra for one project.
type MitraReview struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID string    `gorm:"type:uuid;not null"                             json:"project_id"`
	MitraID   string    `gorm:"type:uuid;not null"                             json:"mitra_id"`
	PegawaiID string    `gorm:"type:uuid;not null"                             json:"pegawai_id"`
	Rating    int       `gorm:"not null"                                       json:"rating"` // 1-5
	Komentar  *string   `gorm:"type:text"                                      json:"komentar,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	Mitra   *Mitra `gorm:"foreignKey:MitraID;references:ID"   json:"mitra,omitempty"`
	Pegawai *User  `gorm:"foreignKey:PegawaiID;references:ID" json:"pegawai,omitempty"`
}

// TableName sets the table name.
func (MitraReview) TableName() string { return "mitra_reviews" }
