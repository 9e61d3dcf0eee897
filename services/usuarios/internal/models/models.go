package models

type Usuario struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre    string  `gorm:"not null;index"           json:"nombre"`
	Email     string  `gorm:"not null;uniqueIndex"     json:"email"`
	Edad      *int    `json:"edad"`
	Direccion *string `json:"direccion"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
