package models

type Producto struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre    string   `gorm:"not null;index"           json:"nombre"`
	Peso      *float64 `gorm:"index"                    json:"peso"`
	Precio    float64  `gorm:"not null"                 json:"precio"`
	Categoria string   `gorm:"not null;index"           json:"categoria"`
}

func (Producto) TableName() string {
	return "productos"
}
