package transport

type CreateUsuarioRequest struct {
	Nombre    *string `json:"nombre"    validate:"required"`
	Email     *string `json:"email"     validate:"required"`
	Edad      *int    `json:"edad"`
	Direccion *string `json:"direccion"`
}

type DeleteResponse struct {
	OK bool `json:"ok"`
}
