package transport

// CreateProductoRequest is the body of POST /productos/. An "id" in the body
// is ignored; the store assigns it.
type CreateProductoRequest struct {
	Nombre    *string  `json:"nombre"    validate:"required"`
	Peso      *float64 `json:"peso"`
	Precio    *float64 `json:"precio"    validate:"required"`
	Categoria *string  `json:"categoria" validate:"required"`
}

type DeleteResponse struct {
	OK bool `json:"ok"`
}
