package domain

// Validation messages kept verbatim from the product owner's locale.
const (
	MsgRequired      = "Campo obrigatório!"
	MsgInvalidImage  = "Arquivo de imagem inválido!"
	MsgInvalidFields = "Os dados fornecidos são inválidos."
)

// ValidationError carries a field → messages map suitable for a 422 response
// body. Field keys follow the request shape ("name", "price", "photos.0").
type ValidationError struct {
	Message string
	Errors  map[string][]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the standard envelope
// message.
func NewValidationError(errs map[string][]string) *ValidationError {
	return &ValidationError{Message: MsgInvalidFields, Errors: errs}
}
