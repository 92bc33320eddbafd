package posting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
)

// Erros específicos para posts agendados
var (
	// Erros de validação
	ErrTitleRequired        = errors.New("title is required")
	ErrPlatformRequired     = errors.New("platform is required")
	ErrInvalidScheduledTime = errors.New("invalid scheduled_time")

	ErrPostNotFound = errors.New("post not found")

	// Erros do otimizador
	ErrNoSuggestions = errors.New("no schedule suggestions available")

	// Erros internos
	ErrGenerateID = errors.New("error generating post ID")
	ErrRepository = errors.New("scheduled post repository error")
)

// PostError é um erro com contexto adicional para posts agendados
type PostError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	PostID  string // ID do post envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *PostError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PostError) Unwrap() error {
	return e.Err
}

func NewPostError(err error, code string, details string) *PostError {
	return &PostError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewPostErrorWithID(err error, code string, postID string, details string) *PostError {
	return &PostError{
		Err:     err,
		Code:    code,
		PostID:  postID,
		Details: details,
	}
}

func validationError(err error, details string) *PostError {
	code := apiErrors.ErrMissingRequiredData
	if errors.Is(err, ErrInvalidScheduledTime) {
		code = apiErrors.ErrInvalidFormat
	}
	return NewPostError(err, code, details)
}
