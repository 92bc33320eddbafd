package scheduling

import (
	"errors"
	"fmt"
)

// Erros específicos para a geração de agendas
var (
	ErrCatalogNotReady = errors.New("archetype catalog is not loaded")
	ErrInvalidPattern  = errors.New("invalid engagement pattern")
	ErrInvalidPlatform = errors.New("invalid platform profile")
)

// CodeScheduleFailure é o código de API para falhas internas na geração da agenda
const CodeScheduleFailure = "SCH_001"

// ScheduleError carrega o contexto da combinação que falhou
type ScheduleError struct {
	Err      error
	Code     string
	Audience string
	Platform string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s (audience=%s, platform=%s)", e.Err.Error(), e.Audience, e.Platform)
}

func (e *ScheduleError) Unwrap() error {
	return e.Err
}

func NewScheduleError(err error, audience, platform string) *ScheduleError {
	return &ScheduleError{
		Err:      err,
		Code:     CodeScheduleFailure,
		Audience: audience,
		Platform: platform,
	}
}
