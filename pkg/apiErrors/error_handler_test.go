package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		status int
	}{
		{name: "validação", code: ErrInvalidRequest, status: http.StatusBadRequest},
		{name: "post não encontrado", code: ErrPostNotFound, status: http.StatusNotFound},
		{name: "método não suportado", code: ErrMethodNotAllowed, status: http.StatusMethodNotAllowed},
		{name: "limite de requisições", code: ErrRateLimited, status: http.StatusTooManyRequests},
		{name: "falha de agenda", code: ErrScheduleFailed, status: http.StatusInternalServerError},
		{name: "código desconhecido vira 500", code: "XYZ_999", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
