package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrEmptyContent),
		domain.IsKind(err, domain.ErrUnsupportedFormat),
		domain.IsKind(err, domain.ErrExtraction),
		domain.IsKind(err, domain.ErrInvalidInput),
		domain.IsKind(err, domain.ErrMalformedRequest):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrUnauthorized),
		domain.IsKind(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case domain.IsKind(err, domain.ErrUserExists):
		return http.StatusConflict
	case domain.IsKind(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage returns the user-facing text for an error. Internal detail
// stays in the logs; the response body carries a stable message in the
// product language.
func clientMessage(err error) string {
	switch {
	case domain.IsKind(err, domain.ErrEmptyContent):
		return "Nenhum conteúdo de e-mail válido foi fornecido."
	case domain.IsKind(err, domain.ErrUnsupportedFormat):
		return "Formato de arquivo não suportado. Use .txt ou .pdf."
	case domain.IsKind(err, domain.ErrExtraction):
		return "Erro ao processar o arquivo enviado."
	case domain.IsKind(err, domain.ErrInvalidInput):
		return "Nome de usuário deve ter no mínimo 3 caracteres e senha no mínimo 6."
	case domain.IsKind(err, domain.ErrMalformedRequest):
		return "Requisição inválida."
	case domain.IsKind(err, domain.ErrInvalidCredentials):
		return "Login ou senha inválidos."
	case domain.IsKind(err, domain.ErrUserExists):
		return "Nome de usuário já existe. Escolha outro."
	case domain.IsKind(err, domain.ErrUserNotFound):
		return "Usuário não encontrado."
	case domain.IsKind(err, domain.ErrUnauthorized):
		return "Autenticação necessária."
	default:
		return "Erro interno. Tente novamente mais tarde."
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": clientMessage(err)})
}
