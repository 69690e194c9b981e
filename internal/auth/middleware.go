package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/MemberTruck/api-membertruck/internal/utils"
)

type ctxKey string

const UsuarioIDKey ctxKey = "usuarioID"

// Middleware exige um access token válido no header Authorization e
// injeta o id do usuário autenticado no contexto da requisição.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.RespondErro(w, http.StatusUnauthorized, "nao_autenticado", "Token ausente")
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := s.ParseAndValidate(raw, TipoAccess)
		if err != nil {
			utils.RespondErro(w, http.StatusUnauthorized, "nao_autenticado", "Token inválido")
			return
		}
		ctx := context.WithValue(r.Context(), UsuarioIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
