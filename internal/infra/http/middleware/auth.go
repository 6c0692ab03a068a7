package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity es quién firma la petición autenticada. Viaja en el contexto
// de la request, nunca en estado global del proceso.
type Identity struct {
	Subject string
	Role    string
}

// IdentityFrom recupera la identidad inyectada por RequireStaff.
// ok es false en peticiones anónimas.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// RequireStaff protege las rutas del CMS con un bearer token compartido.
// Con el token correcto inyecta la identidad de staff en el contexto;
// sin él responde 401 sin tocar el handler.
func RequireStaff(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			presented, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || token == "" ||
				subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}

			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				RecordCMSWrite(r.Method)
			}

			identity := Identity{Subject: "cms", Role: "staff"}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalStaff inyecta la identidad de staff cuando la petición trae el
// bearer token correcto, y deja pasar como anónima en cualquier otro caso.
// Es para los GET públicos: el CMS los llama autenticado para poder pedir
// ?includeUnpublished=true, pero la web los llama sin cabecera alguna.
func OptionalStaff(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if ok && token != "" &&
				subtle.ConstantTimeCompare([]byte(presented), []byte(token)) == 1 {
				identity := Identity{Subject: "cms", Role: "staff"}
				r = r.WithContext(context.WithValue(r.Context(), identityKey, identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}
