// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rest

import (
	"errors"
	"net/http"
	"strings"

	"app/core/gateway/domain"
	"app/modules/api/serde"
)

// Response messages that are part of the wire contract.
const (
	msgTokenRequired = "Token de autenticación requerido"
	msgBadBody       = "Cuerpo de la petición inválido"

	msgRegisterFailed = "Error procesando registro"
	msgBadCredentials = "Credenciales inválidas"
	msgUpdateFailed   = "Error actualizando datos del usuario"
	msgDeleteFailed   = "Error eliminando usuario"
	msgDeleteNoPerms  = "No tiene permisos para eliminar usuarios"
	msgUserNotFound   = "Usuario no encontrado"
	msgUserDeleted    = "Usuario eliminado exitosamente del sistema"
)

// bearerToken extracts the opaque token from the Authorization header. The
// gateway only checks the literal "Bearer " prefix; token semantics belong
// to the security service.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// envelope writes the uniform {error, respuesta} body.
func envelope(w http.ResponseWriter, status int, isError bool, respuesta any) {
	serde.WriteJSON(w, status, map[string]any{
		"error":     isError,
		"respuesta": respuesta,
	})
}

func unauthorized(w http.ResponseWriter) {
	envelope(w, http.StatusUnauthorized, true, msgTokenRequired)
}

// remoteFailure resolves err into the response status and message. A typed
// downstream failure keeps its status 1:1 and surfaces the downstream
// "respuesta" message when one can be extracted; everything else is a 500
// with the per-operation fallback message.
func remoteFailure(err error, fallback string) (int, string) {
	status := domain.RemoteStatus(err)
	if status == 0 {
		return http.StatusInternalServerError, fallback
	}
	msg := fallback
	var rerr *domain.RemoteError
	if errors.As(err, &rerr) {
		if m := rerr.Message(); m != "" {
			msg = m
		}
	}
	return status, msg
}
