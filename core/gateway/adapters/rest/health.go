package rest

import (
	"net/http"

	"app/modules/api/serde"
)

// Health reports process liveness. It deliberately does not probe the
// downstream services; a degraded downstream must not take the gateway out
// of the load balancer.
func (g *GatewayAPI) Health(w http.ResponseWriter, r *http.Request) {
	serde.WriteJSON(w, http.StatusOK, map[string]any{"status": "UP"})
}
