package server

import (
	"net/http"

	"github.com/kegliz/syrecgo/internal/server/router"
)

func (s *httpServer) routes() []*router.Route {
	return []*router.Route{
		{
			Name:        "health",
			Method:      http.MethodGet,
			Pattern:     "/health",
			HandlerFunc: s.HealthHandler,
		},
		{
			Name:        "api.synthesize.pla",
			Method:      http.MethodPost,
			Pattern:     "/api/synthesize/pla",
			HandlerFunc: s.SynthesizePLAHandler,
		},
		{
			Name:        "api.circuits.qasm",
			Method:      http.MethodGet,
			Pattern:     "/api/circuits/:id/qasm",
			HandlerFunc: s.QASMHandler,
		},
		{
			Name:        "api.circuits.img",
			Method:      http.MethodGet,
			Pattern:     "/api/circuits/:id/img",
			HandlerFunc: s.RenderCircuitHandler,
		},
	}
}
