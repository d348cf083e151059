package server

import (
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kegliz/syrecgo/internal/service"
	"github.com/kegliz/syrecgo/render"
)

// synthesizeResponse is returned by POST /api/synthesize/pla.
type synthesizeResponse struct {
	ID    string `json:"id"`
	Lines int    `json:"lines"`
	Gates int    `json:"gates"`
}

// HealthHandler is the handler for GET /health.
func (s *httpServer) HealthHandler(c *gin.Context) {
	s.getLogger(c).Debug().Msg("serving health endpoint")
	c.String(http.StatusOK, "OK")
}

// SynthesizePLAHandler is the handler for POST /api/synthesize/pla. The
// request body is a raw PLA file; `additional_line=true` selects the
// coding-technique embedding's extra-line variant when the table isn't
// already reversible.
func (s *httpServer) SynthesizePLAHandler(c *gin.Context) {
	l := s.getLogger(c)

	id, err := s.service.SynthesizePLA(l, c.Request.Body, service.PLAOptions{
		AdditionalLine: c.Query("additional_line") == "true",
	})
	if err != nil {
		l.Error().Err(err).Msg("pla synthesis failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	circ, err := s.service.Circuit(id)
	if err != nil {
		l.Error().Err(err).Msg("looking up synthesized circuit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, synthesizeResponse{ID: id, Lines: circ.NumLines(), Gates: circ.NumGates()})
}

// QASMHandler is the handler for GET /api/circuits/:id/qasm.
func (s *httpServer) QASMHandler(c *gin.Context) {
	l := s.getLogger(c)

	qasm, err := s.service.QASM(c.Param("id"))
	if err != nil {
		l.Error().Err(err).Msg("qasm lookup failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, qasm)
}

// RenderCircuitHandler is the handler for GET /api/circuits/:id/img.
func (s *httpServer) RenderCircuitHandler(c *gin.Context) {
	l := s.getLogger(c)

	circ, err := s.service.Circuit(c.Param("id"))
	if err != nil {
		l.Error().Err(err).Msg("circuit lookup failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	img, err := render.NewPNG(60).Render(circ)
	if err != nil {
		l.Error().Err(err).Msg("rendering circuit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "image/png")
	if err := png.Encode(c.Writer, img); err != nil {
		l.Error().Err(err).Msg("encoding circuit png failed")
	}
}
