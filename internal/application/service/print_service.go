package service

import (
	"fmt"
	"log"
	"time"

	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/pkg/render"
	"github.com/dmoros/lavanderia-pos/pkg/printsurface"
)

// PrintService renders receipts and hands them to the print surface.
type PrintService struct {
	renderer    *render.Renderer
	orch        *printsurface.Orchestrator
	surfaceType string
	profile     render.Profile
}

// NewPrintService creates a new print service with the configured default
// profile
func NewPrintService(renderer *render.Renderer, surface printsurface.Surface, surfaceType string, fallback time.Duration, profile render.Profile) *PrintService {
	return &PrintService{
		renderer:    renderer,
		orch:        printsurface.NewOrchestrator(surface, fallback),
		surfaceType: surfaceType,
		profile:     profile,
	}
}

// PrintStatus reports whether a print surface is configured
type PrintStatus struct {
	Configured bool           `json:"configured"`
	Type       string         `json:"type"`
	Profile    render.Profile `json:"profile"`
}

// Status returns the current print configuration
func (s *PrintService) Status() *PrintStatus {
	return &PrintStatus{
		Configured: s.surfaceType != "none" && s.surfaceType != "",
		Type:       s.surfaceType,
		Profile:    s.profile,
	}
}

// DefaultProfile returns the configured print profile
func (s *PrintService) DefaultProfile() render.Profile {
	return s.profile
}

// PrintReceipt renders the receipt for the profile and prints it.
// The HTML is returned even when printing fails, so callers can offer it as
// a download instead of losing the receipt.
func (s *PrintService) PrintReceipt(receipt *entity.UnifiedReceipt, profile render.Profile) (string, error) {
	html := s.renderer.Printable(receipt, profile)
	if err := s.orch.Print(html); err != nil {
		log.Printf("Print error (receipt %s): %v", receipt.ID, err)
		return html, fmt.Errorf("failed to print receipt: %w", err)
	}
	return html, nil
}
