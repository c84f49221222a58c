package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmoros/lavanderia-pos/internal/application/service"
	"github.com/dmoros/lavanderia-pos/internal/domain/entity"
	"github.com/dmoros/lavanderia-pos/internal/domain/enum"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/dto/request"
	"github.com/dmoros/lavanderia-pos/internal/presentation/http/dto/response"
	"github.com/dmoros/lavanderia-pos/pkg/printsurface"
	"github.com/dmoros/lavanderia-pos/pkg/render"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps the domain error taxonomy to HTTP codes.
// Pricing and payment failures are 422 (re-prompt), the empty-receipt fatal
// case is 400, surface problems are 502 with an actionable message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCartNotFound), errors.Is(err, service.ErrLineNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidPrice), errors.Is(err, service.ErrInsufficientPayment):
		response.Unprocessable(c, err.Error())
	case errors.Is(err, service.ErrEmptyReceipt):
		response.BadRequest(c, "Payload has nothing to show: no products and no totals")
	case errors.Is(err, printsurface.ErrSurfaceBlocked):
		response.ErrorWithCode(c, http.StatusBadGateway,
			"Print surface unavailable. Allow pop-ups on the register or check the spool directory.")
	case errors.Is(err, printsurface.ErrPrintTrigger):
		response.ErrorWithCode(c, http.StatusBadGateway,
			"Receipt was generated but the print trigger failed. Try printing again.")
	default:
		response.Error(c, err)
	}
}

// toSelections converts the request selection list into the entity map
func toSelections(groups []request.SelectedGroupRequest) map[string]entity.SelectedGroup {
	if len(groups) == 0 {
		return nil
	}
	selections := make(map[string]entity.SelectedGroup, len(groups))
	for _, g := range groups {
		choices := make([]entity.Choice, 0, len(g.Choices))
		for _, ch := range g.Choices {
			choices = append(choices, entity.Choice{
				ID:        ch.ID,
				Name:      ch.Name,
				UnitPrice: ch.UnitPrice,
				Quantity:  ch.Quantity,
			})
		}
		selections[g.OptionID] = entity.SelectedGroup{
			OptionID: g.OptionID,
			Name:     g.Name,
			Kind:     enum.OptionKind(g.Kind),
			Choices:  choices,
		}
	}
	return selections
}

func toPieces(p *request.PiecesRequest) *entity.PiecesBreakdown {
	if p == nil {
		return nil
	}
	return &entity.PiecesBreakdown{
		Pantalones: p.Pantalones,
		Prendas:    p.Prendas,
		Otros:      p.Otros,
	}
}

// profileFrom resolves the print profile for a request, falling back to the
// configured default when no width is given. Only the paper widths the
// register stocks are accepted.
func profileFrom(widthMm int, thermal *bool, def render.Profile) (render.Profile, error) {
	switch widthMm {
	case 0:
		return def, nil
	case 46, 58, 80:
	default:
		return render.Profile{}, fmt.Errorf("unsupported paper width %dmm (use 46, 58 or 80)", widthMm)
	}
	p := render.Profile{WidthMm: widthMm, Thermal: true}
	if thermal != nil {
		p.Thermal = *thermal
	}
	return p, nil
}
