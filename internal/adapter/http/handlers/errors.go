package handlers

import (
	"errors"
	"net/http"

	"manutencao_xpto/internal/usecase"
	"manutencao_xpto/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapError translates engine errors into the HTTP error shape. Remote
// persistence failures surface as 502 so clients can tell "the backend is
// unhappy" apart from "you sent garbage".
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoActiveSession):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_SESSION", "No authenticated session", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_STAGE", "Stage must be one of New, In Progress, Repaired, Scrap", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentMissing):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTeamMissing):
		return pkg.NewDomainErrorSimple("TEAM_NOT_FOUND", "Team not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestMissing):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Maintenance request not found", http.StatusNotFound)
	case pkg.IsRemoteError(err):
		return pkg.NewDomainError("REMOTE_ERROR", "Persistence backend failure", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
