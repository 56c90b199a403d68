package handlers

import (
	"net/http"

	request "manutencao_xpto/internal/adapter/http/dto/request"
	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BoardHandler exposes the kanban board: one column per stage plus the drag
// and drop endpoint.
type BoardHandler struct {
	board usecase.IBoardUseCase
}

func NewBoardHandler(board usecase.IBoardUseCase) *BoardHandler {
	return &BoardHandler{board: board}
}

// Columns returns the board grouped by stage in pipeline order.
func (h *BoardHandler) Columns(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.Columns())
}

// Move applies a finished drag. Drops outside a column or back onto the
// origin column return the unchanged request with moved=false.
func (h *BoardHandler) Move(c *gin.Context) {
	var payload request.BoardMoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	req, moved, err := h.board.HandleDrop(c.Request.Context(), usecase.DropResult{
		Source:      payload.Source,
		Destination: payload.Destination,
		RequestID:   payload.RequestID,
	})
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": req, "moved": moved})
}
