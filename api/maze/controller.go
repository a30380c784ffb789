// Package mazeapi handles maze generation and retrieval over HTTP.
package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codeprimate/webmaze-api/api/identity"
	"github.com/codeprimate/webmaze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidLimit  = errors.New("limit must be a non-negative integer")
	errMissingClaims = errors.New("missing or malformed user claims")
)

// MazeController manages maze generation and lookup operations.
type MazeController struct {
	mazeService i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeManager) (*MazeController, error) {
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/recent", mc.recent)
		mazes.GET("/hardest", mc.hardest)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/solution", mc.solution)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/batch", mc.createBatch)
	}
}

// create handles single maze generation requests. The response carries
// the complete maze, solution included, so the requester can render and
// replay it without further calls.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maze, err := mc.mazeService.CreateMaze(ctx, request.toServiceRequest(uuid.Nil))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(maze, true))
}

// createBatch handles batch generation requests for signed-in users.
// Generated mazes are owned by the user in the access token.
func (mc *MazeController) createBatch(ctx *gin.Context) {
	var request CreateBatchRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := userIDFromClaims(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	mazes, err := mc.mazeService.CreateBatch(ctx, request.toServiceRequest(owner), request.Count)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponses(mazes))
}

// byID retrieves a stored maze without its solution.
func (mc *MazeController) byID(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	maze, err := mc.mazeService.MazeByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(maze, false))
}

// solution retrieves the solution path of a stored maze.
func (mc *MazeController) solution(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	maze, err := mc.mazeService.MazeByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, &SolutionResponse{
		ID:       maze.ID.String(),
		Solution: maze.Solution,
	})
}

// recent lists recently stored mazes, newest first.
func (mc *MazeController) recent(ctx *gin.Context) {
	limit, err := limitQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	mazes, err := mc.mazeService.RecentMazes(limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing mazes"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponses(mazes))
}

// hardest lists the top of the difficulty board, hardest first.
func (mc *MazeController) hardest(ctx *gin.Context) {
	limit, err := limitQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	mazes, err := mc.mazeService.HardestMazes(ctx, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while ranking mazes"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponses(mazes))
}

// limitQuery reads the optional limit query parameter. Zero means the
// service default.
func limitQuery(ctx *gin.Context) (int, error) {
	raw := ctx.DefaultQuery("limit", "0")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errInvalidLimit
	}
	return limit, nil
}

// userIDFromClaims extracts the authenticated user's ID from the claims
// the authorization middleware stored on the context.
func userIDFromClaims(ctx *gin.Context) (uuid.UUID, error) {
	raw, ok := ctx.Get(identity.ContextUserClaims)
	if !ok {
		return uuid.Nil, errMissingClaims
	}

	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, errMissingClaims
	}

	IDString, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, errMissingClaims
	}

	ID, err := uuid.Parse(IDString)
	if err != nil {
		return uuid.Nil, errMissingClaims
	}
	return ID, nil
}
