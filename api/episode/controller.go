package episodeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-robot/api/identity"
	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/service"
	"github.com/beka-birhanu/vinom-robot/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EpisodeController manages episode runs and the leaderboard.
type EpisodeController struct {
	episodes i.EpisodeRunner
}

// NewEpisodeController initializes an EpisodeController.
func NewEpisodeController(r i.EpisodeRunner) *EpisodeController {
	return &EpisodeController{episodes: r}
}

// RegisterPublic registers public routes.
func (ec *EpisodeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes/reference", ec.referenceMaze)
}

// RegisterProtected registers protected routes.
func (ec *EpisodeController) RegisterProtected(route *gin.RouterGroup) {
	episodes := route.Group("/episodes")
	{
		episodes.POST("", ec.run)
		episodes.GET("/:ID", ec.episode)
	}
	route.GET("/leaderboard", ec.leaderboard)
}

// run executes an episode for the calling operator.
func (ec *EpisodeController) run(ctx *gin.Context) {
	operatorID, ok := identity.OperatorID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request game.Request
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := ec.episodes.Run(ctx.Request.Context(), operatorID, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while running episode"})
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// episode retrieves a stored episode.
func (ec *EpisodeController) episode(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}

	record, err := ec.episodes.ByID(ctx.Request.Context(), ID)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "episode not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading episode"})
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// leaderboard lists the best terminal runs for ?maze=&agent=&n=.
func (ec *EpisodeController) leaderboard(ctx *gin.Context) {
	kind, err := game.ParseAgentKind(ctx.Query("agent"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n := 0
	if raw := ctx.Query("n"); raw != "" {
		if n, err = strconv.Atoi(raw); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "n must be an integer"})
			return
		}
	}

	mazeKey := ctx.DefaultQuery("maze", game.SourceReference)
	standings, err := ec.episodes.Top(ctx.Request.Context(), mazeKey, kind, n)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading leaderboard"})
		return
	}

	ctx.JSON(http.StatusOK, &LeaderboardResponse{
		Maze:      mazeKey,
		Agent:     string(kind),
		Standings: standings,
	})
}

// referenceMaze returns the reference layout.
func (ec *EpisodeController) referenceMaze(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newMazeResponse(game.ReferenceSetup()))
}
