package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"film-platform/studio-api/internal/interfaces/httpserver/handlers"
	"film-platform/studio-api/internal/interfaces/httpserver/requests"
	"film-platform/studio-api/internal/utils/platformerrors"
)

func registerProjectRoutes(router gin.IRoutes, handler *handlers.ProjectHandler, log zerolog.Logger) {
	router.POST("/projects", createProject(handler, log))
	router.GET("/projects", listProjects(handler, log))
	router.GET("/projects/:id", getProject(handler, log))
}

// createProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request  body      requests.CreateProjectRequest  true  "Project"
// @Success      200      {object}  responses.ProjectCreateResponse
// @Failure      422      {object}  platformerrors.HTTPErrorResponse
// @Failure      500      {object}  platformerrors.HTTPErrorResponse
// @Router       /api/projects [post]
func createProject(handler *handlers.ProjectHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			platformerrors.WriteBindingError(c, err)
			return
		}

		result, err := handler.Create(c.Request.Context(), req)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// listProjects godoc
// @Summary      List projects
// @Description  Most recently created first, capped at PROJECT_LIST_LIMIT.
// @Tags         projects
// @Produce      json
// @Success      200  {object}  responses.ProjectListResponse
// @Failure      500  {object}  platformerrors.HTTPErrorResponse
// @Router       /api/projects [get]
func listProjects(handler *handlers.ProjectHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := handler.List(c.Request.Context())
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// getProject godoc
// @Summary      Get a project
// @Description  Returns the project and its executions, oldest first.
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  responses.ProjectDetailResponse
// @Failure      404  {object}  platformerrors.HTTPErrorResponse
// @Failure      500  {object}  platformerrors.HTTPErrorResponse
// @Router       /api/projects/{id} [get]
func getProject(handler *handlers.ProjectHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := handler.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
