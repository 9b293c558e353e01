package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"film-platform/studio-api/internal/interfaces/httpserver/handlers"
	"film-platform/studio-api/internal/interfaces/httpserver/middlewares"
	"film-platform/studio-api/internal/interfaces/httpserver/requests"
	"film-platform/studio-api/internal/utils/platformerrors"
)

func registerToolRoutes(router gin.IRoutes, handler *handlers.ToolHandler, log zerolog.Logger) {
	router.GET("/tools", listTools(handler))
	router.GET("/tools/schemas", listToolSchemas(handler))
	router.GET("/tools/category/:category", listToolsByCategory(handler))
	router.POST("/tools/execute", executeTool(handler, log))
}

// listTools godoc
// @Summary      List tools
// @Description  Returns the full tool catalog in catalog order.
// @Tags         tools
// @Produce      json
// @Success      200  {object}  responses.ToolListResponse
// @Router       /api/tools [get]
func listTools(handler *handlers.ToolHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.List())
	}
}

// listToolsByCategory godoc
// @Summary      List tools in a category
// @Description  Unknown categories return an empty list.
// @Tags         tools
// @Produce      json
// @Param        category  path      string  true  "Category, e.g. Pre-Production"
// @Success      200       {object}  responses.ToolCategoryResponse
// @Router       /api/tools/category/{category} [get]
func listToolsByCategory(handler *handlers.ToolHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.ListByCategory(c.Param("category")))
	}
}

// listToolSchemas godoc
// @Summary      Tool input schemas
// @Description  JSON Schema of each tool's declared inputs, keyed by tool name.
// @Tags         tools
// @Produce      json
// @Success      200  {object}  responses.ToolSchemasResponse
// @Router       /api/tools/schemas [get]
func listToolSchemas(handler *handlers.ToolHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.Schemas())
	}
}

// executeTool godoc
// @Summary      Execute a tool
// @Description  Runs the tool against Replicate, or returns canned output in demo mode, and records the execution.
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        request  body      requests.ExecuteToolRequest  true  "Tool invocation"
// @Success      200      {object}  responses.ExecuteToolResponse
// @Failure      404      {object}  platformerrors.HTTPErrorResponse
// @Failure      422      {object}  platformerrors.HTTPErrorResponse
// @Failure      500      {object}  platformerrors.HTTPErrorResponse
// @Router       /api/tools/execute [post]
func executeTool(handler *handlers.ToolHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ExecuteToolRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			platformerrors.WriteBindingError(c, err)
			return
		}
		c.Set(middlewares.ToolNameKey, *req.ToolName)

		result, err := handler.Execute(c.Request.Context(), req)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
