package handler

import (
	"errors"
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	//アカウント停止はフロントが強制サインアウトできるようマーカー付きで返す
	if errors.Is(err, repository.ErrSuspended) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "account suspended", Code: "ACCOUNT_SUSPENDED"})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getViewerFromContext(c echo.Context) (usecase.Viewer, bool) {
	userID, ok := c.Get(middleware.CtxUserIDKey).(string)
	if !ok || userID == "" {
		return usecase.Viewer{}, false
	}
	role, ok := c.Get(middleware.CtxUserRoleKey).(string)
	if !ok || role == "" {
		return usecase.Viewer{}, false
	}
	return usecase.Viewer{UserID: userID, Role: model.Role(role)}, true
}

// /meals の公開API＋プロバイダー向けCRUD
type MealHandler struct {
	uc *usecase.MealUsecase
}

// DI
func NewMealHandler(uc *usecase.MealUsecase) *MealHandler {
	return &MealHandler{uc: uc}
}

func (h *MealHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/meals", h.list)
	e.GET("/meals/suggestions", h.suggestions)
	e.GET("/meals/:id", h.detail)

	g := e.Group("/meals")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.RoleGuard(model.RoleProvider, model.RoleAdmin))

	g.POST("", h.create)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *MealHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListMeals(c.Request().Context(), usecase.ListMealsInput{
		Page:       page,
		Limit:      limit,
		Q:          c.QueryParam("q"),
		CategoryID: c.QueryParam("category_id"),
		ProviderID: c.QueryParam("provider_id"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MealHandler) detail(c echo.Context) error {
	m, err := h.uc.GetMealDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, m)
}

func (h *MealHandler) suggestions(c echo.Context) error {
	out, err := h.uc.Suggestions(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MealHandler) create(c echo.Context) error {
	viewer, ok := getViewerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.MealInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateMeal(c.Request().Context(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *MealHandler) update(c echo.Context) error {
	var req usecase.MealInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateMeal(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MealHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteMeal(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
