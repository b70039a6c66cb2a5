package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 店舗ディレクトリの公開API＋プロバイダー自身のプロフィール
type ProviderHandler struct {
	uc *usecase.ProviderUsecase
}

// DI
func NewProviderHandler(uc *usecase.ProviderUsecase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

func (h *ProviderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/providers", h.list)
	e.GET("/providers/top-rated", h.topRated)
	e.GET("/providers/:id", h.detail)

	e.GET("/provider/profile", h.myProfile,
		middleware.AuthJWT(cfg),
		middleware.RoleGuard(model.RoleProvider),
	)
}

func (h *ProviderHandler) list(c echo.Context) error {
	out, err := h.uc.ListProviders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProviderHandler) topRated(c echo.Context) error {
	out, err := h.uc.TopRated(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProviderHandler) detail(c echo.Context) error {
	out, err := h.uc.GetProviderDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProviderHandler) myProfile(c echo.Context) error {
	viewer, ok := getViewerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.MyProfile(c.Request().Context(), viewer)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
