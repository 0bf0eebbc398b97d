package httpv1

import (
	"net/http"

	"github.com/Egor213/LogHandler/internal/service"
	"github.com/labstack/echo/v4"
)

type ApplicationController struct {
	appService service.Application
}

func NewApplicationController(as service.Application) *ApplicationController {
	return &ApplicationController{appService: as}
}

// CreateApplication handles POST /apps/:name. The ingest key is returned only here.
func (ac *ApplicationController) CreateApplication(c echo.Context) error {
	var p createApplicationPath
	if err := bindPath(c, &p); err != nil {
		return writeError(c, err)
	}

	app, err := ac.appService.CreateApplication(c.Request().Context(), p.Name)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toApplicationResponse(app, true))
}

func (ac *ApplicationController) GetApplication(c echo.Context) error {
	appID, err := appIDFromPath(c)
	if err != nil {
		return writeError(c, err)
	}

	app, err := ac.appService.GetApplication(c.Request().Context(), appID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toApplicationResponse(app, false))
}

func (ac *ApplicationController) ListApplications(c echo.Context) error {
	apps, err := ac.appService.ListApplications(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]applicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toApplicationResponse(app, false))
	}
	return c.JSON(http.StatusOK, resp)
}
