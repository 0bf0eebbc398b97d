package httpv1

import (
	"net/http"

	"github.com/Egor213/LogHandler/internal/service"
	"github.com/labstack/echo/v4"
)

type StatsController struct {
	statsService service.Stats
}

func NewStatsController(ss service.Stats) *StatsController {
	return &StatsController{statsService: ss}
}

func (sc *StatsController) Timeseries(c echo.Context) error {
	appID, err := appIDFromPath(c)
	if err != nil {
		return writeError(c, err)
	}

	var q timeseriesQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	since, until, err := requiredWindow(q.Since, q.Until)
	if err != nil {
		return writeError(c, err)
	}
	if q.Interval == "" {
		q.Interval = service.DefaultInterval
	}

	ts, err := sc.statsService.Timeseries(c.Request().Context(), service.TimeseriesInput{
		WindowInput: service.WindowInput{ApplicationID: appID, Since: since, Until: until},
		Interval:    q.Interval,
		Level:       q.Level,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTimeseriesResponse(ts))
}

func (sc *StatsController) ByLevel(c echo.Context) error {
	appID, err := appIDFromPath(c)
	if err != nil {
		return writeError(c, err)
	}

	var q byLevelQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	since, until, err := requiredWindow(q.Since, q.Until)
	if err != nil {
		return writeError(c, err)
	}

	lb, err := sc.statsService.ByLevel(c.Request().Context(), service.WindowInput{
		ApplicationID: appID,
		Since:         since,
		Until:         until,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toByLevelResponse(lb))
}

func (sc *StatsController) TopMessages(c echo.Context) error {
	appID, err := appIDFromPath(c)
	if err != nil {
		return writeError(c, err)
	}

	var q topMessagesQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	since, until, err := requiredWindow(q.Since, q.Until)
	if err != nil {
		return writeError(c, err)
	}
	limit, err := parseInt(q.Limit, service.DefaultTopMessagesLimit, service.ErrInvalidLimit, "limit")
	if err != nil {
		return writeError(c, err)
	}

	tm, err := sc.statsService.TopMessages(c.Request().Context(), service.TopMessagesInput{
		WindowInput: service.WindowInput{ApplicationID: appID, Since: since, Until: until},
		Level:       q.Level,
		Limit:       limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTopMessagesResponse(tm))
}
