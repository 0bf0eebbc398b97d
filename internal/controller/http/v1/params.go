package httpv1

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Egor213/LogHandler/internal/service"
	"github.com/labstack/echo/v4"
)

var binder = &echo.DefaultBinder{}

func bindPath(c echo.Context, dst any) error {
	if err := binder.BindPathParams(c, dst); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidPayload, err)
	}
	return c.Validate(dst)
}

func bindQuery(c echo.Context, dst any) error {
	if err := binder.BindQueryParams(c, dst); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidPayload, err)
	}
	return c.Validate(dst)
}

func appIDFromPath(c echo.Context) (int64, error) {
	var p appPath
	if err := bindPath(c, &p); err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(p.AppID, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: no application with id %q", service.ErrUnknownApplication, p.AppID)
	}
	return id, nil
}

// parseTime returns nil for an empty value.
func parseTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	// An unescaped '+' in a query string arrives as a space.
	if strings.Contains(value, "T") {
		value = strings.ReplaceAll(value, " ", "+")
	}
	t, err := service.ParseTimestamp(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseWindow(since, until string) (*time.Time, *time.Time, error) {
	s, err := parseTime(since)
	if err != nil {
		return nil, nil, err
	}
	u, err := parseTime(until)
	if err != nil {
		return nil, nil, err
	}
	return s, u, nil
}

func requiredWindow(since, until string) (time.Time, time.Time, error) {
	s, u, err := parseWindow(since, until)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if s == nil || u == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: since and until are required", service.ErrInvalidTimeRange)
	}
	return *s, *u, nil
}

func parseInt(value string, def int, kind error, name string) (int, error) {
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is out of range", kind, name, value)
	}
	return n, nil
}
