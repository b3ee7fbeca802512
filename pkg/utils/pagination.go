package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const DefaultPageSize = 50

// PaginationParams represents offset pagination extracted from a request. Page is
// zero-based to match the browsing client's page counter.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page < 0 {
		page = 0
	}

	if pageSize <= 0 || pageSize > 100 {
		pageSize = DefaultPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   page * pageSize,
	}
}

// HasMore reports whether another page should be requested. A full page means
// "maybe more"; the boundary case of an exactly full final page costs one empty
// round trip.
func HasMore(returned, pageSize int) bool {
	return returned == pageSize
}
