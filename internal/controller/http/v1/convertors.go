package httpv1

import (
	"github.com/Egor213/LogHandler/internal/domain"
)

func toApplicationResponse(app domain.Application, withKey bool) applicationResponse {
	resp := applicationResponse{
		ID:        app.ID,
		Name:      app.Name,
		CreatedAt: app.CreatedAt.UTC(),
	}
	if withKey {
		resp.IngestKey = app.IngestKey
	}
	return resp
}

func toEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:            e.ID,
		ApplicationID: e.ApplicationID,
		OccurredAt:    e.OccurredAt.UTC(),
		ReceivedAt:    e.ReceivedAt.UTC(),
		Level:         e.Level.String(),
		Message:       e.Message,
		Stack:         e.Stack,
		Tags:          e.Tags,
	}
}

func toEventListResponse(page domain.EventPage) eventListResponse {
	items := make([]eventResponse, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, toEventResponse(e))
	}
	return eventListResponse{
		Items:      items,
		NextOffset: page.NextOffset,
	}
}

func toTimeseriesResponse(ts domain.Timeseries) timeseriesResponse {
	series := make([]bucketResponse, 0, len(ts.Series))
	for _, b := range ts.Series {
		series = append(series, bucketResponse{BucketStart: b.Start.UTC(), Count: b.Count})
	}
	return timeseriesResponse{
		Interval: string(ts.Interval),
		Since:    ts.Since.UTC(),
		Until:    ts.Until.UTC(),
		Series:   series,
	}
}

func toByLevelResponse(lb domain.LevelBreakdown) byLevelResponse {
	items := make([]levelCountResponse, 0, len(lb.Items))
	for _, c := range lb.Items {
		items = append(items, levelCountResponse{Level: c.Level.String(), Count: c.Count})
	}
	return byLevelResponse{
		Since: lb.Since.UTC(),
		Until: lb.Until.UTC(),
		Items: items,
	}
}

func toTopMessagesResponse(tm domain.TopMessages) topMessagesResponse {
	items := make([]messageStatResponse, 0, len(tm.Items))
	for _, s := range tm.Items {
		items = append(items, messageStatResponse{Message: s.Message, Count: s.Count, LastSeen: s.LastSeen.UTC()})
	}
	return topMessagesResponse{
		Limit: tm.Limit,
		Items: items,
	}
}
