package web

import (
	"context"
	"sync"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/service/browse"
)

var _ browseService = &browseServiceMock{}

type browseServiceMock struct {
	HomeFunc    func(ctx context.Context, locale domain.Locale) (*browse.HomeView, error)
	GroupFunc   func(ctx context.Context, id int64, locale domain.Locale) (*browse.GroupView, error)
	MeasureFunc func(ctx context.Context, id int64, locale domain.Locale) (*browse.MeasureView, error)

	calls struct {
		Home []struct {
			Ctx    context.Context
			Locale domain.Locale
		}
		Group []struct {
			Ctx    context.Context
			ID     int64
			Locale domain.Locale
		}
		Measure []struct {
			Ctx    context.Context
			ID     int64
			Locale domain.Locale
		}
	}
	lockHome    sync.RWMutex
	lockGroup   sync.RWMutex
	lockMeasure sync.RWMutex
}

func (mock *browseServiceMock) Home(ctx context.Context, locale domain.Locale) (*browse.HomeView, error) {
	if mock.HomeFunc == nil {
		panic("browseServiceMock.HomeFunc: method is nil but browseService.Home was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Locale domain.Locale
	}{
		Ctx:    ctx,
		Locale: locale,
	}
	mock.lockHome.Lock()
	mock.calls.Home = append(mock.calls.Home, callInfo)
	mock.lockHome.Unlock()
	return mock.HomeFunc(ctx, locale)
}

func (mock *browseServiceMock) HomeCalls() []struct {
	Ctx    context.Context
	Locale domain.Locale
} {
	var calls []struct {
		Ctx    context.Context
		Locale domain.Locale
	}
	mock.lockHome.RLock()
	calls = mock.calls.Home
	mock.lockHome.RUnlock()
	return calls
}

func (mock *browseServiceMock) Group(ctx context.Context, id int64, locale domain.Locale) (*browse.GroupView, error) {
	if mock.GroupFunc == nil {
		panic("browseServiceMock.GroupFunc: method is nil but browseService.Group was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Locale domain.Locale
	}{
		Ctx:    ctx,
		ID:     id,
		Locale: locale,
	}
	mock.lockGroup.Lock()
	mock.calls.Group = append(mock.calls.Group, callInfo)
	mock.lockGroup.Unlock()
	return mock.GroupFunc(ctx, id, locale)
}

func (mock *browseServiceMock) GroupCalls() []struct {
	Ctx    context.Context
	ID     int64
	Locale domain.Locale
} {
	var calls []struct {
		Ctx    context.Context
		ID     int64
		Locale domain.Locale
	}
	mock.lockGroup.RLock()
	calls = mock.calls.Group
	mock.lockGroup.RUnlock()
	return calls
}

func (mock *browseServiceMock) Measure(ctx context.Context, id int64, locale domain.Locale) (*browse.MeasureView, error) {
	if mock.MeasureFunc == nil {
		panic("browseServiceMock.MeasureFunc: method is nil but browseService.Measure was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Locale domain.Locale
	}{
		Ctx:    ctx,
		ID:     id,
		Locale: locale,
	}
	mock.lockMeasure.Lock()
	mock.calls.Measure = append(mock.calls.Measure, callInfo)
	mock.lockMeasure.Unlock()
	return mock.MeasureFunc(ctx, id, locale)
}

func (mock *browseServiceMock) MeasureCalls() []struct {
	Ctx    context.Context
	ID     int64
	Locale domain.Locale
} {
	var calls []struct {
		Ctx    context.Context
		ID     int64
		Locale domain.Locale
	}
	mock.lockMeasure.RLock()
	calls = mock.calls.Measure
	mock.lockMeasure.RUnlock()
	return calls
}
