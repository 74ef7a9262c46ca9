package importer

import (
	"context"
	"sync"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/service/measure"
)

var _ measureService = &measureServiceMock{}

type measureServiceMock struct {
	GetFunc              func(ctx context.Context, id int64) (*measure.Detail, error)
	MissingFunc          func(ctx context.Context, ids []int64) ([]int64, error)
	UpsertFunc           func(ctx context.Context, m *domain.Measure) (bool, error)
	UpdateFunc           func(ctx context.Context, m *domain.Measure) (*domain.Measure, error)
	ReplaceRelationsFunc func(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error
	CheckFunc            func(ctx context.Context, m *domain.Measure) error
	CheckRelationsFunc   func(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error
	UpsertExampleFunc    func(ctx context.Context, e *domain.Example) (bool, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		Missing []struct {
			Ctx context.Context
			IDs []int64
		}
		Upsert []struct {
			Ctx context.Context
			M   *domain.Measure
		}
		Update []struct {
			Ctx context.Context
			M   *domain.Measure
		}
		ReplaceRelations []struct {
			Ctx       context.Context
			MeasureID int64
			Rels      map[domain.Relation][]int64
		}
		Check []struct {
			Ctx context.Context
			M   *domain.Measure
		}
		CheckRelations []struct {
			Ctx       context.Context
			MeasureID int64
			Rels      map[domain.Relation][]int64
		}
		UpsertExample []struct {
			Ctx context.Context
			E   *domain.Example
		}
	}
	lockGet              sync.RWMutex
	lockMissing          sync.RWMutex
	lockUpsert           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockReplaceRelations sync.RWMutex
	lockCheck            sync.RWMutex
	lockCheckRelations   sync.RWMutex
	lockUpsertExample    sync.RWMutex
}

func (mock *measureServiceMock) Get(ctx context.Context, id int64) (*measure.Detail, error) {
	if mock.GetFunc == nil {
		panic("measureServiceMock.GetFunc: method is nil but measureService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *measureServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *measureServiceMock) Missing(ctx context.Context, ids []int64) ([]int64, error) {
	if mock.MissingFunc == nil {
		panic("measureServiceMock.MissingFunc: method is nil but measureService.Missing was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockMissing.Lock()
	mock.calls.Missing = append(mock.calls.Missing, callInfo)
	mock.lockMissing.Unlock()
	return mock.MissingFunc(ctx, ids)
}

func (mock *measureServiceMock) MissingCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	var calls []struct {
		Ctx context.Context
		IDs []int64
	}
	mock.lockMissing.RLock()
	calls = mock.calls.Missing
	mock.lockMissing.RUnlock()
	return calls
}

func (mock *measureServiceMock) Upsert(ctx context.Context, m *domain.Measure) (bool, error) {
	if mock.UpsertFunc == nil {
		panic("measureServiceMock.UpsertFunc: method is nil but measureService.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Measure
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, m)
}

func (mock *measureServiceMock) UpsertCalls() []struct {
	Ctx context.Context
	M   *domain.Measure
} {
	var calls []struct {
		Ctx context.Context
		M   *domain.Measure
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *measureServiceMock) Update(ctx context.Context, m *domain.Measure) (*domain.Measure, error) {
	if mock.UpdateFunc == nil {
		panic("measureServiceMock.UpdateFunc: method is nil but measureService.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Measure
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, m)
}

func (mock *measureServiceMock) UpdateCalls() []struct {
	Ctx context.Context
	M   *domain.Measure
} {
	var calls []struct {
		Ctx context.Context
		M   *domain.Measure
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *measureServiceMock) ReplaceRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error {
	if mock.ReplaceRelationsFunc == nil {
		panic("measureServiceMock.ReplaceRelationsFunc: method is nil but measureService.ReplaceRelations was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeasureID int64
		Rels      map[domain.Relation][]int64
	}{
		Ctx:       ctx,
		MeasureID: measureID,
		Rels:      rels,
	}
	mock.lockReplaceRelations.Lock()
	mock.calls.ReplaceRelations = append(mock.calls.ReplaceRelations, callInfo)
	mock.lockReplaceRelations.Unlock()
	return mock.ReplaceRelationsFunc(ctx, measureID, rels)
}

func (mock *measureServiceMock) ReplaceRelationsCalls() []struct {
	Ctx       context.Context
	MeasureID int64
	Rels      map[domain.Relation][]int64
} {
	var calls []struct {
		Ctx       context.Context
		MeasureID int64
		Rels      map[domain.Relation][]int64
	}
	mock.lockReplaceRelations.RLock()
	calls = mock.calls.ReplaceRelations
	mock.lockReplaceRelations.RUnlock()
	return calls
}

func (mock *measureServiceMock) Check(ctx context.Context, m *domain.Measure) error {
	if mock.CheckFunc == nil {
		panic("measureServiceMock.CheckFunc: method is nil but measureService.Check was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Measure
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx, m)
}

func (mock *measureServiceMock) CheckCalls() []struct {
	Ctx context.Context
	M   *domain.Measure
} {
	var calls []struct {
		Ctx context.Context
		M   *domain.Measure
	}
	mock.lockCheck.RLock()
	calls = mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}

func (mock *measureServiceMock) CheckRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error {
	if mock.CheckRelationsFunc == nil {
		panic("measureServiceMock.CheckRelationsFunc: method is nil but measureService.CheckRelations was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeasureID int64
		Rels      map[domain.Relation][]int64
	}{
		Ctx:       ctx,
		MeasureID: measureID,
		Rels:      rels,
	}
	mock.lockCheckRelations.Lock()
	mock.calls.CheckRelations = append(mock.calls.CheckRelations, callInfo)
	mock.lockCheckRelations.Unlock()
	return mock.CheckRelationsFunc(ctx, measureID, rels)
}

func (mock *measureServiceMock) CheckRelationsCalls() []struct {
	Ctx       context.Context
	MeasureID int64
	Rels      map[domain.Relation][]int64
} {
	var calls []struct {
		Ctx       context.Context
		MeasureID int64
		Rels      map[domain.Relation][]int64
	}
	mock.lockCheckRelations.RLock()
	calls = mock.calls.CheckRelations
	mock.lockCheckRelations.RUnlock()
	return calls
}

func (mock *measureServiceMock) UpsertExample(ctx context.Context, e *domain.Example) (bool, error) {
	if mock.UpsertExampleFunc == nil {
		panic("measureServiceMock.UpsertExampleFunc: method is nil but measureService.UpsertExample was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Example
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockUpsertExample.Lock()
	mock.calls.UpsertExample = append(mock.calls.UpsertExample, callInfo)
	mock.lockUpsertExample.Unlock()
	return mock.UpsertExampleFunc(ctx, e)
}

func (mock *measureServiceMock) UpsertExampleCalls() []struct {
	Ctx context.Context
	E   *domain.Example
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Example
	}
	mock.lockUpsertExample.RLock()
	calls = mock.calls.UpsertExample
	mock.lockUpsertExample.RUnlock()
	return calls
}
