package measure

import (
	"context"
	"sync"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var _ measureRepo = &measureRepoMock{}

type measureRepoMock struct {
	GetByIDFunc                func(ctx context.Context, id int64) (*domain.Measure, error)
	ListFunc                   func(ctx context.Context, f domain.ListFilter) ([]domain.Measure, int, error)
	MissingIDsFunc             func(ctx context.Context, ids []int64) ([]int64, error)
	CreateFunc                 func(ctx context.Context, m *domain.Measure) (*domain.Measure, error)
	UpsertFunc                 func(ctx context.Context, m *domain.Measure) (bool, error)
	UpdateFunc                 func(ctx context.Context, m *domain.Measure) (*domain.Measure, error)
	DeleteFunc                 func(ctx context.Context, id int64) error
	RelationsFunc              func(ctx context.Context, measureID int64) (map[domain.Relation][]int64, error)
	ReplaceRelationFunc        func(ctx context.Context, measureID int64, rel domain.Relation, ids []int64) error
	MissingRelationTargetsFunc func(ctx context.Context, rel domain.Relation, ids []int64) ([]int64, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.ListFilter
		}
		MissingIDs []struct {
			Ctx context.Context
			IDs []int64
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Measure
		}
		Upsert []struct {
			Ctx context.Context
			M   *domain.Measure
		}
		Update []struct {
			Ctx context.Context
			M   *domain.Measure
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Relations []struct {
			Ctx       context.Context
			MeasureID int64
		}
		ReplaceRelation []struct {
			Ctx       context.Context
			MeasureID int64
			Rel       domain.Relation
			IDs       []int64
		}
		MissingRelationTargets []struct {
			Ctx context.Context
			Rel domain.Relation
			IDs []int64
		}
	}
	lockGetByID                sync.RWMutex
	lockList                   sync.RWMutex
	lockMissingIDs             sync.RWMutex
	lockCreate                 sync.RWMutex
	lockUpsert                 sync.RWMutex
	lockUpdate                 sync.RWMutex
	lockDelete                 sync.RWMutex
	lockRelations              sync.RWMutex
	lockReplaceRelation        sync.RWMutex
	lockMissingRelationTargets sync.RWMutex
}

func (mock *measureRepoMock) GetByID(ctx context.Context, id int64) (*domain.Measure, error) {
	if mock.GetByIDFunc == nil {
		panic("measureRepoMock.GetByIDFunc: method is nil but measureRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *measureRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *measureRepoMock) List(ctx context.Context, f domain.ListFilter) ([]domain.Measure, int, error) {
	if mock.ListFunc == nil {
		panic("measureRepoMock.ListFunc: method is nil but measureRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ListFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *measureRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ListFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.ListFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *measureRepoMock) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if mock.MissingIDsFunc == nil {
		panic("measureRepoMock.MissingIDsFunc: method is nil but measureRepo.MissingIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockMissingIDs.Lock()
	mock.calls.MissingIDs = append(mock.calls.MissingIDs, callInfo)
	mock.lockMissingIDs.Unlock()
	return mock.MissingIDsFunc(ctx, ids)
}

func (mock *measureRepoMock) MissingIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	var calls []struct {
		Ctx context.Context
		IDs []int64
	}
	mock.lockMissingIDs.RLock()
	calls = mock.calls.MissingIDs
	mock.lockMissingIDs.RUnlock()
	return calls
}

func (mock *measureRepoMock) Create(ctx context.Context, m *domain.Measure) (*domain.Measure, error) {
	if mock.CreateFunc == nil {
		panic("measureRepoMock.CreateFunc: method is nil but measureRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Measure
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *measureRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Measure
} {
	var calls []struct {
		Ctx context.Context
		M   *domain.Measure
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *measureRepoMock) Upsert(ctx context.Context, m *domain.Measure) (bool, error) {
	if mock.UpsertFunc == nil {
		panic("measureRepoMock.UpsertFunc: method is nil but measureRepo.Upsert was just called")
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

func (mock *measureRepoMock) UpsertCalls() []struct {
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

func (mock *measureRepoMock) Update(ctx context.Context, m *domain.Measure) (*domain.Measure, error) {
	if mock.UpdateFunc == nil {
		panic("measureRepoMock.UpdateFunc: method is nil but measureRepo.Update was just called")
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

func (mock *measureRepoMock) UpdateCalls() []struct {
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

func (mock *measureRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("measureRepoMock.DeleteFunc: method is nil but measureRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *measureRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *measureRepoMock) Relations(ctx context.Context, measureID int64) (map[domain.Relation][]int64, error) {
	if mock.RelationsFunc == nil {
		panic("measureRepoMock.RelationsFunc: method is nil but measureRepo.Relations was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeasureID int64
	}{
		Ctx:       ctx,
		MeasureID: measureID,
	}
	mock.lockRelations.Lock()
	mock.calls.Relations = append(mock.calls.Relations, callInfo)
	mock.lockRelations.Unlock()
	return mock.RelationsFunc(ctx, measureID)
}

func (mock *measureRepoMock) RelationsCalls() []struct {
	Ctx       context.Context
	MeasureID int64
} {
	var calls []struct {
		Ctx       context.Context
		MeasureID int64
	}
	mock.lockRelations.RLock()
	calls = mock.calls.Relations
	mock.lockRelations.RUnlock()
	return calls
}

func (mock *measureRepoMock) ReplaceRelation(ctx context.Context, measureID int64, rel domain.Relation, ids []int64) error {
	if mock.ReplaceRelationFunc == nil {
		panic("measureRepoMock.ReplaceRelationFunc: method is nil but measureRepo.ReplaceRelation was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeasureID int64
		Rel       domain.Relation
		IDs       []int64
	}{
		Ctx:       ctx,
		MeasureID: measureID,
		Rel:       rel,
		IDs:       ids,
	}
	mock.lockReplaceRelation.Lock()
	mock.calls.ReplaceRelation = append(mock.calls.ReplaceRelation, callInfo)
	mock.lockReplaceRelation.Unlock()
	return mock.ReplaceRelationFunc(ctx, measureID, rel, ids)
}

func (mock *measureRepoMock) ReplaceRelationCalls() []struct {
	Ctx       context.Context
	MeasureID int64
	Rel       domain.Relation
	IDs       []int64
} {
	var calls []struct {
		Ctx       context.Context
		MeasureID int64
		Rel       domain.Relation
		IDs       []int64
	}
	mock.lockReplaceRelation.RLock()
	calls = mock.calls.ReplaceRelation
	mock.lockReplaceRelation.RUnlock()
	return calls
}

func (mock *measureRepoMock) MissingRelationTargets(ctx context.Context, rel domain.Relation, ids []int64) ([]int64, error) {
	if mock.MissingRelationTargetsFunc == nil {
		panic("measureRepoMock.MissingRelationTargetsFunc: method is nil but measureRepo.MissingRelationTargets was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rel domain.Relation
		IDs []int64
	}{
		Ctx: ctx,
		Rel: rel,
		IDs: ids,
	}
	mock.lockMissingRelationTargets.Lock()
	mock.calls.MissingRelationTargets = append(mock.calls.MissingRelationTargets, callInfo)
	mock.lockMissingRelationTargets.Unlock()
	return mock.MissingRelationTargetsFunc(ctx, rel, ids)
}

func (mock *measureRepoMock) MissingRelationTargetsCalls() []struct {
	Ctx context.Context
	Rel domain.Relation
	IDs []int64
} {
	var calls []struct {
		Ctx context.Context
		Rel domain.Relation
		IDs []int64
	}
	mock.lockMissingRelationTargets.RLock()
	calls = mock.calls.MissingRelationTargets
	mock.lockMissingRelationTargets.RUnlock()
	return calls
}

var _ optionRepo = &optionRepoMock{}

type optionRepoMock struct {
	CategoriesFunc func(ctx context.Context, ids []int64) (map[int64]domain.OptionCategory, error)

	calls struct {
		Categories []struct {
			Ctx context.Context
			IDs []int64
		}
	}
	lockCategories sync.RWMutex
}

func (mock *optionRepoMock) Categories(ctx context.Context, ids []int64) (map[int64]domain.OptionCategory, error) {
	if mock.CategoriesFunc == nil {
		panic("optionRepoMock.CategoriesFunc: method is nil but optionRepo.Categories was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockCategories.Lock()
	mock.calls.Categories = append(mock.calls.Categories, callInfo)
	mock.lockCategories.Unlock()
	return mock.CategoriesFunc(ctx, ids)
}

func (mock *optionRepoMock) CategoriesCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	var calls []struct {
		Ctx context.Context
		IDs []int64
	}
	mock.lockCategories.RLock()
	calls = mock.calls.Categories
	mock.lockCategories.RUnlock()
	return calls
}

var _ existence = &existenceMock{}

type existenceMock struct {
	MissingIDsFunc func(ctx context.Context, ids []int64) ([]int64, error)

	calls struct {
		MissingIDs []struct {
			Ctx context.Context
			IDs []int64
		}
	}
	lockMissingIDs sync.RWMutex
}

func (mock *existenceMock) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if mock.MissingIDsFunc == nil {
		panic("existenceMock.MissingIDsFunc: method is nil but existence.MissingIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockMissingIDs.Lock()
	mock.calls.MissingIDs = append(mock.calls.MissingIDs, callInfo)
	mock.lockMissingIDs.Unlock()
	return mock.MissingIDsFunc(ctx, ids)
}

func (mock *existenceMock) MissingIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	var calls []struct {
		Ctx context.Context
		IDs []int64
	}
	mock.lockMissingIDs.RLock()
	calls = mock.calls.MissingIDs
	mock.lockMissingIDs.RUnlock()
	return calls
}

var _ exampleRepo = &exampleRepoMock{}

type exampleRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Example, error)
	ListFunc          func(ctx context.Context, f domain.ListFilter) ([]domain.Example, int, error)
	ListByMeasureFunc func(ctx context.Context, measureID int64) ([]domain.Example, error)
	CreateFunc        func(ctx context.Context, e *domain.Example) (*domain.Example, error)
	UpsertFunc        func(ctx context.Context, e *domain.Example) (bool, error)
	UpdateFunc        func(ctx context.Context, e *domain.Example) (*domain.Example, error)
	DeleteFunc        func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.ListFilter
		}
		ListByMeasure []struct {
			Ctx       context.Context
			MeasureID int64
		}
		Create []struct {
			Ctx context.Context
			E   *domain.Example
		}
		Upsert []struct {
			Ctx context.Context
			E   *domain.Example
		}
		Update []struct {
			Ctx context.Context
			E   *domain.Example
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID       sync.RWMutex
	lockList          sync.RWMutex
	lockListByMeasure sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpsert        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *exampleRepoMock) GetByID(ctx context.Context, id int64) (*domain.Example, error) {
	if mock.GetByIDFunc == nil {
		panic("exampleRepoMock.GetByIDFunc: method is nil but exampleRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *exampleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *exampleRepoMock) List(ctx context.Context, f domain.ListFilter) ([]domain.Example, int, error) {
	if mock.ListFunc == nil {
		panic("exampleRepoMock.ListFunc: method is nil but exampleRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ListFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *exampleRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ListFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.ListFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *exampleRepoMock) ListByMeasure(ctx context.Context, measureID int64) ([]domain.Example, error) {
	if mock.ListByMeasureFunc == nil {
		panic("exampleRepoMock.ListByMeasureFunc: method is nil but exampleRepo.ListByMeasure was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeasureID int64
	}{
		Ctx:       ctx,
		MeasureID: measureID,
	}
	mock.lockListByMeasure.Lock()
	mock.calls.ListByMeasure = append(mock.calls.ListByMeasure, callInfo)
	mock.lockListByMeasure.Unlock()
	return mock.ListByMeasureFunc(ctx, measureID)
}

func (mock *exampleRepoMock) ListByMeasureCalls() []struct {
	Ctx       context.Context
	MeasureID int64
} {
	var calls []struct {
		Ctx       context.Context
		MeasureID int64
	}
	mock.lockListByMeasure.RLock()
	calls = mock.calls.ListByMeasure
	mock.lockListByMeasure.RUnlock()
	return calls
}

func (mock *exampleRepoMock) Create(ctx context.Context, e *domain.Example) (*domain.Example, error) {
	if mock.CreateFunc == nil {
		panic("exampleRepoMock.CreateFunc: method is nil but exampleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Example
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *exampleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Example
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Example
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *exampleRepoMock) Upsert(ctx context.Context, e *domain.Example) (bool, error) {
	if mock.UpsertFunc == nil {
		panic("exampleRepoMock.UpsertFunc: method is nil but exampleRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Example
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, e)
}

func (mock *exampleRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	E   *domain.Example
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Example
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *exampleRepoMock) Update(ctx context.Context, e *domain.Example) (*domain.Example, error) {
	if mock.UpdateFunc == nil {
		panic("exampleRepoMock.UpdateFunc: method is nil but exampleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Example
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, e)
}

func (mock *exampleRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	E   *domain.Example
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Example
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *exampleRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("exampleRepoMock.DeleteFunc: method is nil but exampleRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *exampleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ imageRepo = &imageRepoMock{}

type imageRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.MeasureImage, error)
	ListByMeasureFunc func(ctx context.Context, measureID int64) ([]domain.MeasureImage, error)
	CreateFunc        func(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error)
	UpdateFunc        func(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error)
	DeleteFunc        func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListByMeasure []struct {
			Ctx       context.Context
			MeasureID int64
		}
		Create []struct {
			Ctx context.Context
			Img *domain.MeasureImage
		}
		Update []struct {
			Ctx context.Context
			Img *domain.MeasureImage
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID       sync.RWMutex
	lockListByMeasure sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *imageRepoMock) GetByID(ctx context.Context, id int64) (*domain.MeasureImage, error) {
	if mock.GetByIDFunc == nil {
		panic("imageRepoMock.GetByIDFunc: method is nil but imageRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *imageRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *imageRepoMock) ListByMeasure(ctx context.Context, measureID int64) ([]domain.MeasureImage, error) {
	if mock.ListByMeasureFunc == nil {
		panic("imageRepoMock.ListByMeasureFunc: method is nil but imageRepo.ListByMeasure was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeasureID int64
	}{
		Ctx:       ctx,
		MeasureID: measureID,
	}
	mock.lockListByMeasure.Lock()
	mock.calls.ListByMeasure = append(mock.calls.ListByMeasure, callInfo)
	mock.lockListByMeasure.Unlock()
	return mock.ListByMeasureFunc(ctx, measureID)
}

func (mock *imageRepoMock) ListByMeasureCalls() []struct {
	Ctx       context.Context
	MeasureID int64
} {
	var calls []struct {
		Ctx       context.Context
		MeasureID int64
	}
	mock.lockListByMeasure.RLock()
	calls = mock.calls.ListByMeasure
	mock.lockListByMeasure.RUnlock()
	return calls
}

func (mock *imageRepoMock) Create(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error) {
	if mock.CreateFunc == nil {
		panic("imageRepoMock.CreateFunc: method is nil but imageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img *domain.MeasureImage
	}{
		Ctx: ctx,
		Img: img,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, img)
}

func (mock *imageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Img *domain.MeasureImage
} {
	var calls []struct {
		Ctx context.Context
		Img *domain.MeasureImage
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *imageRepoMock) Update(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error) {
	if mock.UpdateFunc == nil {
		panic("imageRepoMock.UpdateFunc: method is nil but imageRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img *domain.MeasureImage
	}{
		Ctx: ctx,
		Img: img,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, img)
}

func (mock *imageRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Img *domain.MeasureImage
} {
	var calls []struct {
		Ctx context.Context
		Img *domain.MeasureImage
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *imageRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("imageRepoMock.DeleteFunc: method is nil but imageRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *imageRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
