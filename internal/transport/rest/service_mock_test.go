package rest

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/importer"
	"github.com/heartmarshall/adaptation-catalog/internal/service/auth"
	"github.com/heartmarshall/adaptation-catalog/internal/service/measure"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
	}
	lockLogin sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

var _ importRunner = &importRunnerMock{}

type importRunnerMock struct {
	NamesFunc     func() []string
	ColumnsFunc   func(name string) ([]string, error)
	RunReaderFunc func(ctx context.Context, name string, filename string, src io.Reader, opts importer.Options) (*importer.Report, error)

	calls struct {
		Names []struct{}
		Columns []struct {
			Name string
		}
		RunReader []struct {
			Ctx      context.Context
			Name     string
			Filename string
			Src      io.Reader
			Opts     importer.Options
		}
	}
	lockNames     sync.RWMutex
	lockColumns   sync.RWMutex
	lockRunReader sync.RWMutex
}

func (mock *importRunnerMock) Names() []string {
	if mock.NamesFunc == nil {
		panic("importRunnerMock.NamesFunc: method is nil but importRunner.Names was just called")
	}
	callInfo := struct{}{}
	mock.lockNames.Lock()
	mock.calls.Names = append(mock.calls.Names, callInfo)
	mock.lockNames.Unlock()
	return mock.NamesFunc()
}

func (mock *importRunnerMock) NamesCalls() []struct{} {
	var calls []struct{}
	mock.lockNames.RLock()
	calls = mock.calls.Names
	mock.lockNames.RUnlock()
	return calls
}

func (mock *importRunnerMock) Columns(name string) ([]string, error) {
	if mock.ColumnsFunc == nil {
		panic("importRunnerMock.ColumnsFunc: method is nil but importRunner.Columns was just called")
	}
	callInfo := struct {
		Name string
	}{
		Name: name,
	}
	mock.lockColumns.Lock()
	mock.calls.Columns = append(mock.calls.Columns, callInfo)
	mock.lockColumns.Unlock()
	return mock.ColumnsFunc(name)
}

func (mock *importRunnerMock) ColumnsCalls() []struct {
	Name string
} {
	var calls []struct {
		Name string
	}
	mock.lockColumns.RLock()
	calls = mock.calls.Columns
	mock.lockColumns.RUnlock()
	return calls
}

func (mock *importRunnerMock) RunReader(ctx context.Context, name string, filename string, src io.Reader, opts importer.Options) (*importer.Report, error) {
	if mock.RunReaderFunc == nil {
		panic("importRunnerMock.RunReaderFunc: method is nil but importRunner.RunReader was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Name     string
		Filename string
		Src      io.Reader
		Opts     importer.Options
	}{
		Ctx:      ctx,
		Name:     name,
		Filename: filename,
		Src:      src,
		Opts:     opts,
	}
	mock.lockRunReader.Lock()
	mock.calls.RunReader = append(mock.calls.RunReader, callInfo)
	mock.lockRunReader.Unlock()
	return mock.RunReaderFunc(ctx, name, filename, src, opts)
}

func (mock *importRunnerMock) RunReaderCalls() []struct {
	Ctx      context.Context
	Name     string
	Filename string
	Src      io.Reader
	Opts     importer.Options
} {
	var calls []struct {
		Ctx      context.Context
		Name     string
		Filename string
		Src      io.Reader
		Opts     importer.Options
	}
	mock.lockRunReader.RLock()
	calls = mock.calls.RunReader
	mock.lockRunReader.RUnlock()
	return calls
}

var _ measureService = &measureServiceMock{}

type measureServiceMock struct {
	ListFunc             func(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Measure], error)
	GetFunc              func(ctx context.Context, id int64) (*measure.Detail, error)
	CreateFunc           func(ctx context.Context, m *domain.Measure) (*domain.Measure, error)
	UpsertFunc           func(ctx context.Context, m *domain.Measure) (bool, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	ReplaceRelationsFunc func(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error
	AddImageFunc         func(ctx context.Context, input measure.AddImageInput) (*domain.MeasureImage, error)
	UpdateImageFunc      func(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error)
	DeleteImageFunc      func(ctx context.Context, imageID int64) error
	SetTitleImageFunc    func(ctx context.Context, measureID int64, imageID *int64) (*domain.Measure, error)
	GetExampleFunc       func(ctx context.Context, id int64) (*domain.Example, error)
	ListExamplesFunc     func(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Example], error)
	CreateExampleFunc    func(ctx context.Context, e *domain.Example) (*domain.Example, error)
	UpsertExampleFunc    func(ctx context.Context, e *domain.Example) (bool, error)
	DeleteExampleFunc    func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.ListFilter
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Measure
		}
		Upsert []struct {
			Ctx context.Context
			M   *domain.Measure
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		ReplaceRelations []struct {
			Ctx       context.Context
			MeasureID int64
			Rels      map[domain.Relation][]int64
		}
		AddImage []struct {
			Ctx   context.Context
			Input measure.AddImageInput
		}
		UpdateImage []struct {
			Ctx context.Context
			Img *domain.MeasureImage
		}
		DeleteImage []struct {
			Ctx     context.Context
			ImageID int64
		}
		SetTitleImage []struct {
			Ctx       context.Context
			MeasureID int64
			ImageID   *int64
		}
		GetExample []struct {
			Ctx context.Context
			ID  int64
		}
		ListExamples []struct {
			Ctx context.Context
			F   domain.ListFilter
		}
		CreateExample []struct {
			Ctx context.Context
			E   *domain.Example
		}
		UpsertExample []struct {
			Ctx context.Context
			E   *domain.Example
		}
		DeleteExample []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList             sync.RWMutex
	lockGet              sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpsert           sync.RWMutex
	lockDelete           sync.RWMutex
	lockReplaceRelations sync.RWMutex
	lockAddImage         sync.RWMutex
	lockUpdateImage      sync.RWMutex
	lockDeleteImage      sync.RWMutex
	lockSetTitleImage    sync.RWMutex
	lockGetExample       sync.RWMutex
	lockListExamples     sync.RWMutex
	lockCreateExample    sync.RWMutex
	lockUpsertExample    sync.RWMutex
	lockDeleteExample    sync.RWMutex
}

func (mock *measureServiceMock) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Measure], error) {
	if mock.ListFunc == nil {
		panic("measureServiceMock.ListFunc: method is nil but measureService.List was just called")
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

func (mock *measureServiceMock) ListCalls() []struct {
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

func (mock *measureServiceMock) Create(ctx context.Context, m *domain.Measure) (*domain.Measure, error) {
	if mock.CreateFunc == nil {
		panic("measureServiceMock.CreateFunc: method is nil but measureService.Create was just called")
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

func (mock *measureServiceMock) CreateCalls() []struct {
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

func (mock *measureServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("measureServiceMock.DeleteFunc: method is nil but measureService.Delete was just called")
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

func (mock *measureServiceMock) DeleteCalls() []struct {
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

func (mock *measureServiceMock) AddImage(ctx context.Context, input measure.AddImageInput) (*domain.MeasureImage, error) {
	if mock.AddImageFunc == nil {
		panic("measureServiceMock.AddImageFunc: method is nil but measureService.AddImage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input measure.AddImageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddImage.Lock()
	mock.calls.AddImage = append(mock.calls.AddImage, callInfo)
	mock.lockAddImage.Unlock()
	return mock.AddImageFunc(ctx, input)
}

func (mock *measureServiceMock) AddImageCalls() []struct {
	Ctx   context.Context
	Input measure.AddImageInput
} {
	var calls []struct {
		Ctx   context.Context
		Input measure.AddImageInput
	}
	mock.lockAddImage.RLock()
	calls = mock.calls.AddImage
	mock.lockAddImage.RUnlock()
	return calls
}

func (mock *measureServiceMock) UpdateImage(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error) {
	if mock.UpdateImageFunc == nil {
		panic("measureServiceMock.UpdateImageFunc: method is nil but measureService.UpdateImage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img *domain.MeasureImage
	}{
		Ctx: ctx,
		Img: img,
	}
	mock.lockUpdateImage.Lock()
	mock.calls.UpdateImage = append(mock.calls.UpdateImage, callInfo)
	mock.lockUpdateImage.Unlock()
	return mock.UpdateImageFunc(ctx, img)
}

func (mock *measureServiceMock) UpdateImageCalls() []struct {
	Ctx context.Context
	Img *domain.MeasureImage
} {
	var calls []struct {
		Ctx context.Context
		Img *domain.MeasureImage
	}
	mock.lockUpdateImage.RLock()
	calls = mock.calls.UpdateImage
	mock.lockUpdateImage.RUnlock()
	return calls
}

func (mock *measureServiceMock) DeleteImage(ctx context.Context, imageID int64) error {
	if mock.DeleteImageFunc == nil {
		panic("measureServiceMock.DeleteImageFunc: method is nil but measureService.DeleteImage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ImageID int64
	}{
		Ctx:     ctx,
		ImageID: imageID,
	}
	mock.lockDeleteImage.Lock()
	mock.calls.DeleteImage = append(mock.calls.DeleteImage, callInfo)
	mock.lockDeleteImage.Unlock()
	return mock.DeleteImageFunc(ctx, imageID)
}

func (mock *measureServiceMock) DeleteImageCalls() []struct {
	Ctx     context.Context
	ImageID int64
} {
	var calls []struct {
		Ctx     context.Context
		ImageID int64
	}
	mock.lockDeleteImage.RLock()
	calls = mock.calls.DeleteImage
	mock.lockDeleteImage.RUnlock()
	return calls
}

func (mock *measureServiceMock) SetTitleImage(ctx context.Context, measureID int64, imageID *int64) (*domain.Measure, error) {
	if mock.SetTitleImageFunc == nil {
		panic("measureServiceMock.SetTitleImageFunc: method is nil but measureService.SetTitleImage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeasureID int64
		ImageID   *int64
	}{
		Ctx:       ctx,
		MeasureID: measureID,
		ImageID:   imageID,
	}
	mock.lockSetTitleImage.Lock()
	mock.calls.SetTitleImage = append(mock.calls.SetTitleImage, callInfo)
	mock.lockSetTitleImage.Unlock()
	return mock.SetTitleImageFunc(ctx, measureID, imageID)
}

func (mock *measureServiceMock) SetTitleImageCalls() []struct {
	Ctx       context.Context
	MeasureID int64
	ImageID   *int64
} {
	var calls []struct {
		Ctx       context.Context
		MeasureID int64
		ImageID   *int64
	}
	mock.lockSetTitleImage.RLock()
	calls = mock.calls.SetTitleImage
	mock.lockSetTitleImage.RUnlock()
	return calls
}

func (mock *measureServiceMock) GetExample(ctx context.Context, id int64) (*domain.Example, error) {
	if mock.GetExampleFunc == nil {
		panic("measureServiceMock.GetExampleFunc: method is nil but measureService.GetExample was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetExample.Lock()
	mock.calls.GetExample = append(mock.calls.GetExample, callInfo)
	mock.lockGetExample.Unlock()
	return mock.GetExampleFunc(ctx, id)
}

func (mock *measureServiceMock) GetExampleCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetExample.RLock()
	calls = mock.calls.GetExample
	mock.lockGetExample.RUnlock()
	return calls
}

func (mock *measureServiceMock) ListExamples(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Example], error) {
	if mock.ListExamplesFunc == nil {
		panic("measureServiceMock.ListExamplesFunc: method is nil but measureService.ListExamples was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ListFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockListExamples.Lock()
	mock.calls.ListExamples = append(mock.calls.ListExamples, callInfo)
	mock.lockListExamples.Unlock()
	return mock.ListExamplesFunc(ctx, f)
}

func (mock *measureServiceMock) ListExamplesCalls() []struct {
	Ctx context.Context
	F   domain.ListFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.ListFilter
	}
	mock.lockListExamples.RLock()
	calls = mock.calls.ListExamples
	mock.lockListExamples.RUnlock()
	return calls
}

func (mock *measureServiceMock) CreateExample(ctx context.Context, e *domain.Example) (*domain.Example, error) {
	if mock.CreateExampleFunc == nil {
		panic("measureServiceMock.CreateExampleFunc: method is nil but measureService.CreateExample was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Example
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreateExample.Lock()
	mock.calls.CreateExample = append(mock.calls.CreateExample, callInfo)
	mock.lockCreateExample.Unlock()
	return mock.CreateExampleFunc(ctx, e)
}

func (mock *measureServiceMock) CreateExampleCalls() []struct {
	Ctx context.Context
	E   *domain.Example
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Example
	}
	mock.lockCreateExample.RLock()
	calls = mock.calls.CreateExample
	mock.lockCreateExample.RUnlock()
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

func (mock *measureServiceMock) DeleteExample(ctx context.Context, id int64) error {
	if mock.DeleteExampleFunc == nil {
		panic("measureServiceMock.DeleteExampleFunc: method is nil but measureService.DeleteExample was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteExample.Lock()
	mock.calls.DeleteExample = append(mock.calls.DeleteExample, callInfo)
	mock.lockDeleteExample.Unlock()
	return mock.DeleteExampleFunc(ctx, id)
}

func (mock *measureServiceMock) DeleteExampleCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDeleteExample.RLock()
	calls = mock.calls.DeleteExample
	mock.lockDeleteExample.RUnlock()
	return calls
}
