package messaging_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bnema/readably/internal/app/messaging"
	"github.com/bnema/readably/internal/application/usecase"
	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/infrastructure/stylesink"
	"github.com/bnema/readably/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type storeStub struct {
	mu     sync.Mutex
	values entity.Patch
	sets   int
}

func newStoreStub() *storeStub { return &storeStub{values: entity.Patch{}} }

func (s *storeStub) Get(_ context.Context, defaults entity.Settings) (entity.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return defaults.Merge(s.values), nil
}

func (s *storeStub) Set(_ context.Context, patch entity.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	for d, v := range patch {
		s.values[d] = v
	}
	return nil
}

func (s *storeStub) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = entity.Patch{}
	return nil
}

type page struct {
	sink   *stylesink.Memory
	store  *storeStub
	router *messaging.Router
}

func newPage(opts messaging.Options) *page {
	sink := stylesink.NewMemory()
	store := newStoreStub()
	engine := usecase.NewApplyStyleUseCase(sink, store)
	return &page{
		sink:   sink,
		store:  store,
		router: messaging.NewRouter(engine, entity.DefaultSettings(), opts),
	}
}

func (p *page) send(t *testing.T, action string, value any) messaging.Response {
	t.Helper()
	msg, err := messaging.NewMessage(action, value)
	require.NoError(t, err)
	resp, ok := p.router.Handle(testCtx(), msg)
	require.True(t, ok, "message %s should be handled", action)
	return resp
}

func TestRouter_SetFont(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	p.send(t, "setFont", 2)
	css, ok := p.sink.CSS("__font")
	require.True(t, ok)
	assert.Contains(t, css, "Raleway")

	p.send(t, "setFont", 4)
	css, ok = p.sink.CSS("__font")
	require.True(t, ok)
	assert.Contains(t, css, "Times New Roman")
	assert.Equal(t, 1, p.sink.Count("__font"))

	resp := p.send(t, "setFont", 0)
	assert.Equal(t, "font set to 0", resp.Status)
	_, ok = p.sink.CSS("__font")
	assert.False(t, ok)
}

func TestRouter_SetZoom(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	p.send(t, "setZoom", -10)
	css, _ := p.sink.CSS("__zoom")
	assert.Equal(t, "html { zoom: 0.9; }", css)

	p.send(t, "setZoom", 0)
	css, _ = p.sink.CSS("__zoom")
	assert.Equal(t, "html { zoom: 1; }", css)
}

func TestRouter_AcceptsStringValues(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	resp, ok := p.router.Handle(testCtx(), messaging.Message{Action: "setSpace", Value: []byte(`"3"`)})
	require.True(t, ok)
	assert.Equal(t, "spacing set to 3", resp.Status)

	css, _ := p.sink.CSS("__space")
	assert.Equal(t, "body, body * { word-spacing: 6px !important; }", css)
}

func TestRouter_SameValueTwiceLeavesOneElement(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	p.send(t, "setHighContrast", 3)
	first, _ := p.sink.CSS("__contrast")
	p.send(t, "setHighContrast", 3)
	second, _ := p.sink.CSS("__contrast")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.sink.Count("__contrast"))
}

func TestRouter_NeutralRemovesThenRecreates(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	p.send(t, "setAlign", 4)
	p.send(t, "setAlign", 0)
	assert.Zero(t, p.sink.Count("__align"))

	p.send(t, "setAlign", 2)
	assert.Equal(t, 1, p.sink.Count("__align"))
	css, _ := p.sink.CSS("__align")
	assert.Contains(t, css, "line-height: 160%")
}

func TestRouter_Toggles(t *testing.T) {
	p := newPage(messaging.Options{ContrastToggleLevel: 2, ZoomToggleOffset: 50})

	p.send(t, "toggleHighContrast", nil)
	assert.Equal(t, 2, p.router.Settings().Contrast)
	p.send(t, "toggleHighContrast", nil)
	assert.Equal(t, 0, p.router.Settings().Contrast)
	assert.Zero(t, p.sink.Count("__contrast"))

	p.send(t, "toggleZoom", nil)
	assert.Equal(t, 50, p.router.Settings().Zoom)
	css, _ := p.sink.CSS("__zoom")
	assert.Equal(t, "html { zoom: 1.5; }", css)
	p.send(t, "toggleZoom", nil)
	assert.Equal(t, 0, p.router.Settings().Zoom)

	resp := p.send(t, "toggleReadableFont", nil)
	assert.Equal(t, "readableFont enabled", resp.Status)
	assert.Equal(t, 1, p.sink.Count("__readableFont"))
	resp = p.send(t, "toggleReadableFont", nil)
	assert.Equal(t, "readableFont disabled", resp.Status)
	assert.Zero(t, p.sink.Count("__readableFont"))
}

func TestRouter_ToggleFromNonZeroTurnsOff(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	p.send(t, "setHighContrast", 1)
	p.send(t, "toggleHighContrast", nil)
	assert.Equal(t, 0, p.router.Settings().Contrast)
}

func TestRouter_LegacyAliases(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	p.send(t, "slideText", 5)
	p.send(t, "slideAlign", 1)

	got := p.router.Settings()
	assert.Equal(t, 5, got.Spacing)
	assert.Equal(t, 1, got.Align)
}

func TestRouter_IgnoresUnknownAndMalformed(t *testing.T) {
	p := newPage(messaging.DefaultOptions())
	ctx := testCtx()

	cases := []messaging.Message{
		{Action: "makeItPretty"},
		{Action: "setZoom"},
		{Action: "setZoom", Value: []byte(`"wide"`)},
		{Action: "setFont", Value: []byte(`null`)},
	}
	for _, msg := range cases {
		_, ok := p.router.Handle(ctx, msg)
		assert.False(t, ok, "%+v", msg)
	}

	assert.Empty(t, p.sink.Elements())
	assert.Zero(t, p.store.sets)
}

func TestRouter_PersistsEveryAppliedDimension(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	p.send(t, "setHighContrast", 2)
	p.send(t, "setFont", 3)
	p.send(t, "setZoom", 5)
	p.send(t, "setSpace", 1)
	p.send(t, "setAlign", 2)
	p.send(t, "toggleReadableFont", nil)

	stored, err := p.store.Get(testCtx(), entity.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, entity.Settings{
		Contrast: 2, Font: 3, Zoom: 5, Spacing: 1, Align: 2, ReadableFont: true,
	}, stored)

	// A fresh page restored from the same store shows the same elements.
	restored := stylesink.NewMemory()
	_, err = usecase.NewApplyStyleUseCase(restored, p.store).Restore(testCtx())
	require.NoError(t, err)
	assert.ElementsMatch(t, p.sink.Elements(), restored.Elements())
}

type failingEngine struct{}

func (failingEngine) Apply(context.Context, entity.Settings, entity.Dimension) error {
	return errors.New("page detached")
}

func TestRouter_EngineFailureKeepsState(t *testing.T) {
	r := messaging.NewRouter(failingEngine{}, entity.DefaultSettings(), messaging.DefaultOptions())

	resp, ok := r.Handle(testCtx(), messaging.Message{Action: "setZoom", Value: []byte("30")})
	require.True(t, ok)
	assert.Contains(t, resp.Status, "page detached")
	assert.Equal(t, entity.DefaultSettings(), r.Settings())
}

type recorder struct {
	transitions [][2]entity.Settings
}

func (r *recorder) Observe(prev, next entity.Settings) {
	r.transitions = append(r.transitions, [2]entity.Settings{prev, next})
}

func TestRouter_NotifiesObservers(t *testing.T) {
	p := newPage(messaging.DefaultOptions())
	rec := &recorder{}
	p.router.AddObserver(rec)

	p.send(t, "setZoom", 10)
	_, _ = p.router.Handle(testCtx(), messaging.Message{Action: "unknown"})
	p.send(t, "setZoom", 5)

	require.Len(t, rec.transitions, 2)
	assert.Equal(t, 0, rec.transitions[0][0].Zoom)
	assert.Equal(t, 10, rec.transitions[0][1].Zoom)
	assert.Equal(t, 5, rec.transitions[1][1].Zoom)
}

func TestRouter_SetOptionsAppliesToNextToggle(t *testing.T) {
	p := newPage(messaging.DefaultOptions())

	p.router.SetOptions(messaging.Options{ZoomToggleOffset: 30})
	p.send(t, "toggleZoom", nil)
	assert.Equal(t, 30, p.router.Settings().Zoom)

	p.send(t, "toggleHighContrast", nil)
	assert.Equal(t, messaging.DefaultContrastToggleLevel, p.router.Settings().Contrast)
}
