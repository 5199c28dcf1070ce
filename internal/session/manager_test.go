package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/balkashynov/swatch/internal/colorapi"
	"github.com/balkashynov/swatch/internal/db"
	"github.com/balkashynov/swatch/internal/export"
	"github.com/balkashynov/swatch/internal/models"
)

var fivePalette = models.Palette{"AABBCC", "112233", "334455", "667788", "99AABB"}

// stubFetcher replays queued results in order
type stubFetcher struct {
	mu      sync.Mutex
	results []fetchResult
	seeds   []string
}

type fetchResult struct {
	palette models.Palette
	err     error
}

func (f *stubFetcher) push(p models.Palette, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, fetchResult{p, err})
}

func (f *stubFetcher) Fetch(_ context.Context, seed string) (models.Palette, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeds = append(f.seeds, seed)
	if len(f.results) == 0 {
		return nil, errors.New("no result queued")
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.palette, r.err
}

type notification struct{ title, description string }

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *recordingNotifier) Notify(title, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{title, description})
}

func (n *recordingNotifier) titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, s := range n.sent {
		out = append(out, s.title)
	}
	return out
}

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type memDownloader struct {
	payload  []byte
	filename string
}

func (d *memDownloader) Download(payload []byte, filename string) (string, error) {
	d.payload = payload
	d.filename = filename
	return "/tmp/" + filename, nil
}

type recordingTheme struct{ dark []bool }

func (r *recordingTheme) SetDark(dark bool) { r.dark = append(r.dark, dark) }

type fixture struct {
	m        *Manager
	fetcher  *stubFetcher
	notifier *recordingNotifier
	clip     *memClipboard
	dl       *memDownloader
	theme    *recordingTheme
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := db.Open(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f := &fixture{
		fetcher:  &stubFetcher{},
		notifier: &recordingNotifier{},
		clip:     &memClipboard{},
		dl:       &memDownloader{},
		theme:    &recordingTheme{},
	}
	f.m, err = New(Options{
		Fetcher:    f.fetcher,
		Store:      store,
		Notifier:   f.notifier,
		Clipboard:  f.clip,
		Downloader: f.dl,
		Theme:      f.theme,
		Seeds:      func() string { return "0A1B2C" },
	})
	require.NoError(t, err)
	return f
}

func TestNewRequiresFetcherAndStore(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)

	_, err = New(Options{Fetcher: &stubFetcher{}})
	require.Error(t, err)
}

func TestGenerateReplacesCurrent(t *testing.T) {
	f := newFixture(t)
	f.fetcher.push(fivePalette, nil)

	got, err := f.m.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, fivePalette, got)
	require.Equal(t, fivePalette, f.m.Current())
	require.Equal(t, []string{"0A1B2C"}, f.fetcher.seeds)
}

func TestGenerateFailureKeepsCurrent(t *testing.T) {
	f := newFixture(t)
	f.fetcher.push(fivePalette, nil)
	_, err := f.m.Generate(context.Background())
	require.NoError(t, err)

	f.fetcher.push(nil, &colorapi.StatusError{Code: 503, Status: "503 Service Unavailable"})
	_, err = f.m.Generate(context.Background())
	var statusErr *colorapi.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, fivePalette, f.m.Current())
	require.Equal(t, []string{"Generation failed"}, f.notifier.titles())
}

func TestGenerateEmptyResultKeepsCurrent(t *testing.T) {
	f := newFixture(t)

	f.fetcher.push(models.Palette{}, nil)
	_, err := f.m.Generate(context.Background())
	require.ErrorIs(t, err, colorapi.ErrNoColors)
	require.Nil(t, f.m.Current())
}

func TestGenerateFromValidatesSeed(t *testing.T) {
	f := newFixture(t)

	_, err := f.m.GenerateFrom(context.Background(), "zzz")
	require.Error(t, err)
	require.Empty(t, f.fetcher.seeds)

	f.fetcher.push(fivePalette, nil)
	_, err = f.m.GenerateFrom(context.Background(), "#abc")
	require.NoError(t, err)
	require.Equal(t, []string{"AABBCC"}, f.fetcher.seeds)
}

func TestSaveAppendsEachCall(t *testing.T) {
	f := newFixture(t)
	f.fetcher.push(fivePalette, nil)
	_, err := f.m.Generate(context.Background())
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		ok, err := f.m.Save()
		require.NoError(t, err)
		require.True(t, ok)

		saved, err := f.m.Saved()
		require.NoError(t, err)
		require.Len(t, saved, i)
	}

	saved, err := f.m.Saved()
	require.NoError(t, err)
	require.Equal(t, saved[0], saved[1])
	require.Equal(t, []string{"Palette saved", "Palette saved"}, f.notifier.titles())
}

func TestSaveEmptyIsNoop(t *testing.T) {
	f := newFixture(t)

	ok, err := f.m.Save()
	require.NoError(t, err)
	require.False(t, ok)

	saved, err := f.m.Saved()
	require.NoError(t, err)
	require.Empty(t, saved)
	require.Empty(t, f.notifier.titles())
}

func TestSaveStoresSnapshot(t *testing.T) {
	f := newFixture(t)
	f.fetcher.push(fivePalette, nil)
	f.fetcher.push(models.Palette{"000000"}, nil)

	_, err := f.m.Generate(context.Background())
	require.NoError(t, err)
	_, err = f.m.Save()
	require.NoError(t, err)
	_, err = f.m.Generate(context.Background())
	require.NoError(t, err)

	saved, err := f.m.Saved()
	require.NoError(t, err)
	require.Equal(t, []models.Palette{fivePalette}, saved)
}

func TestExportRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.fetcher.push(fivePalette, nil)
	_, err := f.m.Generate(context.Background())
	require.NoError(t, err)

	path, err := f.m.Export()
	require.NoError(t, err)
	require.Equal(t, "/tmp/"+export.FileName, path)
	require.Equal(t, "color-palette.json", f.dl.filename)

	var back []string
	require.NoError(t, json.Unmarshal(f.dl.payload, &back))
	require.Equal(t, fivePalette.Strings(), back)
}

func TestExportEmptyIsNoop(t *testing.T) {
	f := newFixture(t)

	path, err := f.m.Export()
	require.NoError(t, err)
	require.Empty(t, path)
	require.Nil(t, f.dl.payload)
}

func TestCopy(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.m.Copy("AABBCC"))
	require.Equal(t, "AABBCC", f.clip.text)
	require.Equal(t, []notification{{"Color copied", "AABBCC copied to clipboard."}}, f.notifier.sent)
}

func TestCopyFailureDoesNotNotify(t *testing.T) {
	f := newFixture(t)
	f.clip.err = errors.New("no clipboard")

	require.Error(t, f.m.Copy("AABBCC"))
	require.Empty(t, f.notifier.titles())
}

func TestRestore(t *testing.T) {
	f := newFixture(t)
	other := models.Palette{"000000", "FFFFFF"}
	f.fetcher.push(fivePalette, nil)
	f.fetcher.push(other, nil)

	_, err := f.m.Generate(context.Background())
	require.NoError(t, err)
	_, err = f.m.Save()
	require.NoError(t, err)
	_, err = f.m.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, other, f.m.Current())

	require.NoError(t, f.m.Restore(0))

	saved, err := f.m.Saved()
	require.NoError(t, err)
	require.True(t, f.m.Current().Equal(saved[0]))
}

func TestRestoreOutOfRange(t *testing.T) {
	f := newFixture(t)

	require.ErrorIs(t, f.m.Restore(0), ErrIndexOutOfRange)
	require.ErrorIs(t, f.m.Restore(-1), ErrIndexOutOfRange)
}

func TestToggleDisplayMode(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, models.Light, f.m.DisplayMode())

	require.Equal(t, models.Dark, f.m.ToggleDisplayMode())
	require.Equal(t, models.Light, f.m.ToggleDisplayMode())
	require.Equal(t, []bool{true, false}, f.theme.dark)
}

// blockingFetcher releases each fetch only when told to
type blockingFetcher struct {
	release map[string]chan fetchResult
	started chan string
}

func (b *blockingFetcher) Fetch(_ context.Context, seed string) (models.Palette, error) {
	b.started <- seed
	r := <-b.release[seed]
	return r.palette, r.err
}

func TestOverlappingGenerationsKeepNewest(t *testing.T) {
	store, err := db.Open(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	bf := &blockingFetcher{
		release: map[string]chan fetchResult{
			"111111": make(chan fetchResult),
			"222222": make(chan fetchResult),
		},
		started: make(chan string, 2),
	}
	m, err := New(Options{Fetcher: bf, Store: store})
	require.NoError(t, err)

	older := models.Palette{"111111"}
	newer := models.Palette{"222222"}

	errs := make(chan error, 2)
	go func() {
		_, err := m.GenerateFrom(context.Background(), "111111")
		errs <- err
	}()
	require.Equal(t, "111111", <-bf.started)

	go func() {
		_, err := m.GenerateFrom(context.Background(), "222222")
		errs <- err
	}()
	require.Equal(t, "222222", <-bf.started)

	bf.release["222222"] <- fetchResult{palette: newer}
	require.NoError(t, <-errs)

	bf.release["111111"] <- fetchResult{palette: older}
	require.ErrorIs(t, <-errs, ErrStale)

	require.Equal(t, newer, m.Current())
}

func TestRestoreDiscardsInFlightGeneration(t *testing.T) {
	f := newFixture(t)
	f.fetcher.push(fivePalette, nil)
	_, err := f.m.Generate(context.Background())
	require.NoError(t, err)
	_, err = f.m.Save()
	require.NoError(t, err)

	bf := &blockingFetcher{
		release: map[string]chan fetchResult{"333333": make(chan fetchResult)},
		started: make(chan string, 1),
	}
	f.m.fetcher = bf

	errs := make(chan error, 1)
	go func() {
		_, err := f.m.GenerateFrom(context.Background(), "333333")
		errs <- err
	}()
	<-bf.started

	require.NoError(t, f.m.Restore(0))
	bf.release["333333"] <- fetchResult{palette: models.Palette{"333333"}}
	require.ErrorIs(t, <-errs, ErrStale)
	require.Equal(t, fivePalette, f.m.Current())
}

func TestEndToEnd(t *testing.T) {
	f := newFixture(t)
	require.Nil(t, f.m.Current())

	f.fetcher.push(fivePalette, nil)
	_, err := f.m.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, fivePalette, f.m.Current())

	_, err = f.m.Save()
	require.NoError(t, err)
	saved, err := f.m.Saved()
	require.NoError(t, err)
	require.Equal(t, []models.Palette{fivePalette}, saved)

	_, err = f.m.Export()
	require.NoError(t, err)
	require.Equal(t, `["AABBCC","112233","334455","667788","99AABB"]`, string(f.dl.payload))
}
