package insight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studytime/internal/storage"
)

type generatorMock struct {
	mock.Mock
}

func (m *generatorMock) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func sampleInput() Input {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	return Input{
		Subjects: []storage.Subject{{ID: "cs", Name: "Computer Science"}, {ID: "h", Name: "History"}},
		Tasks: []storage.Task{
			{Title: "Essay", SubjectID: "h", DueDate: "2024-05-01"},
			{Title: "Lab", SubjectID: "cs", DueDate: "2024-05-01", Completed: true},
			{Title: "Orphan", SubjectID: "gone", DueDate: "2024-06-01"},
		},
		Sessions: []storage.StudySession{
			{SubjectID: "cs", Duration: 3599},
			{SubjectID: "cs", Duration: 61},
			{SubjectID: "h", Duration: 59},
		},
		Now: now,
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleInput())
	assert.Equal(t, "Computer Science: 61 minutes, History: 0 minutes", s.StudyTime)
	assert.Equal(t, strings.Join([]string{
		"- Essay (History): Pending (Overdue)",
		"- Lab (Computer Science): Completed",
		"- Orphan (Unknown Subject): Pending",
	}, "\n"), s.Tasks)

	p := s.Prompt()
	assert.True(t, strings.HasPrefix(p, "As a study coach"))
	assert.Contains(t, p, "Format the output in Markdown")
	assert.Contains(t, p, s.Tasks)
}

func TestInsightsFallsBackOnError(t *testing.T) {
	gen := new(generatorMock)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()

	got := NewService(gen, time.Second).Insights(context.Background(), sampleInput())
	assert.Equal(t, FallbackMessage, got)
	gen.AssertExpectations(t)
}

func TestInsightsFallsBackOnEmptyText(t *testing.T) {
	gen := new(generatorMock)
	gen.On("Generate", mock.Anything, mock.Anything).Return("   ", nil).Once()

	got := NewService(gen, 0).Insights(context.Background(), sampleInput())
	assert.Equal(t, FallbackMessage, got)
}

func TestInsightsReturnsText(t *testing.T) {
	gen := new(generatorMock)
	in := sampleInput()
	gen.On("Generate", mock.Anything, Summarize(in).Prompt()).Return("Study History next.", nil).Once()

	got := NewService(gen, time.Second).Insights(context.Background(), in)
	assert.Equal(t, "Study History next.", got)
	gen.AssertExpectations(t)
}

type slowGenerator struct {
	calls   atomic.Int32
	release chan struct{}
}

func (g *slowGenerator) Generate(ctx context.Context, _ string) (string, error) {
	g.calls.Add(1)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-g.release:
		return "shared", nil
	}
}

func TestConcurrentInsightsShareOneCall(t *testing.T) {
	gen := &slowGenerator{release: make(chan struct{})}
	svc := NewService(gen, 0)

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Insights(context.Background(), sampleInput())
		}(i)
	}
	require.Eventually(t, func() bool { return gen.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(gen.release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "shared", r)
	}
	assert.LessOrEqual(t, gen.calls.Load(), int32(5))
}

func TestCancelledCallerDoesNotFailSharedCall(t *testing.T) {
	gen := &slowGenerator{release: make(chan struct{})}
	svc := NewService(gen, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan string, 1)
	go func() { first <- svc.Insights(ctx, sampleInput()) }()
	require.Eventually(t, func() bool { return gen.calls.Load() == 1 }, time.Second, time.Millisecond)

	second := make(chan string, 1)
	go func() { second <- svc.Insights(context.Background(), sampleInput()) }()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.Equal(t, FallbackMessage, <-first)

	close(gen.release)
	assert.Equal(t, "shared", <-second)
}

func newTestGemini(t *testing.T, srv *httptest.Server) *Gemini {
	t.Helper()
	g, err := NewGemini(context.Background(), Config{APIKey: "secret", Endpoint: srv.URL + "/"}, srv.Client())
	require.NoError(t, err)
	return g
}

func TestGeminiRequestAndResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.5-flash:generateContent"), r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Keep "},{"text":"going!"}]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestGemini(t, srv).Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Keep going!", got)
}

func TestGeminiEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := newTestGemini(t, srv).Generate(context.Background(), "hello")
	var serr ServiceError
	require.ErrorAs(t, err, &serr)
	assert.EqualError(t, serr.Err, "empty response")
}

func TestGeminiErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	g := newTestGemini(t, srv)
	_, err := g.Generate(context.Background(), "hello")
	var serr ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, err.Error(), "400")

	out := NewService(g, time.Second).Insights(context.Background(), sampleInput())
	assert.Equal(t, FallbackMessage, out)
}

func TestNewGeneratorUsesMockWithoutKey(t *testing.T) {
	ctx := context.Background()
	gen, err := NewGenerator(ctx, Config{}, nil)
	require.NoError(t, err)
	_, ok := gen.(Mock)
	assert.True(t, ok)

	gen, err = NewGenerator(ctx, Config{APIKey: MockAPIKey}, nil)
	require.NoError(t, err)
	_, ok = gen.(Mock)
	assert.True(t, ok)

	gen, err = NewGenerator(ctx, Config{APIKey: "real"}, nil)
	require.NoError(t, err)
	_, ok = gen.(*Gemini)
	assert.True(t, ok)

	text, err := Mock{}.Generate(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, MockResponse, text)
}
