package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytime/internal/storage"
)

func sampleInput() Input {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-2 * time.Hour)
	return Input{
		Profile: storage.DefaultProfile(),
		Subjects: []storage.Subject{
			{ID: "s1", Name: "Math", Color: "#38bdf8", Category: "STEM"},
		},
		Tasks: []storage.Task{
			{ID: "t1", Title: "Problem set", SubjectID: "s1", DueDate: "2024-03-01"},
			{ID: "t2", Title: "Essay", SubjectID: "gone", DueDate: "2024-03-20", Completed: true},
		},
		Sessions: []storage.StudySession{
			{ID: "x1", SubjectID: "s1", StartTime: start.UnixMilli(), EndTime: start.Add(time.Hour).UnixMilli(), Duration: 3600},
		},
		Now:  now,
		Days: 7,
	}
}

func TestGenerate_WritesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, Generate(path, sampleInput()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF", "not a PDF")
}

func TestBuild_EmptyData(t *testing.T) {
	in := Input{Profile: storage.DefaultProfile(), Now: time.Now()}

	buf, err := Build(in).Output()
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestPeriod(t *testing.T) {
	in := sampleInput()
	assert.Equal(t, "2024-03-03 - 2024-03-10", in.period())
	in.Days = 0
	assert.Equal(t, "All time", in.period())
}
