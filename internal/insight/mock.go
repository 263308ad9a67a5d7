package insight

import (
	"context"
	"time"
)

// MockAPIKey selects the canned generator, for local development.
const MockAPIKey = "mock-api-key-for-local-dev"

const MockResponse = `Based on your recent activity, here are a few insights:

**Focus Area:** You've spent a significant amount of time on **Computer Science**, which is great! However, your study time for **History** is comparatively low.

**Recommendation:**
- **Allocate a dedicated Pomodoro session for History** in the next two days to catch up.
- You have an overdue task for Computer Science. It's best to **tackle that task first** before starting new topics.

Keep up the great work! Consistent effort is the key to success.
`

// Mock returns MockResponse after Delay.
type Mock struct {
	Delay time.Duration
}

func (m Mock) Generate(ctx context.Context, _ string) (string, error) {
	if m.Delay <= 0 {
		return MockResponse, nil
	}
	t := time.NewTimer(m.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.C:
		return MockResponse, nil
	}
}
