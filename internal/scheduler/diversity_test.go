package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/stricto/internal/domain"
)

func TestRecentTopicsFromTasks(t *testing.T) {
	now := time.Now()

	var tasks []domain.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, domain.NewTask(fmt.Sprintf("Topic %d", i), domain.SubjectMath, 45, domain.PriorityNormal, nil, now))
	}

	recent := RecentTopicsFromTasks(tasks)
	assert.Len(t, recent, RecentWindow)
	assert.Equal(t, "topic 3", recent[0])
	assert.Equal(t, "topic 9", recent[len(recent)-1])

	assert.Empty(t, RecentTopicsFromTasks(nil))
}

func TestRecentTopicsBlocks(t *testing.T) {
	recent := RecentTopics{"percentage and ratio practice set", "editorial analysis"}

	// Same opening characters collide even when the tail differs.
	assert.True(t, recent.Blocks("Percentage and Ratio Mock Test"))
	assert.True(t, recent.Blocks("Editorial Analysis"))
	assert.False(t, recent.Blocks("Time and Work Basics"))

	var empty RecentTopics
	assert.False(t, empty.Blocks("Percentage and Ratio Mock Test"))
	assert.False(t, recent.Blocks(""))
}
