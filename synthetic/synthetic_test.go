package synthetic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/lumen-go/models"
)

func newProvider() *Provider {
	return NewProvider().WithLatency(0)
}

func TestTopicsAreDeterministic(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	first := p.Topics(ctx)
	second := p.Topics(ctx)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestWritesDoNotMutateDataset(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	before := p.Topics(ctx)
	created := p.CreateTopic(ctx, models.Topic{Title: "Ephemeral"})
	after := p.Topics(ctx)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ephemeral", created.Title)
	assert.Equal(t, before, after)
}

func TestCreateLessonEchoesWithDefaults(t *testing.T) {
	p := newProvider()

	lesson := p.CreateLesson(context.Background(), models.Lesson{Title: "X", TopicID: 5})

	assert.NotZero(t, lesson.ID)
	assert.Equal(t, 5, lesson.TopicID)
	assert.Equal(t, models.StatusDraft, lesson.Status)
}

func TestAssessmentOnlyForTopicOne(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	assert.NotNil(t, p.AssessmentByTopic(ctx, 1))
	assert.Nil(t, p.AssessmentByTopic(ctx, 2))
}

func TestLessonsBelongToTopic(t *testing.T) {
	p := newProvider()

	lessons := p.LessonsByTopic(context.Background(), 1)
	require.Len(t, lessons, 3)
	for _, lesson := range lessons {
		assert.Equal(t, 1, lesson.TopicID)
	}
}

func TestActivityLogsAreEmpty(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	assert.Empty(t, p.Completions(ctx, 2))
	assert.Empty(t, p.Attempts(ctx, 2))
}

func TestDemoUsersPresent(t *testing.T) {
	p := newProvider()

	users := p.Users(context.Background())
	require.Len(t, users, 2)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, models.RoleStudent, users[1].Role)
}
