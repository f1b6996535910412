package normalize

import "github.com/lumenlearn/lumen-go/models"

var progressSpec = newFieldSpec(
	[]string{"userId", "topicId", "completed", "total", "percentage"},
	map[string]string{
		"user_id":  "userId",
		"topic_id": "topicId",
	},
)

func Progress(raw Raw) (*models.TopicProgress, error) {
	mapped, err := remap(raw, progressSpec)
	if err != nil {
		return nil, err
	}
	var progress models.TopicProgress
	if err := decode(mapped, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}
