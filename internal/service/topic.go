package service

import (
	"context"
	"tush00nka/studybud/internal/model"
	"tush00nka/studybud/internal/repository"
)

type topicService struct {
	topicRepo repository.TopicRepository
}

func NewTopicService(topicRepo repository.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) ListTopics(ctx context.Context, query string, limit int) ([]model.TopicWithCount, error) {
	if limit < 0 {
		limit = 0
	}
	return s.topicRepo.Find(ctx, query, limit)
}
