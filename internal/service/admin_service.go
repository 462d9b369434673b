package service

import (
	"fmt"

	"motherlanka-be/internal/dto"
	"motherlanka-be/internal/pkg/logger"
)

// IAdminService exposes the JSON logs of the app and of the RAG pipeline.
type IAdminService interface {
	GetLogs(query dto.LogQuery) ([]*dto.LogListResponse, error)
}

type adminService struct {
	appLogger logger.ILogger
	ragLogger logger.ILogger
}

func NewAdminService(appLogger, ragLogger logger.ILogger) IAdminService {
	return &adminService{appLogger: appLogger, ragLogger: ragLogger}
}

func (s *adminService) GetLogs(query dto.LogQuery) ([]*dto.LogListResponse, error) {
	source := s.appLogger
	switch query.Source {
	case "", "app":
	case "rag":
		source = s.ragLogger
	default:
		return nil, fmt.Errorf("unknown log source %q", query.Source)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	entries, err := source.GetLogs(query.Level, limit, query.Offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LogListResponse, len(entries))
	for i, e := range entries {
		res[i] = &dto.LogListResponse{
			Id:        e.Id,
			Level:     e.Level,
			Module:    e.Module,
			Message:   e.Message,
			Timestamp: e.Timestamp,
			Details:   e.Details,
		}
	}
	return res, nil
}
