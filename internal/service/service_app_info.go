package service

import (
	"context"

	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/MKhiriev/gamegenius/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
